package messaging

import (
	"context"

	"personal-trainer-app/internal/apperr"
	"personal-trainer-app/internal/domain/actors"
	"personal-trainer-app/internal/domain/messages"
)

// Send delivers a direct message. Customers and trainers may only write to
// each other once the customer has been accepted into one of the trainer's
// working-outs; anyone may write to or be written to by an administrator.
func (s *Service) Send(ctx context.Context, sender actors.Actor, d Draft) (*messages.Message, error) {
	if err := requireActive(sender); err != nil {
		return nil, err
	}
	d, err := s.validate(d)
	if err != nil {
		return nil, err
	}

	recipient, err := s.directory.FindActor(ctx, d.RecipientID)
	if err != nil {
		return nil, err
	}
	if err := s.canMessage(ctx, sender, *recipient); err != nil {
		return nil, err
	}

	from := sender.ID
	msg := messages.Message{
		SenderID:    &from,
		RecipientID: recipient.ID,
		Kind:        messages.KindDirect,
		Subject:     d.Subject,
		Body:        d.Body,
		Priority:    d.Priority,
		Tags:        d.Tags,
		SentMoment:  s.now(),
	}
	if err := s.store.SaveMessages(ctx, []messages.Message{msg}); err != nil {
		return nil, err
	}
	return &msg, nil
}

func (s *Service) canMessage(ctx context.Context, sender, recipient actors.Actor) error {
	if sender.Role == actors.RoleAdministrator || recipient.Role == actors.RoleAdministrator {
		return nil
	}

	var customerID, trainerID uint
	switch {
	case sender.Role == actors.RoleCustomer && recipient.Role == actors.RoleTrainer:
		customerID, trainerID = sender.ID, recipient.ID
	case sender.Role == actors.RoleTrainer && recipient.Role == actors.RoleCustomer:
		customerID, trainerID = recipient.ID, sender.ID
	default:
		return apperr.Authorization(apperr.ReasonWrongRole, "direct messages are between customers and trainers")
	}

	ok, err := s.acceptance.ExistsAcceptedBetween(ctx, customerID, trainerID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.Authorization(apperr.ReasonNoAcceptedApplication, "customer has no accepted application with this trainer")
	}
	return nil
}

func requireActive(a actors.Actor) error {
	if a.ID == 0 || a.IsBanned {
		return apperr.Authorization(apperr.ReasonWrongRole, "no active actor")
	}
	return nil
}
