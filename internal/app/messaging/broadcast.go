package messaging

import (
	"context"
	"strings"

	"personal-trainer-app/internal/apperr"
	"personal-trainer-app/internal/domain/actors"
	"personal-trainer-app/internal/domain/messages"
	"personal-trainer-app/internal/infra/metrics"

	"github.com/sirupsen/logrus"
)

// Draft is what a sender writes. RecipientID is ignored by broadcasts.
type Draft struct {
	RecipientID uint
	Subject     string
	Body        string
	Priority    string
	Tags        string
}

func (s *Service) validate(d Draft) (Draft, error) {
	d, err := validateText(d)
	if err != nil {
		return d, err
	}
	p, ok := s.priorities.Normalize(d.Priority)
	if !ok {
		return d, apperr.Validation(apperr.ReasonInvalidPriority, "unknown priority "+d.Priority)
	}
	d.Priority = p
	return d, nil
}

func validateText(d Draft) (Draft, error) {
	d.Subject = strings.TrimSpace(d.Subject)
	d.Body = strings.TrimSpace(d.Body)
	if d.Subject == "" || d.Body == "" {
		return d, apperr.Validation(apperr.ReasonMissingField, "subject and body are required")
	}
	return d, nil
}

// Broadcast sends one copy of the draft to every actor except the sending
// administrator and returns how many copies were stored.
func (s *Service) Broadcast(ctx context.Context, actor actors.Actor, d Draft) (int, error) {
	admin, err := actor.AsAdministrator()
	if err != nil {
		return 0, err
	}
	d, err = s.validate(d)
	if err != nil {
		return 0, err
	}

	ids, err := s.directory.ListActorIDs(ctx)
	if err != nil {
		return 0, err
	}
	sender := admin.ID
	msgs := s.fanOut(ids, &sender, messages.KindBroadcast, d)
	if len(msgs) == 0 {
		return 0, apperr.Validation(apperr.ReasonEmptyRecipients, "nobody to broadcast to")
	}

	if err := s.store.SaveMessages(ctx, msgs); err != nil {
		return 0, err
	}
	metrics.BroadcastRecipients(len(msgs))
	s.log.WithFields(logrus.Fields{"sender_id": admin.ID, "recipients": len(msgs)}).Info("broadcast sent")
	return len(msgs), nil
}

// Breach sends a system BREACH notice, always HIGH priority, to every actor
// including the administrator raising it. HIGH is used even when the
// configured priorities leave it out.
func (s *Service) Breach(ctx context.Context, actor actors.Actor, d Draft) (int, error) {
	admin, err := actor.AsAdministrator()
	if err != nil {
		return 0, err
	}
	d, err = validateText(d)
	if err != nil {
		return 0, err
	}
	d.Priority = messages.PriorityHigh
	if d.Tags == "" {
		d.Tags = "breach"
	}

	ids, err := s.directory.ListActorIDs(ctx)
	if err != nil {
		return 0, err
	}
	msgs := s.fanOut(ids, nil, messages.KindBreach, d)
	if len(msgs) == 0 {
		return 0, apperr.Validation(apperr.ReasonEmptyRecipients, "nobody to notify")
	}

	if err := s.store.SaveMessages(ctx, msgs); err != nil {
		return 0, err
	}
	metrics.BroadcastRecipients(len(msgs))
	s.log.WithFields(logrus.Fields{"raised_by": admin.ID, "recipients": len(msgs)}).Warn("breach notification sent")
	return len(msgs), nil
}

// fanOut builds one row per recipient, skipping the sender when there is one.
func (s *Service) fanOut(ids []uint, sender *uint, kind string, d Draft) []messages.Message {
	moment := s.now()
	msgs := make([]messages.Message, 0, len(ids))
	for _, id := range ids {
		if sender != nil && id == *sender {
			continue
		}
		msgs = append(msgs, messages.Message{
			SenderID:    sender,
			RecipientID: id,
			Kind:        kind,
			Subject:     d.Subject,
			Body:        d.Body,
			Priority:    d.Priority,
			Tags:        d.Tags,
			SentMoment:  moment,
		})
	}
	return msgs
}
