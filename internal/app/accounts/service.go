package accounts

import (
	"context"
	"fmt"

	"personal-trainer-app/internal/apperr"
	"personal-trainer-app/internal/domain/actors"
	"personal-trainer-app/internal/infra/logging"

	"github.com/sirupsen/logrus"
)

// Store deletes everything an actor owns. Every call joins the transaction
// carried by ctx.
type Store interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
	DeleteCreditCardsByCustomer(ctx context.Context, customerID uint) (int64, error)
	DeleteWorkingOutsByTrainer(ctx context.Context, trainerID uint) (int64, error)
	DeleteEducationRecordsByTrainer(ctx context.Context, trainerID uint) (int64, error)
	DeleteArticlesByNutritionist(ctx context.Context, nutritionistID uint) (int64, error)
	DeleteMessagesOf(ctx context.Context, recipientID uint) (int64, error)
	DeleteActor(ctx context.Context, id uint) error
}

// Purger removes applications without running the workflow.
type Purger interface {
	PurgeCustomer(ctx context.Context, customer actors.Customer) (int64, error)
	PurgeTrainer(ctx context.Context, trainer actors.Trainer) (int64, error)
}

type Service struct {
	store  Store
	purger Purger
	log    logrus.FieldLogger
}

func NewService(store Store, purger Purger, log logrus.FieldLogger) *Service {
	if log == nil {
		log = logging.Discard()
	}
	return &Service{store: store, purger: purger, log: log}
}

// Removed counts the rows deleted with an account.
type Removed struct {
	Applications int64 `json:"applications"`
	CreditCards  int64 `json:"credit_cards"`
	WorkingOuts  int64 `json:"working_outs"`
	Education    int64 `json:"education_records"`
	Articles     int64 `json:"articles"`
	Messages     int64 `json:"messages"`
}

// Remove deletes the actor's account and what hangs off it in one
// transaction. No notification is sent for the purged applications.
func (s *Service) Remove(ctx context.Context, actor actors.Actor) (Removed, error) {
	var r Removed

	err := s.store.Transaction(ctx, func(ctx context.Context) error {
		var err error
		switch actor.Role {
		case actors.RoleCustomer:
			err = s.removeCustomer(ctx, actor, &r)
		case actors.RoleTrainer:
			err = s.removeTrainer(ctx, actor, &r)
		case actors.RoleNutritionist:
			err = s.removeNutritionist(ctx, actor, &r)
		default:
			return apperr.Authorization(apperr.ReasonWrongRole, "this account cannot be removed by its owner")
		}
		if err != nil {
			return err
		}

		if r.Messages, err = s.store.DeleteMessagesOf(ctx, actor.ID); err != nil {
			return fmt.Errorf("delete messages: %w", err)
		}
		if err := s.store.DeleteActor(ctx, actor.ID); err != nil {
			return fmt.Errorf("delete actor: %w", err)
		}
		return nil
	})
	if err != nil {
		return Removed{}, err
	}

	s.log.WithFields(logrus.Fields{
		"actor_id":     actor.ID,
		"role":         actor.Role,
		"applications": r.Applications,
	}).Info("account removed")
	return r, nil
}

func (s *Service) removeCustomer(ctx context.Context, actor actors.Actor, r *Removed) error {
	customer, err := actor.AsCustomer()
	if err != nil {
		return err
	}
	if r.Applications, err = s.purger.PurgeCustomer(ctx, customer); err != nil {
		return err
	}
	if r.CreditCards, err = s.store.DeleteCreditCardsByCustomer(ctx, customer.ID); err != nil {
		return fmt.Errorf("delete credit cards: %w", err)
	}
	return nil
}

func (s *Service) removeTrainer(ctx context.Context, actor actors.Actor, r *Removed) error {
	trainer, err := actor.AsTrainer()
	if err != nil {
		return err
	}
	if r.Applications, err = s.purger.PurgeTrainer(ctx, trainer); err != nil {
		return err
	}
	if r.WorkingOuts, err = s.store.DeleteWorkingOutsByTrainer(ctx, trainer.ID); err != nil {
		return fmt.Errorf("delete working-outs: %w", err)
	}
	if r.Education, err = s.store.DeleteEducationRecordsByTrainer(ctx, trainer.ID); err != nil {
		return fmt.Errorf("delete education records: %w", err)
	}
	return nil
}

func (s *Service) removeNutritionist(ctx context.Context, actor actors.Actor, r *Removed) error {
	n, err := actor.AsNutritionist()
	if err != nil {
		return err
	}
	if r.Articles, err = s.store.DeleteArticlesByNutritionist(ctx, n.ID); err != nil {
		return fmt.Errorf("delete articles: %w", err)
	}
	return nil
}
