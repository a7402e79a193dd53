package admission

import (
	"context"

	"personal-trainer-app/internal/domain/actors"
)

// PurgeCustomer deletes every application of a customer regardless of status.
// It is an account clean-up, not a transition: no checks, no notifications.
// Called inside the account removal transaction when ctx carries one.
func (e *Engine) PurgeCustomer(ctx context.Context, customer actors.Customer) (int64, error) {
	n, err := e.repo.DeleteAllByCustomer(ctx, customer.ID)
	if err != nil {
		return 0, err
	}
	e.log.WithField("customer_id", customer.ID).WithField("deleted", n).Info("customer applications purged")
	return n, nil
}

// PurgeTrainer deletes every application to the trainer's working-outs.
func (e *Engine) PurgeTrainer(ctx context.Context, trainer actors.Trainer) (int64, error) {
	n, err := e.repo.DeleteAllByTrainer(ctx, trainer.ID)
	if err != nil {
		return 0, err
	}
	e.log.WithField("trainer_id", trainer.ID).WithField("deleted", n).Info("trainer applications purged")
	return n, nil
}
