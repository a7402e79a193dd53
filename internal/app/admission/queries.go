package admission

import (
	"context"

	"personal-trainer-app/internal/apperr"
	"personal-trainer-app/internal/domain/actors"
	"personal-trainer-app/internal/domain/applications"
)

// Find returns an application the actor is allowed to see: a trainer sees
// applications to its own working-outs, a customer sees its own applications.
func (e *Engine) Find(ctx context.Context, applicationID uint, actor actors.Actor) (*applications.Application, error) {
	app, err := e.repo.FindByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	switch actor.Role {
	case actors.RoleTrainer:
		trainer, err := actor.AsTrainer()
		if err != nil {
			return nil, err
		}
		w, err := e.repo.FindWorkingOut(ctx, app.WorkingOutID)
		if err != nil {
			return nil, err
		}
		if !w.OwnedBy(trainer.ID) {
			return nil, apperr.Authorization(apperr.ReasonNotOwner, "working-out belongs to another trainer")
		}
	case actors.RoleCustomer:
		customer, err := actor.AsCustomer()
		if err != nil {
			return nil, err
		}
		if app.CustomerID != customer.ID {
			return nil, apperr.Authorization(apperr.ReasonNotOwner, "application belongs to another customer")
		}
	default:
		return nil, apperr.Authorization(apperr.ReasonWrongRole, "only trainers and customers can view applications")
	}

	return app, nil
}

// ListForWorkingOut lists the applications of a working-out owned by the
// trainer, optionally filtered by status.
func (e *Engine) ListForWorkingOut(ctx context.Context, workingOutID uint, status applications.Status, actor actors.Actor) ([]applications.Application, error) {
	trainer, err := actor.AsTrainer()
	if err != nil {
		return nil, err
	}
	w, err := e.repo.FindWorkingOut(ctx, workingOutID)
	if err != nil {
		return nil, err
	}
	if !w.OwnedBy(trainer.ID) {
		return nil, apperr.Authorization(apperr.ReasonNotOwner, "working-out belongs to another trainer")
	}
	return e.repo.FindByWorkingOutAndStatus(ctx, w.ID, status)
}

// ListForCustomer lists the customer's own applications.
func (e *Engine) ListForCustomer(ctx context.Context, status applications.Status, actor actors.Actor) ([]applications.Application, error) {
	customer, err := actor.AsCustomer()
	if err != nil {
		return nil, err
	}
	return e.repo.FindByCustomerAndStatus(ctx, customer.ID, status)
}

// ListForTrainer lists applications to any of the trainer's working-outs.
func (e *Engine) ListForTrainer(ctx context.Context, status applications.Status, actor actors.Actor) ([]applications.Application, error) {
	trainer, err := actor.AsTrainer()
	if err != nil {
		return nil, err
	}
	return e.repo.FindByTrainerAndStatus(ctx, trainer.ID, status)
}

// ExistsAcceptedBetween reports whether the customer was ever accepted into one
// of the trainer's working-outs.
func (e *Engine) ExistsAcceptedBetween(ctx context.Context, customerID, trainerID uint) (bool, error) {
	return e.repo.ExistsAcceptedBetween(ctx, customerID, trainerID)
}

// Reload reads an application without visibility checks; the notification
// retry job uses it to rebuild the notice it failed to deliver.
func (e *Engine) Reload(ctx context.Context, applicationID uint) (*applications.Application, error) {
	return e.repo.FindByID(ctx, applicationID)
}
