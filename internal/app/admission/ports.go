package admission

import (
	"context"

	"personal-trainer-app/internal/domain/applications"
	"personal-trainer-app/internal/domain/billing"
	"personal-trainer-app/internal/domain/workouts"
)

// Repository is the persistence boundary of the workflow. An empty status in
// the FindBy*AndStatus queries matches every status.
//
// Transaction runs fn with a context bound to one database transaction; every
// Repository call made with that context joins it. Nested calls reuse the
// outer transaction.
type Repository interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error

	FindWorkingOut(ctx context.Context, id uint) (*workouts.WorkingOut, error)
	// LockWorkingOut loads the working-out and holds a row lock on it until the
	// surrounding transaction ends.
	LockWorkingOut(ctx context.Context, id uint) (*workouts.WorkingOut, error)

	Create(ctx context.Context, app *applications.Application) error
	UpdateStatus(ctx context.Context, id uint, status applications.Status) error

	FindByID(ctx context.Context, id uint) (*applications.Application, error)
	FindByWorkingOutAndStatus(ctx context.Context, workingOutID uint, status applications.Status) ([]applications.Application, error)
	FindByWorkingOutAndCustomer(ctx context.Context, workingOutID, customerID uint) ([]applications.Application, error)
	FindByCustomerAndStatus(ctx context.Context, customerID uint, status applications.Status) ([]applications.Application, error)
	FindByTrainerAndStatus(ctx context.Context, trainerID uint, status applications.Status) ([]applications.Application, error)
	ExistsAcceptedBetween(ctx context.Context, customerID, trainerID uint) (bool, error)

	DeleteAllByCustomer(ctx context.Context, customerID uint) (int64, error)
	DeleteAllByTrainer(ctx context.Context, trainerID uint) (int64, error)
}

// CardLookup lists a customer's credit cards, oldest first.
type CardLookup interface {
	ListCreditCards(ctx context.Context, customerID uint) ([]billing.CreditCard, error)
}

// Notifier tells the customer that an application changed status.
type Notifier interface {
	NotifyStatusChange(ctx context.Context, app applications.Application) error
}

// RetryQueue keeps notifications that failed so they can be redelivered
// outside the request.
type RetryQueue interface {
	Push(ctx context.Context, applicationID uint) error
}
