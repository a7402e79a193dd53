package admission

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"personal-trainer-app/internal/apperr"
	"personal-trainer-app/internal/domain/actors"
	"personal-trainer-app/internal/domain/applications"
	"personal-trainer-app/internal/domain/workouts"
	"personal-trainer-app/internal/infra/logging"
	"personal-trainer-app/internal/infra/metrics"

	"github.com/sirupsen/logrus"
)

// Engine runs the admission workflow: customers apply to a trainer's
// working-out, the trainer accepts one application and every other pending
// one is rejected.
type Engine struct {
	repo    Repository
	cards   CardLookup
	notify  Notifier
	retries RetryQueue
	log     logrus.FieldLogger
	now     func() time.Time
}

type Option func(*Engine)

func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

func WithLogger(l logrus.FieldLogger) Option {
	return func(e *Engine) { e.log = l }
}

func WithRetryQueue(q RetryQueue) Option {
	return func(e *Engine) { e.retries = q }
}

func NewEngine(repo Repository, cards CardLookup, notify Notifier, opts ...Option) *Engine {
	e := &Engine{
		repo:   repo,
		cards:  cards,
		notify: notify,
		log:    logging.Discard(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Create builds the pending application a customer is about to submit for the
// working-out. Nothing is persisted.
func (e *Engine) Create(ctx context.Context, workingOutID uint, actor actors.Actor) (*applications.Application, error) {
	customer, err := actor.AsCustomer()
	if err != nil {
		return nil, err
	}

	w, err := e.repo.FindWorkingOut(ctx, workingOutID)
	if err != nil {
		return nil, err
	}

	cardID, err := e.checkCreatable(ctx, *w, customer)
	if err != nil {
		return nil, err
	}

	return &applications.Application{
		Status:       applications.StatusPending,
		CustomerID:   customer.ID,
		CreditCardID: cardID,
		WorkingOutID: w.ID,
	}, nil
}

// Submit persists an application produced by Create, after re-checking every
// rule under a lock on the working-out. The argument is not modified.
func (e *Engine) Submit(ctx context.Context, app *applications.Application, actor actors.Actor) (*applications.Application, error) {
	if app == nil {
		return nil, apperr.Validation(apperr.ReasonMissingField, "application is required")
	}
	customer, err := actor.AsCustomer()
	if err != nil {
		return nil, err
	}
	if app.CustomerID != customer.ID {
		return nil, apperr.Authorization(apperr.ReasonNotOwner, "application belongs to another customer")
	}
	if app.ID != 0 {
		return nil, apperr.Validation(apperr.ReasonAlreadyPersisted, "application already exists")
	}
	if app.Status != applications.StatusPending {
		return nil, apperr.Validation(apperr.ReasonNotPending, "a new application must be pending")
	}
	if app.RegisteredMoment != nil {
		return nil, apperr.Validation(apperr.ReasonRegisteredMomentSet, "registered moment is assigned on submit")
	}

	saved := *app
	err = e.repo.Transaction(ctx, func(ctx context.Context) error {
		w, err := e.repo.LockWorkingOut(ctx, app.WorkingOutID)
		if err != nil {
			return err
		}
		if _, err := e.checkCreatable(ctx, *w, customer); err != nil {
			return err
		}
		if err := e.checkCardOwner(ctx, customer.ID, app.CreditCardID); err != nil {
			return err
		}

		moment := e.now()
		saved.RegisteredMoment = &moment
		if err := e.repo.Create(ctx, &saved); err != nil {
			if errors.Is(err, apperr.ErrDuplicate) {
				return apperr.Validation(apperr.ReasonDuplicateApplication, "customer already applied to this working-out")
			}
			return fmt.Errorf("save application: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.ApplicationTransition(string(applications.StatusPending))
	e.log.WithFields(logrus.Fields{
		"application_id": saved.ID,
		"working_out_id": saved.WorkingOutID,
		"customer_id":    saved.CustomerID,
	}).Info("application submitted")

	return &saved, nil
}

// Accept moves the application to ACCEPTED and every other pending
// application of the same working-out to REJECTED, in one transaction.
// Notifications go out after commit, one per changed application.
func (e *Engine) Accept(ctx context.Context, applicationID uint, actor actors.Actor) (*applications.Application, error) {
	trainer, err := actor.AsTrainer()
	if err != nil {
		return nil, err
	}

	var accepted applications.Application
	var rejected []applications.Application

	err = e.repo.Transaction(ctx, func(ctx context.Context) error {
		app, err := e.loadForTrainer(ctx, applicationID, trainer)
		if err != nil {
			return err
		}

		current, err := e.repo.FindByWorkingOutAndStatus(ctx, app.WorkingOutID, applications.StatusAccepted)
		if err != nil {
			return err
		}
		if len(current) > 0 {
			return apperr.State(apperr.ReasonAlreadyAccepted, "working-out already has an accepted application")
		}
		if !applications.CanTransition(app.Status, applications.StatusAccepted) {
			return apperr.State(apperr.ReasonNotPending, "only pending applications can be accepted")
		}

		if err := e.repo.UpdateStatus(ctx, app.ID, applications.StatusAccepted); err != nil {
			if errors.Is(err, apperr.ErrDuplicate) {
				return apperr.State(apperr.ReasonAlreadyAccepted, "working-out already has an accepted application")
			}
			return fmt.Errorf("accept application %d: %w", app.ID, err)
		}
		app.Status = applications.StatusAccepted
		accepted = *app

		siblings, err := e.repo.FindByWorkingOutAndStatus(ctx, app.WorkingOutID, applications.StatusPending)
		if err != nil {
			return err
		}
		sort.Slice(siblings, func(i, j int) bool { return siblings[i].ID < siblings[j].ID })

		for _, s := range siblings {
			if s.ID == app.ID {
				continue
			}
			if err := e.repo.UpdateStatus(ctx, s.ID, applications.StatusRejected); err != nil {
				return fmt.Errorf("reject sibling %d: %w", s.ID, err)
			}
			s.Status = applications.StatusRejected
			rejected = append(rejected, s)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.ApplicationTransition(string(applications.StatusAccepted))
	e.log.WithFields(logrus.Fields{
		"application_id": accepted.ID,
		"working_out_id": accepted.WorkingOutID,
		"rejected":       len(rejected),
	}).Info("application accepted")

	e.dispatch(ctx, accepted)
	for _, r := range rejected {
		metrics.ApplicationTransition(string(applications.StatusRejected))
		e.dispatch(ctx, r)
	}

	return &accepted, nil
}

// Reject moves a pending application to REJECTED.
func (e *Engine) Reject(ctx context.Context, applicationID uint, actor actors.Actor) (*applications.Application, error) {
	trainer, err := actor.AsTrainer()
	if err != nil {
		return nil, err
	}

	var rejected applications.Application
	err = e.repo.Transaction(ctx, func(ctx context.Context) error {
		app, err := e.loadForTrainer(ctx, applicationID, trainer)
		if err != nil {
			return err
		}
		if !applications.CanTransition(app.Status, applications.StatusRejected) {
			return apperr.State(apperr.ReasonNotPending, "only pending applications can be rejected")
		}
		if err := e.repo.UpdateStatus(ctx, app.ID, applications.StatusRejected); err != nil {
			return fmt.Errorf("reject application %d: %w", app.ID, err)
		}
		app.Status = applications.StatusRejected
		rejected = *app
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.ApplicationTransition(string(applications.StatusRejected))
	e.log.WithField("application_id", rejected.ID).Info("application rejected")
	e.dispatch(ctx, rejected)

	return &rejected, nil
}

// loadForTrainer locks the working-out of the application and re-reads the
// application under that lock.
func (e *Engine) loadForTrainer(ctx context.Context, applicationID uint, trainer actors.Trainer) (*applications.Application, error) {
	app, err := e.repo.FindByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	w, err := e.repo.LockWorkingOut(ctx, app.WorkingOutID)
	if err != nil {
		return nil, err
	}
	if !w.OwnedBy(trainer.ID) {
		return nil, apperr.Authorization(apperr.ReasonNotOwner, "working-out belongs to another trainer")
	}
	app, err = e.repo.FindByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	return app, nil
}

// checkCreatable holds the rules shared by Create and Submit and returns the
// default credit card.
func (e *Engine) checkCreatable(ctx context.Context, w workouts.WorkingOut, customer actors.Customer) (uint, error) {
	if !w.IsFinalMode {
		return 0, apperr.Validation(apperr.ReasonNotFinalMode, "working-out is not published")
	}

	accepted, err := e.repo.FindByWorkingOutAndStatus(ctx, w.ID, applications.StatusAccepted)
	if err != nil {
		return 0, err
	}
	if len(accepted) > 0 {
		return 0, apperr.Validation(apperr.ReasonAlreadyAccepted, "working-out already has an accepted application")
	}

	cards, err := e.cards.ListCreditCards(ctx, customer.ID)
	if err != nil {
		return 0, err
	}
	if len(cards) == 0 {
		return 0, apperr.Validation(apperr.ReasonNoCreditCard, "customer has no credit card")
	}

	existing, err := e.repo.FindByWorkingOutAndCustomer(ctx, w.ID, customer.ID)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, apperr.Validation(apperr.ReasonDuplicateApplication, "customer already applied to this working-out")
	}

	if w.HasStarted(e.now()) {
		return 0, apperr.Validation(apperr.ReasonSessionStarted, "working-out has already started")
	}

	return cards[0].ID, nil
}

func (e *Engine) checkCardOwner(ctx context.Context, customerID, cardID uint) error {
	cards, err := e.cards.ListCreditCards(ctx, customerID)
	if err != nil {
		return err
	}
	for _, c := range cards {
		if c.ID == cardID && c.BelongsTo(customerID) {
			return nil
		}
	}
	return apperr.Validation(apperr.ReasonCreditCardOwner, "credit card does not belong to the customer")
}

// dispatch never fails the transition: a failed notification is logged and
// queued for redelivery.
func (e *Engine) dispatch(ctx context.Context, app applications.Application) {
	err := e.notify.NotifyStatusChange(ctx, app)
	if err == nil {
		return
	}

	metrics.NotificationFailed()
	entry := e.log.WithFields(logrus.Fields{
		"application_id": app.ID,
		"status":         app.Status,
	}).WithError(err)

	if e.retries == nil {
		entry.Error("status notification lost")
		return
	}
	if qerr := e.retries.Push(ctx, app.ID); qerr != nil {
		entry.WithField("queue_error", qerr.Error()).Error("status notification lost")
		return
	}
	entry.Warn("status notification queued for retry")
}
