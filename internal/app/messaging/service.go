package messaging

import (
	"context"
	"time"

	"personal-trainer-app/internal/domain/actors"
	"personal-trainer-app/internal/domain/messages"
	"personal-trainer-app/internal/domain/workouts"
	"personal-trainer-app/internal/infra/logging"

	"github.com/sirupsen/logrus"
)

type Store interface {
	SaveMessages(ctx context.Context, msgs []messages.Message) error
	// ListBox returns the recipient's messages, newest first.
	ListBox(ctx context.Context, recipientID uint) ([]messages.Message, error)
}

type Directory interface {
	FindActor(ctx context.Context, id uint) (*actors.Actor, error)
	ListActorIDs(ctx context.Context) ([]uint, error)
}

type WorkingOuts interface {
	FindWorkingOut(ctx context.Context, id uint) (*workouts.WorkingOut, error)
}

// Acceptance answers whether a customer was ever accepted by a trainer.
type Acceptance interface {
	ExistsAcceptedBetween(ctx context.Context, customerID, trainerID uint) (bool, error)
}

type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// Service owns every message box: direct messages, administrator broadcasts
// and system notifications.
type Service struct {
	store      Store
	directory  Directory
	workouts   WorkingOuts
	acceptance Acceptance
	priorities messages.Priorities
	mailer     Mailer
	log        logrus.FieldLogger
	now        func() time.Time
}

type Option func(*Service)

func WithMailer(m Mailer) Option {
	return func(s *Service) { s.mailer = m }
}

func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Service) { s.log = l }
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithPriorities replaces the default HIGH, NEUTRAL, LOW set.
func WithPriorities(ps []string) Option {
	return func(s *Service) {
		if len(ps) > 0 {
			s.priorities = ps
		}
	}
}

func NewService(store Store, directory Directory, wo WorkingOuts, acceptance Acceptance, opts ...Option) *Service {
	s := &Service{
		store:      store,
		directory:  directory,
		workouts:   wo,
		acceptance: acceptance,
		priorities: messages.DefaultPriorities,
		log:        logging.Discard(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Box lists the messages addressed to the actor.
func (s *Service) Box(ctx context.Context, actor actors.Actor) ([]messages.Message, error) {
	if err := requireActive(actor); err != nil {
		return nil, err
	}
	return s.store.ListBox(ctx, actor.ID)
}
