package creditcards

import (
	"context"
	"strings"
	"time"

	"personal-trainer-app/internal/apperr"
	"personal-trainer-app/internal/domain/actors"
	"personal-trainer-app/internal/domain/billing"
	"personal-trainer-app/internal/infra/logging"

	"github.com/sirupsen/logrus"
)

type Store interface {
	// ListCreditCards returns the customer's cards ordered by id.
	ListCreditCards(ctx context.Context, customerID uint) ([]billing.CreditCard, error)
	CreateCreditCard(ctx context.Context, card *billing.CreditCard) error
	// UpsertStripeCard inserts or refreshes the card keyed by its payment
	// method id and reports whether a row was inserted.
	UpsertStripeCard(ctx context.Context, card *billing.CreditCard) (bool, error)
}

// StripeCards is the remote source of payment methods.
type StripeCards interface {
	Configured() bool
	ListCards(ctx context.Context, stripeCustomerID string) ([]billing.CreditCard, error)
}

type Service struct {
	store  Store
	stripe StripeCards
	log    logrus.FieldLogger
	now    func() time.Time
}

type Option func(*Service)

func WithStripe(s StripeCards) Option { return func(svc *Service) { svc.stripe = s } }

func WithLogger(l logrus.FieldLogger) Option { return func(svc *Service) { svc.log = l } }

func WithClock(now func() time.Time) Option { return func(svc *Service) { svc.now = now } }

func NewService(store Store, opts ...Option) *Service {
	s := &Service{store: store, log: logging.Discard(), now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListCreditCards is the lookup the admission workflow uses.
func (s *Service) ListCreditCards(ctx context.Context, customerID uint) ([]billing.CreditCard, error) {
	return s.store.ListCreditCards(ctx, customerID)
}

// Mine lists the calling customer's cards.
func (s *Service) Mine(ctx context.Context, actor actors.Actor) ([]billing.CreditCard, error) {
	customer, err := actor.AsCustomer()
	if err != nil {
		return nil, err
	}
	return s.store.ListCreditCards(ctx, customer.ID)
}

// CardInput is a card as typed by the customer. The CVV is checked for shape
// and never stored.
type CardInput struct {
	Holder          string `json:"holder" validate:"required"`
	Number          string `json:"number" validate:"required,credit_card"`
	ExpirationMonth int    `json:"expiration_month" validate:"required,min=1,max=12"`
	ExpirationYear  int    `json:"expiration_year" validate:"required,min=2000"`
	CVV             string `json:"cvv" validate:"required,number,min=3,max=4"`
}

func (s *Service) Register(ctx context.Context, actor actors.Actor, in CardInput) (*billing.CreditCard, error) {
	customer, err := actor.AsCustomer()
	if err != nil {
		return nil, err
	}

	in.Holder = strings.TrimSpace(in.Holder)
	in.Number = billing.NormalizeNumber(in.Number)
	if err := cardRules.Struct(in); err != nil {
		return nil, Explain(err)
	}

	card := billing.CreditCard{
		Holder:          in.Holder,
		Brand:           billing.BrandOf(in.Number),
		Last4:           billing.LastFour(in.Number),
		ExpirationMonth: in.ExpirationMonth,
		ExpirationYear:  in.ExpirationYear,
		CustomerID:      customer.ID,
	}
	if card.Expired(s.now()) {
		return nil, apperr.Validation(apperr.ReasonExpiredCreditCard, "card has expired")
	}

	if err := s.store.CreateCreditCard(ctx, &card); err != nil {
		return nil, err
	}
	s.log.WithFields(logrus.Fields{"customer_id": customer.ID, "card_id": card.ID}).Info("credit card registered")
	return &card, nil
}

type SyncResult struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
	Skipped int `json:"skipped"`
}

// Sync copies the customer's Stripe card payment methods into its cards.
// Expired cards are skipped.
func (s *Service) Sync(ctx context.Context, actor actors.Actor) (SyncResult, error) {
	var res SyncResult

	customer, err := actor.AsCustomer()
	if err != nil {
		return res, err
	}
	if s.stripe == nil || !s.stripe.Configured() {
		return res, apperr.Validation(apperr.ReasonStripeNotConfigured, "stripe is not configured")
	}
	if customer.StripeCustomerID == nil || *customer.StripeCustomerID == "" {
		return res, apperr.Validation(apperr.ReasonMissingStripeCustomer, "customer has no stripe account")
	}

	remote, err := s.stripe.ListCards(ctx, *customer.StripeCustomerID)
	if err != nil {
		return res, err
	}

	now := s.now()
	for i := range remote {
		card := remote[i]
		if card.Expired(now) {
			res.Skipped++
			continue
		}
		card.CustomerID = customer.ID
		if card.Holder == "" {
			card.Holder = customer.FullName()
		}
		created, err := s.store.UpsertStripeCard(ctx, &card)
		if err != nil {
			return res, err
		}
		if created {
			res.Created++
		} else {
			res.Updated++
		}
	}

	s.log.WithFields(logrus.Fields{
		"customer_id": customer.ID,
		"created":     res.Created,
		"updated":     res.Updated,
		"skipped":     res.Skipped,
	}).Info("stripe cards synced")
	return res, nil
}
