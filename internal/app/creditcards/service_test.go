package creditcards

import (
	"context"
	"errors"
	"testing"
	"time"

	"personal-trainer-app/internal/apperr"
	"personal-trainer-app/internal/domain/actors"
	"personal-trainer-app/internal/domain/billing"

	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC)

type memStore struct {
	cards  []billing.CreditCard
	nextID uint
}

func (m *memStore) ListCreditCards(_ context.Context, customerID uint) ([]billing.CreditCard, error) {
	var out []billing.CreditCard
	for _, c := range m.cards {
		if c.CustomerID == customerID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memStore) CreateCreditCard(_ context.Context, card *billing.CreditCard) error {
	m.nextID++
	card.ID = m.nextID
	m.cards = append(m.cards, *card)
	return nil
}

func (m *memStore) UpsertStripeCard(ctx context.Context, card *billing.CreditCard) (bool, error) {
	for i, c := range m.cards {
		if c.StripePaymentMethodID != nil && *c.StripePaymentMethodID == *card.StripePaymentMethodID {
			if c.CustomerID != card.CustomerID {
				return false, apperr.Validation(apperr.ReasonCreditCardOwner, "payment method belongs to another customer")
			}
			card.ID = c.ID
			m.cards[i] = *card
			return false, nil
		}
	}
	return true, m.CreateCreditCard(ctx, card)
}

type fakeStripe struct {
	key   bool
	cards []billing.CreditCard
	err   error
}

func (f fakeStripe) Configured() bool { return f.key }

func (f fakeStripe) ListCards(context.Context, string) ([]billing.CreditCard, error) {
	return f.cards, f.err
}

func strptr(s string) *string { return &s }

var customer = actors.Actor{ID: 7, Role: actors.RoleCustomer, Name: "Ana", Surname: "Ruiz", StripeCustomerID: strptr("cus_1")}

func newService(store Store, opts ...Option) *Service {
	return NewService(store, append([]Option{WithClock(func() time.Time { return now })}, opts...)...)
}

func TestRegisterStoresMaskedCard(t *testing.T) {
	store := &memStore{}
	svc := newService(store)

	card, err := svc.Register(context.Background(), customer, CardInput{
		Holder: "Ana Ruiz", Number: "4242 4242 4242 4242", ExpirationMonth: 6, ExpirationYear: 2026, CVV: "123",
	})
	require.NoError(t, err)
	require.Equal(t, "4242", card.Last4)
	require.Equal(t, "VISA", card.Brand)
	require.Equal(t, "**** **** **** 4242", card.Masked())

	mine, err := svc.Mine(context.Background(), customer)
	require.NoError(t, err)
	require.Len(t, mine, 1)
}

func TestRegisterValidation(t *testing.T) {
	svc := newService(&memStore{})
	ctx := context.Background()
	valid := CardInput{Holder: "Ana", Number: "4242424242424242", ExpirationMonth: 1, ExpirationYear: 2030, CVV: "123"}

	cases := []struct {
		name   string
		mutate func(*CardInput)
		reason string
	}{
		{"luhn", func(in *CardInput) { in.Number = "4242424242424241" }, apperr.ReasonInvalidCreditCard},
		{"letters", func(in *CardInput) { in.Number = "12ab" }, apperr.ReasonInvalidCreditCard},
		{"no number", func(in *CardInput) { in.Number = " " }, apperr.ReasonMissingField},
		{"month zero", func(in *CardInput) { in.ExpirationMonth = 0 }, apperr.ReasonMissingField},
		{"old year", func(in *CardInput) { in.ExpirationYear = 1999 }, apperr.ReasonInvalidCreditCard},
		{"cvv decimal", func(in *CardInput) { in.CVV = "1.2" }, apperr.ReasonInvalidCreditCard},
		{"cvv long", func(in *CardInput) { in.CVV = "12345" }, apperr.ReasonInvalidCreditCard},
		{"month", func(in *CardInput) { in.ExpirationMonth = 13 }, apperr.ReasonInvalidCreditCard},
		{"cvv", func(in *CardInput) { in.CVV = "12a" }, apperr.ReasonInvalidCreditCard},
		{"holder", func(in *CardInput) { in.Holder = " " }, apperr.ReasonMissingField},
		{"expired", func(in *CardInput) { in.ExpirationMonth, in.ExpirationYear = 5, 2026 }, apperr.ReasonExpiredCreditCard},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := valid
			tc.mutate(&in)
			_, err := svc.Register(ctx, customer, in)
			require.ErrorIs(t, err, apperr.ErrValidation)
			require.Equal(t, tc.reason, apperr.ReasonOf(err))
		})
	}

	_, err := svc.Register(ctx, actors.Actor{ID: 8, Role: actors.RoleTrainer}, valid)
	require.ErrorIs(t, err, apperr.ErrAuthorization)
}

func TestRegisterAcceptsGroupedNumbers(t *testing.T) {
	svc := newService(&memStore{})
	for _, number := range []string{"4242 4242 4242 4242", "5555-5555-5555-4444"} {
		card, err := svc.Register(context.Background(), customer, CardInput{
			Holder: "Ana Ruiz", Number: number, ExpirationMonth: 1, ExpirationYear: 2030, CVV: "1234",
		})
		require.NoError(t, err, number)
		require.Len(t, card.Last4, 4)
	}
}

func TestExplain(t *testing.T) {
	type form struct {
		Month  int    `json:"expiration_month" validate:"required,min=1,max=12"`
		Holder string `json:"holder" validate:"required"`
	}

	err := Explain(cardRules.Struct(form{Month: 13, Holder: "Ana"}))
	require.Equal(t, apperr.ReasonInvalidCreditCard, apperr.ReasonOf(err))
	require.Contains(t, err.Error(), "expiration_month")

	err = Explain(cardRules.Struct(form{Month: 2}))
	require.Equal(t, apperr.ReasonMissingField, apperr.ReasonOf(err))

	require.Equal(t, apperr.ReasonMissingField, apperr.ReasonOf(Explain(errors.New("EOF"))))
	require.NoError(t, Explain(nil))
}

func TestSync(t *testing.T) {
	store := &memStore{}
	remote := []billing.CreditCard{
		{Brand: "VISA", Last4: "4242", ExpirationMonth: 12, ExpirationYear: 2030, StripePaymentMethodID: strptr("pm_1")},
		{Holder: "Other", Brand: "AMEX", Last4: "0005", ExpirationMonth: 1, ExpirationYear: 2020, StripePaymentMethodID: strptr("pm_old")},
	}
	svc := newService(store, WithStripe(fakeStripe{key: true, cards: remote}))

	res, err := svc.Sync(context.Background(), customer)
	require.NoError(t, err)
	require.Equal(t, SyncResult{Created: 1, Skipped: 1}, res)
	require.Equal(t, "Ana Ruiz", store.cards[0].Holder)
	require.Equal(t, customer.ID, store.cards[0].CustomerID)

	res, err = svc.Sync(context.Background(), customer)
	require.NoError(t, err)
	require.Equal(t, SyncResult{Updated: 1, Skipped: 1}, res)
	require.Len(t, store.cards, 1)
}

func TestSyncPreconditions(t *testing.T) {
	ctx := context.Background()

	_, err := newService(&memStore{}).Sync(ctx, customer)
	require.Equal(t, apperr.ReasonStripeNotConfigured, apperr.ReasonOf(err))

	svc := newService(&memStore{}, WithStripe(fakeStripe{key: true}))
	noStripe := customer
	noStripe.StripeCustomerID = nil
	_, err = svc.Sync(ctx, noStripe)
	require.Equal(t, apperr.ReasonMissingStripeCustomer, apperr.ReasonOf(err))

	boom := errors.New("stripe 500")
	svc = newService(&memStore{}, WithStripe(fakeStripe{key: true, err: boom}))
	_, err = svc.Sync(ctx, customer)
	require.ErrorIs(t, err, boom)
}
