package postgres

import (
	"context"
	"errors"

	"personal-trainer-app/internal/apperr"
	"personal-trainer-app/internal/domain/billing"

	"gorm.io/gorm"
)

type Cards struct {
	*DB
}

func NewCards(db *DB) *Cards {
	return &Cards{DB: db}
}

func (s *Cards) ListCreditCards(ctx context.Context, customerID uint) ([]billing.CreditCard, error) {
	var out []billing.CreditCard
	err := s.conn(ctx).Where("customer_id = ?", customerID).Order("id").Find(&out).Error
	if err != nil {
		return nil, translate("credit cards", err)
	}
	return out, nil
}

func (s *Cards) CreateCreditCard(ctx context.Context, card *billing.CreditCard) error {
	return translate("credit card", s.conn(ctx).Omit("Customer").Create(card).Error)
}

// UpsertStripeCard looks the card up by payment method id and either refreshes
// its details or inserts it. A card never changes owner: a payment method
// already stored for another customer is refused.
func (s *Cards) UpsertStripeCard(ctx context.Context, card *billing.CreditCard) (bool, error) {
	created := false
	err := s.Transaction(ctx, func(ctx context.Context) error {
		var existing billing.CreditCard
		err := s.conn(ctx).
			Where("stripe_payment_method_id = ?", *card.StripePaymentMethodID).
			First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			created = true
			return s.CreateCreditCard(ctx, card)
		}
		if err != nil {
			return translate("credit card", err)
		}

		if existing.CustomerID != card.CustomerID {
			return apperr.Validation(apperr.ReasonCreditCardOwner, "payment method belongs to another customer")
		}

		card.ID = existing.ID
		card.CreatedAt = existing.CreatedAt
		return translate("credit card", s.conn(ctx).
			Model(&existing).
			Updates(map[string]any{
				"holder":           card.Holder,
				"brand":            card.Brand,
				"last4":            card.Last4,
				"expiration_month": card.ExpirationMonth,
				"expiration_year":  card.ExpirationYear,
			}).Error)
	})
	return created, err
}
