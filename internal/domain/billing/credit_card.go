package billing

import (
	"time"

	"personal-trainer-app/internal/domain/actors"
)

// CreditCard is a customer's payment instrument. Only the last four digits of
// the number are kept.
type CreditCard struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	Holder          string `gorm:"not null" json:"holder"`
	Brand           string `gorm:"not null" json:"brand"`
	Last4           string `gorm:"type:varchar(4);not null" json:"last4"`
	ExpirationMonth int    `gorm:"not null" json:"expiration_month"`
	ExpirationYear  int    `gorm:"not null" json:"expiration_year"`

	StripePaymentMethodID *string `gorm:"column:stripe_payment_method_id;uniqueIndex:idx_credit_cards_stripe_pm" json:"-"`

	CustomerID uint          `gorm:"not null;index" json:"customer_id"`
	Customer   *actors.Actor `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

// Masked renders the number the way it is shown back to the customer.
func (c CreditCard) Masked() string {
	return "**** **** **** " + c.Last4
}

// Expired reports whether the card can no longer be charged at now. A card is
// valid through the last day of its expiration month.
func (c CreditCard) Expired(now time.Time) bool {
	firstOfNext := time.Date(c.ExpirationYear, time.Month(c.ExpirationMonth)+1, 1, 0, 0, 0, 0, now.Location())
	return !now.Before(firstOfNext)
}

// BelongsTo reports whether customerID owns the card.
func (c CreditCard) BelongsTo(customerID uint) bool {
	return customerID != 0 && c.CustomerID == customerID
}
