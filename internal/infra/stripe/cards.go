package stripe

import (
	"context"
	"strings"

	"personal-trainer-app/internal/domain/billing"

	stripego "github.com/stripe/stripe-go/v75"
	"github.com/stripe/stripe-go/v75/client"
)

// CardLister reads a Stripe customer's card payment methods. It carries its
// own API client, so the package-level stripe key is never touched.
type CardLister struct {
	api *client.API
}

func NewCardLister(secretKey string) *CardLister {
	key := strings.TrimSpace(secretKey)
	if key == "" {
		return &CardLister{}
	}
	return &CardLister{api: client.New(key, nil)}
}

func (l *CardLister) Configured() bool { return l != nil && l.api != nil }

// ListCards returns the customer's cards as unsaved CreditCards carrying their
// payment method id. CustomerID is left for the caller to set.
func (l *CardLister) ListCards(ctx context.Context, stripeCustomerID string) ([]billing.CreditCard, error) {
	params := &stripego.PaymentMethodListParams{
		Customer: stripego.String(stripeCustomerID),
		Type:     stripego.String("card"),
	}
	params.Context = ctx

	var cards []billing.CreditCard
	it := l.api.PaymentMethods.List(params)
	for it.Next() {
		if c, ok := fromPaymentMethod(it.PaymentMethod()); ok {
			cards = append(cards, c)
		}
	}
	if err := it.Err(); err != nil {
		return nil, err
	}
	return cards, nil
}

func fromPaymentMethod(pm *stripego.PaymentMethod) (billing.CreditCard, bool) {
	if pm == nil || pm.Card == nil {
		return billing.CreditCard{}, false
	}
	holder := ""
	if pm.BillingDetails != nil {
		holder = pm.BillingDetails.Name
	}
	id := pm.ID
	return billing.CreditCard{
		Holder:                holder,
		Brand:                 NormalizeBrand(string(pm.Card.Brand)),
		Last4:                 pm.Card.Last4,
		ExpirationMonth:       int(pm.Card.ExpMonth),
		ExpirationYear:        int(pm.Card.ExpYear),
		StripePaymentMethodID: &id,
	}, true
}

// NormalizeBrand maps Stripe card brands onto the names used for cards
// registered by hand.
func NormalizeBrand(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "visa":
		return "VISA"
	case "mastercard":
		return "MASTER"
	case "amex":
		return "AMEX"
	case "discover":
		return "DISCOVER"
	case "":
		return "OTHER"
	default:
		return strings.ToUpper(strings.TrimSpace(s))
	}
}
