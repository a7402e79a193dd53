package billing

import (
	"context"
	"net/http"

	"personal-trainer-app/internal/api/respond"
	"personal-trainer-app/internal/app/creditcards"
	"personal-trainer-app/internal/app/http/middleware"
	"personal-trainer-app/internal/domain/actors"
	"personal-trainer-app/internal/domain/billing"

	"github.com/gin-gonic/gin"
)

type Cards interface {
	Mine(ctx context.Context, actor actors.Actor) ([]billing.CreditCard, error)
	Register(ctx context.Context, actor actors.Actor, in creditcards.CardInput) (*billing.CreditCard, error)
	Sync(ctx context.Context, actor actors.Actor) (creditcards.SyncResult, error)
}

type Handler struct {
	cards Cards
}

func NewHandler(cards Cards) *Handler {
	return &Handler{cards: cards}
}

type CardDTO struct {
	ID              uint   `json:"id"`
	Holder          string `json:"holder"`
	Brand           string `json:"brand"`
	Number          string `json:"number"`
	ExpirationMonth int    `json:"expiration_month"`
	ExpirationYear  int    `json:"expiration_year"`
	FromStripe      bool   `json:"from_stripe"`
}

func toCardDTO(c billing.CreditCard) CardDTO {
	return CardDTO{
		ID:              c.ID,
		Holder:          c.Holder,
		Brand:           c.Brand,
		Number:          c.Masked(),
		ExpirationMonth: c.ExpirationMonth,
		ExpirationYear:  c.ExpirationYear,
		FromStripe:      c.StripePaymentMethodID != nil,
	}
}

type RegisterCardRequest struct {
	Holder          string `json:"holder" binding:"required"`
	Number          string `json:"number" binding:"required,credit_card"`
	ExpirationMonth int    `json:"expiration_month" binding:"required,min=1,max=12"`
	ExpirationYear  int    `json:"expiration_year" binding:"required,min=2000"`
	CVV             string `json:"cvv" binding:"required,number,min=3,max=4"`
}

// GET /customer/credit-cards
func (h *Handler) ListCreditCards(c *gin.Context) {
	cards, err := h.cards.Mine(c.Request.Context(), middleware.Actor(c))
	if err != nil {
		respond.Error(c, err)
		return
	}
	out := make([]CardDTO, 0, len(cards))
	for _, card := range cards {
		out = append(out, toCardDTO(card))
	}
	c.JSON(http.StatusOK, out)
}

// POST /customer/credit-cards
func (h *Handler) RegisterCreditCard(c *gin.Context) {
	var req RegisterCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, creditcards.Explain(err))
		return
	}
	card, err := h.cards.Register(c.Request.Context(), middleware.Actor(c), creditcards.CardInput{
		Holder:          req.Holder,
		Number:          req.Number,
		ExpirationMonth: req.ExpirationMonth,
		ExpirationYear:  req.ExpirationYear,
		CVV:             req.CVV,
	})
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, toCardDTO(*card))
}

// POST /customer/credit-cards/sync
func (h *Handler) SyncCreditCards(c *gin.Context) {
	res, err := h.cards.Sync(c.Request.Context(), middleware.Actor(c))
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
