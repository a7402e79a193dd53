package messagesapi

import (
	"context"
	"net/http"

	"personal-trainer-app/internal/api/respond"
	"personal-trainer-app/internal/app/http/middleware"
	"personal-trainer-app/internal/app/messaging"
	"personal-trainer-app/internal/domain/actors"
	"personal-trainer-app/internal/domain/messages"

	"github.com/gin-gonic/gin"
)

type Mailbox interface {
	Box(ctx context.Context, actor actors.Actor) ([]messages.Message, error)
	Send(ctx context.Context, sender actors.Actor, d messaging.Draft) (*messages.Message, error)
}

type Handler struct {
	box Mailbox
}

func NewHandler(box Mailbox) *Handler {
	return &Handler{box: box}
}

type SendRequest struct {
	RecipientID uint   `json:"recipient_id" binding:"required"`
	Subject     string `json:"subject"`
	Body        string `json:"body"`
	Priority    string `json:"priority"`
	Tags        string `json:"tags"`
}

// GET /messages
func (h *Handler) Box(c *gin.Context) {
	list, err := h.box.Box(c.Request.Context(), middleware.Actor(c))
	if err != nil {
		respond.Error(c, err)
		return
	}
	if list == nil {
		list = []messages.Message{}
	}
	c.JSON(http.StatusOK, list)
}

// POST /messages
func (h *Handler) Send(c *gin.Context) {
	var req SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(c, "recipient_id is required")
		return
	}
	msg, err := h.box.Send(c.Request.Context(), middleware.Actor(c), messaging.Draft{
		RecipientID: req.RecipientID,
		Subject:     req.Subject,
		Body:        req.Body,
		Priority:    req.Priority,
		Tags:        req.Tags,
	})
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, msg)
}
