package admin

import (
	"context"
	"net/http"

	"personal-trainer-app/internal/api/respond"
	"personal-trainer-app/internal/app/http/middleware"
	"personal-trainer-app/internal/app/messaging"
	"personal-trainer-app/internal/domain/actors"

	"github.com/gin-gonic/gin"
)

type Broadcaster interface {
	Broadcast(ctx context.Context, actor actors.Actor, d messaging.Draft) (int, error)
	Breach(ctx context.Context, actor actors.Actor, d messaging.Draft) (int, error)
}

type Handler struct {
	messages Broadcaster
}

func NewHandler(b Broadcaster) *Handler {
	return &Handler{messages: b}
}

type NoticeRequest struct {
	Subject  string `json:"subject"`
	Body     string `json:"body"`
	Priority string `json:"priority"`
	Tags     string `json:"tags"`
}

func (r NoticeRequest) draft() messaging.Draft {
	return messaging.Draft{Subject: r.Subject, Body: r.Body, Priority: r.Priority, Tags: r.Tags}
}

// POST /admin/messages/broadcast
func (h *Handler) Broadcast(c *gin.Context) {
	h.send(c, h.messages.Broadcast)
}

// POST /admin/messages/breach
func (h *Handler) Breach(c *gin.Context) {
	h.send(c, h.messages.Breach)
}

func (h *Handler) send(c *gin.Context, fn func(context.Context, actors.Actor, messaging.Draft) (int, error)) {
	var req NoticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(c, "Invalid request")
		return
	}
	n, err := fn(c.Request.Context(), middleware.Actor(c), req.draft())
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"recipients": n})
}
