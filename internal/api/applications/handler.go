package applicationsapi

import (
	"context"
	"net/http"
	"strings"

	"personal-trainer-app/internal/api/respond"
	"personal-trainer-app/internal/app/http/middleware"
	"personal-trainer-app/internal/apperr"
	"personal-trainer-app/internal/domain/actors"
	"personal-trainer-app/internal/domain/applications"

	"github.com/gin-gonic/gin"
)

// Workflow is the part of the admission engine the handlers drive.
type Workflow interface {
	Create(ctx context.Context, workingOutID uint, actor actors.Actor) (*applications.Application, error)
	Submit(ctx context.Context, app *applications.Application, actor actors.Actor) (*applications.Application, error)
	Accept(ctx context.Context, applicationID uint, actor actors.Actor) (*applications.Application, error)
	Reject(ctx context.Context, applicationID uint, actor actors.Actor) (*applications.Application, error)
	Find(ctx context.Context, applicationID uint, actor actors.Actor) (*applications.Application, error)
	ListForWorkingOut(ctx context.Context, workingOutID uint, status applications.Status, actor actors.Actor) ([]applications.Application, error)
	ListForCustomer(ctx context.Context, status applications.Status, actor actors.Actor) ([]applications.Application, error)
	ListForTrainer(ctx context.Context, status applications.Status, actor actors.Actor) ([]applications.Application, error)
}

type Handler struct {
	wf Workflow
}

func NewHandler(wf Workflow) *Handler {
	return &Handler{wf: wf}
}

func statusFilter(c *gin.Context) (applications.Status, bool) {
	s, ok := applications.ParseStatus(c.Query("status"))
	if !ok {
		respond.Error(c, apperr.Validation(apperr.ReasonUnknownStatus, "unknown status "+c.Query("status")))
		return "", false
	}
	return s, true
}

// POST /customer/working-outs/:id/applications
func (h *Handler) CreateForm(c *gin.Context) {
	workingOutID, ok := respond.ID(c, "id")
	if !ok {
		return
	}
	app, err := h.wf.Create(c.Request.Context(), workingOutID, middleware.Actor(c))
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, toDTO(*app))
}

// POST /customer/applications
func (h *Handler) Submit(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(c, "working_out_id and credit_card_id are required")
		return
	}

	actor := middleware.Actor(c)
	app := &applications.Application{
		Status:       applications.StatusPending,
		Comments:     strings.TrimSpace(req.Comments),
		CustomerID:   actor.ID,
		CreditCardID: req.CreditCardID,
		WorkingOutID: req.WorkingOutID,
	}
	saved, err := h.wf.Submit(c.Request.Context(), app, actor)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, toDTO(*saved))
}

// GET /customer/applications?status=
func (h *Handler) ListMine(c *gin.Context) {
	status, ok := statusFilter(c)
	if !ok {
		return
	}
	list, err := h.wf.ListForCustomer(c.Request.Context(), status, middleware.Actor(c))
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, toDTOs(list))
}

// GET /trainer/applications?status=
func (h *Handler) ListForTrainer(c *gin.Context) {
	status, ok := statusFilter(c)
	if !ok {
		return
	}
	list, err := h.wf.ListForTrainer(c.Request.Context(), status, middleware.Actor(c))
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, toDTOs(list))
}

// GET /trainer/working-outs/:id/applications?status=
func (h *Handler) ListForWorkingOut(c *gin.Context) {
	workingOutID, ok := respond.ID(c, "id")
	if !ok {
		return
	}
	status, ok := statusFilter(c)
	if !ok {
		return
	}
	list, err := h.wf.ListForWorkingOut(c.Request.Context(), workingOutID, status, middleware.Actor(c))
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, toDTOs(list))
}

// GET /customer/applications/:id and /trainer/applications/:id
func (h *Handler) Show(c *gin.Context) {
	id, ok := respond.ID(c, "id")
	if !ok {
		return
	}
	app, err := h.wf.Find(c.Request.Context(), id, middleware.Actor(c))
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, toDTO(*app))
}

// POST /trainer/applications/:id/accept
func (h *Handler) Accept(c *gin.Context) {
	h.transition(c, h.wf.Accept)
}

// POST /trainer/applications/:id/reject
func (h *Handler) Reject(c *gin.Context) {
	h.transition(c, h.wf.Reject)
}

func (h *Handler) transition(c *gin.Context, move func(context.Context, uint, actors.Actor) (*applications.Application, error)) {
	id, ok := respond.ID(c, "id")
	if !ok {
		return
	}
	app, err := move(c.Request.Context(), id, middleware.Actor(c))
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, toDTO(*app))
}
