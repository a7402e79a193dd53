package articlesapi

import (
	"context"
	"net/http"

	"personal-trainer-app/internal/api/respond"
	articlesvc "personal-trainer-app/internal/app/articles"
	"personal-trainer-app/internal/app/http/middleware"
	"personal-trainer-app/internal/domain/actors"
	"personal-trainer-app/internal/domain/articles"

	"github.com/gin-gonic/gin"
)

type Library interface {
	ListAll(ctx context.Context) ([]articles.Article, error)
	ListByNutritionist(ctx context.Context, nutritionistID uint, viewer actors.Actor) ([]articles.Article, error)
	Display(ctx context.Context, id uint, viewer actors.Actor) (*articles.Article, error)
	CreateDraft(ctx context.Context, actor actors.Actor, in articlesvc.Input) (*articles.Article, error)
	UpdateDraft(ctx context.Context, id uint, actor actors.Actor, in articlesvc.Input) (*articles.Article, error)
	Publish(ctx context.Context, id uint, actor actors.Actor) (*articles.Article, error)
}

type Handler struct {
	lib Library
}

func NewHandler(lib Library) *Handler {
	return &Handler{lib: lib}
}

type ArticleRequest struct {
	Title    string   `json:"title"`
	Summary  string   `json:"summary"`
	Body     string   `json:"body"`
	Pictures []string `json:"pictures"`
}

func (r ArticleRequest) input() articlesvc.Input {
	return articlesvc.Input{Title: r.Title, Summary: r.Summary, Body: r.Body, Pictures: r.Pictures}
}

func list(c *gin.Context, out []articles.Article, err error) {
	if err != nil {
		respond.Error(c, err)
		return
	}
	if out == nil {
		out = []articles.Article{}
	}
	c.JSON(http.StatusOK, out)
}

// GET /articles
func (h *Handler) ListAll(c *gin.Context) {
	out, err := h.lib.ListAll(c.Request.Context())
	list(c, out, err)
}

// GET /nutritionists/:id/articles
func (h *Handler) ListByNutritionist(c *gin.Context) {
	id, ok := respond.ID(c, "id")
	if !ok {
		return
	}
	out, err := h.lib.ListByNutritionist(c.Request.Context(), id, middleware.Actor(c))
	list(c, out, err)
}

// GET /nutritionist/articles
func (h *Handler) ListMine(c *gin.Context) {
	actor := middleware.Actor(c)
	out, err := h.lib.ListByNutritionist(c.Request.Context(), actor.ID, actor)
	list(c, out, err)
}

// GET /articles/:id and /nutritionist/articles/:id
func (h *Handler) Show(c *gin.Context) {
	id, ok := respond.ID(c, "id")
	if !ok {
		return
	}
	a, err := h.lib.Display(c.Request.Context(), id, middleware.Actor(c))
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// POST /nutritionist/articles
func (h *Handler) Create(c *gin.Context) {
	var req ArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(c, "Invalid request")
		return
	}
	a, err := h.lib.CreateDraft(c.Request.Context(), middleware.Actor(c), req.input())
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, a)
}

// PUT /nutritionist/articles/:id
func (h *Handler) Update(c *gin.Context) {
	id, ok := respond.ID(c, "id")
	if !ok {
		return
	}
	var req ArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(c, "Invalid request")
		return
	}
	a, err := h.lib.UpdateDraft(c.Request.Context(), id, middleware.Actor(c), req.input())
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// POST /nutritionist/articles/:id/publish
func (h *Handler) Publish(c *gin.Context) {
	id, ok := respond.ID(c, "id")
	if !ok {
		return
	}
	a, err := h.lib.Publish(c.Request.Context(), id, middleware.Actor(c))
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}
