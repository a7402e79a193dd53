package workoutsapi

import (
	"context"
	"net/http"

	"personal-trainer-app/internal/api/respond"
	"personal-trainer-app/internal/domain/education"
	"personal-trainer-app/internal/domain/workouts"

	"github.com/gin-gonic/gin"
)

type Catalog interface {
	Search(ctx context.Context, f workouts.Finder) ([]workouts.WorkingOut, error)
	Show(ctx context.Context, id uint) (*workouts.WorkingOut, error)
	Curriculum(ctx context.Context, trainerID uint) ([]education.Record, error)
}

type Handler struct {
	catalog Catalog
}

func NewHandler(catalog Catalog) *Handler {
	return &Handler{catalog: catalog}
}

// GET /working-outs?keyword=&minPrice=&maxPrice=
func (h *Handler) List(c *gin.Context) {
	var f workouts.Finder
	if err := c.ShouldBindQuery(&f); err != nil {
		respond.BadRequest(c, "minPrice and maxPrice must be numbers")
		return
	}
	list, err := h.catalog.Search(c.Request.Context(), f)
	if err != nil {
		respond.Error(c, err)
		return
	}
	if list == nil {
		list = []workouts.WorkingOut{}
	}
	c.JSON(http.StatusOK, list)
}

// GET /working-outs/:id
func (h *Handler) Show(c *gin.Context) {
	id, ok := respond.ID(c, "id")
	if !ok {
		return
	}
	w, err := h.catalog.Show(c.Request.Context(), id)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, w)
}

// GET /trainers/:id/education-records
func (h *Handler) Curriculum(c *gin.Context) {
	id, ok := respond.ID(c, "id")
	if !ok {
		return
	}
	records, err := h.catalog.Curriculum(c.Request.Context(), id)
	if err != nil {
		respond.Error(c, err)
		return
	}
	if records == nil {
		records = []education.Record{}
	}
	c.JSON(http.StatusOK, records)
}
