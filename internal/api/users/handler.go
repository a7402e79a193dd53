package users

import (
	"context"
	"net/http"

	"personal-trainer-app/internal/api/respond"
	"personal-trainer-app/internal/app/accounts"
	"personal-trainer-app/internal/app/http/middleware"
	"personal-trainer-app/internal/domain/actors"

	"github.com/gin-gonic/gin"
)

type AccountRemover interface {
	Remove(ctx context.Context, actor actors.Actor) (accounts.Removed, error)
}

type Handler struct {
	accounts AccountRemover
}

func NewHandler(a AccountRemover) *Handler {
	return &Handler{accounts: a}
}

// GET /me
func (h *Handler) GetCurrentUser(c *gin.Context) {
	actor := middleware.Actor(c)
	c.JSON(http.StatusOK, MeResponse{
		User:         BuildUserDTO(actor),
		Capabilities: BuildCapabilities(actor.Role),
	})
}

// DELETE /me
func (h *Handler) DeleteCurrentUser(c *gin.Context) {
	removed, err := h.accounts.Remove(c.Request.Context(), middleware.Actor(c))
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Account deleted", "removed": removed})
}
