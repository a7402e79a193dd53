package principal

import (
	"context"
	"errors"

	"personal-trainer-app/internal/apperr"
	"personal-trainer-app/internal/domain/actors"

	"github.com/gin-gonic/gin"
)

// ContextKey is where the JWT middleware stores the authenticated actor id.
const ContextKey = "actor_id"

type Directory interface {
	FindActor(ctx context.Context, id uint) (*actors.Actor, error)
}

// Resolver turns the authenticated id into the full Actor row, so callers can
// project it with AsCustomer, AsTrainer and friends.
type Resolver struct {
	dir Directory
}

func NewResolver(dir Directory) *Resolver {
	return &Resolver{dir: dir}
}

func (r *Resolver) Resolve(ctx context.Context, actorID uint) (actors.Actor, error) {
	if actorID == 0 {
		return actors.Actor{}, apperr.Authorization(apperr.ReasonWrongRole, "not authenticated")
	}
	a, err := r.dir.FindActor(ctx, actorID)
	if errors.Is(err, apperr.ErrNotFound) {
		return actors.Actor{}, apperr.Authorization(apperr.ReasonWrongRole, "unknown actor")
	}
	if err != nil {
		return actors.Actor{}, err
	}
	if a.IsBanned {
		return actors.Actor{}, apperr.Authorization(apperr.ReasonWrongRole, "actor is banned")
	}
	return *a, nil
}

// Current resolves the actor of the request.
func (r *Resolver) Current(c *gin.Context) (actors.Actor, error) {
	return r.Resolve(c.Request.Context(), c.GetUint(ContextKey))
}

// Optional is Current for public routes: failures yield the anonymous actor.
func (r *Resolver) Optional(c *gin.Context) actors.Actor {
	a, err := r.Current(c)
	if err != nil {
		return actors.Actor{}
	}
	return a
}
