package middleware

import (
	"net/http"

	"personal-trainer-app/internal/app/principal"
	"personal-trainer-app/internal/apperr"
	"personal-trainer-app/internal/domain/actors"

	"github.com/gin-gonic/gin"
)

const actorKey = "actor"

// RequireActor loads the authenticated actor once per request. Tokens of
// removed or banned actors stop here even though they are still valid.
func RequireActor(resolver *principal.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, err := resolver.Current(c)
		if err != nil {
			if apperr.KindOf(err) == apperr.KindAuthorization {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied"})
				return
			}
			_ = c.Error(err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to load account"})
			return
		}
		c.Set(actorKey, actor)
		c.Next()
	}
}

// Actor returns what RequireActor stored, or the anonymous actor.
func Actor(c *gin.Context) actors.Actor {
	if v, ok := c.Get(actorKey); ok {
		if a, ok := v.(actors.Actor); ok {
			return a
		}
	}
	return actors.Actor{}
}

// SetActor is used by tests to bypass token handling.
func SetActor(c *gin.Context, a actors.Actor) {
	c.Set(actorKey, a)
}
