package respond

import (
	"errors"
	"net/http"
	"strconv"

	"personal-trainer-app/internal/apperr"

	"github.com/gin-gonic/gin"
)

func statusOf(k apperr.Kind) int {
	switch k {
	case apperr.KindValidation:
		return http.StatusBadRequest
	case apperr.KindAuthorization:
		return http.StatusForbidden
	case apperr.KindState:
		return http.StatusConflict
	case apperr.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Error writes err as {"error", "reason"}. Errors outside the apperr taxonomy
// are attached to the context for the request logger and answered with a 500
// that reveals nothing.
func Error(c *gin.Context, err error) {
	var e *apperr.Error
	if errors.As(err, &e) {
		msg := e.Message
		if msg == "" {
			msg = e.Reason
		}
		c.AbortWithStatusJSON(statusOf(e.Kind), gin.H{"error": msg, "reason": e.Reason})
		return
	}
	_ = c.Error(err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}

// BadRequest answers a request that could not be bound.
func BadRequest(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": msg, "reason": apperr.ReasonMissingField})
}

// ID parses a positive numeric path parameter.
func ID(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || v == 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name, "reason": apperr.ReasonMissingField})
		return 0, false
	}
	return uint(v), true
}
