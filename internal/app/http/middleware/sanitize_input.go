package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
)

// SanitizeAndCleanInputMiddleware strips markup from every string of a JSON
// body, nested values included.
func SanitizeAndCleanInputMiddleware() gin.HandlerFunc {
	policy := bluemonday.StrictPolicy()

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost &&
			c.Request.Method != http.MethodPut &&
			c.Request.Method != http.MethodPatch {
			c.Next()
			return
		}

		buf, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid body"})
			return
		}
		if len(bytes.TrimSpace(buf)) == 0 {
			c.Request.Body = io.NopCloser(bytes.NewReader(buf))
			c.Next()
			return
		}

		var body interface{}
		if err := json.Unmarshal(buf, &body); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Malformed JSON"})
			return
		}

		newBody, _ := json.Marshal(sanitize(policy, body))
		c.Request.Body = io.NopCloser(bytes.NewBuffer(newBody))
		c.Request.ContentLength = int64(len(newBody))

		c.Next()
	}
}

func sanitize(policy *bluemonday.Policy, v interface{}) interface{} {
	switch t := v.(type) {
	case string:
		return policy.Sanitize(t)
	case map[string]interface{}:
		for k, inner := range t {
			t[k] = sanitize(policy, inner)
		}
		return t
	case []interface{}:
		for i, inner := range t {
			t[i] = sanitize(policy, inner)
		}
		return t
	default:
		return v
	}
}
