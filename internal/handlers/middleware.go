package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	headerUsername = "x-koala-username"
	headerKey      = "x-koala-key"
)

// RequireAuth resolves the koala credential headers to a user before any
// handler body runs. Rejection is always a bare 403, whether the username
// is unknown, the key is wrong, or the headers are missing entirely.
func (h *Handler) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.GetHeader(headerUsername)
		apiKey := c.GetHeader(headerKey)

		user := h.accountService.Authenticate(username, apiKey)
		if user == nil {
			c.JSON(http.StatusForbidden, gin.H{"error": "invalid username or API key"})
			c.Abort()
			return
		}

		c.Set("user_id", user.ID)
		c.Next()
	}
}

// RequestID tags every request so its log lines can be correlated.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}
