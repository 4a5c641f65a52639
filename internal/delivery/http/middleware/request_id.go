package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestID tags every request with a fresh id, echoed in the response
// header and the JSON envelope for log correlation.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		c.Set("RequestID", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}
