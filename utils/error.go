package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse is the JSON body of every non-GraphQL error reply.
type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ErrorHandler recovers from panics in downstream handlers. The panic value
// is logged server-side only; the client gets a generic message.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				GetLogger().Error("request handler panicked", zap.Any("panic", r))
				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Message: "internal server error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// JSONError logs and sends a structured error reply.
func JSONError(c *gin.Context, status int, message string, details string) {
	GetLogger().Warn(message, zap.String("details", details))
	c.JSON(status, ErrorResponse{Message: message, Details: details})
}
