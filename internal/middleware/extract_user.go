package middleware

import (
	"net/http"

	"go-farmbook/internal/shared/apperror"
	"go-farmbook/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// RequireFarm rejects requests that reach a farm scoped route without a farm.
func RequireFarm() gin.HandlerFunc {
	return func(c *gin.Context) {
		farmID, exists := c.Get(ContextFarmID)
		if !exists {
			response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "Farm is not selected", nil)
			c.Abort()
			return
		}

		if s, ok := farmID.(string); !ok || s == "" {
			response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "Invalid farm id", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
