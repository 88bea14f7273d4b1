package travel

import (
	"go-farmbook/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	travels := r.Group("/travels")
	{
		travels.GET("", middleware.RateLimitByUser(5, 20), handler.GetAll)
		travels.GET("/:id", middleware.RateLimitByUser(5, 20), handler.GetByID)
		travels.POST("", middleware.RateLimitByUser(2, 10), handler.Create)
		travels.PUT("/:id", middleware.RateLimitByUser(1, 5), handler.Update)
		travels.DELETE("/:id", middleware.RateLimitByUser(0.5, 2), handler.Delete)
	}
}
