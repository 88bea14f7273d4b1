package group

import (
	"go-farmbook/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	groups := r.Group("/groups")
	{
		groups.GET("", middleware.RateLimitByUser(5, 20), handler.GetAll)
		groups.GET("/:id", middleware.RateLimitByUser(5, 20), handler.GetByID)
		groups.POST("", middleware.RateLimitByUser(1, 5), handler.Create)
		groups.PUT("/:id", middleware.RateLimitByUser(1, 5), handler.Update)
		groups.DELETE("/:id", middleware.RateLimitByUser(0.5, 2), handler.Delete)
	}
}
