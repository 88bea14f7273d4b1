package driver

import (
	"go-farmbook/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	drivers := r.Group("/drivers")
	{
		drivers.GET("", middleware.RateLimitByUser(5, 20), handler.GetAll)
		drivers.GET("/:id", middleware.RateLimitByUser(5, 20), handler.GetByID)
		drivers.POST("", middleware.RateLimitByUser(1, 5), handler.Create)
		drivers.PUT("/:id", middleware.RateLimitByUser(1, 5), handler.Update)
		drivers.DELETE("/:id", middleware.RateLimitByUser(0.5, 2), handler.Delete)
	}
}
