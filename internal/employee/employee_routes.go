package employee

import (
	"go-farmbook/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	employees := r.Group("/employees")
	{
		employees.GET("", middleware.RateLimitByUser(5, 20), handler.GetAll)
		employees.GET("/:id", middleware.RateLimitByUser(5, 20), handler.GetByID)
		employees.POST("", middleware.RateLimitByUser(1, 5), handler.Create)
		employees.PUT("/:id", middleware.RateLimitByUser(1, 5), handler.Update)
		employees.DELETE("/:id", middleware.RateLimitByUser(0.5, 2), handler.Delete)
	}
}
