package expense

import (
	"go-farmbook/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	expenses := r.Group("/expenses")
	{
		expenses.GET("", middleware.RateLimitByUser(5, 20), handler.GetAll)
		expenses.GET("/:id", middleware.RateLimitByUser(5, 20), handler.GetByID)
		expenses.POST("", middleware.RateLimitByUser(1, 5), handler.Create)
		expenses.PUT("/:id", middleware.RateLimitByUser(1, 5), handler.Update)
		expenses.DELETE("/:id", middleware.RateLimitByUser(0.5, 2), handler.Delete)
	}
}
