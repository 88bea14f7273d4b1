package debt

import (
	"go-farmbook/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	debts := r.Group("/debts")
	{
		debts.GET("", middleware.RateLimitByUser(5, 20), handler.GetAll)
		debts.GET("/unpaid-total", middleware.RateLimitByUser(5, 20), handler.UnpaidTotal)
		debts.GET("/:id", middleware.RateLimitByUser(5, 20), handler.GetByID)
		debts.POST("", middleware.RateLimitByUser(1, 5), handler.Create)
		debts.PUT("/:id/paid", middleware.RateLimitByUser(1, 5), handler.SetPaid)
		debts.DELETE("/:id", middleware.RateLimitByUser(0.5, 2), handler.Delete)
	}
}
