package calculator

import (
	"go-farmbook/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	computations := r.Group("/computations")
	{
		computations.GET("", middleware.RateLimitByUser(5, 20), handler.GetAll)
		computations.GET("/:id", middleware.RateLimitByUser(5, 20), handler.GetByID)
		computations.GET("/:id/receipt.pdf", middleware.RateLimitByUser(1, 5), handler.DownloadReceipt)
		computations.POST("", middleware.RateLimitByUser(2, 10), handler.Create)
		computations.DELETE("/:id", middleware.RateLimitByUser(0.5, 2), handler.Delete)
	}
}
