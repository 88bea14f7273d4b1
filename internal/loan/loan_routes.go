package loan

import (
	"go-farmbook/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rdb ...*redis.Client) {
	var redisClient *redis.Client
	if len(rdb) > 0 {
		redisClient = rdb[0]
	}
	idempotent := middleware.Idempotency(redisClient, zap.L())

	loans := r.Group("/loans")
	{
		loans.GET("", middleware.RateLimitByUser(5, 20), handler.GetAll)
		loans.GET("/:id", middleware.RateLimitByUser(5, 20), handler.GetByID)
		loans.POST("", middleware.RateLimitByUser(1, 5), handler.Create)
		loans.POST("/:id/payments", middleware.RateLimitByUser(1, 5), idempotent, handler.AddPayment)
		loans.POST("/:id/usages", middleware.RateLimitByUser(1, 5), handler.AddUsage)
		loans.POST("/:id/renew", middleware.RateLimitByUser(0.5, 2), idempotent, handler.Renew)
		loans.DELETE("/:id", middleware.RateLimitByUser(0.5, 2), handler.Delete)
	}
}
