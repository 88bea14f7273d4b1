package dashboard

import (
	"go-farmbook/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	dash := r.Group("/dashboard")
	{
		dash.GET("/stats", middleware.RateLimitByUser(5, 20), handler.Stats)
		dash.GET("/weekly", middleware.RateLimitByUser(5, 20), handler.Weekly)
		dash.GET("/daily", middleware.RateLimitByUser(5, 20), handler.Daily)
		dash.GET("/distribution", middleware.RateLimitByUser(5, 20), handler.Distribution)
		dash.GET("/earnings", middleware.RateLimitByUser(2, 10), handler.Earnings)
		dash.GET("/earnings.xlsx", middleware.RateLimitByUser(0.5, 2), handler.ExportEarnings)
	}

	r.GET("/groups/:id/earnings", middleware.RateLimitByUser(2, 10), handler.GroupEarnings)
}
