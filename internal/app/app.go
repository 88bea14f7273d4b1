package app

import (
	"net/http"

	"go-farmbook/internal/bootstrap"
	"go-farmbook/internal/config"
	"go-farmbook/internal/middleware"
	"go-farmbook/internal/shared/connection"
	"go-farmbook/internal/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// /healthz sits outside auth, so it is limited per client IP.
const (
	healthzRate  rate.Limit = 5
	healthzBurst            = 10
)

// BuildApp connects the infrastructure, applies migrations when enabled and
// registers every module on router. Writes under /api/v1 go to audit. The
// returned func releases connections.
func BuildApp(router *gin.Engine, cfg *config.Config, audit bootstrap.AuditLogger) (func(), error) {
	logger := zap.L().Named("app")

	gormDB, err := connection.ConnectGORMWithRetry(cfg.DB.Connection())
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}
	logger.Info("database connection established")

	if cfg.DB.MigrateOnStart {
		if err := storage.RunMigrations(cfg.DB.Connection().URL()); err != nil {
			sqlDB.Close()
			return nil, err
		}
		logger.Info("migrations applied")
	}

	rdb, err := connection.ConnectRedisWithRetry(cfg.Redis.Addr, cfg.Redis.MaxRetries)
	if err != nil {
		sqlDB.Close()
		return nil, err
	}
	logger.Info("redis connection established")

	router.Use(middleware.RequestID())
	registerHealth(router)

	registerModules(router, cfg, sqlDB, gormDB, rdb, audit, zap.L())

	return func() {
		if err := rdb.Close(); err != nil {
			logger.Warn("redis close failed", zap.Error(err))
		}
		if err := sqlDB.Close(); err != nil {
			logger.Warn("database close failed", zap.Error(err))
		}
	}, nil
}

func registerHealth(router gin.IRoutes) {
	router.GET("/healthz", middleware.RateLimitByIP(healthzRate, healthzBurst), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
