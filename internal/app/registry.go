package app

import (
	"database/sql"

	"go-farmbook/internal/bootstrap"
	"go-farmbook/internal/calculator"
	"go-farmbook/internal/config"
	"go-farmbook/internal/dashboard"
	"go-farmbook/internal/debt"
	"go-farmbook/internal/driver"
	"go-farmbook/internal/employee"
	"go-farmbook/internal/expense"
	"go-farmbook/internal/group"
	"go-farmbook/internal/loan"
	"go-farmbook/internal/messaging/kafka"
	"go-farmbook/internal/middleware"
	"go-farmbook/internal/shared/counter"
	"go-farmbook/internal/travel"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	cfg *config.Config,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	audit bootstrap.AuditLogger,
	logger *zap.Logger,
) {
	// --- Repositories ---
	employeeRepo := employee.NewRepository(gormDB)
	groupRepo := group.NewRepository(gormDB)
	driverRepo := driver.NewRepository(gormDB)
	travelRepo := travel.NewRepository(gormDB)
	debtRepo := debt.NewRepository(gormDB)
	expenseRepo := expense.NewRepository(gormDB)
	loanRepo := loan.NewRepository(gormDB)
	calculatorRepo := calculator.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Services ---
	employeeService := employee.NewService(db, employeeRepo, outboxRepo, logger)
	groupService := group.NewService(db, groupRepo, outboxRepo, logger)
	driverService := driver.NewService(db, driverRepo, outboxRepo, logger)
	travelService := travel.NewService(
		db,
		travelRepo,
		travel.NewReferences(groupRepo, driverRepo, employeeRepo),
		outboxRepo,
		logger,
	)
	debtService := debt.NewService(db, debtRepo, outboxRepo, logger)
	expenseService := expense.NewService(db, expenseRepo, outboxRepo, logger)
	loanService := loan.NewService(db, loanRepo, expenseService, outboxRepo, logger)
	calculatorService := calculator.NewService(db, calculatorRepo, counterRepo, outboxRepo, logger)
	dashboardService := dashboard.NewService(
		dashboard.NewSnapshotSource(employeeRepo, groupRepo, driverRepo, travelRepo, debtRepo),
		rdb,
		cfg.Dashboard.CacheTTL,
		logger,
	)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	api.Use(
		middleware.AuthMiddleware(cfg.JWT.Secret),
		middleware.RequireFarm(),
		middleware.ContextLogger(logger),
		bootstrap.AuditMutations(audit),
	)
	{
		employee.RegisterRoutes(api, employee.NewHandler(employeeService, logger))
		group.RegisterRoutes(api, group.NewHandler(groupService, logger))
		driver.RegisterRoutes(api, driver.NewHandler(driverService, logger))
		travel.RegisterRoutes(api, travel.NewHandler(travelService, logger))
		debt.RegisterRoutes(api, debt.NewHandler(debtService, logger))
		expense.RegisterRoutes(api, expense.NewHandler(expenseService, logger))
		loan.RegisterRoutes(api, loan.NewHandler(loanService, logger), rdb)
		calculator.RegisterRoutes(api, calculator.NewHandler(calculatorService, logger))
		dashboard.RegisterRoutes(api, dashboard.NewHandler(dashboardService, logger))
	}
}
