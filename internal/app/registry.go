package app

import (
	"github.com/abi765/payvault-app/internal/auth"
	"github.com/abi765/payvault-app/internal/config"
	"github.com/abi765/payvault-app/internal/employee"
	"github.com/abi765/payvault-app/internal/messaging/kafka"
	"github.com/abi765/payvault-app/internal/middleware"
	"github.com/abi765/payvault-app/internal/salary"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
	cfg config.Config,
) error {
	db, err := gormDB.DB()
	if err != nil {
		return err
	}

	// --- Repositories ---
	authRepo := auth.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	salaryRepo := salary.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Services ---
	authService := auth.NewService(authRepo, auth.TokenConfig{
		Secret: cfg.JWTSecret,
		TTL:    cfg.AccessTokenTTL,
	})
	employeeService := employee.NewService(db, employeeRepo)
	salaryService := salary.NewServiceWithOutbox(db, salaryRepo, employeeRepo, outboxRepo)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	employeeHandler := employee.NewHandler(employeeService)
	salaryHandler := salary.NewHandlerWithRedis(salaryService, rdb)

	// --- Routes ---
	router.Use(middleware.RequestID())

	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, cfg.JWTSecret)
		employee.RegisterRoutes(api, employeeHandler, cfg.JWTSecret)
		salary.RegisterRoutes(api, salaryHandler, cfg.JWTSecret, rdb)
	}

	return nil
}
