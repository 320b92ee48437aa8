package api

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hrdesk/hr-api/internal/api/handler"
	"github.com/hrdesk/hr-api/internal/api/middleware"
	"github.com/hrdesk/hr-api/internal/core/service"
	"github.com/hrdesk/hr-api/internal/core/token"
	mongodb "github.com/hrdesk/hr-api/internal/infrastructure/db/mongo"
	redisdb "github.com/hrdesk/hr-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// Only POST /api/login is public; the resource routes sit behind the auth
// filter.
func NewRouter(db *mongo.Database, rdb *redis.Client, tokens *token.Service, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	employeeRepo := mongodb.NewEmployeeRepository(db)
	exists := mongodb.NewExistenceChecker(db)
	cache := redisdb.NewRecordCache(rdb)

	authService := service.NewAuthService(userRepo, tokens, log)
	userService := service.NewUserService(userRepo, exists, cache, log)
	employeeService := service.NewEmployeeService(employeeRepo, exists, cache, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	employeeHandler := handler.NewEmployeeHandler(employeeService)

	// --- Public routes ---
	e.POST("/api/login", authHandler.Login)

	// --- Protected resource routes ---
	protected := e.Group("/api", middleware.Auth(tokens))

	protected.GET("/employees", employeeHandler.List)
	protected.POST("/employees", employeeHandler.Create)
	protected.GET("/employees/:id", employeeHandler.Get)
	protected.PUT("/employees/:id", employeeHandler.Update)
	protected.DELETE("/employees/:id", employeeHandler.Delete)

	protected.GET("/users", userHandler.List)
	protected.POST("/users", userHandler.Create)
	protected.GET("/users/:id", userHandler.Get)
	protected.PUT("/users/:id", userHandler.Update)
	protected.DELETE("/users/:id", userHandler.Delete)

	// --- Observability (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}
