package main

import (
	"todo-service/internal/handler"
	"todo-service/internal/middleware"
	"todo-service/internal/service"
	"todo-service/internal/store"
	"todo-service/pkg/config"
	"todo-service/pkg/database"
	"todo-service/pkg/jwtutil"
	"todo-service/pkg/logger"
	"todo-service/prometheus"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	// Load configuration from .env file and environment variables
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger with config
	if err := logger.InitLogger(cfg); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	log := logger.GetLogger()
	log.Info("Starting todo service...", cfg.LogConfig()...)

	// Initialize database
	db, err := database.Initialize(cfg)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	log.Info("Database connected and migrated")

	// Wire the core: store, token issuer, services, handlers
	st := store.New(db)
	tokens := jwtutil.NewJWTUtil(&cfg.JWT)

	authService := service.NewAuthService(st, tokens, log)
	companyService := service.NewCompanyService(st, log)
	userService := service.NewUserService(st, log)
	taskService := service.NewTaskService(st, log)

	authHandler := handler.NewAuthHandler(authService)
	companyHandler := handler.NewCompanyHandler(companyService)
	userHandler := handler.NewUserHandler(userService)
	taskHandler := handler.NewTaskHandler(taskService)

	// Initialize Echo framework
	e := echo.New()
	e.HideBanner = true

	// Apply global middleware - order matters
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	e.Use(middleware.RequestID)
	e.Use(logger.Middleware(log))
	e.Use(prometheus.MetricsMiddleware())

	// Public routes - no authentication required
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", handler.Metrics)
	e.POST("/auth/login", authHandler.Login)

	// Everything below requires a verified bearer token
	authRequired := middleware.Auth(authService)

	companies := e.Group("/companies", authRequired)
	companies.GET("/me", companyHandler.GetMine)
	companies.GET("/:company_id", companyHandler.Get)
	companies.POST("", companyHandler.Create)
	companies.PATCH("/:company_id", companyHandler.Update)

	users := e.Group("/users", authRequired)
	users.GET("/me", userHandler.GetMe)
	users.GET("", userHandler.List)
	users.GET("/:user_id", userHandler.Get)
	users.POST("", userHandler.Create)
	users.PATCH("/:user_id", userHandler.Update)
	users.DELETE("/:user_id", userHandler.Delete)

	todos := e.Group("/todos", authRequired)
	todos.GET("", taskHandler.List)
	todos.GET("/:task_id", taskHandler.Get)
	todos.POST("", taskHandler.Create)
	todos.PUT("/:task_id", taskHandler.Update)
	todos.DELETE("/:task_id", taskHandler.Delete)

	// Start server
	log.Info("Starting server", zap.String("port", cfg.Server.Port))
	if err := e.Start(":" + cfg.Server.Port); err != nil {
		log.Fatal("Failed to start server", zap.Error(err))
	}
}
