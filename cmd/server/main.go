package main

import (
	"log"
	"net/http"

	_ "jobdock/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"jobdock/internal/auth"
	"jobdock/internal/cache"
	"jobdock/internal/config"
	"jobdock/internal/db"
	"jobdock/internal/handler"
	"jobdock/internal/model"
	"jobdock/internal/repository"
	"jobdock/internal/router"
	"jobdock/internal/service"
)

// @title Jobdock API
// @version 1.0
// @description Account and saved-job API with JWT authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Migrations create the unique indexes the duplicate checks rely on.
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.SavedJob{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	savedJobRepo := repository.NewSavedJobRepository(gormDB)

	// Initialize services
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	accountService := service.NewAccountService(userRepo, jwtService, cacheClient)
	savedJobService := service.NewSavedJobService(savedJobRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(accountService)
	userHandler := handler.NewUserHandler(accountService)
	savedJobHandler := handler.NewSavedJobHandler(savedJobService)

	// Register routes
	router.Register(e, cfg, authHandler, userHandler, savedJobHandler)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
