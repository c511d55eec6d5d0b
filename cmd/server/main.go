package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"teamtrack/internal/authz"
	"teamtrack/internal/cache"
	"teamtrack/internal/config"
	"teamtrack/internal/database"
	"teamtrack/internal/handler"
	"teamtrack/internal/repository"
	"teamtrack/internal/router"
	"teamtrack/internal/service"
	"teamtrack/internal/validator"
	"teamtrack/pkg/auth"

	"github.com/gin-gonic/gin"
)

// @title           TeamTrack API
// @version         1.0
// @description     A REST API for team, task and meeting management built with Gin, MongoDB, and Redis.

// @contact.name    API Support
// @contact.email   support@example.com

// @host            localhost:8080
// @BasePath        /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter your bearer token in the format: Bearer {token}

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("Configuration loaded")

	// Register custom validators
	validator.RegisterCustomValidators()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Database
	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	// Redis Cache
	redisCache := cache.NewRedis(cfg.RedisURI)
	defer redisCache.Close()

	// JWT Manager
	jwtManager := auth.NewJWTManager(cfg.AccessTokenSecret, cfg.AccessTokenExpiry)

	// Repository layer
	userRepo := repository.NewUserRepository(mongoDB.Database)
	refreshTokenRepo := repository.NewRefreshTokenRepository(mongoDB.Database)
	teamRepo := repository.NewTeamRepository(mongoDB.Database)
	taskRepo := repository.NewTaskRepository(mongoDB.Database)
	taskCommentRepo := repository.NewTaskCommentRepository(mongoDB.Database)
	meetingRepo := repository.NewMeetingRepository(mongoDB.Database)
	evaluationRepo := repository.NewEvaluationRepository(mongoDB.Database)

	// Authorization
	authorizer := authz.NewLocalAuthorizer(userRepo)

	// Service layer
	authService := service.NewAuthService(service.AuthServiceConfig{
		UserRepo:         userRepo,
		RefreshTokenRepo: refreshTokenRepo,
		Cache:            redisCache,
		JWTManager:       jwtManager,
		AccessTokenTTL:   cfg.AccessTokenExpiry,
		RefreshTokenTTL:  cfg.RefreshTokenExpiry,
	})
	userService := service.NewUserService(userRepo, redisCache)
	teamService := service.NewTeamService(teamRepo, userRepo, mongoDB)
	taskService := service.NewTaskService(taskRepo, taskCommentRepo, evaluationRepo, teamRepo, userRepo, mongoDB)
	meetingService := service.NewMeetingService(meetingRepo, teamRepo, userRepo, mongoDB)
	evaluationService := service.NewEvaluationService(evaluationRepo, taskRepo, teamRepo, redisCache, mongoDB)

	// Handler layer
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	teamHandler := handler.NewTeamHandler(teamService)
	taskHandler := handler.NewTaskHandler(taskService)
	meetingHandler := handler.NewMeetingHandler(meetingService)
	evaluationHandler := handler.NewEvaluationHandler(evaluationService)

	// Router
	r := router.Setup(&router.Config{
		AuthHandler:       authHandler,
		UserHandler:       userHandler,
		TeamHandler:       teamHandler,
		TaskHandler:       taskHandler,
		MeetingHandler:    meetingHandler,
		EvaluationHandler: evaluationHandler,
		JWTManager:        jwtManager,
		Authorizer:        authorizer,
	})

	// Create HTTP server for graceful shutdown support
	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	log.Println("Shutdown signal received")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Println("Shutting down HTTP server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	log.Println("Server shutdown complete")
}
