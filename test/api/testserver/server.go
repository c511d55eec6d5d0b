//go:build api

// Package testserver provides a fully wired test server for API integration tests.
package testserver

import (
	"context"
	"time"

	"teamtrack/internal/authz"
	"teamtrack/internal/cache"
	"teamtrack/internal/database"
	"teamtrack/internal/handler"
	"teamtrack/internal/repository"
	"teamtrack/internal/router"
	"teamtrack/internal/service"
	"teamtrack/internal/validator"
	"teamtrack/pkg/auth"
	"teamtrack/test/api/testdb"

	"github.com/gin-gonic/gin"
)

const (
	// TestAccessTokenSecret is the JWT secret used in tests.
	TestAccessTokenSecret = "test-secret-key-for-api-tests"
	// TestAccessTokenExpiry is the access token expiry time used in tests.
	TestAccessTokenExpiry = 15 * time.Minute
	// TestRefreshTokenExpiry is the refresh token expiry time used in tests.
	TestRefreshTokenExpiry = 7 * 24 * time.Hour
	// TestDBName is the database name used in tests.
	TestDBName = "test_api"
)

// TestServer holds all dependencies for API integration tests.
type TestServer struct {
	// Router is the Gin engine for making HTTP requests.
	Router *gin.Engine

	// Containers
	MongoDB *testdb.MongoContainer
	Redis   *testdb.RedisContainer

	// DB is the application-side Mongo handle; it also serves as the
	// transaction boundary for the services.
	DB *database.MongoDB

	// Cache is the application-side Redis handle.
	Cache *cache.Redis

	// Repositories (for direct database access in tests)
	UserRepo         repository.UserRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	TeamRepo         repository.TeamRepository
	TaskRepo         repository.TaskRepository
	TaskCommentRepo  repository.TaskCommentRepository
	MeetingRepo      repository.MeetingRepository
	EvaluationRepo   repository.EvaluationRepository

	// Services (for direct service access in tests)
	AuthService       service.AuthServicer
	UserService       service.UserServicer
	TeamService       service.TeamServicer
	TaskService       service.TaskServicer
	MeetingService    service.MeetingServicer
	EvaluationService service.EvaluationServicer

	// JWTManager issues and validates access tokens.
	JWTManager *auth.JWTManager
}

// New starts the backing containers and wires the full application stack
// the same way cmd/server does.
func New(ctx context.Context) (*TestServer, error) {
	gin.SetMode(gin.TestMode)
	validator.RegisterCustomValidators()

	mongoContainer, err := testdb.SetupMongoDB(ctx, TestDBName)
	if err != nil {
		return nil, err
	}

	redisContainer, err := testdb.SetupRedis(ctx)
	if err != nil {
		_ = mongoContainer.Cleanup(ctx)
		return nil, err
	}

	db := database.NewMongoDB(mongoContainer.URI, TestDBName)
	redisCache := cache.NewRedis(redisContainer.URI)

	jwtManager := auth.NewJWTManager(TestAccessTokenSecret, TestAccessTokenExpiry)

	userRepo := repository.NewUserRepository(db.Database)
	refreshTokenRepo := repository.NewRefreshTokenRepository(db.Database)
	teamRepo := repository.NewTeamRepository(db.Database)
	taskRepo := repository.NewTaskRepository(db.Database)
	taskCommentRepo := repository.NewTaskCommentRepository(db.Database)
	meetingRepo := repository.NewMeetingRepository(db.Database)
	evaluationRepo := repository.NewEvaluationRepository(db.Database)

	authorizer := authz.NewLocalAuthorizer(userRepo)

	authService := service.NewAuthService(service.AuthServiceConfig{
		UserRepo:         userRepo,
		RefreshTokenRepo: refreshTokenRepo,
		Cache:            redisCache,
		JWTManager:       jwtManager,
		AccessTokenTTL:   TestAccessTokenExpiry,
		RefreshTokenTTL:  TestRefreshTokenExpiry,
	})
	userService := service.NewUserService(userRepo, redisCache)
	teamService := service.NewTeamService(teamRepo, userRepo, db)
	taskService := service.NewTaskService(taskRepo, taskCommentRepo, evaluationRepo, teamRepo, userRepo, db)
	meetingService := service.NewMeetingService(meetingRepo, teamRepo, userRepo, db)
	evaluationService := service.NewEvaluationService(evaluationRepo, taskRepo, teamRepo, redisCache, db)

	r := router.Setup(&router.Config{
		AuthHandler:       handler.NewAuthHandler(authService),
		UserHandler:       handler.NewUserHandler(userService),
		TeamHandler:       handler.NewTeamHandler(teamService),
		TaskHandler:       handler.NewTaskHandler(taskService),
		MeetingHandler:    handler.NewMeetingHandler(meetingService),
		EvaluationHandler: handler.NewEvaluationHandler(evaluationService),
		JWTManager:        jwtManager,
		Authorizer:        authorizer,
	})

	return &TestServer{
		Router:            r,
		MongoDB:           mongoContainer,
		Redis:             redisContainer,
		DB:                db,
		Cache:             redisCache,
		UserRepo:          userRepo,
		RefreshTokenRepo:  refreshTokenRepo,
		TeamRepo:          teamRepo,
		TaskRepo:          taskRepo,
		TaskCommentRepo:   taskCommentRepo,
		MeetingRepo:       meetingRepo,
		EvaluationRepo:    evaluationRepo,
		AuthService:       authService,
		UserService:       userService,
		TeamService:       teamService,
		TaskService:       taskService,
		MeetingService:    meetingService,
		EvaluationService: evaluationService,
		JWTManager:        jwtManager,
	}, nil
}

// Cleanup stops the containers and closes the application handles.
func (ts *TestServer) Cleanup(ctx context.Context) {
	if ts.Cache != nil {
		ts.Cache.Close()
	}
	if ts.DB != nil {
		ts.DB.Close()
	}
	if ts.Redis != nil {
		_ = ts.Redis.Cleanup(ctx)
	}
	if ts.MongoDB != nil {
		_ = ts.MongoDB.Cleanup(ctx)
	}
}
