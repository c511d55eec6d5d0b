// Package router sets up HTTP routes for the API.
package router

import (
	"net/http"

	_ "teamtrack/swagger" // Import generated swagger docs

	"teamtrack/internal/authz"
	"teamtrack/internal/handler"
	"teamtrack/internal/middleware"
	"teamtrack/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Config holds all dependencies needed to set up routes.
type Config struct {
	AuthHandler       *handler.AuthHandler
	UserHandler       *handler.UserHandler
	TeamHandler       *handler.TeamHandler
	TaskHandler       *handler.TaskHandler
	MeetingHandler    *handler.MeetingHandler
	EvaluationHandler *handler.EvaluationHandler
	JWTManager        auth.TokenManager
	Authorizer        authz.Authorizer
}

// Setup creates and configures the Gin router.
func Setup(cfg *Config) *gin.Engine {
	r := gin.Default()

	// Global middleware
	r.Use(middleware.CORS())

	// Swagger docs at /docs
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		authRoutes := v1.Group("/auth")
		{
			authRoutes.POST("/register", cfg.AuthHandler.Register)
			authRoutes.POST("/login", cfg.AuthHandler.Login)
			authRoutes.POST("/refresh", cfg.AuthHandler.Refresh)
		}

		// Auth routes (protected)
		authProtected := v1.Group("/auth")
		authProtected.Use(middleware.Auth(cfg.JWTManager))
		{
			authProtected.POST("/logout", cfg.AuthHandler.Logout)
		}

		// User routes (protected)
		users := v1.Group("/users")
		users.Use(middleware.Auth(cfg.JWTManager))
		{
			users.GET("", cfg.UserHandler.GetAllUsers)
			users.GET("/:id", cfg.UserHandler.GetUser)
			users.PUT("/:id", cfg.UserHandler.UpdateUser)
			users.DELETE("/:id", cfg.UserHandler.DeleteUser)
		}

		// Team routes (protected; mutations require a team admin)
		team := v1.Group("/team")
		team.Use(middleware.Auth(cfg.JWTManager))
		{
			team.POST("", middleware.RequireTeamAdmin(cfg.Authorizer), cfg.TeamHandler.CreateTeam)
			team.GET("", cfg.TeamHandler.GetAllTeams)

			teamWithID := team.Group("/:teamId")
			{
				teamWithID.GET("", cfg.TeamHandler.GetTeam)
				teamWithID.PATCH("", middleware.RequireTeamAdmin(cfg.Authorizer), cfg.TeamHandler.UpdateTeam)
				teamWithID.DELETE("", middleware.RequireTeamAdmin(cfg.Authorizer), cfg.TeamHandler.DeleteTeam)
				teamWithID.GET("/users", cfg.TeamHandler.ListTeamUsers)
				teamWithID.DELETE("/users", middleware.RequireTeamAdmin(cfg.Authorizer), cfg.TeamHandler.RemoveTeamUsers)
			}
		}

		// Task routes (protected; mutations forbidden for employees)
		tasks := v1.Group("/teams/:teamId/tasks")
		tasks.Use(middleware.Auth(cfg.JWTManager))
		{
			tasks.POST("", middleware.ForbidEmployeeOnTasks(cfg.Authorizer), cfg.TaskHandler.CreateTask)
			tasks.GET("", cfg.TaskHandler.ListTeamTasks)

			// Rating aggregates live under a distinct prefix to keep the
			// taskId wildcard unambiguous.
			ratings := tasks.Group("/ratings")
			{
				ratings.GET("/avg", cfg.EvaluationHandler.GetAvgRating)
				ratings.GET("/user/:userId", cfg.EvaluationHandler.ListUserRatings)
			}

			taskWithID := tasks.Group("/:taskId")
			{
				taskWithID.GET("", cfg.TaskHandler.GetTask)
				taskWithID.PATCH("", middleware.ForbidEmployeeOnTasks(cfg.Authorizer), cfg.TaskHandler.UpdateTask)
				taskWithID.DELETE("", middleware.ForbidEmployeeOnTasks(cfg.Authorizer), cfg.TaskHandler.DeleteTask)
				taskWithID.POST("/comments", cfg.TaskHandler.AddComment)
				taskWithID.GET("/comments", cfg.TaskHandler.ListComments)
				taskWithID.POST("/rate", middleware.RequireTaskRater(cfg.Authorizer), cfg.EvaluationHandler.RateTask)
				taskWithID.GET("/rate", cfg.EvaluationHandler.GetTaskRating)
			}
		}

		// Meeting routes (protected; mutations forbidden for employees)
		meetings := v1.Group("/meetings")
		meetings.Use(middleware.Auth(cfg.JWTManager))
		{
			meetings.POST("", middleware.ForbidEmployeeOnMeetings(cfg.Authorizer), cfg.MeetingHandler.CreateMeeting)
			meetings.GET("/by-date", cfg.MeetingHandler.GetMeetingsByDate)
			meetings.GET("/my", cfg.MeetingHandler.GetUserMeetings)
			meetings.GET("/team", cfg.MeetingHandler.GetTeamMeetings)
			meetings.GET("/:meetingId", cfg.MeetingHandler.GetMeeting)
			meetings.PATCH("/:meetingId", middleware.ForbidEmployeeOnMeetings(cfg.Authorizer), cfg.MeetingHandler.UpdateMeeting)
			meetings.DELETE("/:meetingId", middleware.ForbidEmployeeOnMeetings(cfg.Authorizer), cfg.MeetingHandler.DeleteMeeting)
		}
	}

	return r
}
