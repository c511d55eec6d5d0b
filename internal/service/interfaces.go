// Package service contains business logic for the application.
package service

import (
	"context"
	"time"

	"teamtrack/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthServicer defines the interface for authentication operations.
type AuthServicer interface {
	Register(ctx context.Context, req *models.CreateUserRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	Refresh(ctx context.Context, req *models.RefreshRequest) (*models.RefreshResponse, error)
	Logout(ctx context.Context, req *models.LogoutRequest) error
	LogoutAll(ctx context.Context, userID primitive.ObjectID) error
}

// UserServicer defines the interface for user operations.
type UserServicer interface {
	GetUser(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, id primitive.ObjectID, req *models.UpdateUserRequest) (*models.User, error)
	DeleteUser(ctx context.Context, id primitive.ObjectID) error
}

// TeamServicer defines the interface for team operations.
type TeamServicer interface {
	CreateTeam(ctx context.Context, creatorID primitive.ObjectID, req *models.CreateTeamRequest) (*models.TeamRead, error)
	GetTeam(ctx context.Context, teamID primitive.ObjectID) (*models.TeamRead, error)
	GetAllTeams(ctx context.Context) ([]models.TeamRead, error)
	UpdateTeam(ctx context.Context, teamID primitive.ObjectID, req *models.UpdateTeamRequest) (*models.TeamRead, error)
	// DeleteTeam reports whether a team was actually deleted. Deleting a
	// missing team is not an error.
	DeleteTeam(ctx context.Context, teamID primitive.ObjectID) (bool, error)
	ListTeamUsers(ctx context.Context, teamID primitive.ObjectID) ([]models.TeamMemberRead, error)
	RemoveTeamUsers(ctx context.Context, teamID primitive.ObjectID, userIDs []string) (*models.TeamRead, error)
}

// TaskServicer defines the interface for task operations.
type TaskServicer interface {
	CreateTask(ctx context.Context, teamID, authorID primitive.ObjectID, req *models.CreateTaskRequest) (*models.Task, error)
	GetTask(ctx context.Context, teamID, taskID primitive.ObjectID) (*models.Task, error)
	ListTeamTasks(ctx context.Context, teamID primitive.ObjectID) ([]models.Task, error)
	UpdateTask(ctx context.Context, teamID, taskID, actorID primitive.ObjectID, req *models.UpdateTaskRequest) (*models.Task, error)
	DeleteTask(ctx context.Context, teamID, taskID, actorID primitive.ObjectID) error
	AddComment(ctx context.Context, teamID, taskID, authorID primitive.ObjectID, req *models.CreateTaskCommentRequest) (*models.TaskComment, error)
	ListComments(ctx context.Context, teamID, taskID primitive.ObjectID) ([]models.TaskComment, error)
}

// MeetingServicer defines the interface for meeting operations.
type MeetingServicer interface {
	CreateMeeting(ctx context.Context, teamID primitive.ObjectID, req *models.CreateMeetingRequest) (*models.Meeting, error)
	GetMeeting(ctx context.Context, meetingID primitive.ObjectID) (*models.Meeting, error)
	UpdateMeeting(ctx context.Context, meetingID primitive.ObjectID, req *models.UpdateMeetingRequest) (*models.Meeting, error)
	DeleteMeeting(ctx context.Context, meetingID primitive.ObjectID) error
	GetMeetingsByDate(ctx context.Context, teamID primitive.ObjectID, cutoff time.Time) ([]models.Meeting, error)
	GetUserMeetings(ctx context.Context, userID primitive.ObjectID, query *models.UserMeetingsQuery) ([]models.Meeting, error)
	GetTeamMeetings(ctx context.Context, teamID primitive.ObjectID) ([]models.Meeting, error)
}

// EvaluationServicer defines the interface for task rating operations.
type EvaluationServicer interface {
	RateTask(ctx context.Context, teamID, taskID primitive.ObjectID, req *models.RateTaskRequest) (*models.Evaluation, error)
	GetAvgRatingForPeriod(ctx context.Context, teamID primitive.ObjectID, from, to time.Time) (*models.RatingStats, error)
	ListUserRatings(ctx context.Context, teamID, userID primitive.ObjectID) (*models.UserRatingsResponse, error)
	GetTaskRating(ctx context.Context, teamID, taskID primitive.ObjectID) (*models.Evaluation, error)
}

// Ensure concrete types implement interfaces
var (
	_ AuthServicer       = (*AuthService)(nil)
	_ UserServicer       = (*UserService)(nil)
	_ TeamServicer       = (*TeamService)(nil)
	_ TaskServicer       = (*TaskService)(nil)
	_ MeetingServicer    = (*MeetingService)(nil)
	_ EvaluationServicer = (*EvaluationService)(nil)
)
