// Package mocks provides mock implementations of service interfaces for testing.
package mocks

import (
	"context"
	"time"

	"teamtrack/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockAuthService is a mock implementation of AuthServicer.
type MockAuthService struct {
	RegisterFunc  func(ctx context.Context, req *models.CreateUserRequest) (*models.AuthResponse, error)
	LoginFunc     func(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	RefreshFunc   func(ctx context.Context, req *models.RefreshRequest) (*models.RefreshResponse, error)
	LogoutFunc    func(ctx context.Context, req *models.LogoutRequest) error
	LogoutAllFunc func(ctx context.Context, userID primitive.ObjectID) error
}

func (m *MockAuthService) Register(ctx context.Context, req *models.CreateUserRequest) (*models.AuthResponse, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAuthService) Refresh(ctx context.Context, req *models.RefreshRequest) (*models.RefreshResponse, error) {
	if m.RefreshFunc != nil {
		return m.RefreshFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAuthService) Logout(ctx context.Context, req *models.LogoutRequest) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, req)
	}
	return nil
}

func (m *MockAuthService) LogoutAll(ctx context.Context, userID primitive.ObjectID) error {
	if m.LogoutAllFunc != nil {
		return m.LogoutAllFunc(ctx, userID)
	}
	return nil
}

// MockUserService is a mock implementation of UserServicer.
type MockUserService struct {
	GetUserFunc     func(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	GetAllUsersFunc func(ctx context.Context) ([]models.User, error)
	UpdateUserFunc  func(ctx context.Context, id primitive.ObjectID, req *models.UpdateUserRequest) (*models.User, error)
	DeleteUserFunc  func(ctx context.Context, id primitive.ObjectID) error
}

func (m *MockUserService) GetUser(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	if m.GetUserFunc != nil {
		return m.GetUserFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	if m.GetAllUsersFunc != nil {
		return m.GetAllUsersFunc(ctx)
	}
	return []models.User{}, nil
}

func (m *MockUserService) UpdateUser(ctx context.Context, id primitive.ObjectID, req *models.UpdateUserRequest) (*models.User, error) {
	if m.UpdateUserFunc != nil {
		return m.UpdateUserFunc(ctx, id, req)
	}
	return nil, nil
}

func (m *MockUserService) DeleteUser(ctx context.Context, id primitive.ObjectID) error {
	if m.DeleteUserFunc != nil {
		return m.DeleteUserFunc(ctx, id)
	}
	return nil
}

// MockTeamService is a mock implementation of TeamServicer.
type MockTeamService struct {
	CreateTeamFunc      func(ctx context.Context, creatorID primitive.ObjectID, req *models.CreateTeamRequest) (*models.TeamRead, error)
	GetTeamFunc         func(ctx context.Context, teamID primitive.ObjectID) (*models.TeamRead, error)
	GetAllTeamsFunc     func(ctx context.Context) ([]models.TeamRead, error)
	UpdateTeamFunc      func(ctx context.Context, teamID primitive.ObjectID, req *models.UpdateTeamRequest) (*models.TeamRead, error)
	DeleteTeamFunc      func(ctx context.Context, teamID primitive.ObjectID) (bool, error)
	ListTeamUsersFunc   func(ctx context.Context, teamID primitive.ObjectID) ([]models.TeamMemberRead, error)
	RemoveTeamUsersFunc func(ctx context.Context, teamID primitive.ObjectID, userIDs []string) (*models.TeamRead, error)
}

func (m *MockTeamService) CreateTeam(ctx context.Context, creatorID primitive.ObjectID, req *models.CreateTeamRequest) (*models.TeamRead, error) {
	if m.CreateTeamFunc != nil {
		return m.CreateTeamFunc(ctx, creatorID, req)
	}
	return nil, nil
}

func (m *MockTeamService) GetTeam(ctx context.Context, teamID primitive.ObjectID) (*models.TeamRead, error) {
	if m.GetTeamFunc != nil {
		return m.GetTeamFunc(ctx, teamID)
	}
	return nil, nil
}

func (m *MockTeamService) GetAllTeams(ctx context.Context) ([]models.TeamRead, error) {
	if m.GetAllTeamsFunc != nil {
		return m.GetAllTeamsFunc(ctx)
	}
	return []models.TeamRead{}, nil
}

func (m *MockTeamService) UpdateTeam(ctx context.Context, teamID primitive.ObjectID, req *models.UpdateTeamRequest) (*models.TeamRead, error) {
	if m.UpdateTeamFunc != nil {
		return m.UpdateTeamFunc(ctx, teamID, req)
	}
	return nil, nil
}

func (m *MockTeamService) DeleteTeam(ctx context.Context, teamID primitive.ObjectID) (bool, error) {
	if m.DeleteTeamFunc != nil {
		return m.DeleteTeamFunc(ctx, teamID)
	}
	return false, nil
}

func (m *MockTeamService) ListTeamUsers(ctx context.Context, teamID primitive.ObjectID) ([]models.TeamMemberRead, error) {
	if m.ListTeamUsersFunc != nil {
		return m.ListTeamUsersFunc(ctx, teamID)
	}
	return []models.TeamMemberRead{}, nil
}

func (m *MockTeamService) RemoveTeamUsers(ctx context.Context, teamID primitive.ObjectID, userIDs []string) (*models.TeamRead, error) {
	if m.RemoveTeamUsersFunc != nil {
		return m.RemoveTeamUsersFunc(ctx, teamID, userIDs)
	}
	return nil, nil
}

// MockTaskService is a mock implementation of TaskServicer.
type MockTaskService struct {
	CreateTaskFunc    func(ctx context.Context, teamID, authorID primitive.ObjectID, req *models.CreateTaskRequest) (*models.Task, error)
	GetTaskFunc       func(ctx context.Context, teamID, taskID primitive.ObjectID) (*models.Task, error)
	ListTeamTasksFunc func(ctx context.Context, teamID primitive.ObjectID) ([]models.Task, error)
	UpdateTaskFunc    func(ctx context.Context, teamID, taskID, actorID primitive.ObjectID, req *models.UpdateTaskRequest) (*models.Task, error)
	DeleteTaskFunc    func(ctx context.Context, teamID, taskID, actorID primitive.ObjectID) error
	AddCommentFunc    func(ctx context.Context, teamID, taskID, authorID primitive.ObjectID, req *models.CreateTaskCommentRequest) (*models.TaskComment, error)
	ListCommentsFunc  func(ctx context.Context, teamID, taskID primitive.ObjectID) ([]models.TaskComment, error)
}

func (m *MockTaskService) CreateTask(ctx context.Context, teamID, authorID primitive.ObjectID, req *models.CreateTaskRequest) (*models.Task, error) {
	if m.CreateTaskFunc != nil {
		return m.CreateTaskFunc(ctx, teamID, authorID, req)
	}
	return nil, nil
}

func (m *MockTaskService) GetTask(ctx context.Context, teamID, taskID primitive.ObjectID) (*models.Task, error) {
	if m.GetTaskFunc != nil {
		return m.GetTaskFunc(ctx, teamID, taskID)
	}
	return nil, nil
}

func (m *MockTaskService) ListTeamTasks(ctx context.Context, teamID primitive.ObjectID) ([]models.Task, error) {
	if m.ListTeamTasksFunc != nil {
		return m.ListTeamTasksFunc(ctx, teamID)
	}
	return []models.Task{}, nil
}

func (m *MockTaskService) UpdateTask(ctx context.Context, teamID, taskID, actorID primitive.ObjectID, req *models.UpdateTaskRequest) (*models.Task, error) {
	if m.UpdateTaskFunc != nil {
		return m.UpdateTaskFunc(ctx, teamID, taskID, actorID, req)
	}
	return nil, nil
}

func (m *MockTaskService) DeleteTask(ctx context.Context, teamID, taskID, actorID primitive.ObjectID) error {
	if m.DeleteTaskFunc != nil {
		return m.DeleteTaskFunc(ctx, teamID, taskID, actorID)
	}
	return nil
}

func (m *MockTaskService) AddComment(ctx context.Context, teamID, taskID, authorID primitive.ObjectID, req *models.CreateTaskCommentRequest) (*models.TaskComment, error) {
	if m.AddCommentFunc != nil {
		return m.AddCommentFunc(ctx, teamID, taskID, authorID, req)
	}
	return nil, nil
}

func (m *MockTaskService) ListComments(ctx context.Context, teamID, taskID primitive.ObjectID) ([]models.TaskComment, error) {
	if m.ListCommentsFunc != nil {
		return m.ListCommentsFunc(ctx, teamID, taskID)
	}
	return []models.TaskComment{}, nil
}

// MockMeetingService is a mock implementation of MeetingServicer.
type MockMeetingService struct {
	CreateMeetingFunc     func(ctx context.Context, teamID primitive.ObjectID, req *models.CreateMeetingRequest) (*models.Meeting, error)
	GetMeetingFunc        func(ctx context.Context, meetingID primitive.ObjectID) (*models.Meeting, error)
	UpdateMeetingFunc     func(ctx context.Context, meetingID primitive.ObjectID, req *models.UpdateMeetingRequest) (*models.Meeting, error)
	DeleteMeetingFunc     func(ctx context.Context, meetingID primitive.ObjectID) error
	GetMeetingsByDateFunc func(ctx context.Context, teamID primitive.ObjectID, cutoff time.Time) ([]models.Meeting, error)
	GetUserMeetingsFunc   func(ctx context.Context, userID primitive.ObjectID, query *models.UserMeetingsQuery) ([]models.Meeting, error)
	GetTeamMeetingsFunc   func(ctx context.Context, teamID primitive.ObjectID) ([]models.Meeting, error)
}

func (m *MockMeetingService) CreateMeeting(ctx context.Context, teamID primitive.ObjectID, req *models.CreateMeetingRequest) (*models.Meeting, error) {
	if m.CreateMeetingFunc != nil {
		return m.CreateMeetingFunc(ctx, teamID, req)
	}
	return nil, nil
}

func (m *MockMeetingService) GetMeeting(ctx context.Context, meetingID primitive.ObjectID) (*models.Meeting, error) {
	if m.GetMeetingFunc != nil {
		return m.GetMeetingFunc(ctx, meetingID)
	}
	return nil, nil
}

func (m *MockMeetingService) UpdateMeeting(ctx context.Context, meetingID primitive.ObjectID, req *models.UpdateMeetingRequest) (*models.Meeting, error) {
	if m.UpdateMeetingFunc != nil {
		return m.UpdateMeetingFunc(ctx, meetingID, req)
	}
	return nil, nil
}

func (m *MockMeetingService) DeleteMeeting(ctx context.Context, meetingID primitive.ObjectID) error {
	if m.DeleteMeetingFunc != nil {
		return m.DeleteMeetingFunc(ctx, meetingID)
	}
	return nil
}

func (m *MockMeetingService) GetMeetingsByDate(ctx context.Context, teamID primitive.ObjectID, cutoff time.Time) ([]models.Meeting, error) {
	if m.GetMeetingsByDateFunc != nil {
		return m.GetMeetingsByDateFunc(ctx, teamID, cutoff)
	}
	return []models.Meeting{}, nil
}

func (m *MockMeetingService) GetUserMeetings(ctx context.Context, userID primitive.ObjectID, query *models.UserMeetingsQuery) ([]models.Meeting, error) {
	if m.GetUserMeetingsFunc != nil {
		return m.GetUserMeetingsFunc(ctx, userID, query)
	}
	return []models.Meeting{}, nil
}

func (m *MockMeetingService) GetTeamMeetings(ctx context.Context, teamID primitive.ObjectID) ([]models.Meeting, error) {
	if m.GetTeamMeetingsFunc != nil {
		return m.GetTeamMeetingsFunc(ctx, teamID)
	}
	return []models.Meeting{}, nil
}

// MockEvaluationService is a mock implementation of EvaluationServicer.
type MockEvaluationService struct {
	RateTaskFunc              func(ctx context.Context, teamID, taskID primitive.ObjectID, req *models.RateTaskRequest) (*models.Evaluation, error)
	GetAvgRatingForPeriodFunc func(ctx context.Context, teamID primitive.ObjectID, from, to time.Time) (*models.RatingStats, error)
	ListUserRatingsFunc       func(ctx context.Context, teamID, userID primitive.ObjectID) (*models.UserRatingsResponse, error)
	GetTaskRatingFunc         func(ctx context.Context, teamID, taskID primitive.ObjectID) (*models.Evaluation, error)
}

func (m *MockEvaluationService) RateTask(ctx context.Context, teamID, taskID primitive.ObjectID, req *models.RateTaskRequest) (*models.Evaluation, error) {
	if m.RateTaskFunc != nil {
		return m.RateTaskFunc(ctx, teamID, taskID, req)
	}
	return nil, nil
}

func (m *MockEvaluationService) GetAvgRatingForPeriod(ctx context.Context, teamID primitive.ObjectID, from, to time.Time) (*models.RatingStats, error) {
	if m.GetAvgRatingForPeriodFunc != nil {
		return m.GetAvgRatingForPeriodFunc(ctx, teamID, from, to)
	}
	return &models.RatingStats{}, nil
}

func (m *MockEvaluationService) ListUserRatings(ctx context.Context, teamID, userID primitive.ObjectID) (*models.UserRatingsResponse, error) {
	if m.ListUserRatingsFunc != nil {
		return m.ListUserRatingsFunc(ctx, teamID, userID)
	}
	return &models.UserRatingsResponse{Items: []models.TaskRating{}}, nil
}

func (m *MockEvaluationService) GetTaskRating(ctx context.Context, teamID, taskID primitive.ObjectID) (*models.Evaluation, error) {
	if m.GetTaskRatingFunc != nil {
		return m.GetTaskRatingFunc(ctx, teamID, taskID)
	}
	return nil, nil
}
