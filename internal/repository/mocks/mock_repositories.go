// Package mocks provides mock implementations of repository interfaces for testing.
package mocks

import (
	"context"
	"time"

	"teamtrack/internal/models"
	"teamtrack/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockTransactor runs the callback directly, without a session.
type MockTransactor struct {
	WithTransactionFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *MockTransactor) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.WithTransactionFunc != nil {
		return m.WithTransactionFunc(ctx, fn)
	}
	return fn(ctx)
}

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	CreateFunc        func(ctx context.Context, user *models.User) error
	FindByIDFunc      func(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmailFunc   func(ctx context.Context, email string) (*models.User, error)
	FindByIDsFunc     func(ctx context.Context, ids []primitive.ObjectID) ([]models.User, error)
	FindByTeamIDFunc  func(ctx context.Context, teamID primitive.ObjectID) ([]models.User, error)
	FindAllFunc       func(ctx context.Context) ([]models.User, error)
	UpdateFunc        func(ctx context.Context, id primitive.ObjectID, update *models.UpdateUserRequest) (*models.User, error)
	SetMembershipFunc func(ctx context.Context, userID primitive.ObjectID, teamID *primitive.ObjectID, role string) error
	UnlinkTeamFunc    func(ctx context.Context, teamID primitive.ObjectID) error
	DeleteFunc        func(ctx context.Context, id primitive.ObjectID) error
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *MockUserRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.User, error) {
	if m.FindByIDsFunc != nil {
		return m.FindByIDsFunc(ctx, ids)
	}
	return []models.User{}, nil
}

func (m *MockUserRepository) FindByTeamID(ctx context.Context, teamID primitive.ObjectID) ([]models.User, error) {
	if m.FindByTeamIDFunc != nil {
		return m.FindByTeamIDFunc(ctx, teamID)
	}
	return []models.User{}, nil
}

func (m *MockUserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return []models.User{}, nil
}

func (m *MockUserRepository) Update(ctx context.Context, id primitive.ObjectID, update *models.UpdateUserRequest) (*models.User, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, update)
	}
	return nil, nil
}

func (m *MockUserRepository) SetMembership(ctx context.Context, userID primitive.ObjectID, teamID *primitive.ObjectID, role string) error {
	if m.SetMembershipFunc != nil {
		return m.SetMembershipFunc(ctx, userID, teamID, role)
	}
	return nil
}

func (m *MockUserRepository) UnlinkTeam(ctx context.Context, teamID primitive.ObjectID) error {
	if m.UnlinkTeamFunc != nil {
		return m.UnlinkTeamFunc(ctx, teamID)
	}
	return nil
}

func (m *MockUserRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockTeamRepository is a mock implementation of TeamRepository.
type MockTeamRepository struct {
	CreateFunc     func(ctx context.Context, team *models.Team) error
	FindByIDFunc   func(ctx context.Context, id primitive.ObjectID) (*models.Team, error)
	FindByNameFunc func(ctx context.Context, name string) (*models.Team, error)
	FindAllFunc    func(ctx context.Context) ([]models.Team, error)
	UpdateFunc     func(ctx context.Context, team *models.Team) error
	DeleteFunc     func(ctx context.Context, id primitive.ObjectID) error
}

func (m *MockTeamRepository) Create(ctx context.Context, team *models.Team) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, team)
	}
	return nil
}

func (m *MockTeamRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Team, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockTeamRepository) FindByName(ctx context.Context, name string) (*models.Team, error) {
	if m.FindByNameFunc != nil {
		return m.FindByNameFunc(ctx, name)
	}
	return nil, nil
}

func (m *MockTeamRepository) FindAll(ctx context.Context) ([]models.Team, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return []models.Team{}, nil
}

func (m *MockTeamRepository) Update(ctx context.Context, team *models.Team) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, team)
	}
	return nil
}

func (m *MockTeamRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockTaskRepository is a mock implementation of TaskRepository.
type MockTaskRepository struct {
	CreateFunc          func(ctx context.Context, task *models.Task) error
	FindByTeamAndIDFunc func(ctx context.Context, teamID, taskID primitive.ObjectID) (*models.Task, error)
	FindByTeamIDFunc    func(ctx context.Context, teamID primitive.ObjectID) ([]models.Task, error)
	NameExistsFunc      func(ctx context.Context, teamID primitive.ObjectID, name string, excludeID *primitive.ObjectID) (bool, error)
	UpdateFunc          func(ctx context.Context, task *models.Task) error
	DeleteFunc          func(ctx context.Context, teamID, taskID primitive.ObjectID) error
}

func (m *MockTaskRepository) Create(ctx context.Context, task *models.Task) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, task)
	}
	return nil
}

func (m *MockTaskRepository) FindByTeamAndID(ctx context.Context, teamID, taskID primitive.ObjectID) (*models.Task, error) {
	if m.FindByTeamAndIDFunc != nil {
		return m.FindByTeamAndIDFunc(ctx, teamID, taskID)
	}
	return nil, nil
}

func (m *MockTaskRepository) FindByTeamID(ctx context.Context, teamID primitive.ObjectID) ([]models.Task, error) {
	if m.FindByTeamIDFunc != nil {
		return m.FindByTeamIDFunc(ctx, teamID)
	}
	return []models.Task{}, nil
}

func (m *MockTaskRepository) NameExists(ctx context.Context, teamID primitive.ObjectID, name string, excludeID *primitive.ObjectID) (bool, error) {
	if m.NameExistsFunc != nil {
		return m.NameExistsFunc(ctx, teamID, name, excludeID)
	}
	return false, nil
}

func (m *MockTaskRepository) Update(ctx context.Context, task *models.Task) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, task)
	}
	return nil
}

func (m *MockTaskRepository) Delete(ctx context.Context, teamID, taskID primitive.ObjectID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, teamID, taskID)
	}
	return nil
}

// MockTaskCommentRepository is a mock implementation of TaskCommentRepository.
type MockTaskCommentRepository struct {
	CreateFunc            func(ctx context.Context, comment *models.TaskComment) error
	FindByTaskIDFunc      func(ctx context.Context, taskID primitive.ObjectID) ([]models.TaskComment, error)
	DeleteAllByTaskIDFunc func(ctx context.Context, taskID primitive.ObjectID) error
}

func (m *MockTaskCommentRepository) Create(ctx context.Context, comment *models.TaskComment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, comment)
	}
	return nil
}

func (m *MockTaskCommentRepository) FindByTaskID(ctx context.Context, taskID primitive.ObjectID) ([]models.TaskComment, error) {
	if m.FindByTaskIDFunc != nil {
		return m.FindByTaskIDFunc(ctx, taskID)
	}
	return []models.TaskComment{}, nil
}

func (m *MockTaskCommentRepository) DeleteAllByTaskID(ctx context.Context, taskID primitive.ObjectID) error {
	if m.DeleteAllByTaskIDFunc != nil {
		return m.DeleteAllByTaskIDFunc(ctx, taskID)
	}
	return nil
}

// MockMeetingRepository is a mock implementation of MeetingRepository.
type MockMeetingRepository struct {
	CreateFunc           func(ctx context.Context, meeting *models.Meeting) error
	FindByIDFunc         func(ctx context.Context, id primitive.ObjectID) (*models.Meeting, error)
	HasOverlapFunc       func(ctx context.Context, teamID primitive.ObjectID, startsAt, endsAt time.Time, excludeID *primitive.ObjectID) (bool, error)
	TitleExistsFunc      func(ctx context.Context, teamID primitive.ObjectID, title string, excludeID *primitive.ObjectID) (bool, error)
	UpdateFunc           func(ctx context.Context, meeting *models.Meeting) error
	DeleteFunc           func(ctx context.Context, id primitive.ObjectID) error
	FindByDateFunc       func(ctx context.Context, teamID primitive.ObjectID, cutoff, now time.Time) ([]models.Meeting, error)
	FindUserMeetingsFunc func(ctx context.Context, filter repository.UserMeetingsFilter) ([]models.Meeting, error)
	FindByTeamIDFunc     func(ctx context.Context, teamID primitive.ObjectID) ([]models.Meeting, error)
}

func (m *MockMeetingRepository) Create(ctx context.Context, meeting *models.Meeting) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, meeting)
	}
	return nil
}

func (m *MockMeetingRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Meeting, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockMeetingRepository) HasOverlap(ctx context.Context, teamID primitive.ObjectID, startsAt, endsAt time.Time, excludeID *primitive.ObjectID) (bool, error) {
	if m.HasOverlapFunc != nil {
		return m.HasOverlapFunc(ctx, teamID, startsAt, endsAt, excludeID)
	}
	return false, nil
}

func (m *MockMeetingRepository) TitleExists(ctx context.Context, teamID primitive.ObjectID, title string, excludeID *primitive.ObjectID) (bool, error) {
	if m.TitleExistsFunc != nil {
		return m.TitleExistsFunc(ctx, teamID, title, excludeID)
	}
	return false, nil
}

func (m *MockMeetingRepository) Update(ctx context.Context, meeting *models.Meeting) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, meeting)
	}
	return nil
}

func (m *MockMeetingRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockMeetingRepository) FindByDate(ctx context.Context, teamID primitive.ObjectID, cutoff, now time.Time) ([]models.Meeting, error) {
	if m.FindByDateFunc != nil {
		return m.FindByDateFunc(ctx, teamID, cutoff, now)
	}
	return []models.Meeting{}, nil
}

func (m *MockMeetingRepository) FindUserMeetings(ctx context.Context, filter repository.UserMeetingsFilter) ([]models.Meeting, error) {
	if m.FindUserMeetingsFunc != nil {
		return m.FindUserMeetingsFunc(ctx, filter)
	}
	return []models.Meeting{}, nil
}

func (m *MockMeetingRepository) FindByTeamID(ctx context.Context, teamID primitive.ObjectID) ([]models.Meeting, error) {
	if m.FindByTeamIDFunc != nil {
		return m.FindByTeamIDFunc(ctx, teamID)
	}
	return []models.Meeting{}, nil
}

// MockEvaluationRepository is a mock implementation of EvaluationRepository.
type MockEvaluationRepository struct {
	CreateFunc          func(ctx context.Context, evaluation *models.Evaluation) error
	FindByTaskIDFunc    func(ctx context.Context, taskID primitive.ObjectID) (*models.Evaluation, error)
	DeleteByTaskIDFunc  func(ctx context.Context, taskID primitive.ObjectID) error
	AvgForPeriodFunc    func(ctx context.Context, teamID primitive.ObjectID, from, to time.Time) (*models.RatingStats, error)
	ListUserRatingsFunc func(ctx context.Context, teamID, assigneeID primitive.ObjectID) ([]models.TaskRating, error)
}

func (m *MockEvaluationRepository) Create(ctx context.Context, evaluation *models.Evaluation) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, evaluation)
	}
	return nil
}

func (m *MockEvaluationRepository) FindByTaskID(ctx context.Context, taskID primitive.ObjectID) (*models.Evaluation, error) {
	if m.FindByTaskIDFunc != nil {
		return m.FindByTaskIDFunc(ctx, taskID)
	}
	return nil, nil
}

func (m *MockEvaluationRepository) DeleteByTaskID(ctx context.Context, taskID primitive.ObjectID) error {
	if m.DeleteByTaskIDFunc != nil {
		return m.DeleteByTaskIDFunc(ctx, taskID)
	}
	return nil
}

func (m *MockEvaluationRepository) AvgForPeriod(ctx context.Context, teamID primitive.ObjectID, from, to time.Time) (*models.RatingStats, error) {
	if m.AvgForPeriodFunc != nil {
		return m.AvgForPeriodFunc(ctx, teamID, from, to)
	}
	return &models.RatingStats{}, nil
}

func (m *MockEvaluationRepository) ListUserRatings(ctx context.Context, teamID, assigneeID primitive.ObjectID) ([]models.TaskRating, error) {
	if m.ListUserRatingsFunc != nil {
		return m.ListUserRatingsFunc(ctx, teamID, assigneeID)
	}
	return []models.TaskRating{}, nil
}

// MockRefreshTokenRepository is a mock implementation of RefreshTokenRepository.
type MockRefreshTokenRepository struct {
	CreateFunc         func(ctx context.Context, token *models.RefreshToken) error
	FindByTokenFunc    func(ctx context.Context, token string) (*models.RefreshToken, error)
	DeleteByTokenFunc  func(ctx context.Context, token string) error
	DeleteByUserIDFunc func(ctx context.Context, userID primitive.ObjectID) error
}

func (m *MockRefreshTokenRepository) Create(ctx context.Context, token *models.RefreshToken) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, token)
	}
	return nil
}

func (m *MockRefreshTokenRepository) FindByToken(ctx context.Context, token string) (*models.RefreshToken, error) {
	if m.FindByTokenFunc != nil {
		return m.FindByTokenFunc(ctx, token)
	}
	return nil, nil
}

func (m *MockRefreshTokenRepository) DeleteByToken(ctx context.Context, token string) error {
	if m.DeleteByTokenFunc != nil {
		return m.DeleteByTokenFunc(ctx, token)
	}
	return nil
}

func (m *MockRefreshTokenRepository) DeleteByUserID(ctx context.Context, userID primitive.ObjectID) error {
	if m.DeleteByUserIDFunc != nil {
		return m.DeleteByUserIDFunc(ctx, userID)
	}
	return nil
}
