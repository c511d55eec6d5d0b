// Package fixtures provides test data builders for unit and integration tests.
package fixtures

import (
	"fmt"
	"time"

	"teamtrack/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ===== User Fixtures =====

// UserBuilder provides a fluent API for building test users.
type UserBuilder struct {
	user models.User
}

// NewUser creates a new UserBuilder with sensible defaults.
func NewUser() *UserBuilder {
	return &UserBuilder{
		user: models.User{
			ID:        primitive.NewObjectID(),
			Name:      "Test User",
			Email:     fmt.Sprintf("test-%s@example.com", primitive.NewObjectID().Hex()[:8]),
			Password:  "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy", // "password123" hashed
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	}
}

func (b *UserBuilder) WithID(id primitive.ObjectID) *UserBuilder {
	b.user.ID = id
	return b
}

func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.user.Name = name
	return b
}

func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.user.Email = email
	return b
}

func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.user.Password = password
	return b
}

// Superuser marks the user as a superuser.
func (b *UserBuilder) Superuser() *UserBuilder {
	b.user.IsSuperuser = true
	return b
}

// InTeam attaches the user to a team with a role.
func (b *UserBuilder) InTeam(teamID primitive.ObjectID, role string) *UserBuilder {
	b.user.TeamID = &teamID
	b.user.RoleInTeam = role
	return b
}

func (b *UserBuilder) AsAdmin(teamID primitive.ObjectID) *UserBuilder {
	return b.InTeam(teamID, models.RoleAdmin)
}

func (b *UserBuilder) AsManager(teamID primitive.ObjectID) *UserBuilder {
	return b.InTeam(teamID, models.RoleManager)
}

func (b *UserBuilder) AsEmployee(teamID primitive.ObjectID) *UserBuilder {
	return b.InTeam(teamID, models.RoleEmployee)
}

func (b *UserBuilder) Build() models.User {
	return b.user
}

func (b *UserBuilder) BuildPtr() *models.User {
	return &b.user
}

// ===== Team Fixtures =====

// TeamBuilder provides a fluent API for building test teams.
type TeamBuilder struct {
	team models.Team
}

// NewTeam creates a new TeamBuilder with sensible defaults. The team starts
// without an owner; use WithOwnerID when the owner rules matter.
func NewTeam() *TeamBuilder {
	return &TeamBuilder{
		team: models.Team{
			ID:        primitive.NewObjectID(),
			Name:      fmt.Sprintf("Test Team %s", primitive.NewObjectID().Hex()[:8]),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	}
}

func (b *TeamBuilder) WithID(id primitive.ObjectID) *TeamBuilder {
	b.team.ID = id
	return b
}

func (b *TeamBuilder) WithName(name string) *TeamBuilder {
	b.team.Name = name
	return b
}

func (b *TeamBuilder) WithOwnerID(ownerID primitive.ObjectID) *TeamBuilder {
	b.team.OwnerID = &ownerID
	return b
}

func (b *TeamBuilder) Build() models.Team {
	return b.team
}

func (b *TeamBuilder) BuildPtr() *models.Team {
	return &b.team
}

// ===== Task Fixtures =====

// TaskBuilder provides a fluent API for building test tasks.
type TaskBuilder struct {
	task models.Task
}

// NewTask creates a new TaskBuilder with sensible defaults: an open task in a
// fresh team, authored by a fresh user.
func NewTask() *TaskBuilder {
	return &TaskBuilder{
		task: models.Task{
			ID:          primitive.NewObjectID(),
			TeamID:      primitive.NewObjectID(),
			AuthorID:    primitive.NewObjectID(),
			Name:        fmt.Sprintf("Test Task %s", primitive.NewObjectID().Hex()[:8]),
			Description: "A test task",
			Status:      models.StatusOpen,
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		},
	}
}

func (b *TaskBuilder) WithID(id primitive.ObjectID) *TaskBuilder {
	b.task.ID = id
	return b
}

func (b *TaskBuilder) WithTeamID(teamID primitive.ObjectID) *TaskBuilder {
	b.task.TeamID = teamID
	return b
}

func (b *TaskBuilder) WithAuthorID(authorID primitive.ObjectID) *TaskBuilder {
	b.task.AuthorID = authorID
	return b
}

func (b *TaskBuilder) WithAssigneeID(assigneeID primitive.ObjectID) *TaskBuilder {
	b.task.AssigneeID = &assigneeID
	return b
}

func (b *TaskBuilder) WithName(name string) *TaskBuilder {
	b.task.Name = name
	return b
}

func (b *TaskBuilder) WithDeadline(deadline time.Time) *TaskBuilder {
	b.task.DeadlineAt = &deadline
	return b
}

func (b *TaskBuilder) InProgress() *TaskBuilder {
	b.task.Status = models.StatusInProgress
	return b
}

func (b *TaskBuilder) Done() *TaskBuilder {
	b.task.Status = models.StatusDone
	return b
}

func (b *TaskBuilder) Build() models.Task {
	return b.task
}

func (b *TaskBuilder) BuildPtr() *models.Task {
	return &b.task
}

// ===== Meeting Fixtures =====

// MeetingBuilder provides a fluent API for building test meetings.
type MeetingBuilder struct {
	meeting models.Meeting
}

// NewMeeting creates a new MeetingBuilder: a scheduled one-hour meeting
// starting a day from now.
func NewMeeting() *MeetingBuilder {
	startsAt := time.Now().Add(24 * time.Hour).Truncate(time.Minute)
	return &MeetingBuilder{
		meeting: models.Meeting{
			ID:        primitive.NewObjectID(),
			TeamID:    primitive.NewObjectID(),
			Title:     fmt.Sprintf("Test Meeting %s", primitive.NewObjectID().Hex()[:8]),
			StartsAt:  startsAt,
			EndsAt:    startsAt.Add(time.Hour),
			Status:    models.MeetingScheduled,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	}
}

func (b *MeetingBuilder) WithID(id primitive.ObjectID) *MeetingBuilder {
	b.meeting.ID = id
	return b
}

func (b *MeetingBuilder) WithTeamID(teamID primitive.ObjectID) *MeetingBuilder {
	b.meeting.TeamID = teamID
	return b
}

func (b *MeetingBuilder) WithTitle(title string) *MeetingBuilder {
	b.meeting.Title = title
	return b
}

// WithWindow sets the meeting interval.
func (b *MeetingBuilder) WithWindow(startsAt, endsAt time.Time) *MeetingBuilder {
	b.meeting.StartsAt = startsAt
	b.meeting.EndsAt = endsAt
	return b
}

func (b *MeetingBuilder) WithParticipants(ids ...primitive.ObjectID) *MeetingBuilder {
	b.meeting.Participants = ids
	return b
}

func (b *MeetingBuilder) Canceled() *MeetingBuilder {
	b.meeting.Status = models.MeetingCanceled
	return b
}

func (b *MeetingBuilder) Build() models.Meeting {
	return b.meeting
}

func (b *MeetingBuilder) BuildPtr() *models.Meeting {
	return &b.meeting
}

// ===== Evaluation Fixtures =====

// EvaluationBuilder provides a fluent API for building test evaluations.
type EvaluationBuilder struct {
	evaluation models.Evaluation
}

// NewEvaluation creates a new EvaluationBuilder with a mid-scale rating.
func NewEvaluation() *EvaluationBuilder {
	return &EvaluationBuilder{
		evaluation: models.Evaluation{
			ID:      primitive.NewObjectID(),
			TaskID:  primitive.NewObjectID(),
			Value:   3,
			RatedAt: time.Now().UTC().Truncate(time.Minute),
		},
	}
}

func (b *EvaluationBuilder) WithID(id primitive.ObjectID) *EvaluationBuilder {
	b.evaluation.ID = id
	return b
}

func (b *EvaluationBuilder) WithTaskID(taskID primitive.ObjectID) *EvaluationBuilder {
	b.evaluation.TaskID = taskID
	return b
}

func (b *EvaluationBuilder) WithValue(value int) *EvaluationBuilder {
	b.evaluation.Value = value
	return b
}

func (b *EvaluationBuilder) RatedAt(ratedAt time.Time) *EvaluationBuilder {
	b.evaluation.RatedAt = ratedAt
	return b
}

func (b *EvaluationBuilder) Build() models.Evaluation {
	return b.evaluation
}

func (b *EvaluationBuilder) BuildPtr() *models.Evaluation {
	return &b.evaluation
}

// ===== RefreshToken Fixtures =====

// RefreshTokenBuilder provides a fluent API for building test refresh tokens.
type RefreshTokenBuilder struct {
	token models.RefreshToken
}

// NewRefreshToken creates a new RefreshTokenBuilder with sensible defaults.
func NewRefreshToken() *RefreshTokenBuilder {
	return &RefreshTokenBuilder{
		token: models.RefreshToken{
			ID:        primitive.NewObjectID(),
			Token:     fmt.Sprintf("rf_%s", primitive.NewObjectID().Hex()),
			UserID:    primitive.NewObjectID(),
			ExpiresAt: time.Now().Add(7 * 24 * time.Hour),
			CreatedAt: time.Now(),
		},
	}
}

func (b *RefreshTokenBuilder) WithID(id primitive.ObjectID) *RefreshTokenBuilder {
	b.token.ID = id
	return b
}

func (b *RefreshTokenBuilder) WithToken(token string) *RefreshTokenBuilder {
	b.token.Token = token
	return b
}

func (b *RefreshTokenBuilder) WithUserID(userID primitive.ObjectID) *RefreshTokenBuilder {
	b.token.UserID = userID
	return b
}

func (b *RefreshTokenBuilder) Expired() *RefreshTokenBuilder {
	b.token.ExpiresAt = time.Now().Add(-24 * time.Hour)
	return b
}

func (b *RefreshTokenBuilder) Build() models.RefreshToken {
	return b.token
}

func (b *RefreshTokenBuilder) BuildPtr() *models.RefreshToken {
	return &b.token
}
