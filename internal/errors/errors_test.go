package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"ErrUserNotFound", ErrUserNotFound, "user not found"},
		{"ErrUsersNotFound", ErrUsersNotFound, "users not found"},
		{"ErrUserAlreadyExists", ErrUserAlreadyExists, "user with this email already exists"},
		{"ErrInvalidCredentials", ErrInvalidCredentials, "invalid email or password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestAuthErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"ErrUnauthorized", ErrUnauthorized, "unauthorized"},
		{"ErrInvalidToken", ErrInvalidToken, "invalid token"},
		{"ErrTokenExpired", ErrTokenExpired, "token expired"},
		{"ErrInvalidRefreshToken", ErrInvalidRefreshToken, "invalid or expired refresh token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestTeamErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"ErrTeamNotFound", ErrTeamNotFound, "team not found"},
		{"ErrTeamNameTaken", ErrTeamNameTaken, "team name is already taken"},
		{"ErrUsersInOtherTeam", ErrUsersInOtherTeam, "users already in another team"},
		{"ErrNotTeamMember", ErrNotTeamMember, "user is not a member of this team"},
		{"ErrCannotRemoveOwner", ErrCannotRemoveOwner, "cannot remove the team owner"},
		{"ErrLastAdminRemoval", ErrLastAdminRemoval, "team must keep at least one admin"},
		{"ErrAdminOnly", ErrAdminOnly, "only team admins or superusers may do this"},
		{"ErrForbiddenForRole", ErrForbiddenForRole, "forbidden for employees"},
		{"ErrInvalidRole", ErrInvalidRole, "invalid role, must be admin, manager or employee"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestTaskErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"ErrTaskNotFound", ErrTaskNotFound, "task not found"},
		{"ErrTaskNameTaken", ErrTaskNameTaken, "task name already exists in this team"},
		{"ErrNotTaskAuthor", ErrNotTaskAuthor, "only the author can modify this task"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestMeetingErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"ErrMeetingNotFound", ErrMeetingNotFound, "meeting not found"},
		{"ErrMeetingTitleTaken", ErrMeetingTitleTaken, "meeting title already used by a scheduled meeting in this team"},
		{"ErrMeetingOverlap", ErrMeetingOverlap, "meeting overlaps with an existing scheduled meeting"},
		{"ErrInvalidTimeRange", ErrInvalidTimeRange, "ends_at must be after starts_at"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestEvaluationErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"ErrTaskNotDone", ErrTaskNotDone, "task must be done to be rated"},
		{"ErrTaskAlreadyRated", ErrTaskAlreadyRated, "task already rated"},
		{"ErrInvalidRating", ErrInvalidRating, "rating must be between 1 and 5"},
		{"ErrInvalidDateRange", ErrInvalidDateRange, "date_from must not be after date_to"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestErrorsAreDistinct(t *testing.T) {
	all := []error{
		// User errors
		ErrUserNotFound,
		ErrUsersNotFound,
		ErrUserAlreadyExists,
		ErrInvalidCredentials,

		// Auth errors
		ErrUnauthorized,
		ErrInvalidToken,
		ErrTokenExpired,
		ErrInvalidRefreshToken,

		// Team errors
		ErrTeamNotFound,
		ErrTeamNameTaken,
		ErrUsersInOtherTeam,
		ErrNotTeamMember,
		ErrCannotRemoveOwner,
		ErrLastAdminRemoval,
		ErrAdminOnly,
		ErrForbiddenForRole,
		ErrInvalidRole,

		// Task errors
		ErrTaskNotFound,
		ErrTaskNameTaken,
		ErrNotTaskAuthor,

		// Meeting errors
		ErrMeetingNotFound,
		ErrMeetingTitleTaken,
		ErrMeetingOverlap,
		ErrInvalidTimeRange,

		// Evaluation errors
		ErrTaskNotDone,
		ErrTaskAlreadyRated,
		ErrInvalidRating,
		ErrInvalidDateRange,
	}

	for i, a := range all {
		for j, b := range all {
			if i == j {
				continue
			}
			assert.False(t, errors.Is(a, b), "%v should not match %v", a, b)
		}
	}
}
