// Package errors provides custom error types for the application.
package errors

import "errors"

// User errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUsersNotFound      = errors.New("users not found")
	ErrUserAlreadyExists  = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Auth errors
var (
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidToken        = errors.New("invalid token")
	ErrTokenExpired        = errors.New("token expired")
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
)

// Team errors
var (
	ErrTeamNotFound      = errors.New("team not found")
	ErrTeamNameTaken     = errors.New("team name is already taken")
	ErrUsersInOtherTeam  = errors.New("users already in another team")
	ErrNotTeamMember     = errors.New("user is not a member of this team")
	ErrCannotRemoveOwner = errors.New("cannot remove the team owner")
	ErrLastAdminRemoval  = errors.New("team must keep at least one admin")
	ErrAdminOnly         = errors.New("only team admins or superusers may do this")
	ErrForbiddenForRole  = errors.New("forbidden for employees")
	ErrInvalidRole       = errors.New("invalid role, must be admin, manager or employee")
)

// Task errors
var (
	ErrTaskNotFound  = errors.New("task not found")
	ErrTaskNameTaken = errors.New("task name already exists in this team")
	ErrNotTaskAuthor = errors.New("only the author can modify this task")
)

// Meeting errors
var (
	ErrMeetingNotFound   = errors.New("meeting not found")
	ErrMeetingTitleTaken = errors.New("meeting title already used by a scheduled meeting in this team")
	ErrMeetingOverlap    = errors.New("meeting overlaps with an existing scheduled meeting")
	ErrInvalidTimeRange  = errors.New("ends_at must be after starts_at")
)

// Evaluation errors
var (
	ErrTaskNotDone      = errors.New("task must be done to be rated")
	ErrTaskAlreadyRated = errors.New("task already rated")
	ErrInvalidRating    = errors.New("rating must be between 1 and 5")
	ErrInvalidDateRange = errors.New("date_from must not be after date_to")
)
