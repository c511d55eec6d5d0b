package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Meeting status constants.
const (
	MeetingScheduled = "scheduled"
	MeetingCanceled  = "canceled"
)

// Meeting represents a time-boxed team event. Among scheduled meetings of one
// team, titles are unique (case-insensitive) and the [StartsAt, EndsAt)
// intervals never overlap.
type Meeting struct {
	ID           primitive.ObjectID   `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	TeamID       primitive.ObjectID   `json:"teamId" bson:"teamId" example:"507f1f77bcf86cd799439012"`
	Title        string               `json:"title" bson:"title" example:"Sprint planning"`
	Description  string               `json:"description" bson:"description" example:"Plan the next sprint"`
	StartsAt     time.Time            `json:"startsAt" bson:"startsAt" example:"2024-01-15T10:00:00Z"`
	EndsAt       time.Time            `json:"endsAt" bson:"endsAt" example:"2024-01-15T11:00:00Z"`
	Status       string               `json:"status" bson:"status" example:"scheduled"`
	Participants []primitive.ObjectID `json:"participants" bson:"participants"`
	CreatedAt    time.Time            `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	UpdatedAt    time.Time            `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T09:30:00Z"`
}

// CreateMeetingRequest is the payload for scheduling a meeting.
type CreateMeetingRequest struct {
	Title        string    `json:"title" binding:"required,min=1,max=255" example:"Sprint planning"`
	Description  string    `json:"description" binding:"omitempty" example:"Plan the next sprint"`
	StartsAt     time.Time `json:"startsAt" binding:"required" example:"2024-01-15T10:00:00Z"`
	EndsAt       time.Time `json:"endsAt" binding:"required" example:"2024-01-15T11:00:00Z"`
	Participants []string  `json:"participants" binding:"omitempty"`
}

// UpdateMeetingRequest is the partial-update payload for a meeting.
// Supplying a non-null endsAt forces the meeting status to canceled:
// changing the end time is treated as canceling the booking.
type UpdateMeetingRequest struct {
	Title       *string    `json:"title" binding:"omitempty,min=1,max=255"`
	Description *string    `json:"description" binding:"omitempty"`
	StartsAt    *time.Time `json:"startsAt" binding:"omitempty"`
	EndsAt      *time.Time `json:"endsAt" binding:"omitempty"`
}

// UserMeetingsQuery narrows the requester's meeting listing. The time window
// selects any meeting overlapping [StartsAfter, EndsBefore], not only
// meetings contained in it.
type UserMeetingsQuery struct {
	IncludeCanceled bool       `form:"includeCanceled"`
	StartsAfter     *time.Time `form:"startsAfter" time_format:"2006-01-02T15:04:05Z07:00"`
	EndsBefore      *time.Time `form:"endsBefore" time_format:"2006-01-02T15:04:05Z07:00"`
	Limit           *int       `form:"limit" binding:"omitempty,min=1"`
}

// MeetingListResponse is the response for meeting listings.
type MeetingListResponse struct {
	Items []Meeting `json:"items"`
}
