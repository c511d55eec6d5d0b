package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Evaluation is a single 1-5 rating attached to a completed task. At most one
// evaluation exists per task and it is never updated in place.
type Evaluation struct {
	ID      primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	TaskID  primitive.ObjectID `json:"taskId" bson:"taskId" example:"507f1f77bcf86cd799439012"`
	Value   int                `json:"value" bson:"value" example:"4"`
	RatedAt time.Time          `json:"ratedAt" bson:"ratedAt" example:"2024-01-15T09:30:00Z"`
}

// RateTaskRequest is the payload for rating a completed task.
type RateTaskRequest struct {
	Value int `json:"value" binding:"required,min=1,max=5" example:"4"`
}

// RatingStats is the aggregate rating figure for a team over a period.
// Avg is null when no evaluations fall in the period.
type RatingStats struct {
	Avg   *float64 `json:"avg" example:"4.2"`
	Count int      `json:"count" example:"5"`
}

// TaskRating pairs a done task with its evaluation.
type TaskRating struct {
	Task       Task       `json:"task" bson:"task"`
	Evaluation Evaluation `json:"evaluation" bson:"evaluation"`
}

// UserRatingsResponse lists the evaluated done tasks of one assignee.
type UserRatingsResponse struct {
	Items []TaskRating `json:"items"`
	Avg   *float64     `json:"avg" example:"4.2"`
	Count int          `json:"count" example:"5"`
}
