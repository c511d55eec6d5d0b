package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Task status constants.
const (
	StatusOpen       = "open"
	StatusInProgress = "in_progress"
	StatusDone       = "done"
)

// Task represents a unit of work owned by its author. The name is unique
// per team, case-insensitive.
type Task struct {
	ID          primitive.ObjectID  `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	TeamID      primitive.ObjectID  `json:"teamId" bson:"teamId" example:"507f1f77bcf86cd799439012"`
	AuthorID    primitive.ObjectID  `json:"authorId" bson:"authorId" example:"507f1f77bcf86cd799439013"`
	AssigneeID  *primitive.ObjectID `json:"assigneeId,omitempty" bson:"assigneeId,omitempty" example:"507f1f77bcf86cd799439014"`
	Name        string              `json:"name" bson:"name" example:"Fix bug"`
	Description string              `json:"description" bson:"description" example:"Crash on empty roster"`
	DeadlineAt  *time.Time          `json:"deadlineAt,omitempty" bson:"deadlineAt,omitempty"`
	Status      string              `json:"status" bson:"status" example:"open"`
	CreatedAt   time.Time           `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	UpdatedAt   time.Time           `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T09:30:00Z"`
}

// TaskComment represents a comment attached to a task. Comments are deleted
// together with their task.
type TaskComment struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439015"`
	TaskID    primitive.ObjectID `json:"taskId" bson:"taskId" example:"507f1f77bcf86cd799439011"`
	AuthorID  primitive.ObjectID `json:"authorId" bson:"authorId" example:"507f1f77bcf86cd799439013"`
	Body      string             `json:"body" bson:"body" example:"Looks good to me"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T09:30:00Z"`
}

// CreateTaskRequest is the payload for creating a task.
type CreateTaskRequest struct {
	Name        string     `json:"name" binding:"required,min=1,max=255" example:"Fix bug"`
	Description string     `json:"description" binding:"omitempty" example:"Crash on empty roster"`
	DeadlineAt  *time.Time `json:"deadlineAt" binding:"omitempty"`
	AssigneeID  *string    `json:"assigneeId" binding:"omitempty" example:"507f1f77bcf86cd799439014"`
}

// UpdateTaskRequest is the partial-update payload for a task. Only fields
// explicitly supplied are merged; everything else on the task is untouched.
type UpdateTaskRequest struct {
	Name        *string    `json:"name" binding:"omitempty,min=1,max=255" example:"Fix bug v2"`
	Description *string    `json:"description" binding:"omitempty"`
	DeadlineAt  *time.Time `json:"deadlineAt" binding:"omitempty"`
	AssigneeID  *string    `json:"assigneeId" binding:"omitempty"`
	Status      *string    `json:"status" binding:"omitempty,oneof=open in_progress done" example:"in_progress"`
}

// CreateTaskCommentRequest is the payload for commenting on a task.
type CreateTaskCommentRequest struct {
	Body string `json:"body" binding:"required,min=1" example:"Looks good to me"`
}

// TaskListResponse is the response for listing a team's tasks.
type TaskListResponse struct {
	Items []Task `json:"items"`
}
