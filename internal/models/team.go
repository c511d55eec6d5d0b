package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Team represents a team in the system. The roster is not embedded here: it
// lives on the users collection as the teamId/roleInTeam pair.
type Team struct {
	ID        primitive.ObjectID  `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	Name      string              `json:"name" bson:"name" example:"Platform"`
	OwnerID   *primitive.ObjectID `json:"ownerId,omitempty" bson:"ownerId,omitempty" example:"507f1f77bcf86cd799439012"`
	CreatedAt time.Time           `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	UpdatedAt time.Time           `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T09:30:00Z"`
}

// TeamMemberIn references a user to add or update in a team roster.
type TeamMemberIn struct {
	UserID string `json:"userId" binding:"required" example:"507f1f77bcf86cd799439013"`
	Role   string `json:"role" binding:"omitempty,teamrole" example:"employee"`
}

// TeamMemberRead is one roster entry in a team read model.
type TeamMemberRead struct {
	User UserSummary `json:"user"`
	Role string      `json:"role" example:"employee"`
}

// CreateTeamRequest is the payload for creating a team.
type CreateTeamRequest struct {
	Name    string         `json:"name" binding:"required,min=1,max=100" example:"Platform"`
	Members []TeamMemberIn `json:"members" binding:"omitempty,dive"`
}

// UpdateTeamRequest is the payload for updating a team. Members listed here
// are added or re-roled; members not listed are left untouched.
type UpdateTeamRequest struct {
	Name    *string        `json:"name" binding:"omitempty,min=1,max=100" example:"Platform Core"`
	Members []TeamMemberIn `json:"members" binding:"omitempty,dive"`
}

// RemoveTeamUsersRequest is the payload for bulk-removing team members.
type RemoveTeamUsersRequest struct {
	UserIDs []string `json:"userIds" binding:"required,min=1"`
}

// TeamRead is the read model for a team including its roster.
type TeamRead struct {
	ID      primitive.ObjectID  `json:"id" example:"507f1f77bcf86cd799439011"`
	Name    string              `json:"name" example:"Platform"`
	OwnerID *primitive.ObjectID `json:"ownerId,omitempty" example:"507f1f77bcf86cd799439012"`
	Members []TeamMemberRead    `json:"members"`
}
