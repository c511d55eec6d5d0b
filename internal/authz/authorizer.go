// Package authz provides authorization interfaces and implementations.
package authz

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Action constants define the authorization actions.
const (
	ActionTeamManage    = "team:manage"
	ActionTaskMutate    = "task:mutate"
	ActionMeetingMutate = "meeting:mutate"
	ActionTaskRate      = "task:rate"
)

// Actor is the authenticated identity every rule operation receives.
type Actor struct {
	ID          primitive.ObjectID
	IsSuperuser bool
	TeamID      *primitive.ObjectID
	RoleInTeam  string
}

// Authorizer decides whether an actor may perform an action.
type Authorizer interface {
	// CanPerform checks if a user can perform an action.
	CanPerform(ctx context.Context, userID primitive.ObjectID, action string) (bool, error)

	// ResolveActor loads the acting-user identity for a user ID.
	ResolveActor(ctx context.Context, userID primitive.ObjectID) (*Actor, error)
}
