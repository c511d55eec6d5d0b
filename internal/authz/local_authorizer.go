package authz

import (
	"context"
	"errors"

	apperrors "teamtrack/internal/errors"
	"teamtrack/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserFinder is the interface required by LocalAuthorizer to look up users.
// This allows the authorizer to be decoupled from the full repository implementation.
type UserFinder interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

// LocalAuthorizer implements Authorizer using database lookups.
type LocalAuthorizer struct {
	userFinder UserFinder
}

// NewLocalAuthorizer creates a new LocalAuthorizer.
func NewLocalAuthorizer(userFinder UserFinder) *LocalAuthorizer {
	return &LocalAuthorizer{
		userFinder: userFinder,
	}
}

// CanPerform checks if a user can perform an action. Superusers can do
// everything. Team management and task rating require the admin role;
// task/meeting mutation is forbidden to employees.
func (a *LocalAuthorizer) CanPerform(ctx context.Context, userID primitive.ObjectID, action string) (bool, error) {
	actor, err := a.ResolveActor(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}

	if actor.IsSuperuser {
		return true, nil
	}

	switch action {
	case ActionTeamManage, ActionTaskRate:
		return actor.RoleInTeam == models.RoleAdmin, nil
	case ActionTaskMutate, ActionMeetingMutate:
		return actor.RoleInTeam != models.RoleEmployee, nil
	}

	return false, nil // Unknown action
}

// ResolveActor loads the acting-user identity for a user ID. Users with no
// stored role read as employee.
func (a *LocalAuthorizer) ResolveActor(ctx context.Context, userID primitive.ObjectID) (*Actor, error) {
	user, err := a.userFinder.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	role := user.RoleInTeam
	if role == "" {
		role = models.RoleEmployee
	}

	return &Actor{
		ID:          user.ID,
		IsSuperuser: user.IsSuperuser,
		TeamID:      user.TeamID,
		RoleInTeam:  role,
	}, nil
}
