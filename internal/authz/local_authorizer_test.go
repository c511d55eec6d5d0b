package authz

import (
	"context"
	"errors"
	"testing"

	apperrors "teamtrack/internal/errors"
	"teamtrack/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// stubUserFinder serves FindByID from an in-memory map.
type stubUserFinder struct {
	users map[primitive.ObjectID]*models.User
	err   error
}

func (s *stubUserFinder) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	user, ok := s.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func userWithRole(role string) (*stubUserFinder, primitive.ObjectID) {
	id := primitive.NewObjectID()
	teamID := primitive.NewObjectID()
	finder := &stubUserFinder{users: map[primitive.ObjectID]*models.User{
		id: {ID: id, TeamID: &teamID, RoleInTeam: role},
	}}
	return finder, id
}

func TestLocalAuthorizer_CanPerform(t *testing.T) {
	ctx := context.Background()

	t.Run("superuser may do everything", func(t *testing.T) {
		id := primitive.NewObjectID()
		finder := &stubUserFinder{users: map[primitive.ObjectID]*models.User{
			id: {ID: id, IsSuperuser: true},
		}}
		authorizer := NewLocalAuthorizer(finder)

		for _, action := range []string{ActionTeamManage, ActionTaskMutate, ActionMeetingMutate, ActionTaskRate} {
			allowed, err := authorizer.CanPerform(ctx, id, action)
			require.NoError(t, err)
			assert.True(t, allowed, "action: %s", action)
		}
	})

	t.Run("role rules per action", func(t *testing.T) {
		tests := []struct {
			role    string
			action  string
			allowed bool
		}{
			{models.RoleAdmin, ActionTeamManage, true},
			{models.RoleManager, ActionTeamManage, false},
			{models.RoleEmployee, ActionTeamManage, false},
			{models.RoleAdmin, ActionTaskRate, true},
			{models.RoleManager, ActionTaskRate, false},
			{models.RoleEmployee, ActionTaskRate, false},
			{models.RoleAdmin, ActionTaskMutate, true},
			{models.RoleManager, ActionTaskMutate, true},
			{models.RoleEmployee, ActionTaskMutate, false},
			{models.RoleAdmin, ActionMeetingMutate, true},
			{models.RoleManager, ActionMeetingMutate, true},
			{models.RoleEmployee, ActionMeetingMutate, false},
		}

		for _, tt := range tests {
			t.Run(tt.role+" "+tt.action, func(t *testing.T) {
				finder, id := userWithRole(tt.role)
				authorizer := NewLocalAuthorizer(finder)

				allowed, err := authorizer.CanPerform(ctx, id, tt.action)

				require.NoError(t, err)
				assert.Equal(t, tt.allowed, allowed)
			})
		}
	})

	t.Run("user without a stored role reads as employee", func(t *testing.T) {
		finder, id := userWithRole("")
		authorizer := NewLocalAuthorizer(finder)

		allowed, err := authorizer.CanPerform(ctx, id, ActionTaskMutate)

		require.NoError(t, err)
		assert.False(t, allowed)
	})

	t.Run("unknown action is denied", func(t *testing.T) {
		finder, id := userWithRole(models.RoleAdmin)
		authorizer := NewLocalAuthorizer(finder)

		allowed, err := authorizer.CanPerform(ctx, id, "task:archive")

		require.NoError(t, err)
		assert.False(t, allowed)
	})

	t.Run("unknown user is denied without error", func(t *testing.T) {
		finder := &stubUserFinder{users: map[primitive.ObjectID]*models.User{}}
		authorizer := NewLocalAuthorizer(finder)

		allowed, err := authorizer.CanPerform(ctx, primitive.NewObjectID(), ActionTeamManage)

		require.NoError(t, err)
		assert.False(t, allowed)
	})

	t.Run("lookup failures propagate", func(t *testing.T) {
		finder := &stubUserFinder{err: errors.New("database error")}
		authorizer := NewLocalAuthorizer(finder)

		_, err := authorizer.CanPerform(ctx, primitive.NewObjectID(), ActionTeamManage)

		assert.Error(t, err)
	})
}

func TestLocalAuthorizer_ResolveActor(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the stored identity", func(t *testing.T) {
		id := primitive.NewObjectID()
		teamID := primitive.NewObjectID()
		finder := &stubUserFinder{users: map[primitive.ObjectID]*models.User{
			id: {ID: id, TeamID: &teamID, RoleInTeam: models.RoleManager, IsSuperuser: false},
		}}
		authorizer := NewLocalAuthorizer(finder)

		actor, err := authorizer.ResolveActor(ctx, id)

		require.NoError(t, err)
		assert.Equal(t, id, actor.ID)
		require.NotNil(t, actor.TeamID)
		assert.Equal(t, teamID, *actor.TeamID)
		assert.Equal(t, models.RoleManager, actor.RoleInTeam)
		assert.False(t, actor.IsSuperuser)
	})

	t.Run("defaults a missing role to employee", func(t *testing.T) {
		finder, id := userWithRole("")
		authorizer := NewLocalAuthorizer(finder)

		actor, err := authorizer.ResolveActor(ctx, id)

		require.NoError(t, err)
		assert.Equal(t, models.RoleEmployee, actor.RoleInTeam)
	})

	t.Run("unknown user propagates not found", func(t *testing.T) {
		finder := &stubUserFinder{users: map[primitive.ObjectID]*models.User{}}
		authorizer := NewLocalAuthorizer(finder)

		actor, err := authorizer.ResolveActor(ctx, primitive.NewObjectID())

		assert.Nil(t, actor)
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}
