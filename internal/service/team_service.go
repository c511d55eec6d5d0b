package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"teamtrack/internal/database"
	apperrors "teamtrack/internal/errors"
	"teamtrack/internal/models"
	"teamtrack/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TeamService handles business logic for team operations. Multi-step
// mutations run inside a mongo transaction so the team row and the
// membership fields on users move together.
type TeamService struct {
	teamRepo repository.TeamRepository
	userRepo repository.UserRepository
	tx       database.Transactor
}

// NewTeamService creates a new TeamService.
func NewTeamService(
	teamRepo repository.TeamRepository,
	userRepo repository.UserRepository,
	tx database.Transactor,
) *TeamService {
	return &TeamService{
		teamRepo: teamRepo,
		userRepo: userRepo,
		tx:       tx,
	}
}

// CreateTeam creates a team and attaches its initial roster. The creator is
// always added as admin, overriding any role supplied for them in the member
// list. When the same user ID appears several times, the last occurrence
// wins.
func (s *TeamService) CreateTeam(ctx context.Context, creatorID primitive.ObjectID, req *models.CreateTeamRequest) (*models.TeamRead, error) {
	var read *models.TeamRead

	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.ensureNameFree(ctx, req.Name, nil); err != nil {
			return err
		}

		// The creator goes through the same validation as every other
		// member, so a creator who already belongs to another team is
		// rejected. Appending them last makes their admin role win over
		// any role supplied for them in the member list.
		members := append(append([]models.TeamMemberIn(nil), req.Members...),
			models.TeamMemberIn{UserID: creatorID.Hex(), Role: models.RoleAdmin})

		roles, order, err := s.resolveMembers(ctx, nil, members)
		if err != nil {
			return err
		}

		team := &models.Team{
			Name:    req.Name,
			OwnerID: &creatorID,
		}
		if err := s.teamRepo.Create(ctx, team); err != nil {
			return err
		}

		for _, id := range order {
			if err := s.userRepo.SetMembership(ctx, id, &team.ID, roles[id]); err != nil {
				return err
			}
		}

		read, err = s.buildRead(ctx, team)
		return err
	})
	if err != nil {
		return nil, err
	}

	return read, nil
}

// GetTeam retrieves a team with its roster.
func (s *TeamService) GetTeam(ctx context.Context, teamID primitive.ObjectID) (*models.TeamRead, error) {
	team, err := s.teamRepo.FindByID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	return s.buildRead(ctx, team)
}

// GetAllTeams retrieves every team with its roster.
func (s *TeamService) GetAllTeams(ctx context.Context) ([]models.TeamRead, error) {
	teams, err := s.teamRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	reads := make([]models.TeamRead, 0, len(teams))
	for i := range teams {
		read, err := s.buildRead(ctx, &teams[i])
		if err != nil {
			return nil, err
		}
		reads = append(reads, *read)
	}

	return reads, nil
}

// UpdateTeam renames a team and/or upserts roster entries. Members not
// mentioned in the request keep their membership untouched.
func (s *TeamService) UpdateTeam(ctx context.Context, teamID primitive.ObjectID, req *models.UpdateTeamRequest) (*models.TeamRead, error) {
	var read *models.TeamRead

	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		team, err := s.teamRepo.FindByID(ctx, teamID)
		if err != nil {
			return err
		}

		if req.Name != nil {
			if err := s.ensureNameFree(ctx, *req.Name, &teamID); err != nil {
				return err
			}
			team.Name = *req.Name
		}

		roles, order, err := s.resolveMembers(ctx, &teamID, req.Members)
		if err != nil {
			return err
		}

		if req.Name != nil {
			if err := s.teamRepo.Update(ctx, team); err != nil {
				return err
			}
		}

		for _, id := range order {
			if err := s.userRepo.SetMembership(ctx, id, &teamID, roles[id]); err != nil {
				return err
			}
		}

		read, err = s.buildRead(ctx, team)
		return err
	})
	if err != nil {
		return nil, err
	}

	return read, nil
}

// DeleteTeam unlinks every member and deletes the team. Deleting a team that
// does not exist reports false without an error.
func (s *TeamService) DeleteTeam(ctx context.Context, teamID primitive.ObjectID) (bool, error) {
	deleted := false

	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.teamRepo.FindByID(ctx, teamID); err != nil {
			if errors.Is(err, apperrors.ErrTeamNotFound) {
				return nil
			}
			return err
		}

		if err := s.userRepo.UnlinkTeam(ctx, teamID); err != nil {
			return err
		}
		if err := s.teamRepo.Delete(ctx, teamID); err != nil {
			return err
		}

		deleted = true
		return nil
	})
	if err != nil {
		return false, err
	}

	return deleted, nil
}

// ListTeamUsers returns the roster of a team.
func (s *TeamService) ListTeamUsers(ctx context.Context, teamID primitive.ObjectID) ([]models.TeamMemberRead, error) {
	if _, err := s.teamRepo.FindByID(ctx, teamID); err != nil {
		return nil, err
	}

	users, err := s.userRepo.FindByTeamID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	return rosterOf(users), nil
}

// RemoveTeamUsers detaches the listed members from the team. The team owner
// cannot be removed, and the removal set may not strip the team of its last
// admin while other members remain.
func (s *TeamService) RemoveTeamUsers(ctx context.Context, teamID primitive.ObjectID, userIDs []string) (*models.TeamRead, error) {
	var read *models.TeamRead

	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		team, err := s.teamRepo.FindByID(ctx, teamID)
		if err != nil {
			return err
		}

		ids, invalid := parseObjectIDs(userIDs)

		users, err := s.userRepo.FindByIDs(ctx, ids)
		if err != nil {
			return err
		}

		found := make(map[primitive.ObjectID]*models.User, len(users))
		for i := range users {
			found[users[i].ID] = &users[i]
		}

		missing := append([]string{}, invalid...)
		var outsiders []string
		removal := make(map[primitive.ObjectID]bool, len(ids))
		for _, id := range ids {
			user, ok := found[id]
			if !ok {
				missing = append(missing, id.Hex())
				continue
			}
			if user.TeamID == nil || *user.TeamID != teamID {
				outsiders = append(outsiders, user.ID.Hex())
				continue
			}
			removal[id] = true
		}

		if len(missing) > 0 {
			return fmt.Errorf("%w: %s", apperrors.ErrUsersNotFound, strings.Join(missing, ", "))
		}
		if len(outsiders) > 0 {
			return fmt.Errorf("%w: %s", apperrors.ErrNotTeamMember, strings.Join(outsiders, ", "))
		}
		if team.OwnerID != nil && removal[*team.OwnerID] {
			return apperrors.ErrCannotRemoveOwner
		}

		roster, err := s.userRepo.FindByTeamID(ctx, teamID)
		if err != nil {
			return err
		}

		remaining := 0
		remainingAdmins := 0
		for i := range roster {
			if removal[roster[i].ID] {
				continue
			}
			remaining++
			if roster[i].RoleInTeam == models.RoleAdmin {
				remainingAdmins++
			}
		}
		if remaining > 0 && remainingAdmins == 0 {
			return apperrors.ErrLastAdminRemoval
		}

		for id := range removal {
			if err := s.userRepo.SetMembership(ctx, id, nil, ""); err != nil {
				return err
			}
		}

		read, err = s.buildRead(ctx, team)
		return err
	})
	if err != nil {
		return nil, err
	}

	return read, nil
}

// ensureNameFree rejects a team name already held by another team,
// case-insensitively.
func (s *TeamService) ensureNameFree(ctx context.Context, name string, excludeID *primitive.ObjectID) error {
	existing, err := s.teamRepo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, apperrors.ErrTeamNotFound) {
			return nil
		}
		return err
	}
	if excludeID != nil && existing.ID == *excludeID {
		return nil
	}

	return apperrors.ErrTeamNameTaken
}

// resolveMembers validates a member list against the users collection.
// Duplicated IDs collapse to their last occurrence. Unknown IDs are reported
// together as one not-found error; users already attached to a different
// team are reported together as one conflict. teamID is nil when the team is
// being created, in which case any existing membership conflicts.
func (s *TeamService) resolveMembers(ctx context.Context, teamID *primitive.ObjectID, members []models.TeamMemberIn) (map[primitive.ObjectID]string, []primitive.ObjectID, error) {
	roles := make(map[primitive.ObjectID]string, len(members))
	var order []primitive.ObjectID
	var invalid []string

	for _, m := range members {
		id, err := primitive.ObjectIDFromHex(m.UserID)
		if err != nil {
			invalid = append(invalid, m.UserID)
			continue
		}
		role := m.Role
		if role == "" {
			role = models.RoleEmployee
		}
		if _, seen := roles[id]; !seen {
			order = append(order, id)
		}
		roles[id] = role
	}

	users, err := s.userRepo.FindByIDs(ctx, order)
	if err != nil {
		return nil, nil, err
	}

	found := make(map[primitive.ObjectID]*models.User, len(users))
	for i := range users {
		found[users[i].ID] = &users[i]
	}

	missing := append([]string{}, invalid...)
	var taken []string
	for _, id := range order {
		user, ok := found[id]
		if !ok {
			missing = append(missing, id.Hex())
			continue
		}
		if user.TeamID != nil && (teamID == nil || *user.TeamID != *teamID) {
			taken = append(taken, id.Hex())
		}
	}

	if len(missing) > 0 {
		return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrUsersNotFound, strings.Join(missing, ", "))
	}
	if len(taken) > 0 {
		return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrUsersInOtherTeam, strings.Join(taken, ", "))
	}

	return roles, order, nil
}

// buildRead assembles the team read model with its roster expanded.
func (s *TeamService) buildRead(ctx context.Context, team *models.Team) (*models.TeamRead, error) {
	users, err := s.userRepo.FindByTeamID(ctx, team.ID)
	if err != nil {
		return nil, err
	}

	return &models.TeamRead{
		ID:      team.ID,
		Name:    team.Name,
		OwnerID: team.OwnerID,
		Members: rosterOf(users),
	}, nil
}

func rosterOf(users []models.User) []models.TeamMemberRead {
	members := make([]models.TeamMemberRead, 0, len(users))
	for i := range users {
		members = append(members, models.TeamMemberRead{
			User: models.UserSummary{ID: users[i].ID, Email: users[i].Email},
			Role: users[i].RoleInTeam,
		})
	}
	return members
}

// parseObjectIDs converts hex IDs, collecting the malformed ones separately
// so callers can report them as unknown users.
func parseObjectIDs(raw []string) ([]primitive.ObjectID, []string) {
	ids := make([]primitive.ObjectID, 0, len(raw))
	var invalid []string
	for _, r := range raw {
		id, err := primitive.ObjectIDFromHex(r)
		if err != nil {
			invalid = append(invalid, r)
			continue
		}
		ids = append(ids, id)
	}
	return ids, invalid
}
