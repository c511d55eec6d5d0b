package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"teamtrack/internal/database"
	apperrors "teamtrack/internal/errors"
	"teamtrack/internal/models"
	"teamtrack/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MeetingService handles business logic for meeting operations. Scheduled
// meetings of one team never overlap: the pre-check and the write run inside
// the same transaction.
type MeetingService struct {
	meetingRepo repository.MeetingRepository
	teamRepo    repository.TeamRepository
	userRepo    repository.UserRepository
	tx          database.Transactor
}

// NewMeetingService creates a new MeetingService.
func NewMeetingService(
	meetingRepo repository.MeetingRepository,
	teamRepo repository.TeamRepository,
	userRepo repository.UserRepository,
	tx database.Transactor,
) *MeetingService {
	return &MeetingService{
		meetingRepo: meetingRepo,
		teamRepo:    teamRepo,
		userRepo:    userRepo,
		tx:          tx,
	}
}

// CreateMeeting schedules a meeting for a team. The interval is half-open:
// a meeting ending exactly when another starts does not conflict.
func (s *MeetingService) CreateMeeting(ctx context.Context, teamID primitive.ObjectID, req *models.CreateMeetingRequest) (*models.Meeting, error) {
	if !req.EndsAt.After(req.StartsAt) {
		return nil, apperrors.ErrInvalidTimeRange
	}

	if _, err := s.teamRepo.FindByID(ctx, teamID); err != nil {
		return nil, err
	}

	participants, err := s.resolveParticipants(ctx, req.Participants)
	if err != nil {
		return nil, err
	}

	meeting := &models.Meeting{
		TeamID:       teamID,
		Title:        req.Title,
		Description:  req.Description,
		StartsAt:     req.StartsAt,
		EndsAt:       req.EndsAt,
		Participants: participants,
	}

	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		taken, err := s.meetingRepo.TitleExists(ctx, teamID, req.Title, nil)
		if err != nil {
			return err
		}
		if taken {
			return apperrors.ErrMeetingTitleTaken
		}

		if err := s.ensureNoOverlap(ctx, teamID, req.StartsAt, req.EndsAt, nil); err != nil {
			return err
		}

		return s.meetingRepo.Create(ctx, meeting)
	})
	if err != nil {
		return nil, err
	}

	return meeting, nil
}

// GetMeeting retrieves a meeting by ID.
func (s *MeetingService) GetMeeting(ctx context.Context, meetingID primitive.ObjectID) (*models.Meeting, error) {
	return s.meetingRepo.FindByID(ctx, meetingID)
}

// UpdateMeeting merges the supplied fields into a meeting. Supplying endsAt
// cancels the meeting: a changed end time is treated as withdrawing the
// booking. The overlap check is repeated when the times move and the meeting
// remains scheduled.
func (s *MeetingService) UpdateMeeting(ctx context.Context, meetingID primitive.ObjectID, req *models.UpdateMeetingRequest) (*models.Meeting, error) {
	var meeting *models.Meeting

	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		var err error
		meeting, err = s.meetingRepo.FindByID(ctx, meetingID)
		if err != nil {
			return err
		}

		timesChanged := false
		if req.Title != nil && *req.Title != meeting.Title {
			taken, err := s.meetingRepo.TitleExists(ctx, meeting.TeamID, *req.Title, &meetingID)
			if err != nil {
				return err
			}
			if taken {
				return apperrors.ErrMeetingTitleTaken
			}
			meeting.Title = *req.Title
		}
		if req.Description != nil {
			meeting.Description = *req.Description
		}
		if req.StartsAt != nil {
			meeting.StartsAt = *req.StartsAt
			timesChanged = true
		}
		if req.EndsAt != nil {
			meeting.EndsAt = *req.EndsAt
			meeting.Status = models.MeetingCanceled
			timesChanged = true
		}

		if !meeting.EndsAt.After(meeting.StartsAt) {
			return apperrors.ErrInvalidTimeRange
		}

		if timesChanged && meeting.Status == models.MeetingScheduled {
			if err := s.ensureNoOverlap(ctx, meeting.TeamID, meeting.StartsAt, meeting.EndsAt, &meetingID); err != nil {
				return err
			}
		}

		return s.meetingRepo.Update(ctx, meeting)
	})
	if err != nil {
		return nil, err
	}

	return meeting, nil
}

// DeleteMeeting removes a meeting.
func (s *MeetingService) DeleteMeeting(ctx context.Context, meetingID primitive.ObjectID) error {
	return s.meetingRepo.Delete(ctx, meetingID)
}

// GetMeetingsByDate returns the team's meetings that started between cutoff
// and now, oldest first. The cutoff is an arbitrary instant, so callers can
// ask for sub-day windows; a cutoff in the future yields an empty list.
func (s *MeetingService) GetMeetingsByDate(ctx context.Context, teamID primitive.ObjectID, cutoff time.Time) ([]models.Meeting, error) {
	if _, err := s.teamRepo.FindByID(ctx, teamID); err != nil {
		return nil, err
	}

	return s.meetingRepo.FindByDate(ctx, teamID, cutoff, time.Now())
}

// GetUserMeetings returns the meetings of the requester's team. A user
// without a team sees an empty list. The optional window selects any meeting
// overlapping it.
func (s *MeetingService) GetUserMeetings(ctx context.Context, userID primitive.ObjectID, query *models.UserMeetingsQuery) ([]models.Meeting, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.TeamID == nil {
		return []models.Meeting{}, nil
	}

	if query.StartsAfter != nil && query.EndsBefore != nil && query.EndsBefore.Before(*query.StartsAfter) {
		return nil, apperrors.ErrInvalidTimeRange
	}

	return s.meetingRepo.FindUserMeetings(ctx, repository.UserMeetingsFilter{
		TeamID:          *user.TeamID,
		IncludeCanceled: query.IncludeCanceled,
		StartsAfter:     query.StartsAfter,
		EndsBefore:      query.EndsBefore,
		Limit:           query.Limit,
	})
}

// GetTeamMeetings returns all meetings of a team, newest start first.
func (s *MeetingService) GetTeamMeetings(ctx context.Context, teamID primitive.ObjectID) ([]models.Meeting, error) {
	if _, err := s.teamRepo.FindByID(ctx, teamID); err != nil {
		return nil, err
	}
	return s.meetingRepo.FindByTeamID(ctx, teamID)
}

// ensureNoOverlap rejects an interval intersecting any scheduled meeting of
// the team.
func (s *MeetingService) ensureNoOverlap(ctx context.Context, teamID primitive.ObjectID, startsAt, endsAt time.Time, excludeID *primitive.ObjectID) error {
	overlaps, err := s.meetingRepo.HasOverlap(ctx, teamID, startsAt, endsAt, excludeID)
	if err != nil {
		return err
	}
	if overlaps {
		return apperrors.ErrMeetingOverlap
	}
	return nil
}

// resolveParticipants parses and verifies participant IDs. Unknown IDs are
// reported together as one not-found error.
func (s *MeetingService) resolveParticipants(ctx context.Context, raw []string) ([]primitive.ObjectID, error) {
	ids, invalid := parseObjectIDs(raw)

	users, err := s.userRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	found := make(map[primitive.ObjectID]bool, len(users))
	for i := range users {
		found[users[i].ID] = true
	}

	missing := append([]string{}, invalid...)
	unique := make([]primitive.ObjectID, 0, len(ids))
	seen := make(map[primitive.ObjectID]bool, len(ids))
	for _, id := range ids {
		if !found[id] {
			missing = append(missing, id.Hex())
			continue
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		unique = append(unique, id)
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrUsersNotFound, strings.Join(missing, ", "))
	}

	return unique, nil
}
