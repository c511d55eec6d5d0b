package service

import (
	"context"
	"testing"
	"time"

	apperrors "teamtrack/internal/errors"
	"teamtrack/internal/models"
	"teamtrack/internal/repository"
	repomocks "teamtrack/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type meetingFixture struct {
	service     *MeetingService
	meetingRepo *repomocks.MockMeetingRepository
	teamRepo    *repomocks.MockTeamRepository
	userRepo    *repomocks.MockUserRepository
}

func newMeetingFixture() *meetingFixture {
	f := &meetingFixture{
		meetingRepo: &repomocks.MockMeetingRepository{},
		teamRepo:    &repomocks.MockTeamRepository{},
		userRepo:    &repomocks.MockUserRepository{},
	}

	f.teamRepo.FindByIDFunc = func(ctx context.Context, id primitive.ObjectID) (*models.Team, error) {
		return &models.Team{ID: id, Name: "Platform"}, nil
	}
	f.meetingRepo.CreateFunc = func(ctx context.Context, meeting *models.Meeting) error {
		meeting.ID = primitive.NewObjectID()
		meeting.Status = models.MeetingScheduled
		return nil
	}

	f.service = NewMeetingService(f.meetingRepo, f.teamRepo, f.userRepo, &repomocks.MockTransactor{})
	return f
}

var meetingBase = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func TestMeetingService_CreateMeeting(t *testing.T) {
	ctx := context.Background()

	t.Run("schedules a meeting", func(t *testing.T) {
		f := newMeetingFixture()
		teamID := primitive.NewObjectID()

		meeting, err := f.service.CreateMeeting(ctx, teamID, &models.CreateMeetingRequest{
			Title:    "Sprint planning",
			StartsAt: meetingBase,
			EndsAt:   meetingBase.Add(time.Hour),
		})

		require.NoError(t, err)
		assert.Equal(t, teamID, meeting.TeamID)
		assert.Equal(t, models.MeetingScheduled, meeting.Status)
	})

	t.Run("rejects inverted or empty interval", func(t *testing.T) {
		f := newMeetingFixture()

		_, err := f.service.CreateMeeting(ctx, primitive.NewObjectID(), &models.CreateMeetingRequest{
			Title:    "Backwards",
			StartsAt: meetingBase.Add(time.Hour),
			EndsAt:   meetingBase,
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidTimeRange)

		_, err = f.service.CreateMeeting(ctx, primitive.NewObjectID(), &models.CreateMeetingRequest{
			Title:    "Zero length",
			StartsAt: meetingBase,
			EndsAt:   meetingBase,
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidTimeRange)
	})

	t.Run("rejects taken title", func(t *testing.T) {
		f := newMeetingFixture()
		f.meetingRepo.TitleExistsFunc = func(ctx context.Context, teamID primitive.ObjectID, title string, excludeID *primitive.ObjectID) (bool, error) {
			return true, nil
		}

		meeting, err := f.service.CreateMeeting(ctx, primitive.NewObjectID(), &models.CreateMeetingRequest{
			Title:    "Sprint planning",
			StartsAt: meetingBase,
			EndsAt:   meetingBase.Add(time.Hour),
		})

		assert.Nil(t, meeting)
		assert.ErrorIs(t, err, apperrors.ErrMeetingTitleTaken)
	})

	t.Run("rejects overlapping interval", func(t *testing.T) {
		f := newMeetingFixture()
		f.meetingRepo.HasOverlapFunc = func(ctx context.Context, teamID primitive.ObjectID, startsAt, endsAt time.Time, excludeID *primitive.ObjectID) (bool, error) {
			return true, nil
		}

		meeting, err := f.service.CreateMeeting(ctx, primitive.NewObjectID(), &models.CreateMeetingRequest{
			Title:    "Clash",
			StartsAt: meetingBase,
			EndsAt:   meetingBase.Add(time.Hour),
		})

		assert.Nil(t, meeting)
		assert.ErrorIs(t, err, apperrors.ErrMeetingOverlap)
	})

	t.Run("verifies and dedupes participants", func(t *testing.T) {
		f := newMeetingFixture()
		alice := primitive.NewObjectID()
		bob := primitive.NewObjectID()
		f.userRepo.FindByIDsFunc = func(ctx context.Context, ids []primitive.ObjectID) ([]models.User, error) {
			return []models.User{{ID: alice}, {ID: bob}}, nil
		}

		meeting, err := f.service.CreateMeeting(ctx, primitive.NewObjectID(), &models.CreateMeetingRequest{
			Title:        "Sync",
			StartsAt:     meetingBase,
			EndsAt:       meetingBase.Add(time.Hour),
			Participants: []string{alice.Hex(), bob.Hex(), alice.Hex()},
		})

		require.NoError(t, err)
		assert.Equal(t, []primitive.ObjectID{alice, bob}, meeting.Participants)
	})

	t.Run("reports unknown participants together", func(t *testing.T) {
		f := newMeetingFixture()
		ghost := primitive.NewObjectID()

		meeting, err := f.service.CreateMeeting(ctx, primitive.NewObjectID(), &models.CreateMeetingRequest{
			Title:        "Sync",
			StartsAt:     meetingBase,
			EndsAt:       meetingBase.Add(time.Hour),
			Participants: []string{ghost.Hex(), "bogus"},
		})

		assert.Nil(t, meeting)
		require.ErrorIs(t, err, apperrors.ErrUsersNotFound)
		assert.Contains(t, err.Error(), ghost.Hex())
		assert.Contains(t, err.Error(), "bogus")
	})
}

func TestMeetingService_UpdateMeeting(t *testing.T) {
	ctx := context.Background()

	meetingID := primitive.NewObjectID()
	teamID := primitive.NewObjectID()

	scheduled := func() *models.Meeting {
		return &models.Meeting{
			ID:       meetingID,
			TeamID:   teamID,
			Title:    "Sprint planning",
			StartsAt: meetingBase,
			EndsAt:   meetingBase.Add(time.Hour),
			Status:   models.MeetingScheduled,
		}
	}

	t.Run("retitles without touching times", func(t *testing.T) {
		f := newMeetingFixture()
		f.meetingRepo.FindByIDFunc = func(ctx context.Context, id primitive.ObjectID) (*models.Meeting, error) {
			return scheduled(), nil
		}
		overlapChecked := false
		f.meetingRepo.HasOverlapFunc = func(ctx context.Context, tID primitive.ObjectID, startsAt, endsAt time.Time, excludeID *primitive.ObjectID) (bool, error) {
			overlapChecked = true
			return false, nil
		}

		title := "Sprint review"
		meeting, err := f.service.UpdateMeeting(ctx, meetingID, &models.UpdateMeetingRequest{Title: &title})

		require.NoError(t, err)
		assert.Equal(t, "Sprint review", meeting.Title)
		assert.Equal(t, models.MeetingScheduled, meeting.Status)
		assert.False(t, overlapChecked)
	})

	t.Run("changing endsAt cancels the meeting", func(t *testing.T) {
		f := newMeetingFixture()
		f.meetingRepo.FindByIDFunc = func(ctx context.Context, id primitive.ObjectID) (*models.Meeting, error) {
			return scheduled(), nil
		}

		newEnd := meetingBase.Add(2 * time.Hour)
		meeting, err := f.service.UpdateMeeting(ctx, meetingID, &models.UpdateMeetingRequest{EndsAt: &newEnd})

		require.NoError(t, err)
		assert.Equal(t, models.MeetingCanceled, meeting.Status)
		assert.Equal(t, newEnd, meeting.EndsAt)
	})

	t.Run("canceled meetings skip the overlap check", func(t *testing.T) {
		f := newMeetingFixture()
		f.meetingRepo.FindByIDFunc = func(ctx context.Context, id primitive.ObjectID) (*models.Meeting, error) {
			return scheduled(), nil
		}
		f.meetingRepo.HasOverlapFunc = func(ctx context.Context, tID primitive.ObjectID, startsAt, endsAt time.Time, excludeID *primitive.ObjectID) (bool, error) {
			t.Fatal("overlap check must not run for canceled meetings")
			return false, nil
		}

		newEnd := meetingBase.Add(2 * time.Hour)
		_, err := f.service.UpdateMeeting(ctx, meetingID, &models.UpdateMeetingRequest{EndsAt: &newEnd})

		assert.NoError(t, err)
	})

	t.Run("moving the start re-checks overlap excluding itself", func(t *testing.T) {
		f := newMeetingFixture()
		f.meetingRepo.FindByIDFunc = func(ctx context.Context, id primitive.ObjectID) (*models.Meeting, error) {
			return scheduled(), nil
		}
		var gotExclude *primitive.ObjectID
		f.meetingRepo.HasOverlapFunc = func(ctx context.Context, tID primitive.ObjectID, startsAt, endsAt time.Time, excludeID *primitive.ObjectID) (bool, error) {
			gotExclude = excludeID
			return false, nil
		}

		newStart := meetingBase.Add(-time.Hour)
		meeting, err := f.service.UpdateMeeting(ctx, meetingID, &models.UpdateMeetingRequest{StartsAt: &newStart})

		require.NoError(t, err)
		assert.Equal(t, newStart, meeting.StartsAt)
		require.NotNil(t, gotExclude)
		assert.Equal(t, meetingID, *gotExclude)
	})

	t.Run("moving into an occupied slot fails", func(t *testing.T) {
		f := newMeetingFixture()
		f.meetingRepo.FindByIDFunc = func(ctx context.Context, id primitive.ObjectID) (*models.Meeting, error) {
			return scheduled(), nil
		}
		f.meetingRepo.HasOverlapFunc = func(ctx context.Context, tID primitive.ObjectID, startsAt, endsAt time.Time, excludeID *primitive.ObjectID) (bool, error) {
			return true, nil
		}

		newStart := meetingBase.Add(-time.Hour)
		meeting, err := f.service.UpdateMeeting(ctx, meetingID, &models.UpdateMeetingRequest{StartsAt: &newStart})

		assert.Nil(t, meeting)
		assert.ErrorIs(t, err, apperrors.ErrMeetingOverlap)
	})

	t.Run("rejects update producing an inverted interval", func(t *testing.T) {
		f := newMeetingFixture()
		f.meetingRepo.FindByIDFunc = func(ctx context.Context, id primitive.ObjectID) (*models.Meeting, error) {
			return scheduled(), nil
		}

		newStart := meetingBase.Add(3 * time.Hour)
		meeting, err := f.service.UpdateMeeting(ctx, meetingID, &models.UpdateMeetingRequest{StartsAt: &newStart})

		assert.Nil(t, meeting)
		assert.ErrorIs(t, err, apperrors.ErrInvalidTimeRange)
	})

	t.Run("returns error for non-existent meeting", func(t *testing.T) {
		f := newMeetingFixture()
		f.meetingRepo.FindByIDFunc = func(ctx context.Context, id primitive.ObjectID) (*models.Meeting, error) {
			return nil, apperrors.ErrMeetingNotFound
		}

		meeting, err := f.service.UpdateMeeting(ctx, meetingID, &models.UpdateMeetingRequest{})

		assert.Nil(t, meeting)
		assert.ErrorIs(t, err, apperrors.ErrMeetingNotFound)
	})
}

func TestMeetingService_GetUserMeetings(t *testing.T) {
	ctx := context.Background()

	t.Run("user without a team sees an empty list", func(t *testing.T) {
		f := newMeetingFixture()
		f.userRepo.FindByIDFunc = func(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
			return &models.User{ID: id}, nil
		}
		f.meetingRepo.FindUserMeetingsFunc = func(ctx context.Context, filter repository.UserMeetingsFilter) ([]models.Meeting, error) {
			t.Fatal("repository must not be queried for teamless users")
			return nil, nil
		}

		meetings, err := f.service.GetUserMeetings(ctx, primitive.NewObjectID(), &models.UserMeetingsQuery{})

		require.NoError(t, err)
		assert.NotNil(t, meetings)
		assert.Len(t, meetings, 0)
	})

	t.Run("passes the filter through for team members", func(t *testing.T) {
		f := newMeetingFixture()
		teamID := primitive.NewObjectID()
		f.userRepo.FindByIDFunc = func(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
			return &models.User{ID: id, TeamID: &teamID}, nil
		}

		var gotFilter repository.UserMeetingsFilter
		f.meetingRepo.FindUserMeetingsFunc = func(ctx context.Context, filter repository.UserMeetingsFilter) ([]models.Meeting, error) {
			gotFilter = filter
			return []models.Meeting{}, nil
		}

		startsAfter := meetingBase
		endsBefore := meetingBase.Add(24 * time.Hour)
		limit := 5
		_, err := f.service.GetUserMeetings(ctx, primitive.NewObjectID(), &models.UserMeetingsQuery{
			IncludeCanceled: true,
			StartsAfter:     &startsAfter,
			EndsBefore:      &endsBefore,
			Limit:           &limit,
		})

		require.NoError(t, err)
		assert.Equal(t, teamID, gotFilter.TeamID)
		assert.True(t, gotFilter.IncludeCanceled)
		assert.Equal(t, &startsAfter, gotFilter.StartsAfter)
		assert.Equal(t, &endsBefore, gotFilter.EndsBefore)
		assert.Equal(t, &limit, gotFilter.Limit)
	})

	t.Run("rejects inverted window", func(t *testing.T) {
		f := newMeetingFixture()
		teamID := primitive.NewObjectID()
		f.userRepo.FindByIDFunc = func(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
			return &models.User{ID: id, TeamID: &teamID}, nil
		}

		startsAfter := meetingBase.Add(24 * time.Hour)
		endsBefore := meetingBase
		meetings, err := f.service.GetUserMeetings(ctx, primitive.NewObjectID(), &models.UserMeetingsQuery{
			StartsAfter: &startsAfter,
			EndsBefore:  &endsBefore,
		})

		assert.Nil(t, meetings)
		assert.ErrorIs(t, err, apperrors.ErrInvalidTimeRange)
	})
}

func TestMeetingService_GetMeetingsByDate(t *testing.T) {
	ctx := context.Background()

	t.Run("passes the cutoff through and anchors the window at now", func(t *testing.T) {
		f := newMeetingFixture()
		teamID := primitive.NewObjectID()

		var gotCutoff, gotNow time.Time
		f.meetingRepo.FindByDateFunc = func(ctx context.Context, tID primitive.ObjectID, cutoff, now time.Time) ([]models.Meeting, error) {
			gotCutoff, gotNow = cutoff, now
			return []models.Meeting{}, nil
		}

		cutoff := time.Now().Add(-90 * time.Minute)
		_, err := f.service.GetMeetingsByDate(ctx, teamID, cutoff)

		require.NoError(t, err)
		assert.True(t, gotCutoff.Equal(cutoff), "cutoff must reach the repository unchanged")
		assert.InDelta(t, 90*time.Minute, gotNow.Sub(gotCutoff), float64(time.Minute))
	})

	t.Run("a future cutoff still queries, yielding nothing", func(t *testing.T) {
		f := newMeetingFixture()
		teamID := primitive.NewObjectID()

		var gotCutoff time.Time
		f.meetingRepo.FindByDateFunc = func(ctx context.Context, tID primitive.ObjectID, cutoff, now time.Time) ([]models.Meeting, error) {
			gotCutoff = cutoff
			return []models.Meeting{}, nil
		}

		cutoff := time.Now().Add(48 * time.Hour)
		meetings, err := f.service.GetMeetingsByDate(ctx, teamID, cutoff)

		require.NoError(t, err)
		assert.Empty(t, meetings)
		assert.True(t, gotCutoff.Equal(cutoff))
	})

	t.Run("returns error for non-existent team", func(t *testing.T) {
		f := newMeetingFixture()
		f.teamRepo.FindByIDFunc = func(ctx context.Context, id primitive.ObjectID) (*models.Team, error) {
			return nil, apperrors.ErrTeamNotFound
		}

		meetings, err := f.service.GetMeetingsByDate(ctx, primitive.NewObjectID(), time.Now().Add(-24*time.Hour))

		assert.Nil(t, meetings)
		assert.ErrorIs(t, err, apperrors.ErrTeamNotFound)
	})
}
