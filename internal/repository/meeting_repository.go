package repository

import (
	"context"
	"errors"
	"time"

	apperrors "teamtrack/internal/errors"
	"teamtrack/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UserMeetingsFilter narrows FindUserMeetings. A nil window bound leaves that
// side open; the window selects any meeting overlapping it, not only
// meetings contained in it.
type UserMeetingsFilter struct {
	TeamID          primitive.ObjectID
	IncludeCanceled bool
	StartsAfter     *time.Time
	EndsBefore      *time.Time
	Limit           *int
}

// MeetingRepository defines the interface for meeting data operations.
type MeetingRepository interface {
	Create(ctx context.Context, meeting *models.Meeting) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Meeting, error)
	// HasOverlap reports whether any scheduled meeting of the team overlaps
	// the half-open interval [startsAt, endsAt). Touching endpoints do not
	// overlap. excludeID skips the meeting being updated.
	HasOverlap(ctx context.Context, teamID primitive.ObjectID, startsAt, endsAt time.Time, excludeID *primitive.ObjectID) (bool, error)
	// TitleExists reports whether another scheduled meeting of the team uses
	// title, case-insensitively.
	TitleExists(ctx context.Context, teamID primitive.ObjectID, title string, excludeID *primitive.ObjectID) (bool, error)
	Update(ctx context.Context, meeting *models.Meeting) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	FindByDate(ctx context.Context, teamID primitive.ObjectID, cutoff, now time.Time) ([]models.Meeting, error)
	FindUserMeetings(ctx context.Context, filter UserMeetingsFilter) ([]models.Meeting, error)
	FindByTeamID(ctx context.Context, teamID primitive.ObjectID) ([]models.Meeting, error)
}

// meetingRepository implements MeetingRepository using MongoDB.
type meetingRepository struct {
	collection *mongo.Collection
}

// NewMeetingRepository creates a new MeetingRepository.
func NewMeetingRepository(db *mongo.Database) MeetingRepository {
	return &meetingRepository{
		collection: db.Collection("meetings"),
	}
}

// Create inserts a new meeting. Status is always scheduled on creation.
func (r *meetingRepository) Create(ctx context.Context, meeting *models.Meeting) error {
	meeting.ID = primitive.NewObjectID()
	meeting.Status = models.MeetingScheduled
	meeting.CreatedAt = time.Now()
	meeting.UpdatedAt = time.Now()
	if meeting.Participants == nil {
		meeting.Participants = []primitive.ObjectID{}
	}

	_, err := r.collection.InsertOne(ctx, meeting)
	return err
}

// FindByID retrieves a meeting by ID.
func (r *meetingRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Meeting, error) {
	var meeting models.Meeting
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&meeting)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrMeetingNotFound
		}
		return nil, err
	}

	return &meeting, nil
}

// HasOverlap probes for a scheduled meeting whose [startsAt, endsAt)
// interval intersects the given one: existing.endsAt > startsAt AND
// existing.startsAt < endsAt. Back-to-back meetings do not match.
func (r *meetingRepository) HasOverlap(ctx context.Context, teamID primitive.ObjectID, startsAt, endsAt time.Time, excludeID *primitive.ObjectID) (bool, error) {
	filter := bson.M{
		"teamId":   teamID,
		"status":   models.MeetingScheduled,
		"endsAt":   bson.M{"$gt": startsAt},
		"startsAt": bson.M{"$lt": endsAt},
	}
	if excludeID != nil {
		filter["_id"] = bson.M{"$ne": *excludeID}
	}

	opts := options.Count().SetLimit(1)
	count, err := r.collection.CountDocuments(ctx, filter, opts)
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// TitleExists probes for a case-insensitive title collision among the
// scheduled meetings of a team.
func (r *meetingRepository) TitleExists(ctx context.Context, teamID primitive.ObjectID, title string, excludeID *primitive.ObjectID) (bool, error) {
	filter := bson.M{
		"teamId": teamID,
		"status": models.MeetingScheduled,
		"title":  title,
	}
	if excludeID != nil {
		filter["_id"] = bson.M{"$ne": *excludeID}
	}

	opts := options.Count().SetCollation(ciCollation).SetLimit(1)
	count, err := r.collection.CountDocuments(ctx, filter, opts)
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// Update persists the mutable fields of a meeting, including its status.
func (r *meetingRepository) Update(ctx context.Context, meeting *models.Meeting) error {
	meeting.UpdatedAt = time.Now()

	update := bson.M{
		"$set": bson.M{
			"title":        meeting.Title,
			"description":  meeting.Description,
			"startsAt":     meeting.StartsAt,
			"endsAt":       meeting.EndsAt,
			"status":       meeting.Status,
			"participants": meeting.Participants,
			"updatedAt":    meeting.UpdatedAt,
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": meeting.ID}, update)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return apperrors.ErrMeetingNotFound
	}

	return nil
}

// Delete removes a meeting.
func (r *meetingRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return apperrors.ErrMeetingNotFound
	}

	return nil
}

// FindByDate returns the team's meetings with startsAt in [cutoff, now],
// ascending by start time.
func (r *meetingRepository) FindByDate(ctx context.Context, teamID primitive.ObjectID, cutoff, now time.Time) ([]models.Meeting, error) {
	filter := bson.M{
		"teamId":   teamID,
		"startsAt": bson.M{"$gte": cutoff, "$lte": now},
	}
	opts := options.Find().SetSort(bson.D{{Key: "startsAt", Value: 1}})

	return r.findMeetings(ctx, filter, opts)
}

// FindUserMeetings returns the meetings of the requester's team, ascending by
// start time then ID. The participants field is a set per meeting, so each
// meeting appears exactly once regardless of how many participants it has.
func (r *meetingRepository) FindUserMeetings(ctx context.Context, f UserMeetingsFilter) ([]models.Meeting, error) {
	filter := bson.M{"teamId": f.TeamID}
	if !f.IncludeCanceled {
		filter["status"] = models.MeetingScheduled
	}
	if f.StartsAfter != nil {
		filter["endsAt"] = bson.M{"$gte": *f.StartsAfter}
	}
	if f.EndsBefore != nil {
		filter["startsAt"] = bson.M{"$lte": *f.EndsBefore}
	}

	opts := options.Find().SetSort(bson.D{
		{Key: "startsAt", Value: 1},
		{Key: "_id", Value: 1},
	})
	if f.Limit != nil {
		opts.SetLimit(int64(*f.Limit))
	}

	return r.findMeetings(ctx, filter, opts)
}

// FindByTeamID returns all meetings of a team, newest start first.
func (r *meetingRepository) FindByTeamID(ctx context.Context, teamID primitive.ObjectID) ([]models.Meeting, error) {
	opts := options.Find().SetSort(bson.D{{Key: "startsAt", Value: -1}})
	return r.findMeetings(ctx, bson.M{"teamId": teamID}, opts)
}

func (r *meetingRepository) findMeetings(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Meeting, error) {
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var meetings []models.Meeting
	if err := cursor.All(ctx, &meetings); err != nil {
		return nil, err
	}

	if meetings == nil {
		meetings = []models.Meeting{}
	}

	return meetings, nil
}
