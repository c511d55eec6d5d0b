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
)

// EvaluationRepository defines the interface for task evaluation data
// operations. Evaluations are immutable once written.
type EvaluationRepository interface {
	Create(ctx context.Context, evaluation *models.Evaluation) error
	FindByTaskID(ctx context.Context, taskID primitive.ObjectID) (*models.Evaluation, error)
	DeleteByTaskID(ctx context.Context, taskID primitive.ObjectID) error
	// AvgForPeriod aggregates the evaluations of a team's done tasks whose
	// ratedAt falls in [from, to], both bounds inclusive.
	AvgForPeriod(ctx context.Context, teamID primitive.ObjectID, from, to time.Time) (*models.RatingStats, error)
	// ListUserRatings returns the evaluated done tasks of a team assigned to
	// a user, most recently rated first, breaking ties by task ID descending.
	ListUserRatings(ctx context.Context, teamID, assigneeID primitive.ObjectID) ([]models.TaskRating, error)
}

// evaluationRepository implements EvaluationRepository using MongoDB.
type evaluationRepository struct {
	collection *mongo.Collection
}

// NewEvaluationRepository creates a new EvaluationRepository.
func NewEvaluationRepository(db *mongo.Database) EvaluationRepository {
	return &evaluationRepository{
		collection: db.Collection("evaluations"),
	}
}

// Create inserts an evaluation. Callers verify the one-per-task rule first;
// the unique index on taskId is the backstop against concurrent raters.
func (r *evaluationRepository) Create(ctx context.Context, evaluation *models.Evaluation) error {
	evaluation.ID = primitive.NewObjectID()

	_, err := r.collection.InsertOne(ctx, evaluation)
	if mongo.IsDuplicateKeyError(err) {
		return apperrors.ErrTaskAlreadyRated
	}
	return err
}

// FindByTaskID retrieves the evaluation of a task, if any.
func (r *evaluationRepository) FindByTaskID(ctx context.Context, taskID primitive.ObjectID) (*models.Evaluation, error) {
	var evaluation models.Evaluation
	err := r.collection.FindOne(ctx, bson.M{"taskId": taskID}).Decode(&evaluation)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	return &evaluation, nil
}

// DeleteByTaskID removes the evaluation of a task. Used when the task itself
// is deleted; a missing evaluation is not an error.
func (r *evaluationRepository) DeleteByTaskID(ctx context.Context, taskID primitive.ObjectID) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"taskId": taskID})
	return err
}

// AvgForPeriod joins evaluations to their tasks and averages the values for
// one team over an inclusive ratedAt window.
func (r *evaluationRepository) AvgForPeriod(ctx context.Context, teamID primitive.ObjectID, from, to time.Time) (*models.RatingStats, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"ratedAt": bson.M{"$gte": from, "$lte": to},
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "tasks",
			"localField":   "taskId",
			"foreignField": "_id",
			"as":           "task",
		}}},
		{{Key: "$unwind", Value: "$task"}},
		{{Key: "$match", Value: bson.M{
			"task.teamId": teamID,
			"task.status": models.StatusDone,
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"avg":   bson.M{"$avg": "$value"},
			"count": bson.M{"$sum": 1},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []struct {
		Avg   float64 `bson:"avg"`
		Count int     `bson:"count"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}

	stats := &models.RatingStats{}
	if len(results) > 0 {
		avg := results[0].Avg
		stats.Avg = &avg
		stats.Count = results[0].Count
	}

	return stats, nil
}

// ListUserRatings joins evaluations to their tasks and keeps the done tasks
// assigned to one user.
func (r *evaluationRepository) ListUserRatings(ctx context.Context, teamID, assigneeID primitive.ObjectID) ([]models.TaskRating, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         "tasks",
			"localField":   "taskId",
			"foreignField": "_id",
			"as":           "task",
		}}},
		{{Key: "$unwind", Value: "$task"}},
		{{Key: "$match", Value: bson.M{
			"task.teamId":     teamID,
			"task.assigneeId": assigneeID,
			"task.status":     models.StatusDone,
		}}},
		{{Key: "$sort", Value: bson.D{
			{Key: "ratedAt", Value: -1},
			{Key: "task._id", Value: -1},
		}}},
		{{Key: "$project", Value: bson.M{
			"_id":  0,
			"task": 1,
			"evaluation": bson.M{
				"_id":     "$_id",
				"taskId":  "$taskId",
				"value":   "$value",
				"ratedAt": "$ratedAt",
			},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var ratings []models.TaskRating
	if err := cursor.All(ctx, &ratings); err != nil {
		return nil, err
	}

	if ratings == nil {
		ratings = []models.TaskRating{}
	}

	return ratings, nil
}
