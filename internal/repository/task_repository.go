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

// TaskRepository defines the interface for task data operations. All lookups
// are scoped to a team: a task ID outside its team reads as not found.
type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	FindByTeamAndID(ctx context.Context, teamID, taskID primitive.ObjectID) (*models.Task, error)
	FindByTeamID(ctx context.Context, teamID primitive.ObjectID) ([]models.Task, error)
	// NameExists reports whether another task in the team already uses name
	// (case-insensitive). excludeID skips the task being renamed.
	NameExists(ctx context.Context, teamID primitive.ObjectID, name string, excludeID *primitive.ObjectID) (bool, error)
	Update(ctx context.Context, task *models.Task) error
	Delete(ctx context.Context, teamID, taskID primitive.ObjectID) error
}

// taskRepository implements TaskRepository using MongoDB.
type taskRepository struct {
	collection *mongo.Collection
}

// NewTaskRepository creates a new TaskRepository.
func NewTaskRepository(db *mongo.Database) TaskRepository {
	return &taskRepository{
		collection: db.Collection("tasks"),
	}
}

// Create inserts a new task. Status is always open on creation.
func (r *taskRepository) Create(ctx context.Context, task *models.Task) error {
	task.ID = primitive.NewObjectID()
	task.Status = models.StatusOpen
	task.CreatedAt = time.Now()
	task.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, task)
	return err
}

// FindByTeamAndID retrieves a task by ID within a team.
func (r *taskRepository) FindByTeamAndID(ctx context.Context, teamID, taskID primitive.ObjectID) (*models.Task, error) {
	filter := bson.M{"_id": taskID, "teamId": teamID}

	var task models.Task
	err := r.collection.FindOne(ctx, filter).Decode(&task)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, err
	}

	return &task, nil
}

// FindByTeamID returns all tasks of a team.
func (r *taskRepository) FindByTeamID(ctx context.Context, teamID primitive.ObjectID) ([]models.Task, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"teamId": teamID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var tasks []models.Task
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, err
	}

	if tasks == nil {
		tasks = []models.Task{}
	}

	return tasks, nil
}

// NameExists probes for a case-insensitive name collision within a team.
func (r *taskRepository) NameExists(ctx context.Context, teamID primitive.ObjectID, name string, excludeID *primitive.ObjectID) (bool, error) {
	filter := bson.M{"teamId": teamID, "name": name}
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

// Update persists the mutable fields of a task.
func (r *taskRepository) Update(ctx context.Context, task *models.Task) error {
	task.UpdatedAt = time.Now()

	update := bson.M{
		"$set": bson.M{
			"name":        task.Name,
			"description": task.Description,
			"deadlineAt":  task.DeadlineAt,
			"assigneeId":  task.AssigneeID,
			"status":      task.Status,
			"updatedAt":   task.UpdatedAt,
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": task.ID, "teamId": task.TeamID}, update)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return apperrors.ErrTaskNotFound
	}

	return nil
}

// Delete removes a task from a team.
func (r *taskRepository) Delete(ctx context.Context, teamID, taskID primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": taskID, "teamId": teamID})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return apperrors.ErrTaskNotFound
	}

	return nil
}
