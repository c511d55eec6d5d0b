package repository

import (
	"context"
	"time"

	"teamtrack/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TaskCommentRepository defines the interface for task comment data operations.
type TaskCommentRepository interface {
	Create(ctx context.Context, comment *models.TaskComment) error
	FindByTaskID(ctx context.Context, taskID primitive.ObjectID) ([]models.TaskComment, error)
	DeleteAllByTaskID(ctx context.Context, taskID primitive.ObjectID) error
}

// taskCommentRepository implements TaskCommentRepository using MongoDB.
type taskCommentRepository struct {
	collection *mongo.Collection
}

// NewTaskCommentRepository creates a new TaskCommentRepository.
func NewTaskCommentRepository(db *mongo.Database) TaskCommentRepository {
	return &taskCommentRepository{
		collection: db.Collection("task_comments"),
	}
}

// Create inserts a new comment.
func (r *taskCommentRepository) Create(ctx context.Context, comment *models.TaskComment) error {
	comment.ID = primitive.NewObjectID()
	comment.CreatedAt = time.Now()
	comment.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, comment)
	return err
}

// FindByTaskID returns all comments of a task, oldest first.
func (r *taskCommentRepository) FindByTaskID(ctx context.Context, taskID primitive.ObjectID) ([]models.TaskComment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"taskId": taskID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var comments []models.TaskComment
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, err
	}

	if comments == nil {
		comments = []models.TaskComment{}
	}

	return comments, nil
}

// DeleteAllByTaskID removes all comments of a task (cascade on task delete).
func (r *taskCommentRepository) DeleteAllByTaskID(ctx context.Context, taskID primitive.ObjectID) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"taskId": taskID})
	return err
}
