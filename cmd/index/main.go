package main

import (
	"context"
	"log"
	"time"

	"teamtrack/internal/config"
	"teamtrack/internal/database"
	"teamtrack/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ciCollation matches the collation used by the name/title uniqueness probes
// in the repositories: case differences do not distinguish values.
var ciCollation = &options.Collation{Locale: "en", Strength: 2}

func main() {
	log.Println("Starting migration...")

	cfg := config.Load()

	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	createIndexes(ctx, mongoDB.Database)

	log.Println("Migration completed successfully!")
}

func createIndexes(ctx context.Context, db *mongo.Database) {
	// Users indexes
	createIndex(ctx, db, "users", bson.D{{Key: "email", Value: 1}}, options.Index().SetUnique(true))
	createIndex(ctx, db, "users", bson.D{{Key: "teamId", Value: 1}}, nil)

	// Teams indexes: names are unique ignoring case
	createIndex(ctx, db, "teams", bson.D{{Key: "name", Value: 1}},
		options.Index().SetUnique(true).SetCollation(ciCollation))
	createIndex(ctx, db, "teams", bson.D{{Key: "ownerId", Value: 1}}, nil)

	// Tasks indexes: names are unique per team ignoring case
	createIndex(ctx, db, "tasks", bson.D{
		{Key: "teamId", Value: 1},
		{Key: "name", Value: 1},
	}, options.Index().SetUnique(true).SetCollation(ciCollation))
	createIndex(ctx, db, "tasks", bson.D{{Key: "assigneeId", Value: 1}}, nil)

	// Task comments indexes
	createIndex(ctx, db, "task_comments", bson.D{
		{Key: "taskId", Value: 1},
		{Key: "createdAt", Value: 1},
	}, nil)

	// Meetings indexes: titles are unique per team among scheduled meetings
	// only, so canceled meetings free their title up.
	createIndex(ctx, db, "meetings", bson.D{
		{Key: "teamId", Value: 1},
		{Key: "title", Value: 1},
	}, options.Index().
		SetUnique(true).
		SetCollation(ciCollation).
		SetPartialFilterExpression(bson.D{{Key: "status", Value: models.MeetingScheduled}}))
	createIndex(ctx, db, "meetings", bson.D{
		{Key: "teamId", Value: 1},
		{Key: "status", Value: 1},
		{Key: "startsAt", Value: 1},
	}, nil)

	// Evaluations indexes: one rating per task
	createIndex(ctx, db, "evaluations", bson.D{{Key: "taskId", Value: 1}},
		options.Index().SetUnique(true))
	createIndex(ctx, db, "evaluations", bson.D{{Key: "ratedAt", Value: 1}}, nil)

	// Refresh tokens indexes
	createIndex(ctx, db, "refresh_tokens", bson.D{{Key: "userId", Value: 1}}, nil)
	createIndex(ctx, db, "refresh_tokens", bson.D{{Key: "expiresAt", Value: 1}}, nil)
}

func createIndex(ctx context.Context, db *mongo.Database, collection string, keys bson.D, opts *options.IndexOptions) {
	indexModel := mongo.IndexModel{
		Keys:    keys,
		Options: opts,
	}

	name, err := db.Collection(collection).Indexes().CreateOne(ctx, indexModel)
	if err != nil {
		log.Printf("Warning: Failed to create index on %s: %v", collection, err)
		return
	}

	log.Printf("Created index %s on %s", name, collection)
}
