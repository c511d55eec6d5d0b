package main

import (
	"context"
	"log"
	"os"
	"time"

	"teamtrack/internal/config"
	"teamtrack/internal/database"
	"teamtrack/internal/models"
	"teamtrack/pkg/auth"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SeedUser represents a user document for seeding.
type SeedUser struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty"`
	Email       string              `bson:"email"`
	Password    string              `bson:"password"`
	Name        string              `bson:"name"`
	IsSuperuser bool                `bson:"isSuperuser"`
	TeamID      *primitive.ObjectID `bson:"teamId,omitempty"`
	RoleInTeam  string              `bson:"roleInTeam"`
	CreatedAt   time.Time           `bson:"createdAt"`
	UpdatedAt   time.Time           `bson:"updatedAt"`
}

func main() {
	log.Println("Starting seed...")

	cfg := config.Load()

	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	ctx := context.Background()

	seedSuperuser(ctx, mongoDB.Database)
	teamID, userIDs := seedTeam(ctx, mongoDB.Database)
	seedTasks(ctx, mongoDB.Database, teamID, userIDs)
	seedMeetings(ctx, mongoDB.Database, teamID, userIDs)

	log.Println("Seed completed successfully!")
}

// seedSuperuser upserts the bootstrap superuser account. Credentials come
// from the environment so production deployments never ship a default.
func seedSuperuser(ctx context.Context, db *mongo.Database) {
	email := os.Getenv("SUPERUSER_EMAIL")
	if email == "" {
		email = "admin@example.com"
	}
	password := os.Getenv("SUPERUSER_PASSWORD")
	if password == "" {
		password = "changeme"
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		log.Fatalf("Failed to hash superuser password: %v", err)
	}

	now := time.Now()
	_, err = db.Collection("users").UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{
			"$set": bson.M{
				"password":    hashed,
				"name":        "Administrator",
				"isSuperuser": true,
				"updatedAt":   now,
			},
			"$setOnInsert": bson.M{
				"roleInTeam": models.RoleEmployee,
				"createdAt":  now,
			},
		},
		mongoUpsert(),
	)
	if err != nil {
		log.Fatalf("Failed to seed superuser: %v", err)
	}

	log.Printf("Seeded superuser %s", email)
}

func seedTeam(ctx context.Context, db *mongo.Database) (primitive.ObjectID, []primitive.ObjectID) {
	users := db.Collection("users")
	teams := db.Collection("teams")

	// Clear demo data
	_, _ = users.DeleteMany(ctx, bson.M{"email": bson.M{"$in": []string{"alice@example.com", "bob@example.com", "carol@example.com"}}})
	_, _ = teams.DeleteMany(ctx, bson.M{"name": "Platform"})

	now := time.Now()
	teamID := primitive.NewObjectID()

	password, _ := auth.HashPassword("password123")

	seedUsers := []interface{}{
		SeedUser{
			Email:      "alice@example.com",
			Password:   password,
			Name:       "Alice Johnson",
			TeamID:     &teamID,
			RoleInTeam: models.RoleAdmin,
			CreatedAt:  now,
			UpdatedAt:  now,
		},
		SeedUser{
			Email:      "bob@example.com",
			Password:   password,
			Name:       "Bob Smith",
			TeamID:     &teamID,
			RoleInTeam: models.RoleManager,
			CreatedAt:  now,
			UpdatedAt:  now,
		},
		SeedUser{
			Email:      "carol@example.com",
			Password:   password,
			Name:       "Carol Davis",
			TeamID:     &teamID,
			RoleInTeam: models.RoleEmployee,
			CreatedAt:  now,
			UpdatedAt:  now,
		},
	}

	result, err := users.InsertMany(ctx, seedUsers)
	if err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}

	var userIDs []primitive.ObjectID
	for _, id := range result.InsertedIDs {
		userIDs = append(userIDs, id.(primitive.ObjectID))
	}

	_, err = teams.InsertOne(ctx, models.Team{
		ID:        teamID,
		Name:      "Platform",
		OwnerID:   &userIDs[0],
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		log.Fatalf("Failed to seed team: %v", err)
	}

	log.Printf("Seeded team Platform with %d members", len(userIDs))
	return teamID, userIDs
}

func seedTasks(ctx context.Context, db *mongo.Database, teamID primitive.ObjectID, userIDs []primitive.ObjectID) {
	collection := db.Collection("tasks")
	_, _ = collection.DeleteMany(ctx, bson.M{"teamId": teamID})

	now := time.Now()
	deadline := now.Add(72 * time.Hour)

	tasks := []interface{}{
		models.Task{
			ID:          primitive.NewObjectID(),
			TeamID:      teamID,
			AuthorID:    userIDs[0],
			AssigneeID:  &userIDs[2],
			Name:        "Fix roster pagination",
			Description: "Page two of the roster repeats the first entry.",
			DeadlineAt:  &deadline,
			Status:      models.StatusInProgress,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		models.Task{
			ID:          primitive.NewObjectID(),
			TeamID:      teamID,
			AuthorID:    userIDs[1],
			AssigneeID:  &userIDs[2],
			Name:        "Write onboarding guide",
			Description: "Document the local setup for new hires.",
			Status:      models.StatusDone,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}

	result, err := collection.InsertMany(ctx, tasks)
	if err != nil {
		log.Fatalf("Failed to seed tasks: %v", err)
	}

	log.Printf("Seeded %d tasks", len(result.InsertedIDs))
}

func seedMeetings(ctx context.Context, db *mongo.Database, teamID primitive.ObjectID, userIDs []primitive.ObjectID) {
	collection := db.Collection("meetings")
	_, _ = collection.DeleteMany(ctx, bson.M{"teamId": teamID})

	now := time.Now()
	start := now.Add(24 * time.Hour).Truncate(time.Hour)

	meetings := []interface{}{
		models.Meeting{
			ID:           primitive.NewObjectID(),
			TeamID:       teamID,
			Title:        "Sprint planning",
			Description:  "Plan the next sprint",
			StartsAt:     start,
			EndsAt:       start.Add(time.Hour),
			Status:       models.MeetingScheduled,
			Participants: userIDs,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		models.Meeting{
			ID:           primitive.NewObjectID(),
			TeamID:       teamID,
			Title:        "Retro",
			Description:  "Sprint retrospective",
			StartsAt:     start.Add(time.Hour),
			EndsAt:       start.Add(2 * time.Hour),
			Status:       models.MeetingScheduled,
			Participants: userIDs[:2],
			CreatedAt:    now,
			UpdatedAt:    now,
		},
	}

	result, err := collection.InsertMany(ctx, meetings)
	if err != nil {
		log.Fatalf("Failed to seed meetings: %v", err)
	}

	log.Printf("Seeded %d meetings", len(result.InsertedIDs))
}

func mongoUpsert() *options.UpdateOptions {
	return options.Update().SetUpsert(true)
}
