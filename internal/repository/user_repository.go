// Package repository provides data access operations for the application.
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

// UserRepository defines the interface for user data operations.
// Team membership lives on the user document as the teamId/roleInTeam pair,
// so membership mutations go through this repository.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.User, error)
	FindByTeamID(ctx context.Context, teamID primitive.ObjectID) ([]models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, id primitive.ObjectID, update *models.UpdateUserRequest) (*models.User, error)
	SetMembership(ctx context.Context, userID primitive.ObjectID, teamID *primitive.ObjectID, role string) error
	UnlinkTeam(ctx context.Context, teamID primitive.ObjectID) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// userRepository implements UserRepository using MongoDB
type userRepository struct {
	collection *mongo.Collection
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *mongo.Database) UserRepository {
	return &userRepository{
		collection: db.Collection("users"),
	}
}

// normalizeRole substitutes the employee default for missing roles.
// Historical rows may predate the default, so this happens on every read
// path rather than relying on a stored default.
func normalizeRole(u *models.User) {
	if u.RoleInTeam == "" {
		u.RoleInTeam = models.RoleEmployee
	}
}

// Create inserts a new user into the database
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	// Check if user with email already exists
	existing, _ := r.FindByEmail(ctx, user.Email)
	if existing != nil {
		return apperrors.ErrUserAlreadyExists
	}

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.RoleInTeam == "" {
		user.RoleInTeam = models.RoleEmployee
	}

	result, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		return err
	}

	user.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByID finds a user by their ID
func (r *userRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User

	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	normalizeRole(&user)
	return &user, nil
}

// FindByEmail finds a user by their email
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User

	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	normalizeRole(&user)
	return &user, nil
}

// FindByIDs returns all users whose IDs are in ids. Missing IDs are simply
// absent from the result; callers diff against the input to report them.
func (r *userRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.User, error) {
	if len(ids) == 0 {
		return []models.User{}, nil
	}

	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}

	if users == nil {
		users = []models.User{}
	}
	for i := range users {
		normalizeRole(&users[i])
	}

	return users, nil
}

// FindByTeamID returns the roster of a team ordered by user ID.
func (r *userRepository) FindByTeamID(ctx context.Context, teamID primitive.ObjectID) ([]models.User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"teamId": teamID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}

	if users == nil {
		users = []models.User{}
	}
	for i := range users {
		normalizeRole(&users[i])
	}

	return users, nil
}

// FindAll returns all users
func (r *userRepository) FindAll(ctx context.Context) ([]models.User, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}

	// Return empty slice instead of nil
	if users == nil {
		users = []models.User{}
	}
	for i := range users {
		normalizeRole(&users[i])
	}

	return users, nil
}

// Update updates a user's profile information
func (r *userRepository) Update(ctx context.Context, id primitive.ObjectID, update *models.UpdateUserRequest) (*models.User, error) {
	updateDoc := bson.M{"updatedAt": time.Now()}

	if update.Email != nil {
		// Check if new email is already taken by another user
		existing, _ := r.FindByEmail(ctx, *update.Email)
		if existing != nil && existing.ID != id {
			return nil, apperrors.ErrUserAlreadyExists
		}
		updateDoc["email"] = *update.Email
	}
	if update.Name != nil {
		updateDoc["name"] = *update.Name
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updateDoc})
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, apperrors.ErrUserNotFound
	}

	return r.FindByID(ctx, id)
}

// SetMembership writes a user's teamId/roleInTeam pair. A nil teamID unlinks
// the user and resets the role to employee.
func (r *userRepository) SetMembership(ctx context.Context, userID primitive.ObjectID, teamID *primitive.ObjectID, role string) error {
	var update bson.M
	if teamID == nil {
		update = bson.M{
			"$set":   bson.M{"roleInTeam": models.RoleEmployee, "updatedAt": time.Now()},
			"$unset": bson.M{"teamId": ""},
		}
	} else {
		if role == "" {
			role = models.RoleEmployee
		}
		update = bson.M{
			"$set": bson.M{"teamId": *teamID, "roleInTeam": role, "updatedAt": time.Now()},
		}
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": userID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// UnlinkTeam detaches every member of a team and resets their roles.
// Used when deleting a team.
func (r *userRepository) UnlinkTeam(ctx context.Context, teamID primitive.ObjectID) error {
	_, err := r.collection.UpdateMany(ctx, bson.M{"teamId": teamID}, bson.M{
		"$set":   bson.M{"roleInTeam": models.RoleEmployee, "updatedAt": time.Now()},
		"$unset": bson.M{"teamId": ""},
	})
	return err
}

// Delete removes a user
func (r *userRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}
