package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/laiba-javaid/Notes-Management-System-laiba-javaid-mern-10pshine/apperror"
	"github.com/laiba-javaid/Notes-Management-System-laiba-javaid-mern-10pshine/model"
	"github.com/laiba-javaid/Notes-Management-System-laiba-javaid-mern-10pshine/utils"
)

type UserRepo struct {
	MongoCollection *mongo.Collection
}

func NewUserRepo(client *mongo.Client, cfg *utils.Config) *UserRepo {
	return &UserRepo{
		MongoCollection: client.Database(cfg.MongoDB).Collection(cfg.UsersCollection),
	}
}

func (r *UserRepo) Insert(ctx context.Context, user *model.User) error {
	timer := utils.TrackDBOperation("insert", "users")
	defer timer.ObserveDuration()

	if _, err := r.MongoCollection.InsertOne(ctx, user); err != nil {
		// The unique email index catches the race two concurrent
		// registrations can win past the service-level existence check.
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("User already exists: %w", apperror.ErrConflict)
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// FindByEmail returns (nil, nil) when no user has that email.
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	timer := utils.TrackDBOperation("find", "users")
	defer timer.ObserveDuration()

	var user model.User
	err := r.MongoCollection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return &user, nil
}

// FindByID returns (nil, nil) when the user does not exist.
func (r *UserRepo) FindByID(ctx context.Context, userID string) (*model.User, error) {
	timer := utils.TrackDBOperation("find", "users")
	defer timer.ObserveDuration()

	var user model.User
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user by id: %w", err)
	}
	return &user, nil
}
