package repository

import (
	"context"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/laiba-javaid/Notes-Management-System-laiba-javaid-mern-10pshine/apperror"
	"github.com/laiba-javaid/Notes-Management-System-laiba-javaid-mern-10pshine/model"
	"github.com/laiba-javaid/Notes-Management-System-laiba-javaid-mern-10pshine/utils"
)

type NoteRepo struct {
	MongoCollection *mongo.Collection
}

func NewNoteRepo(client *mongo.Client, cfg *utils.Config) *NoteRepo {
	return &NoteRepo{
		MongoCollection: client.Database(cfg.MongoDB).Collection(cfg.NotesCollection),
	}
}

func (r *NoteRepo) Insert(ctx context.Context, note *model.Note) error {
	timer := utils.TrackDBOperation("insert", "notes")
	defer timer.ObserveDuration()

	if _, err := r.MongoCollection.InsertOne(ctx, note); err != nil {
		return fmt.Errorf("failed to insert note: %w", err)
	}
	return nil
}

// FindByUser returns all of a user's notes, pinned first, newest first
// within each group.
func (r *NoteRepo) FindByUser(ctx context.Context, userID string) ([]*model.Note, error) {
	timer := utils.TrackDBOperation("find", "notes")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{
		{Key: "is_pinned", Value: -1},
		{Key: "created_at", Value: -1},
	})

	cursor, err := r.MongoCollection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer cursor.Close(ctx)

	notes := []*model.Note{}
	if err := cursor.All(ctx, &notes); err != nil {
		return nil, fmt.Errorf("failed to decode notes: %w", err)
	}
	return notes, nil
}

// Update applies the supplied changes to the note matching (noteID, userID)
// and returns the updated document. A miss is ErrNotFound whether the note
// does not exist or belongs to someone else. Last write wins; there is no
// optimistic concurrency token.
func (r *NoteRepo) Update(ctx context.Context, noteID, userID string, changes model.NoteChanges) (*model.Note, error) {
	timer := utils.TrackDBOperation("update", "notes")
	defer timer.ObserveDuration()

	set := bson.M{}
	if changes.Title != nil {
		set["title"] = *changes.Title
	}
	if changes.Content != nil {
		set["content"] = *changes.Content
	}
	if changes.Tags != nil {
		set["tags"] = *changes.Tags
	}
	if changes.IsPinned != nil {
		set["is_pinned"] = *changes.IsPinned
	}

	filter := bson.M{"_id": noteID, "user_id": userID}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var note model.Note
	err := r.MongoCollection.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&note)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("Note not found: %w", apperror.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update note: %w", err)
	}
	return &note, nil
}

func (r *NoteRepo) Delete(ctx context.Context, noteID, userID string) error {
	timer := utils.TrackDBOperation("delete", "notes")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": noteID, "user_id": userID})
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("Note not found: %w", apperror.ErrNotFound)
	}
	return nil
}

// Search matches query as a case-insensitive substring of title or content.
// The query is quoted so regex metacharacters in user input match literally.
func (r *NoteRepo) Search(ctx context.Context, userID, query string) ([]*model.Note, error) {
	timer := utils.TrackDBOperation("find", "notes")
	defer timer.ObserveDuration()

	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
	filter := bson.M{
		"user_id": userID,
		"$or": []bson.M{
			{"title": bson.M{"$regex": pattern}},
			{"content": bson.M{"$regex": pattern}},
		},
	}

	cursor, err := r.MongoCollection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to search notes: %w", err)
	}
	defer cursor.Close(ctx)

	notes := []*model.Note{}
	if err := cursor.All(ctx, &notes); err != nil {
		return nil, fmt.Errorf("failed to decode notes: %w", err)
	}
	return notes, nil
}
