package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/laiba-javaid/Notes-Management-System-laiba-javaid-mern-10pshine/apperror"
	"github.com/laiba-javaid/Notes-Management-System-laiba-javaid-mern-10pshine/model"
	"github.com/laiba-javaid/Notes-Management-System-laiba-javaid-mern-10pshine/utils"
)

// NoteRepository is the slice of the note store the service needs. Every
// method that touches an existing note filters by (noteID, ownerID).
type NoteRepository interface {
	Insert(ctx context.Context, note *model.Note) error
	FindByUser(ctx context.Context, userID string) ([]*model.Note, error)
	Update(ctx context.Context, noteID, userID string, changes model.NoteChanges) (*model.Note, error)
	Delete(ctx context.Context, noteID, userID string) error
	Search(ctx context.Context, userID, query string) ([]*model.Note, error)
}

// NoteService owns the note CRUD + search semantics. ownerID always comes
// from the verified token identity, never from the request body or query.
type NoteService struct {
	Notes NoteRepository
}

func (s *NoteService) Add(ctx context.Context, ownerID, title, content string, tags []string) (*model.Note, error) {
	if title == "" {
		return nil, fmt.Errorf("Title is required: %w", apperror.ErrValidation)
	}
	if content == "" {
		return nil, fmt.Errorf("Content is required: %w", apperror.ErrValidation)
	}
	if tags == nil {
		tags = []string{}
	}

	note := &model.Note{
		ID:        uuid.NewString(),
		UserID:    ownerID,
		Title:     title,
		Content:   content,
		Tags:      tags,
		IsPinned:  false,
		CreatedAt: time.Now(),
	}

	if err := s.Notes.Insert(ctx, note); err != nil {
		return nil, err
	}

	utils.TrackNoteOperation("add")
	return note, nil
}

// Edit applies a partial update. Empty-string title or content counts as
// "not supplied", matching the behavior clients have always seen; a non-nil
// empty tag list is a real update.
func (s *NoteService) Edit(ctx context.Context, ownerID, noteID string, changes model.NoteChanges) (*model.Note, error) {
	if changes.Title != nil && *changes.Title == "" {
		changes.Title = nil
	}
	if changes.Content != nil && *changes.Content == "" {
		changes.Content = nil
	}

	if changes.Title == nil && changes.Content == nil && changes.Tags == nil && changes.IsPinned == nil {
		return nil, fmt.Errorf("No Changes Provided, At least one field is required!: %w", apperror.ErrValidation)
	}

	note, err := s.Notes.Update(ctx, noteID, ownerID, changes)
	if err != nil {
		return nil, err
	}

	utils.TrackNoteOperation("edit")
	return note, nil
}

// List returns all of the owner's notes, pinned first. The store already
// orders them that way; the stable re-sort keeps the guarantee independent
// of the backing implementation.
func (s *NoteService) List(ctx context.Context, ownerID string) ([]*model.Note, error) {
	notes, err := s.Notes.FindByUser(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].IsPinned && !notes[j].IsPinned
	})
	return notes, nil
}

func (s *NoteService) Delete(ctx context.Context, ownerID, noteID string) error {
	if err := s.Notes.Delete(ctx, noteID, ownerID); err != nil {
		return err
	}
	utils.TrackNoteOperation("delete")
	return nil
}

// SetPinned coerces a missing flag to false rather than rejecting it.
func (s *NoteService) SetPinned(ctx context.Context, ownerID, noteID string, isPinned *bool) (*model.Note, error) {
	pinned := isPinned != nil && *isPinned

	note, err := s.Notes.Update(ctx, noteID, ownerID, model.NoteChanges{IsPinned: &pinned})
	if err != nil {
		return nil, err
	}

	utils.TrackNoteOperation("pin")
	return note, nil
}

func (s *NoteService) Search(ctx context.Context, ownerID, query string) ([]*model.Note, error) {
	if query == "" {
		return nil, fmt.Errorf("Search Query is required: %w", apperror.ErrValidation)
	}

	notes, err := s.Notes.Search(ctx, ownerID, query)
	if err != nil {
		return nil, err
	}

	utils.TrackNoteOperation("search")
	return notes, nil
}
