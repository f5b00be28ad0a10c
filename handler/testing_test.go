package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/laiba-javaid/Notes-Management-System-laiba-javaid-mern-10pshine/apperror"
	"github.com/laiba-javaid/Notes-Management-System-laiba-javaid-mern-10pshine/middleware"
	"github.com/laiba-javaid/Notes-Management-System-laiba-javaid-mern-10pshine/model"
	"github.com/laiba-javaid/Notes-Management-System-laiba-javaid-mern-10pshine/services"
	"github.com/laiba-javaid/Notes-Management-System-laiba-javaid-mern-10pshine/usecase"
)

// In-memory repositories with the same contract as the Mongo ones, so the
// full handler -> service -> store path runs without a database.

type fakeUserRepo struct {
	users map[string]*model.User
}

func (f *fakeUserRepo) Insert(_ context.Context, user *model.User) error {
	if _, exists := f.users[user.Email]; exists {
		return fmt.Errorf("User already exists: %w", apperror.ErrConflict)
	}
	f.users[user.Email] = user
	return nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	return f.users[email], nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, userID string) (*model.User, error) {
	for _, user := range f.users {
		if user.UserID == userID {
			return user, nil
		}
	}
	return nil, nil
}

type fakeNoteRepo struct {
	notes []*model.Note
}

func (f *fakeNoteRepo) Insert(_ context.Context, note *model.Note) error {
	clone := *note
	f.notes = append(f.notes, &clone)
	return nil
}

func (f *fakeNoteRepo) FindByUser(_ context.Context, userID string) ([]*model.Note, error) {
	result := []*model.Note{}
	for _, note := range f.notes {
		if note.UserID == userID {
			clone := *note
			result = append(result, &clone)
		}
	}
	return result, nil
}

func (f *fakeNoteRepo) Update(_ context.Context, noteID, userID string, changes model.NoteChanges) (*model.Note, error) {
	for _, note := range f.notes {
		if note.ID != noteID || note.UserID != userID {
			continue
		}
		if changes.Title != nil {
			note.Title = *changes.Title
		}
		if changes.Content != nil {
			note.Content = *changes.Content
		}
		if changes.Tags != nil {
			note.Tags = *changes.Tags
		}
		if changes.IsPinned != nil {
			note.IsPinned = *changes.IsPinned
		}
		clone := *note
		return &clone, nil
	}
	return nil, fmt.Errorf("Note not found: %w", apperror.ErrNotFound)
}

func (f *fakeNoteRepo) Delete(_ context.Context, noteID, userID string) error {
	for i, note := range f.notes {
		if note.ID == noteID && note.UserID == userID {
			f.notes = append(f.notes[:i], f.notes[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("Note not found: %w", apperror.ErrNotFound)
}

func (f *fakeNoteRepo) Search(_ context.Context, userID, query string) ([]*model.Note, error) {
	needle := strings.ToLower(query)
	result := []*model.Note{}
	for _, note := range f.notes {
		if note.UserID != userID {
			continue
		}
		if strings.Contains(strings.ToLower(note.Title), needle) ||
			strings.Contains(strings.ToLower(note.Content), needle) {
			clone := *note
			result = append(result, &clone)
		}
	}
	return result, nil
}

// newTestRouter wires the real handlers, services and middleware over the
// in-memory repositories, mirroring the route table in main.
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	tokens := services.NewTokenManager("test_secret_key", time.Hour)
	logger := zap.NewNop()

	authHandler := NewAuthHandler(&usecase.AuthService{
		Users:  &fakeUserRepo{users: make(map[string]*model.User)},
		Tokens: tokens,
	}, logger)
	noteHandler := NewNoteHandler(&usecase.NoteService{
		Notes: &fakeNoteRepo{},
	}, logger)

	router := gin.New()
	router.POST("/create-account", authHandler.CreateAccount)
	router.POST("/login", authHandler.Login)

	protected := router.Group("/")
	protected.Use(middleware.AuthMiddleware(tokens))
	{
		protected.GET("/get-user", authHandler.GetUser)
		protected.POST("/add-note", noteHandler.AddNote)
		protected.PUT("/edit-note/:noteId", noteHandler.EditNote)
		protected.GET("/get-all-notes", noteHandler.GetAllNotes)
		protected.DELETE("/delete-note/:noteId", noteHandler.DeleteNote)
		protected.PUT("/update-note-pinned/:noteId", noteHandler.UpdateNotePinned)
		protected.GET("/search-notes", noteHandler.SearchNotes)
	}

	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func parseBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

// registerUser creates an account and returns its access token.
func registerUser(t *testing.T, router *gin.Engine, email, password, fullName string) string {
	t.Helper()

	body := fmt.Sprintf(`{"email":%q,"password":%q,"fullName":%q}`, email, password, fullName)
	w := doRequest(t, router, http.MethodPost, "/create-account", "", body)
	require.Equal(t, http.StatusCreated, w.Code)

	token, ok := parseBody(t, w)["accessToken"].(string)
	require.True(t, ok, "response missing accessToken")
	return token
}
