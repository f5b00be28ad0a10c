package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/laiba-javaid/Notes-Management-System-laiba-javaid-mern-10pshine/dto"
	"github.com/laiba-javaid/Notes-Management-System-laiba-javaid-mern-10pshine/middleware"
	"github.com/laiba-javaid/Notes-Management-System-laiba-javaid-mern-10pshine/model"
	"github.com/laiba-javaid/Notes-Management-System-laiba-javaid-mern-10pshine/usecase"
	"github.com/laiba-javaid/Notes-Management-System-laiba-javaid-mern-10pshine/utils"
)

type NoteHandler struct {
	Notes  *usecase.NoteService
	Logger *zap.Logger
}

func NewNoteHandler(notes *usecase.NoteService, logger *zap.Logger) *NoteHandler {
	return &NoteHandler{Notes: notes, Logger: logger}
}

// AddNote handles POST /add-note
func (h *NoteHandler) AddNote(c *gin.Context) {
	userID := c.GetString(middleware.UserIDKey)

	var req dto.AddNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, http.StatusBadRequest, utils.BindingMessage(err))
		return
	}

	note, err := h.Notes.Add(c.Request.Context(), userID, req.Title, req.Content, req.Tags)
	if err != nil {
		utils.FailFromError(c, h.Logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"error":   false,
		"note":    note,
		"message": "Note added successfully",
	})
}

// EditNote handles PUT /edit-note/:noteId
func (h *NoteHandler) EditNote(c *gin.Context) {
	userID := c.GetString(middleware.UserIDKey)
	noteID := c.Param("noteId")

	var req dto.EditNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	changes := model.NoteChanges{
		Title:    req.Title,
		Content:  req.Content,
		Tags:     req.Tags,
		IsPinned: req.IsPinned,
	}

	note, err := h.Notes.Edit(c.Request.Context(), userID, noteID, changes)
	if err != nil {
		utils.FailFromError(c, h.Logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"error":   false,
		"note":    note,
		"message": "Note updated successfully!",
	})
}

// GetAllNotes handles GET /get-all-notes
func (h *NoteHandler) GetAllNotes(c *gin.Context) {
	userID := c.GetString(middleware.UserIDKey)

	notes, err := h.Notes.List(c.Request.Context(), userID)
	if err != nil {
		utils.FailFromError(c, h.Logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"error":   false,
		"notes":   notes,
		"message": "All Notes fetched successfully",
	})
}

// DeleteNote handles DELETE /delete-note/:noteId
func (h *NoteHandler) DeleteNote(c *gin.Context) {
	userID := c.GetString(middleware.UserIDKey)
	noteID := c.Param("noteId")

	if err := h.Notes.Delete(c.Request.Context(), userID, noteID); err != nil {
		utils.FailFromError(c, h.Logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"error":   false,
		"message": "Note deleted successfully",
	})
}

// UpdateNotePinned handles PUT /update-note-pinned/:noteId
func (h *NoteHandler) UpdateNotePinned(c *gin.Context) {
	userID := c.GetString(middleware.UserIDKey)
	noteID := c.Param("noteId")

	var req dto.UpdatePinnedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	note, err := h.Notes.SetPinned(c.Request.Context(), userID, noteID, req.IsPinned)
	if err != nil {
		utils.FailFromError(c, h.Logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"error":   false,
		"note":    note,
		"message": "Note updated successfully",
	})
}

// SearchNotes handles GET /search-notes?query=...
func (h *NoteHandler) SearchNotes(c *gin.Context) {
	userID := c.GetString(middleware.UserIDKey)
	query := c.Query("query")

	notes, err := h.Notes.Search(c.Request.Context(), userID, query)
	if err != nil {
		utils.FailFromError(c, h.Logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"error":   false,
		"notes":   notes,
		"message": "Search results fetched successfully",
	})
}
