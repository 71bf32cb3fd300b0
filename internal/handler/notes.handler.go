package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"notes-auth/internal/middleware"
	"notes-auth/internal/usecase"
	"notes-auth/pkg/response"
	"notes-auth/pkg/xerrors"

	"github.com/go-chi/chi/v5"
)

type NotesHandler struct {
	uc *usecase.NoteUsecase
}

func NewNotesHandler(uc *usecase.NoteUsecase) *NotesHandler {
	return &NotesHandler{uc: uc}
}

func writeNoteError(w http.ResponseWriter, err error) {
	if errors.Is(err, xerrors.ErrNoteNotFound) {
		response.Error(w, http.StatusNotFound, "note_not_found", "Note not found")
		return
	}
	response.Error(w, http.StatusInternalServerError, "internal_error", "Internal server error")
}

func validateNoteRequest(req NoteRequest) string {
	switch {
	case req.Title == "":
		return "Note title is required"
	case len(req.Title) > 100:
		return "Title cannot exceed 100 characters"
	case req.Content == "":
		return "Note content is required"
	case len(req.Content) > 5000:
		return "Content cannot exceed 5000 characters"
	}
	return ""
}

// List returns a page of the caller's notes.
// GET /api/v1/notes?page=&limit=
func (h *NotesHandler) List(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFromContext(r.Context())

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	notes, pagination, err := h.uc.List(r.Context(), user.ID, page, limit)
	if err != nil {
		writeNoteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{
		"notes":      notes,
		"pagination": pagination,
	})
}

// Search returns a page of the caller's notes matching q in title or content.
// GET /api/v1/notes/search?q=&page=&limit=
func (h *NotesHandler) Search(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFromContext(r.Context())

	query := r.URL.Query().Get("q")
	if query == "" {
		response.Error(w, http.StatusBadRequest, "validation_error", "Search query is required")
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	notes, pagination, err := h.uc.Search(r.Context(), user.ID, query, page, limit)
	if err != nil {
		writeNoteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{
		"notes":       notes,
		"searchQuery": query,
		"pagination":  pagination,
	})
}

// Stats returns aggregate counts over the caller's notes.
// GET /api/v1/notes/stats
func (h *NotesHandler) Stats(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFromContext(r.Context())

	stats, err := h.uc.Stats(r.Context(), user.ID)
	if err != nil {
		writeNoteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, stats)
}

// Get returns one of the caller's notes.
// GET /api/v1/notes/{id}
func (h *NotesHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFromContext(r.Context())

	note, err := h.uc.Get(r.Context(), user.ID, chi.URLParam(r, "id"))
	if err != nil {
		writeNoteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{"note": note})
}

// Create stores a new note for the caller.
// POST /api/v1/notes
func (h *NotesHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFromContext(r.Context())

	var req NoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "validation_error", "Invalid request body")
		return
	}
	if msg := validateNoteRequest(req); msg != "" {
		response.Error(w, http.StatusBadRequest, "validation_error", msg)
		return
	}

	note, err := h.uc.Create(r.Context(), user.ID, req.Title, req.Content)
	if err != nil {
		writeNoteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, map[string]interface{}{"note": note})
}

// Update rewrites one of the caller's notes.
// PUT /api/v1/notes/{id}
func (h *NotesHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFromContext(r.Context())

	var req NoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "validation_error", "Invalid request body")
		return
	}
	if msg := validateNoteRequest(req); msg != "" {
		response.Error(w, http.StatusBadRequest, "validation_error", msg)
		return
	}

	note, err := h.uc.Update(r.Context(), user.ID, chi.URLParam(r, "id"), req.Title, req.Content)
	if err != nil {
		writeNoteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{"note": note})
}

// Delete removes one of the caller's notes.
// DELETE /api/v1/notes/{id}
func (h *NotesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFromContext(r.Context())

	if err := h.uc.Delete(r.Context(), user.ID, chi.URLParam(r, "id")); err != nil {
		writeNoteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Note deleted successfully"})
}

// DeleteMany removes a batch of the caller's notes. Ids that do not exist or
// belong to someone else are skipped, not errors.
// DELETE /api/v1/notes
func (h *NotesHandler) DeleteMany(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFromContext(r.Context())

	var req DeleteNotesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "validation_error", "Invalid request body")
		return
	}
	if len(req.NoteIDs) == 0 {
		response.Error(w, http.StatusBadRequest, "validation_error", "Please provide an array of note IDs to delete")
		return
	}

	deleted, err := h.uc.DeleteMany(r.Context(), user.ID, req.NoteIDs)
	if err != nil {
		writeNoteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{"deletedCount": deleted})
}
