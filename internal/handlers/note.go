package handlers

import (
	"NoteKeeper/internal/repo"
	"NoteKeeper/internal/service"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// NoteHandler — CRUD заметок поверх NoteService.
type NoteHandler struct {
	NoteService *service.NoteService
	Logger      *zap.SugaredLogger
}

// NewNoteHandler создаёт хендлер заметок
func NewNoteHandler(noteService *service.NoteService, logger *zap.SugaredLogger) *NoteHandler {
	return &NoteHandler{NoteService: noteService, Logger: logger}
}

// CreateNoteRequest — тело POST /notes.
type CreateNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// UpdateNoteRequest — тело PUT /notes/{id}. Отсутствующее или пустое поле не меняется.
type UpdateNoteRequest struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
}

// List GET /notes
func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.NoteService.List(r.Context())
	if err != nil {
		h.writeServiceError(w, "List", err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// Create POST /notes
func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Create: invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	id, err := h.NoteService.Create(r.Context(), req.Title, req.Content)
	if err != nil {
		h.writeServiceError(w, "Create", err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

// Get GET /notes/{id}
func (h *NoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := noteID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	note, err := h.NoteService.Get(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, "Get", err)
		return
	}
	writeJSON(w, http.StatusOK, note)
}

// Update PUT /notes/{id}
func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := noteID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	var req UpdateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Update: invalid request body", "id", id, "error", err)
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if err := h.NoteService.Update(r.Context(), id, req.Title, req.Content); err != nil {
		h.writeServiceError(w, "Update", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// Delete DELETE /notes/{id}
func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := noteID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	if err := h.NoteService.Delete(r.Context(), id); err != nil {
		h.writeServiceError(w, "Delete", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// writeServiceError маппит ошибки сервиса в HTTP-статусы.
// Сбои хранилища уже залогированы сервисом.
func (h *NoteHandler) writeServiceError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, repo.ErrValidation):
		writeError(w, http.StatusBadRequest, "title is required")
	case errors.Is(err, repo.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	default:
		h.Logger.Debugw(op+": internal error", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

// noteID разбирает {id}; нецелый id трактуется как несуществующая заметка.
func noteID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
