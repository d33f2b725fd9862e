package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"notes-api/middleware"
	"notes-api/store"
)

type NoteHandler struct {
	notes *store.NoteStore
	log   *slog.Logger
}

func NewNoteHandler(notes *store.NoteStore, log *slog.Logger) *NoteHandler {
	return &NoteHandler{notes: notes, log: log}
}

type noteRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())

	var req noteRequest
	json.NewDecoder(r.Body).Decode(&req)

	noteID, err := h.notes.Create(r.Context(), userID, req.Title, req.Content)
	if err != nil {
		h.log.Error("note insert failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Note added successfully",
		"noteId":  noteID,
	})
}

func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())

	notes, err := h.notes.ListByOwner(r.Context(), userID)
	if err != nil {
		h.log.Error("note list failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"notes": notes})
}

func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())

	noteID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Note not found")
		return
	}

	var req noteRequest
	json.NewDecoder(r.Body).Decode(&req)

	if err := h.notes.Update(r.Context(), noteID, userID, req.Title, req.Content); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Note not found")
			return
		}
		h.log.Error("note update failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Note updated successfully"})
}

func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())

	noteID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Note not found")
		return
	}

	if err := h.notes.Delete(r.Context(), noteID, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Note not found")
			return
		}
		h.log.Error("note delete failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Note deleted successfully"})
}
