package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notes-api/middleware"
	"notes-api/models"
	"notes-api/store"
)

// notesRouter mounts the note handlers behind a middleware that forces the
// authenticated user to userID, so ownership paths can be exercised without
// real tokens.
func notesRouter(userID int) *chi.Mux {
	handler := NewNoteHandler(store.NewNoteStore(testDB), testLog)

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, req.WithContext(middleware.WithUserID(req.Context(), userID)))
		})
	})
	r.Post("/notes", handler.Create)
	r.Get("/notes", handler.List)
	r.Put("/notes/{id}", handler.Update)
	r.Delete("/notes/{id}", handler.Delete)
	return r
}

func itoa(n int) string { return strconv.Itoa(n) }

func listNotes(t *testing.T, router *chi.Mux) []models.Note {
	t.Helper()
	req := httptest.NewRequest("GET", "/notes", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Notes []models.Note `json:"notes"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp.Notes
}

func TestNotesCRUD(t *testing.T) {
	resetTables(t)
	alice := registerUser(t, "alice", "password-a")
	bob := registerUser(t, "bob", "password-b")

	aliceRouter := notesRouter(alice)
	bobRouter := notesRouter(bob)

	var noteID int

	t.Run("create", func(t *testing.T) {
		req := jsonRequest(t, "POST", "/notes", map[string]string{
			"title":   "T",
			"content": "C",
		})
		rr := httptest.NewRecorder()
		aliceRouter.ServeHTTP(rr, req)

		require.Equal(t, http.StatusCreated, rr.Code)

		var resp struct {
			Message string `json:"message"`
			NoteID  int    `json:"noteId"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Note added successfully", resp.Message)
		require.Greater(t, resp.NoteID, 0)
		noteID = resp.NoteID
	})

	t.Run("list returns the created note", func(t *testing.T) {
		notes := listNotes(t, aliceRouter)
		require.Len(t, notes, 1)
		assert.Equal(t, noteID, notes[0].ID)
		assert.Equal(t, "T", *notes[0].Title)
		assert.Equal(t, "C", *notes[0].Content)
		assert.False(t, notes[0].CreatedAt.IsZero())
	})

	t.Run("other user's list stays empty", func(t *testing.T) {
		assert.Empty(t, listNotes(t, bobRouter))
	})

	t.Run("other user cannot update", func(t *testing.T) {
		req := jsonRequest(t, "PUT", "/notes/"+itoa(noteID), map[string]string{
			"title": "stolen",
		})
		rr := httptest.NewRecorder()
		bobRouter.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"error":"Note not found"}`, rr.Body.String())
	})

	t.Run("owner update", func(t *testing.T) {
		req := jsonRequest(t, "PUT", "/notes/"+itoa(noteID), map[string]string{
			"title":   "T2",
			"content": "C2",
		})
		rr := httptest.NewRecorder()
		aliceRouter.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"message":"Note updated successfully"}`, rr.Body.String())

		notes := listNotes(t, aliceRouter)
		require.Len(t, notes, 1)
		assert.Equal(t, "T2", *notes[0].Title)
	})

	t.Run("other user cannot delete", func(t *testing.T) {
		req := httptest.NewRequest("DELETE", "/notes/"+itoa(noteID), nil)
		rr := httptest.NewRecorder()
		bobRouter.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		require.Len(t, listNotes(t, aliceRouter), 1)
	})

	t.Run("owner delete", func(t *testing.T) {
		req := httptest.NewRequest("DELETE", "/notes/"+itoa(noteID), nil)
		rr := httptest.NewRecorder()
		aliceRouter.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"message":"Note deleted successfully"}`, rr.Body.String())
		assert.Empty(t, listNotes(t, aliceRouter))
	})

	t.Run("update of deleted note", func(t *testing.T) {
		req := jsonRequest(t, "PUT", "/notes/"+itoa(noteID), map[string]string{
			"title": "gone",
		})
		rr := httptest.NewRecorder()
		aliceRouter.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("non-numeric id behaves as not found", func(t *testing.T) {
		req := httptest.NewRequest("DELETE", "/notes/abc", nil)
		rr := httptest.NewRecorder()
		aliceRouter.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestCreateNoteWithoutBodyFields(t *testing.T) {
	resetTables(t)
	alice := registerUser(t, "alice", "password-a")
	router := notesRouter(alice)

	req := jsonRequest(t, "POST", "/notes", map[string]string{})
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)

	notes := listNotes(t, router)
	require.Len(t, notes, 1)
	assert.Nil(t, notes[0].Title)
	assert.Nil(t, notes[0].Content)
}
