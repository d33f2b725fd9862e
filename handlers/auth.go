package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"notes-api/auth"
	"notes-api/store"
)

type AuthHandler struct {
	users  *store.UserStore
	tokens *auth.TokenService
	log    *slog.Logger
}

func NewAuthHandler(users *store.UserStore, tokens *auth.TokenService, log *slog.Logger) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens, log: log}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Missing fields")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		h.log.Error("password hashing failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Error hashing password")
		return
	}

	if _, err := h.users.Create(r.Context(), req.Username, hash); err != nil {
		if errors.Is(err, store.ErrDuplicateUsername) {
			writeError(w, http.StatusBadRequest, "Username already exists")
			return
		}
		h.log.Error("user insert failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"message": "User registered successfully"})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	json.NewDecoder(r.Body).Decode(&req)

	user, err := h.users.GetByUsername(r.Context(), req.Username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		h.log.Error("user lookup failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	ok, err := auth.CheckPassword(req.Password, user.PasswordHash)
	if err != nil {
		h.log.Error("password check failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Error comparing passwords")
		return
	}
	if !ok {
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		h.log.Error("token signing failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Token generation failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}
