package middleware

import (
	"context"
	"net/http"
	"strings"

	"notes-api/auth"
)

type contextKey int

const userIDKey contextKey = 0

// UserID returns the authenticated user id RequireAuth stored in ctx.
func UserID(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(userIDKey).(int)
	return id, ok
}

// WithUserID returns a context carrying id as the authenticated user.
func WithUserID(ctx context.Context, id int) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// RequireAuth rejects requests without a verifiable bearer token. A missing
// Authorization header is a 401; a present but unverifiable token is a 403.
// Both deny access, but the split distinguishes "you never authenticated"
// from "your credential is bad".
func RequireAuth(tokens *auth.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeError(w, http.StatusUnauthorized, "Missing token")
				return
			}

			// The token is the second whitespace-separated field; the
			// scheme itself is not checked.
			fields := strings.Fields(authHeader)
			if len(fields) < 2 {
				writeError(w, http.StatusForbidden, "Invalid token")
				return
			}

			userID, err := tokens.Verify(fields[1])
			if err != nil {
				writeError(w, http.StatusForbidden, "Invalid token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(`{"error":"` + msg + `"}`))
}
