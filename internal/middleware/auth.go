package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/forkful/forkful-go/internal/crypto"
)

type contextKey string

const userIDKey contextKey = "userID"

// TokenHeader is the header the web client sends the session token in. No
// Bearer prefix: the header value is the raw JWT.
const TokenHeader = "User-Token"

// Auth returns middleware that validates the session token from the
// User-Token header and stores the user ID on the request context.
func Auth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(TokenHeader)
			if token == "" {
				writeAuthError(w, "missing auth token")
				return
			}

			claims, err := crypto.ValidateToken(token, secret)
			if err != nil {
				writeAuthError(w, "invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext extracts the authenticated user ID from the context.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

// writeAuthError writes an enveloped failure so clients can surface the
// reason the same way they surface any other handled failure.
func writeAuthError(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]any{"code": 0, "msg": msg})
}
