package middleware

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/haeun/worlds-banpick-archive/internal/service"
)

type contextKey string

const (
	UserIDKey contextKey = "userID"
)

// writeAuthError responds 401 with the same {"error": ...} shape the rest of
// the API uses. The message never distinguishes a bad token from a missing
// one beyond what the caller already knows.
func writeAuthError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// Auth guards the admin write endpoints with a bearer JWT. On success the
// admin's user ID is placed on the request context under UserIDKey.
func Auth(authService *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || token == "" {
				log.Printf("ERROR [middleware.Auth] missing or malformed authorization header")
				writeAuthError(w, "bearer token required")
				return
			}

			claims, err := authService.ValidateToken(token)
			if err != nil {
				log.Printf("ERROR [middleware.Auth] token validation failed: %v", err)
				writeAuthError(w, "invalid token")
				return
			}

			sub, ok := (*claims)["sub"].(string)
			if !ok {
				log.Printf("ERROR [middleware.Auth] token has no 'sub' claim")
				writeAuthError(w, "invalid token")
				return
			}

			userID, err := uuid.Parse(sub)
			if err != nil {
				log.Printf("ERROR [middleware.Auth] 'sub' claim is not a user ID: %v", err)
				writeAuthError(w, "invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetUserID(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(UserIDKey).(uuid.UUID)
	return userID, ok
}
