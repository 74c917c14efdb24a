package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/phrazzld/triage-api/internal/api/shared"
	"github.com/phrazzld/triage-api/internal/redact"
	"github.com/phrazzld/triage-api/internal/service/auth"
	"github.com/phrazzld/triage-api/internal/store"
)

// AuthMiddleware provides JWT authentication for routes.
type AuthMiddleware struct {
	jwtService auth.JWTService
	userStore  store.UserStore
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService, userStore store.UserStore) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		userStore:  userStore,
	}
}

// Authenticate validates bearer tokens from the Authorization header,
// resolves the token's subject against the user store, and adds the
// identity to the request context for authorized requests. Expired,
// tampered, and malformed tokens, and tokens for users that no longer
// exist, are all rejected with the same 401 outcome.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Authorization header required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid authorization format")
			return
		}

		claims, err := m.jwtService.ValidateToken(r.Context(), parts[1])
		if err != nil {
			switch err {
			case auth.ErrExpiredToken, auth.ErrInvalidToken:
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid or expired token")
			default:
				slog.Error("failed to validate token", "error", redact.Error(err))
				shared.RespondWithError(
					w,
					r,
					http.StatusInternalServerError,
					"Authentication error",
				)
			}
			return
		}

		// A valid signature is not enough: the subject must still exist.
		user, err := m.userStore.GetByID(r.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, store.ErrUserNotFound) {
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid or expired token")
				return
			}
			shared.RespondWithErrorAndLog(
				w,
				r,
				http.StatusInternalServerError,
				"Authentication error",
				err,
			)
			return
		}

		ctx := context.WithValue(r.Context(), shared.UserIDContextKey, user.ID)
		ctx = context.WithValue(ctx, shared.UsernameContextKey, user.Username)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID extracts the authenticated user's ID from the request context.
// Returns the user ID and a boolean indicating if it was found.
func GetUserID(r *http.Request) (uuid.UUID, bool) {
	userID, ok := r.Context().Value(shared.UserIDContextKey).(uuid.UUID)
	return userID, ok
}
