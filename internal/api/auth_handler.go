package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/triage-api/internal/api/shared"
	"github.com/phrazzld/triage-api/internal/domain"
	"github.com/phrazzld/triage-api/internal/service"
	"github.com/phrazzld/triage-api/internal/store"
)

// AuthHandler handles authentication-related HTTP requests.
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register handles POST /api/auth/register.
// Responds 201 with the created user, 409 when the username is taken, and
// 400 for malformed or invalid payloads.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request", err)
		return
	}

	user, err := h.authService.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUsernameExists):
			shared.RespondWithError(w, r, http.StatusConflict, "Username already taken")
		case errors.Is(err, domain.ErrValidation):
			shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request", err)
		default:
			shared.RespondWithErrorAndLog(
				w,
				r,
				http.StatusInternalServerError,
				"Failed to register user",
				err,
			)
		}
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, NewUserResponse(user))
}

// Login handles POST /api/auth/login.
// Responds 200 with a bearer token on success and 401 for bad credentials.
// Unknown usernames and wrong passwords are indistinguishable to the client.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request", err)
		return
	}

	token, err := h.authService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid username or password")
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to log in", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}
