package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/triage-api/internal/domain"
)

// RegisterRequest represents the user registration request payload.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=1,max=64"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest represents the login request payload.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserResponse represents a user in API responses. The password hash is
// never included.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// TokenResponse represents a successful authentication response.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// CreateTaskRequest represents the task creation request payload. The
// priority score is not accepted from clients; it is always computed
// server-side.
type CreateTaskRequest struct {
	Title       string `json:"title" validate:"required,max=500"`
	Description string `json:"description" validate:"max=5000"`
}

// TaskResponse represents a task in API responses.
type TaskResponse struct {
	ID            uuid.UUID `json:"id"`
	OwnerID       uuid.UUID `json:"owner_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	PriorityScore float64   `json:"priority_score"`
	CreatedAt     time.Time `json:"created_at"`
}

// NewUserResponse converts a domain user into its API representation.
func NewUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
	}
}

// NewTaskResponse converts a domain task into its API representation.
func NewTaskResponse(t *domain.Task) TaskResponse {
	return TaskResponse{
		ID:            t.ID,
		OwnerID:       t.OwnerID,
		Title:         t.Title,
		Description:   t.Description,
		PriorityScore: t.PriorityScore,
		CreatedAt:     t.CreatedAt,
	}
}

// NewTaskListResponse converts a slice of domain tasks into API
// representations. A nil slice becomes an empty list so clients always
// receive a JSON array.
func NewTaskListResponse(tasks []*domain.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, NewTaskResponse(t))
	}
	return out
}
