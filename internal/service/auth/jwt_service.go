package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// JWTService defines operations for managing JWT authentication tokens.
// Tokens are self-contained, signed bearer credentials binding a subject
// identity to an expiry timestamp. They are never persisted or revoked
// server-side; expiry is checked lazily at validation time.
type JWTService interface {
	// GenerateToken creates a signed JWT access token for the given user.
	// Returns the token string or an error if token generation fails.
	GenerateToken(ctx context.Context, userID uuid.UUID, username string) (string, error)

	// ValidateToken validates the provided token string and extracts the
	// claims. Returns the claims containing user information if the token
	// is valid, or an error if validation fails (expired, bad signature,
	// malformed structure, etc.).
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the custom claims structure for the JWT tokens.
// It extends standard JWT registered claims with application-specific fields.
type Claims struct {
	// UserID is the unique identifier of the user the token was issued for.
	UserID uuid.UUID `json:"uid,omitempty"`

	// Standard registered JWT claims. Subject carries the username.
	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
