package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/phrazzld/triage-api/internal/domain"
	"github.com/phrazzld/triage-api/internal/platform/logger"
	"github.com/phrazzld/triage-api/internal/service/auth"
	"github.com/phrazzld/triage-api/internal/store"
)

// AuthService composes the credential store and the token service to
// implement the registration and login flows.
type AuthService struct {
	userStore  store.UserStore
	jwtService auth.JWTService
	hasher     auth.PasswordHasher
	verifier   auth.PasswordVerifier
}

// NewAuthService creates a new AuthService with the given dependencies.
func NewAuthService(
	userStore store.UserStore,
	jwtService auth.JWTService,
	hasher auth.PasswordHasher,
	verifier auth.PasswordVerifier,
) *AuthService {
	return &AuthService{
		userStore:  userStore,
		jwtService: jwtService,
		hasher:     hasher,
		verifier:   verifier,
	}
}

// Register creates a new user with the given username and password.
// The password is hashed before the user is persisted; the plaintext never
// leaves this function. Returns store.ErrUsernameExists when the username
// is already taken (case-sensitive exact match).
func (s *AuthService) Register(
	ctx context.Context,
	username, password string,
) (*domain.User, error) {
	log := logger.FromContext(ctx)

	user, err := domain.NewUser(username, password)
	if err != nil {
		return nil, err
	}

	hashed, err := s.hasher.Hash(user.Password)
	if err != nil {
		log.Error("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user.HashedPassword = hashed
	user.Password = ""

	if err := s.userStore.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrUsernameExists) {
			return nil, err
		}
		log.Error("failed to create user", "error", err, "username", username)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	log.Info("user registered", "user_id", user.ID, "username", user.Username)
	return user, nil
}

// Login verifies the given credentials and issues a signed access token
// bound to the username with the configured lifetime. An unknown username
// and a wrong password both return ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	log := logger.FromContext(ctx)

	user, err := s.userStore.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		log.Error("failed to look up user", "error", err, "username", username)
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	if err := s.verifier.Compare(user.HashedPassword, password); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(ctx, user.ID, user.Username)
	if err != nil {
		log.Error("failed to generate token", "error", err, "user_id", user.ID)
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	log.Info("user logged in", "user_id", user.ID, "username", user.Username)
	return token, nil
}
