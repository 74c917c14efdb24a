package domain

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	t.Run("creates valid user", func(t *testing.T) {
		t.Parallel()
		user, err := NewUser("alice", "correct-horse-battery")
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, user.ID)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, "correct-horse-battery", user.Password)
		assert.Empty(t, user.HashedPassword)
		assert.False(t, user.CreatedAt.IsZero())
	})

	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{
			name:     "empty username",
			username: "",
			password: "correct-horse-battery",
			wantErr:  ErrEmptyUsername,
		},
		{
			name:     "username with whitespace",
			username: "alice smith",
			password: "correct-horse-battery",
			wantErr:  ErrInvalidUsername,
		},
		{
			name:     "username too long",
			username: strings.Repeat("a", 65),
			password: "correct-horse-battery",
			wantErr:  ErrUsernameTooLong,
		},
		{
			name:     "password too short",
			username: "alice",
			password: "short",
			wantErr:  ErrPasswordTooShort,
		},
		{
			name:     "password too long",
			username: "alice",
			password: strings.Repeat("p", 73),
			wantErr:  ErrPasswordTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			user, err := NewUser(tt.username, tt.password)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrValidation)
			assert.Nil(t, user)
		})
	}
}

func TestUserValidate(t *testing.T) {
	t.Parallel()

	t.Run("stored user with hash only is valid", func(t *testing.T) {
		t.Parallel()
		user := &User{
			ID:             uuid.New(),
			Username:       "alice",
			HashedPassword: "$2a$10$notarealhashbutnonempty",
		}
		assert.NoError(t, user.Validate())
	})

	t.Run("user without password or hash is invalid", func(t *testing.T) {
		t.Parallel()
		user := &User{
			ID:       uuid.New(),
			Username: "alice",
		}
		assert.ErrorIs(t, user.Validate(), ErrEmptyPassword)
	})

	t.Run("user without ID is invalid", func(t *testing.T) {
		t.Parallel()
		user := &User{Username: "alice", HashedPassword: "x"}
		assert.ErrorIs(t, user.Validate(), ErrEmptyUserID)
	})
}
