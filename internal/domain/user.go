package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// User validation errors. All wrap ErrValidation.
var (
	ErrEmptyUserID         = fmt.Errorf("%w: user ID cannot be empty", ErrValidation)
	ErrEmptyUsername       = fmt.Errorf("%w: username cannot be empty", ErrValidation)
	ErrInvalidUsername     = fmt.Errorf("%w: username must not contain whitespace", ErrValidation)
	ErrUsernameTooLong     = fmt.Errorf("%w: username must be at most 64 characters long", ErrValidation)
	ErrPasswordTooShort    = fmt.Errorf("%w: password must be at least 8 characters long", ErrValidation)
	ErrPasswordTooLong     = fmt.Errorf("%w: password must be at most 72 characters long", ErrValidation)
	ErrEmptyPassword       = fmt.Errorf("%w: password cannot be empty", ErrValidation)
	ErrEmptyHashedPassword = fmt.Errorf("%w: hashed password cannot be empty", ErrValidation)
)

// User represents a registered user of the application.
// Usernames are unique and matched case-sensitively. Users are immutable
// after registration: there is no update or delete path.
type User struct {
	ID             uuid.UUID `json:"id"`
	Username       string    `json:"username"`
	Password       string    `json:"-"` // Plaintext password, used transiently during registration
	HashedPassword string    `json:"-"` // Never expose password hash in JSON
	CreatedAt      time.Time `json:"created_at"`
}

// NewUser creates a new User with the given username and password.
// It generates a new UUID for the user ID and sets the creation timestamp.
// Returns an error if validation fails.
//
// NOTE: This function only sets up the user structure with the plaintext
// password. The caller is responsible for hashing the password before
// storing the user.
func NewUser(username, password string) (*User, error) {
	user := &User{
		ID:        uuid.New(),
		Username:  username,
		Password:  password, // Plaintext password - must be hashed before storage
		CreatedAt: time.Now().UTC(),
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}

	if u.Username == "" {
		return ErrEmptyUsername
	}

	if strings.ContainsAny(u.Username, " \t\n\r") {
		return ErrInvalidUsername
	}

	if len(u.Username) > 64 {
		return ErrUsernameTooLong
	}

	// During registration the plaintext password is validated; for users
	// loaded from the database only the hash is present.
	if u.Password != "" {
		if len(u.Password) < 8 {
			return ErrPasswordTooShort
		}
		// bcrypt truncates input beyond 72 bytes
		if len(u.Password) > 72 {
			return ErrPasswordTooLong
		}
	} else if u.HashedPassword == "" {
		return ErrEmptyPassword
	}

	return nil
}
