package service

import "errors"

// Common service errors
var (
	// ErrInvalidCredentials is returned by Login for both an unknown
	// username and a wrong password. The two cases are deliberately
	// indistinguishable so callers cannot probe which usernames exist.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
