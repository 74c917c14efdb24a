package domain

import "errors"

// ErrValidation is the common base for all domain validation failures.
// The per-field sentinels in user.go and task.go wrap it, so callers can
// match a specific failure or the whole class with errors.Is.
var ErrValidation = errors.New("validation failed")
