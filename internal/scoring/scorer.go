package scoring

import (
	"context"
	"errors"
)

// Scorer defines the interface for scoring a task's priority via an
// external AI/LLM service. This interface serves as a boundary between the
// application core and the provider, following the hexagonal architecture
// pattern.
type Scorer interface {
	// Score returns a priority score in [0.0, 1.0] for the given task
	// title and description. Implementations must bound the call with a
	// finite timeout and may return an error for any failure (network,
	// timeout, malformed or non-numeric response); callers are expected
	// to recover via the fallback heuristic.
	Score(ctx context.Context, title, description string) (float64, error)
}

// Common errors returned by scorer implementations
var (
	// ErrInvalidResponse is returned when the LLM response cannot be parsed
	// as a finite number.
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrInvalidConfig is returned when the scorer configuration is invalid.
	ErrInvalidConfig = errors.New("invalid scorer configuration")
)
