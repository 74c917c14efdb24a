package domain

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

// Task validation errors. All wrap ErrValidation.
var (
	ErrEmptyTaskID          = fmt.Errorf("%w: task ID cannot be empty", ErrValidation)
	ErrEmptyTaskOwner       = fmt.Errorf("%w: task owner cannot be empty", ErrValidation)
	ErrEmptyTaskTitle       = fmt.Errorf("%w: task title cannot be empty", ErrValidation)
	ErrInvalidPriorityScore = fmt.Errorf("%w: priority score must be between 0.0 and 1.0", ErrValidation)
)

// Task represents a single unit of work owned by a user. Every task carries
// a priority score in [0.0, 1.0] assigned at creation time by the scoring
// engine; the score is never supplied by the client. Tasks have no update
// path: they are created, listed, and deleted.
type Task struct {
	ID            uuid.UUID `json:"id"`
	OwnerID       uuid.UUID `json:"owner_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	PriorityScore float64   `json:"priority_score"`
	CreatedAt     time.Time `json:"created_at"`
}

// NewTask creates a new Task for the given owner. The priority score must
// be assigned by the caller (via the scoring engine) before the task is
// persisted; NewTask leaves it at zero, which is a valid in-range value.
// Returns an error if validation fails.
func NewTask(ownerID uuid.UUID, title, description string) (*Task, error) {
	task := &Task{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Title:       title,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
// Returns an error if any field fails validation.
func (t *Task) Validate() error {
	if t.ID == uuid.Nil {
		return ErrEmptyTaskID
	}

	if t.OwnerID == uuid.Nil {
		return ErrEmptyTaskOwner
	}

	if t.Title == "" {
		return ErrEmptyTaskTitle
	}

	if math.IsNaN(t.PriorityScore) || t.PriorityScore < 0.0 || t.PriorityScore > 1.0 {
		return ErrInvalidPriorityScore
	}

	return nil
}
