package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/triage-api/internal/domain"
)

// TaskStore defines the interface for task data persistence.
type TaskStore interface {
	// Create saves a new task to the store. The task must already carry a
	// priority score in [0.0, 1.0]; tasks are never persisted unscored.
	Create(ctx context.Context, task *domain.Task) error

	// ListByOwner retrieves tasks belonging to the given owner, newest
	// first, with offset/limit pagination.
	ListByOwner(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]*domain.Task, error)

	// Delete removes a task by ID, scoped to the given owner.
	// Returns ErrTaskNotFound if no matching task exists.
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}
