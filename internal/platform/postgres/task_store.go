package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/triage-api/internal/domain"
	"github.com/phrazzld/triage-api/internal/platform/logger"
	"github.com/phrazzld/triage-api/internal/store"
)

// PostgresTaskStore implements the store.TaskStore interface
// using a PostgreSQL database as the storage backend.
type PostgresTaskStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTaskStore creates a new PostgreSQL implementation of the
// TaskStore interface. It accepts a database connection or transaction that
// should be initialized and managed by the caller. If logger is nil, a
// default logger will be used.
func NewPostgresTaskStore(db store.DBTX, logger *slog.Logger) *PostgresTaskStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTaskStore{
		db:     db,
		logger: logger.With(slog.String("component", "task_store")),
	}
}

// Ensure PostgresTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*PostgresTaskStore)(nil)

// Create implements store.TaskStore.Create
// The task must already carry a priority score; validation rejects
// unscored or out-of-range tasks before any row is written.
func (s *PostgresTaskStore) Create(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := task.Validate(); err != nil {
		log.Warn("task validation failed during create",
			slog.String("error", err.Error()),
			slog.String("task_id", task.ID.String()))
		return err
	}

	query := `
		INSERT INTO tasks (id, owner_id, title, description, priority_score, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		task.ID,
		task.OwnerID,
		task.Title,
		task.Description,
		task.PriorityScore,
		task.CreatedAt,
	)

	if err != nil {
		log.Error("failed to create task",
			slog.String("error", err.Error()),
			slog.String("task_id", task.ID.String()),
			slog.String("owner_id", task.OwnerID.String()))
		return MapError(err)
	}

	log.Info("task created successfully",
		slog.String("task_id", task.ID.String()),
		slog.String("owner_id", task.OwnerID.String()),
		slog.Float64("priority_score", task.PriorityScore))
	return nil
}

// ListByOwner implements store.TaskStore.ListByOwner
// Tasks are returned newest first.
func (s *PostgresTaskStore) ListByOwner(
	ctx context.Context,
	ownerID uuid.UUID,
	offset, limit int,
) ([]*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, owner_id, title, description, priority_score, created_at
		FROM tasks
		WHERE owner_id = $1
		ORDER BY created_at DESC, id
		OFFSET $2 LIMIT $3
	`

	rows, err := s.db.QueryContext(ctx, query, ownerID, offset, limit)
	if err != nil {
		log.Error("failed to list tasks",
			slog.String("error", err.Error()),
			slog.String("owner_id", ownerID.String()))
		return nil, fmt.Errorf("failed to list tasks: %w", MapError(err))
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Warn("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	var tasks []*domain.Task
	for rows.Next() {
		var task domain.Task
		if err := rows.Scan(
			&task.ID,
			&task.OwnerID,
			&task.Title,
			&task.Description,
			&task.PriorityScore,
			&task.CreatedAt,
		); err != nil {
			log.Error("failed to scan task row",
				slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to scan task row: %w", err)
		}
		tasks = append(tasks, &task)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate task rows: %w", err)
	}

	return tasks, nil
}

// Delete implements store.TaskStore.Delete
// Returns store.ErrTaskNotFound if no task matches the owner and ID.
func (s *PostgresTaskStore) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		DELETE FROM tasks
		WHERE owner_id = $1 AND id = $2
	`

	result, err := s.db.ExecContext(ctx, query, ownerID, id)
	if err != nil {
		log.Error("failed to delete task",
			slog.String("error", err.Error()),
			slog.String("task_id", id.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrTaskNotFound); err != nil {
		return err
	}

	log.Info("task deleted successfully",
		slog.String("task_id", id.String()),
		slog.String("owner_id", ownerID.String()))
	return nil
}
