package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/phrazzld/triage-api/internal/domain"
	"github.com/phrazzld/triage-api/internal/platform/logger"
	"github.com/phrazzld/triage-api/internal/scoring"
	"github.com/phrazzld/triage-api/internal/store"
)

// DefaultListLimit is applied when a caller requests a non-positive limit.
const DefaultListLimit = 100

// TaskService implements task creation, listing, and deletion. Creation
// scores the task synchronously before persisting it, so a task row is
// never written without a priority score.
type TaskService struct {
	taskStore store.TaskStore
	engine    *scoring.Engine
}

// NewTaskService creates a new TaskService with the given dependencies.
func NewTaskService(taskStore store.TaskStore, engine *scoring.Engine) *TaskService {
	return &TaskService{
		taskStore: taskStore,
		engine:    engine,
	}
}

// Create scores and persists a new task for the given owner. The priority
// score always comes from the scoring engine; any score supplied by the
// client has been discarded before this point. Repeated calls create
// distinct tasks.
func (s *TaskService) Create(
	ctx context.Context,
	ownerID uuid.UUID,
	title, description string,
) (*domain.Task, error) {
	log := logger.FromContext(ctx)

	task, err := domain.NewTask(ownerID, title, description)
	if err != nil {
		return nil, err
	}

	// Scoring is total: it resolves to the fallback heuristic on any
	// provider failure and never blocks task creation.
	task.PriorityScore = s.engine.Score(ctx, title, description)

	if err := s.taskStore.Create(ctx, task); err != nil {
		log.Error("failed to create task", "error", err, "task_id", task.ID)
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	log.Info("task created",
		"task_id", task.ID,
		"owner_id", task.OwnerID,
		"priority_score", task.PriorityScore)
	return task, nil
}

// List returns the owner's tasks, newest first, with offset/limit
// pagination. A non-positive limit falls back to DefaultListLimit and a
// negative offset is treated as zero.
func (s *TaskService) List(
	ctx context.Context,
	ownerID uuid.UUID,
	offset, limit int,
) ([]*domain.Task, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if offset < 0 {
		offset = 0
	}

	tasks, err := s.taskStore.ListByOwner(ctx, ownerID, offset, limit)
	if err != nil {
		logger.FromContext(ctx).Error("failed to list tasks", "error", err, "owner_id", ownerID)
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return tasks, nil
}

// Delete removes the owner's task with the given ID.
// Returns store.ErrTaskNotFound if no matching task exists.
func (s *TaskService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if err := s.taskStore.Delete(ctx, ownerID, id); err != nil {
		if !store.IsNotFoundError(err) {
			logger.FromContext(ctx).Error("failed to delete task", "error", err, "task_id", id)
		}
		return err
	}

	logger.FromContext(ctx).Info("task deleted", "task_id", id, "owner_id", ownerID)
	return nil
}
