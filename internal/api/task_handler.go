package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/triage-api/internal/api/middleware"
	"github.com/phrazzld/triage-api/internal/api/shared"
	"github.com/phrazzld/triage-api/internal/domain"
	"github.com/phrazzld/triage-api/internal/service"
	"github.com/phrazzld/triage-api/internal/store"
)

// TaskHandler handles task-related HTTP requests. All routes require
// authentication; the owner always comes from the validated token, never
// from the request payload.
type TaskHandler struct {
	taskService *service.TaskService
}

// NewTaskHandler creates a new TaskHandler with the given dependencies.
func NewTaskHandler(taskService *service.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// Create handles POST /api/tasks.
// Responds 201 with the created task, including its computed priority score.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req CreateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request", err)
		return
	}

	task, err := h.taskService.Create(r.Context(), ownerID, req.Title, req.Description)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request", err)
			return
		}
		shared.RespondWithErrorAndLog(
			w,
			r,
			http.StatusInternalServerError,
			"Failed to create task",
			err,
		)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, NewTaskResponse(task))
}

// List handles GET /api/tasks.
// Supports skip and limit query parameters; only the caller's own tasks are
// returned, newest first.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	offset := parseQueryInt(r, "skip", 0)
	limit := parseQueryInt(r, "limit", service.DefaultListLimit)

	tasks, err := h.taskService.List(r.Context(), ownerID, offset, limit)
	if err != nil {
		shared.RespondWithErrorAndLog(
			w,
			r,
			http.StatusInternalServerError,
			"Failed to list tasks",
			err,
		)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewTaskListResponse(tasks))
}

// Delete handles DELETE /api/tasks/{id}.
// Responds 204 on success and 404 when the task does not exist or belongs
// to another user; the two cases are indistinguishable to the client.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	taskID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid task ID")
		return
	}

	if err := h.taskService.Delete(r.Context(), ownerID, taskID); err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Task not found")
			return
		}
		shared.RespondWithErrorAndLog(
			w,
			r,
			http.StatusInternalServerError,
			"Failed to delete task",
			err,
		)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// parseQueryInt reads a non-negative integer query parameter, returning the
// fallback for missing or malformed values.
func parseQueryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return fallback
	}
	return v
}
