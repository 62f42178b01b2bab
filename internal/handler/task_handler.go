package handler

import (
	"net/http"

	"todo-service/internal/middleware"
	"todo-service/internal/policy"
	"todo-service/internal/service"
	"todo-service/prometheus"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// TaskHandler exposes todo endpoints.
type TaskHandler struct {
	tasks *service.TaskService
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(tasks *service.TaskService) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// List returns the tasks visible to the caller, optionally filtered by
// ?status=completed or ?status=pending
func (h *TaskHandler) List(c echo.Context) error {
	p := policy.PrincipalFromUser(middleware.CurrentUser(c))
	prometheus.RecordOperation("task", "list")

	tasks, err := h.tasks.List(p, c.QueryParam("status"))
	if err != nil {
		return writeError(c, "task", err)
	}
	return c.JSON(http.StatusOK, tasks)
}

// Get returns a task by id
func (h *TaskHandler) Get(c echo.Context) error {
	p := policy.PrincipalFromUser(middleware.CurrentUser(c))
	prometheus.RecordOperation("task", "read")

	taskID, err := uuid.Parse(c.Param("task_id"))
	if err != nil {
		return unprocessable(c, "invalid task id")
	}

	task, err := h.tasks.Get(p, taskID)
	if err != nil {
		return writeError(c, "task", err)
	}
	return c.JSON(http.StatusOK, task)
}

// Create creates a task owned by the caller
func (h *TaskHandler) Create(c echo.Context) error {
	p := policy.PrincipalFromUser(middleware.CurrentUser(c))
	prometheus.RecordOperation("task", "create")

	var req service.TaskCreate
	if err := c.Bind(&req); err != nil {
		return unprocessable(c, "invalid request body")
	}
	if req.Title == "" || req.Content == "" {
		return unprocessable(c, "title and content are required")
	}

	task, err := h.tasks.Create(p, req)
	if err != nil {
		return writeError(c, "task", err)
	}
	return c.JSON(http.StatusCreated, task)
}

// Update replaces a task's mutable fields
func (h *TaskHandler) Update(c echo.Context) error {
	p := policy.PrincipalFromUser(middleware.CurrentUser(c))
	prometheus.RecordOperation("task", "update")

	taskID, err := uuid.Parse(c.Param("task_id"))
	if err != nil {
		return unprocessable(c, "invalid task id")
	}

	var req service.TaskUpdate
	if err := c.Bind(&req); err != nil {
		return unprocessable(c, "invalid request body")
	}
	if req.Title == "" || req.Content == "" {
		return unprocessable(c, "title and content are required")
	}

	task, err := h.tasks.Update(p, taskID, req)
	if err != nil {
		return writeError(c, "task", err)
	}
	return c.JSON(http.StatusOK, task)
}

// Delete removes a task
func (h *TaskHandler) Delete(c echo.Context) error {
	p := policy.PrincipalFromUser(middleware.CurrentUser(c))
	prometheus.RecordOperation("task", "delete")

	taskID, err := uuid.Parse(c.Param("task_id"))
	if err != nil {
		return unprocessable(c, "invalid task id")
	}

	if err := h.tasks.Delete(p, taskID); err != nil {
		return writeError(c, "task", err)
	}
	return c.NoContent(http.StatusNoContent)
}
