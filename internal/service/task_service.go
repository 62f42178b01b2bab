package service

import (
	"todo-service/internal/model"
	"todo-service/internal/policy"
	"todo-service/internal/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TaskCreate is the payload for creating a task. Owner and company are never
// taken from the caller.
type TaskCreate struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	IsCompleted bool   `json:"is_completed"`
}

// TaskUpdate replaces the mutable fields of a task.
type TaskUpdate struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	IsCompleted bool   `json:"is_completed"`
}

// TaskService handles task operations for an authenticated principal.
type TaskService struct {
	store  store.Store
	logger *zap.Logger
}

// NewTaskService creates a new task service
func NewTaskService(st store.Store, logger *zap.Logger) *TaskService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TaskService{store: st, logger: logger}
}

// List returns the tasks visible to the principal: the whole company for an
// admin, only the principal's own tasks otherwise. status narrows further to
// "completed" or "pending"; any other value is ignored.
func (s *TaskService) List(p policy.Principal, status string) ([]model.Task, error) {
	filter := store.TaskFilter{CompanyID: p.CompanyID}
	if !p.IsAdmin {
		owner := p.ID
		filter.OwnerID = &owner
	}
	switch status {
	case "completed":
		completed := true
		filter.IsCompleted = &completed
	case "pending":
		completed := false
		filter.IsCompleted = &completed
	}
	return s.store.Tasks().List(filter)
}

// Get returns a task by id, owner-or-admin within the same company.
func (s *TaskService) Get(p policy.Principal, taskID uuid.UUID) (*model.Task, error) {
	task, err := s.store.Tasks().GetByID(taskID)
	if err != nil {
		return nil, err
	}
	if d := policy.AccessTask(p, task); !d.Allowed() {
		return nil, decisionError(d)
	}
	return task, nil
}

// Create creates a task owned by the principal. user_id and company_id are
// force-set from the principal so a payload cannot plant a task in another
// account or company.
func (s *TaskService) Create(p policy.Principal, in TaskCreate) (*model.Task, error) {
	task := &model.Task{
		Title:       in.Title,
		Content:     in.Content,
		IsCompleted: in.IsCompleted,
		UserID:      p.ID,
		CompanyID:   p.CompanyID,
	}
	if err := s.store.Tasks().Create(task); err != nil {
		return nil, err
	}

	s.logger.Info("task created",
		zap.String("task_id", task.ID.String()),
		zap.String("user_id", p.ID.String()))
	return task, nil
}

// Update replaces a task's mutable fields inside one transaction.
func (s *TaskService) Update(p policy.Principal, taskID uuid.UUID, in TaskUpdate) (*model.Task, error) {
	var task *model.Task
	err := s.store.InTx(func(tx store.Store) error {
		var err error
		task, err = tx.Tasks().GetByID(taskID)
		if err != nil {
			return err
		}
		if d := policy.AccessTask(p, task); !d.Allowed() {
			return decisionError(d)
		}

		task.Title = in.Title
		task.Content = in.Content
		task.IsCompleted = in.IsCompleted
		return tx.Tasks().Save(task)
	})
	if err != nil {
		return nil, err
	}
	return task, nil
}

// Delete removes a task inside one transaction.
func (s *TaskService) Delete(p policy.Principal, taskID uuid.UUID) error {
	return s.store.InTx(func(tx store.Store) error {
		task, err := tx.Tasks().GetByID(taskID)
		if err != nil {
			return err
		}
		if d := policy.AccessTask(p, task); !d.Allowed() {
			return decisionError(d)
		}
		return tx.Tasks().Delete(task)
	})
}
