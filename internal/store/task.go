package store

import (
	"errors"
	"time"

	"todo-service/internal/model"
	"todo-service/prometheus"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type taskStore struct {
	db *gorm.DB
}

func (s *taskStore) GetByID(id uuid.UUID) (*model.Task, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())
	var task model.Task
	if err := s.db.First(&task, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &task, nil
}

func (s *taskStore) List(filter TaskFilter) ([]model.Task, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())
	q := s.db.Where("company_id = ?", filter.CompanyID)
	if filter.OwnerID != nil {
		q = q.Where("user_id = ?", *filter.OwnerID)
	}
	if filter.IsCompleted != nil {
		q = q.Where("is_completed = ?", *filter.IsCompleted)
	}

	var tasks []model.Task
	if err := q.Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *taskStore) Create(task *model.Task) error {
	defer prometheus.TrackDBOperation("insert")(time.Now())
	return s.db.Create(task).Error
}

func (s *taskStore) Save(task *model.Task) error {
	defer prometheus.TrackDBOperation("update")(time.Now())
	return s.db.Save(task).Error
}

func (s *taskStore) Delete(task *model.Task) error {
	defer prometheus.TrackDBOperation("delete")(time.Now())
	return s.db.Delete(task).Error
}
