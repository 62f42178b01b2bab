package store

import (
	"errors"
	"time"

	"todo-service/internal/model"
	"todo-service/prometheus"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type userStore struct {
	db *gorm.DB
}

func (s *userStore) GetByID(id uuid.UUID) (*model.User, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())
	var user model.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (s *userStore) GetByUsername(username string) (*model.User, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())
	var user model.User
	if err := s.db.First(&user, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (s *userStore) ListByCompany(companyID uuid.UUID) ([]model.User, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())
	var users []model.User
	if err := s.db.Where("company_id = ?", companyID).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *userStore) Create(user *model.User) error {
	defer prometheus.TrackDBOperation("insert")(time.Now())
	return s.db.Create(user).Error
}

func (s *userStore) Save(user *model.User) error {
	defer prometheus.TrackDBOperation("update")(time.Now())
	return s.db.Save(user).Error
}

func (s *userStore) Delete(user *model.User) error {
	defer prometheus.TrackDBOperation("delete")(time.Now())
	return s.db.Delete(user).Error
}
