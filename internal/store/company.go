package store

import (
	"errors"
	"time"

	"todo-service/internal/model"
	"todo-service/prometheus"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type companyStore struct {
	db *gorm.DB
}

func (s *companyStore) GetByID(id uuid.UUID) (*model.Company, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())
	var company model.Company
	if err := s.db.First(&company, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &company, nil
}

func (s *companyStore) Create(company *model.Company) error {
	defer prometheus.TrackDBOperation("insert")(time.Now())
	return s.db.Create(company).Error
}

func (s *companyStore) Save(company *model.Company) error {
	defer prometheus.TrackDBOperation("update")(time.Now())
	return s.db.Save(company).Error
}
