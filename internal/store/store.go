// Package store wraps persistence behind small per-entity interfaces so the
// services can be exercised against in-memory fakes. Lookups return a nil row
// rather than an error when nothing matches.
package store

import (
	"todo-service/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CompanyStore persists companies.
type CompanyStore interface {
	GetByID(id uuid.UUID) (*model.Company, error)
	Create(company *model.Company) error
	Save(company *model.Company) error
}

// UserStore persists users.
type UserStore interface {
	GetByID(id uuid.UUID) (*model.User, error)
	GetByUsername(username string) (*model.User, error)
	ListByCompany(companyID uuid.UUID) ([]model.User, error)
	Create(user *model.User) error
	Save(user *model.User) error
	Delete(user *model.User) error
}

// TaskFilter narrows a task listing. OwnerID and IsCompleted are optional.
type TaskFilter struct {
	CompanyID   uuid.UUID
	OwnerID     *uuid.UUID
	IsCompleted *bool
}

// TaskStore persists tasks.
type TaskStore interface {
	GetByID(id uuid.UUID) (*model.Task, error)
	List(filter TaskFilter) ([]model.Task, error)
	Create(task *model.Task) error
	Save(task *model.Task) error
	Delete(task *model.Task) error
}

// Store aggregates the entity stores. InTx runs fn against a transaction-bound
// Store so a read-check-mutate sequence commits as one atomic unit.
type Store interface {
	Companies() CompanyStore
	Users() UserStore
	Tasks() TaskStore
	InTx(fn func(Store) error) error
}

type gormStore struct {
	db *gorm.DB
}

// New creates a Store backed by the given GORM connection.
func New(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) Companies() CompanyStore {
	return &companyStore{db: s.db}
}

func (s *gormStore) Users() UserStore {
	return &userStore{db: s.db}
}

func (s *gormStore) Tasks() TaskStore {
	return &taskStore{db: s.db}
}

func (s *gormStore) InTx(fn func(Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&gormStore{db: tx})
	})
}
