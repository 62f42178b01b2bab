package service

import (
	"time"

	"todo-service/internal/model"
	"todo-service/internal/store"

	"github.com/google/uuid"
)

// memStore is an in-memory store.Store for exercising the services without a
// database. InTx runs the function directly; tests are single-writer.
type memStore struct {
	companies map[uuid.UUID]*model.Company
	users     map[uuid.UUID]*model.User
	tasks     map[uuid.UUID]*model.Task
}

func newMemStore() *memStore {
	return &memStore{
		companies: map[uuid.UUID]*model.Company{},
		users:     map[uuid.UUID]*model.User{},
		tasks:     map[uuid.UUID]*model.Task{},
	}
}

func (m *memStore) Companies() store.CompanyStore { return &memCompanies{m} }
func (m *memStore) Users() store.UserStore { return &memUsers{m} }
func (m *memStore) Tasks() store.TaskStore { return &memTasks{m} }

func (m *memStore) InTx(fn func(store.Store) error) error {
	return fn(m)
}

type memCompanies struct{ m *memStore }

func (s *memCompanies) GetByID(id uuid.UUID) (*model.Company, error) {
	return s.m.companies[id], nil
}

func (s *memCompanies) Create(company *model.Company) error {
	if company.ID == uuid.Nil {
		company.ID = uuid.New()
	}
	company.CreatedAt = time.Now()
	company.UpdatedAt = company.CreatedAt
	s.m.companies[company.ID] = company
	return nil
}

func (s *memCompanies) Save(company *model.Company) error {
	company.UpdatedAt = time.Now()
	s.m.companies[company.ID] = company
	return nil
}

type memUsers struct{ m *memStore }

func (s *memUsers) GetByID(id uuid.UUID) (*model.User, error) {
	return s.m.users[id], nil
}

func (s *memUsers) GetByUsername(username string) (*model.User, error) {
	for _, u := range s.m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (s *memUsers) ListByCompany(companyID uuid.UUID) ([]model.User, error) {
	var out []model.User
	for _, u := range s.m.users {
		if u.CompanyID == companyID {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (s *memUsers) Create(user *model.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	s.m.users[user.ID] = user
	return nil
}

func (s *memUsers) Save(user *model.User) error {
	user.UpdatedAt = time.Now()
	s.m.users[user.ID] = user
	return nil
}

func (s *memUsers) Delete(user *model.User) error {
	delete(s.m.users, user.ID)
	for id, task := range s.m.tasks {
		if task.UserID == user.ID {
			delete(s.m.tasks, id)
		}
	}
	return nil
}

type memTasks struct{ m *memStore }

func (s *memTasks) GetByID(id uuid.UUID) (*model.Task, error) {
	return s.m.tasks[id], nil
}

func (s *memTasks) List(filter store.TaskFilter) ([]model.Task, error) {
	var out []model.Task
	for _, t := range s.m.tasks {
		if t.CompanyID != filter.CompanyID {
			continue
		}
		if filter.OwnerID != nil && t.UserID != *filter.OwnerID {
			continue
		}
		if filter.IsCompleted != nil && t.IsCompleted != *filter.IsCompleted {
			continue
		}
		out = append(out, *t)
	}
	return out, nil
}

func (s *memTasks) Create(task *model.Task) error {
	if task.ID == uuid.Nil {
		task.ID = uuid.New()
	}
	task.CreatedAt = time.Now()
	task.UpdatedAt = task.CreatedAt
	s.m.tasks[task.ID] = task
	return nil
}

func (s *memTasks) Save(task *model.Task) error {
	task.UpdatedAt = time.Now()
	s.m.tasks[task.ID] = task
	return nil
}

func (s *memTasks) Delete(task *model.Task) error {
	delete(s.m.tasks, task.ID)
	return nil
}

// seedUser inserts a user with a bcrypt-hashed password and returns it.
func seedUser(m *memStore, username, password string, companyID uuid.UUID, isAdmin bool) *model.User {
	hashed, err := HashPassword(password)
	if err != nil {
		panic(err)
	}
	user := &model.User{
		Email:          username + "@example.com",
		Username:       username,
		HashedPassword: hashed,
		IsActive:       true,
		IsAdmin:        isAdmin,
		CompanyID:      companyID,
	}
	if err := m.Users().Create(user); err != nil {
		panic(err)
	}
	return user
}
