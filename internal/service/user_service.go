package service

import (
	"todo-service/internal/model"
	"todo-service/internal/policy"
	"todo-service/internal/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UserCreate is the payload for creating a company member.
type UserCreate struct {
	Email     string
	Username  string
	FirstName string
	LastName  string
	Password  string
	IsActive  bool
	IsAdmin   bool
}

// UserUpdate is a partial update; nil fields are left unchanged.
type UserUpdate struct {
	Email     *string
	Username  *string
	FirstName *string
	LastName  *string
	Password  *string
	IsActive  *bool
	IsAdmin   *bool
}

// UserService handles member operations for an authenticated principal.
type UserService struct {
	store  store.Store
	logger *zap.Logger
}

// NewUserService creates a new user service
func NewUserService(st store.Store, logger *zap.Logger) *UserService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserService{store: st, logger: logger}
}

// List returns every member of the principal's company. Admin only.
func (s *UserService) List(p policy.Principal) ([]model.User, error) {
	if d := policy.ListUsers(p); !d.Allowed() {
		return nil, decisionError(d)
	}
	return s.store.Users().ListByCompany(p.CompanyID)
}

// Get returns a member by id. A member of another company is reported as not
// found, never as forbidden.
func (s *UserService) Get(p policy.Principal, userID uuid.UUID) (*model.User, error) {
	user, err := s.store.Users().GetByID(userID)
	if err != nil {
		return nil, err
	}
	if d := policy.ReadUser(p, user); !d.Allowed() {
		return nil, decisionError(d)
	}
	return user, nil
}

// Create creates a member in the principal's company. The new member's
// company is always the creator's, regardless of anything the caller sent.
func (s *UserService) Create(p policy.Principal, in UserCreate) (*model.User, error) {
	if d := policy.CreateUser(p); !d.Allowed() {
		return nil, decisionError(d)
	}

	hashed, err := HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:          in.Email,
		Username:       in.Username,
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		HashedPassword: hashed,
		IsActive:       in.IsActive,
		IsAdmin:        in.IsAdmin,
		CompanyID:      p.CompanyID,
	}
	if err := s.store.Users().Create(user); err != nil {
		return nil, err
	}

	s.logger.Info("user created",
		zap.String("user_id", user.ID.String()),
		zap.String("company_id", user.CompanyID.String()),
		zap.String("created_by", p.ID.String()))
	return user, nil
}

// Update applies a partial update to a member inside one transaction. Admins
// may update anyone in their company, everyone may update themselves. A
// non-admin caller's is_admin and is_active fields are silently dropped, not
// rejected.
func (s *UserService) Update(p policy.Principal, userID uuid.UUID, in UserUpdate) (*model.User, error) {
	var user *model.User
	err := s.store.InTx(func(tx store.Store) error {
		var err error
		user, err = tx.Users().GetByID(userID)
		if err != nil {
			return err
		}
		if d := policy.UpdateUser(p, user); !d.Allowed() {
			return decisionError(d)
		}

		if !p.IsAdmin {
			in.IsAdmin = nil
			in.IsActive = nil
		}

		if in.Email != nil {
			user.Email = *in.Email
		}
		if in.Username != nil {
			user.Username = *in.Username
		}
		if in.FirstName != nil {
			user.FirstName = *in.FirstName
		}
		if in.LastName != nil {
			user.LastName = *in.LastName
		}
		if in.IsActive != nil {
			user.IsActive = *in.IsActive
		}
		if in.IsAdmin != nil {
			user.IsAdmin = *in.IsAdmin
		}
		if in.Password != nil && *in.Password != "" {
			hashed, err := HashPassword(*in.Password)
			if err != nil {
				return err
			}
			user.HashedPassword = hashed
		}

		return tx.Users().Save(user)
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes a member from the principal's company. Admin only; the
// member's tasks cascade away with the row.
func (s *UserService) Delete(p policy.Principal, userID uuid.UUID) error {
	return s.store.InTx(func(tx store.Store) error {
		user, err := tx.Users().GetByID(userID)
		if err != nil {
			return err
		}
		if d := policy.DeleteUser(p, user); !d.Allowed() {
			return decisionError(d)
		}

		if err := tx.Users().Delete(user); err != nil {
			return err
		}
		s.logger.Info("user deleted",
			zap.String("user_id", userID.String()),
			zap.String("deleted_by", p.ID.String()))
		return nil
	})
}
