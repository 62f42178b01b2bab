package service

import (
	"net/http"

	"todo-service/internal/model"
	"todo-service/internal/policy"
	"todo-service/internal/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CompanyCreate is the payload for creating a company.
type CompanyCreate struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CompanyUpdate is a partial update; nil fields are left unchanged.
type CompanyUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// CompanyService handles company operations for an authenticated principal.
type CompanyService struct {
	store  store.Store
	logger *zap.Logger
}

// NewCompanyService creates a new company service
func NewCompanyService(st store.Store, logger *zap.Logger) *CompanyService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CompanyService{store: st, logger: logger}
}

// GetMine returns the principal's own company.
func (s *CompanyService) GetMine(p policy.Principal) (*model.Company, error) {
	company, err := s.store.Companies().GetByID(p.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, NewError(http.StatusNotFound, "Company not found")
	}
	return company, nil
}

// GetByID returns a company by id. Reading another company is rejected before
// the row is even looked up.
func (s *CompanyService) GetByID(p policy.Principal, companyID uuid.UUID) (*model.Company, error) {
	if d := policy.ReadCompany(p, companyID); !d.Allowed() {
		return nil, decisionError(d)
	}

	company, err := s.store.Companies().GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, NewError(http.StatusNotFound, "Company not found")
	}
	return company, nil
}

// Create creates a new company. Admin only; the new company starts empty and
// the creator stays in their current company.
func (s *CompanyService) Create(p policy.Principal, in CompanyCreate) (*model.Company, error) {
	if d := policy.CreateCompany(p); !d.Allowed() {
		return nil, decisionError(d)
	}

	company := &model.Company{
		Name:        in.Name,
		Description: in.Description,
	}
	if err := s.store.Companies().Create(company); err != nil {
		return nil, err
	}

	s.logger.Info("company created",
		zap.String("company_id", company.ID.String()),
		zap.String("created_by", p.ID.String()))
	return company, nil
}

// Update applies a partial update to a company inside one transaction.
func (s *CompanyService) Update(p policy.Principal, companyID uuid.UUID, in CompanyUpdate) (*model.Company, error) {
	if d := policy.UpdateCompany(p, companyID); !d.Allowed() {
		return nil, decisionError(d)
	}

	var company *model.Company
	err := s.store.InTx(func(tx store.Store) error {
		var err error
		company, err = tx.Companies().GetByID(companyID)
		if err != nil {
			return err
		}
		if company == nil {
			return NewError(http.StatusNotFound, "Company not found")
		}

		if in.Name != nil {
			company.Name = *in.Name
		}
		if in.Description != nil {
			company.Description = *in.Description
		}
		return tx.Companies().Save(company)
	})
	if err != nil {
		return nil, err
	}
	return company, nil
}
