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

// CompanyHandler exposes company endpoints.
type CompanyHandler struct {
	companies *service.CompanyService
}

// NewCompanyHandler creates a new company handler
func NewCompanyHandler(companies *service.CompanyService) *CompanyHandler {
	return &CompanyHandler{companies: companies}
}

// GetMine returns the caller's own company
func (h *CompanyHandler) GetMine(c echo.Context) error {
	p := policy.PrincipalFromUser(middleware.CurrentUser(c))
	prometheus.RecordOperation("company", "read")

	company, err := h.companies.GetMine(p)
	if err != nil {
		return writeError(c, "company", err)
	}
	return c.JSON(http.StatusOK, company)
}

// Get returns a company by id
func (h *CompanyHandler) Get(c echo.Context) error {
	p := policy.PrincipalFromUser(middleware.CurrentUser(c))
	prometheus.RecordOperation("company", "read")

	companyID, err := uuid.Parse(c.Param("company_id"))
	if err != nil {
		return unprocessable(c, "invalid company id")
	}

	company, err := h.companies.GetByID(p, companyID)
	if err != nil {
		return writeError(c, "company", err)
	}
	return c.JSON(http.StatusOK, company)
}

// Create creates a new company
func (h *CompanyHandler) Create(c echo.Context) error {
	p := policy.PrincipalFromUser(middleware.CurrentUser(c))
	prometheus.RecordOperation("company", "create")

	var req service.CompanyCreate
	if err := c.Bind(&req); err != nil {
		return unprocessable(c, "invalid request body")
	}
	if req.Name == "" {
		return unprocessable(c, "name is required")
	}

	company, err := h.companies.Create(p, req)
	if err != nil {
		return writeError(c, "company", err)
	}
	return c.JSON(http.StatusCreated, company)
}

// Update applies a partial update to a company
func (h *CompanyHandler) Update(c echo.Context) error {
	p := policy.PrincipalFromUser(middleware.CurrentUser(c))
	prometheus.RecordOperation("company", "update")

	companyID, err := uuid.Parse(c.Param("company_id"))
	if err != nil {
		return unprocessable(c, "invalid company id")
	}

	var req service.CompanyUpdate
	if err := c.Bind(&req); err != nil {
		return unprocessable(c, "invalid request body")
	}

	company, err := h.companies.Update(p, companyID, req)
	if err != nil {
		return writeError(c, "company", err)
	}
	return c.JSON(http.StatusOK, company)
}
