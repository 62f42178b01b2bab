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

// UserHandler exposes member endpoints.
type UserHandler struct {
	users *service.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

type userCreateRequest struct {
	Email     string `json:"email"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Password  string `json:"password"`
	IsActive  *bool  `json:"is_active"`
	IsAdmin   *bool  `json:"is_admin"`
}

type userUpdateRequest struct {
	Email     *string `json:"email"`
	Username  *string `json:"username"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Password  *string `json:"password"`
	IsActive  *bool   `json:"is_active"`
	IsAdmin   *bool   `json:"is_admin"`
}

// GetMe returns the caller's own record
func (h *UserHandler) GetMe(c echo.Context) error {
	prometheus.RecordOperation("user", "read")
	return c.JSON(http.StatusOK, middleware.CurrentUser(c))
}

// List returns every member of the caller's company
func (h *UserHandler) List(c echo.Context) error {
	p := policy.PrincipalFromUser(middleware.CurrentUser(c))
	prometheus.RecordOperation("user", "list")

	users, err := h.users.List(p)
	if err != nil {
		return writeError(c, "user", err)
	}
	return c.JSON(http.StatusOK, users)
}

// Get returns a member by id
func (h *UserHandler) Get(c echo.Context) error {
	p := policy.PrincipalFromUser(middleware.CurrentUser(c))
	prometheus.RecordOperation("user", "read")

	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		return unprocessable(c, "invalid user id")
	}

	user, err := h.users.Get(p, userID)
	if err != nil {
		return writeError(c, "user", err)
	}
	return c.JSON(http.StatusOK, user)
}

// Create creates a member in the caller's company
func (h *UserHandler) Create(c echo.Context) error {
	p := policy.PrincipalFromUser(middleware.CurrentUser(c))
	prometheus.RecordOperation("user", "create")

	var req userCreateRequest
	if err := c.Bind(&req); err != nil {
		return unprocessable(c, "invalid request body")
	}
	if req.Email == "" || req.Username == "" || len(req.Password) < 6 {
		return unprocessable(c, "email, username and a password of at least 6 characters are required")
	}

	in := service.UserCreate{
		Email:     req.Email,
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
		IsActive:  true,
	}
	if req.IsActive != nil {
		in.IsActive = *req.IsActive
	}
	if req.IsAdmin != nil {
		in.IsAdmin = *req.IsAdmin
	}

	user, err := h.users.Create(p, in)
	if err != nil {
		return writeError(c, "user", err)
	}
	return c.JSON(http.StatusCreated, user)
}

// Update applies a partial update to a member
func (h *UserHandler) Update(c echo.Context) error {
	p := policy.PrincipalFromUser(middleware.CurrentUser(c))
	prometheus.RecordOperation("user", "update")

	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		return unprocessable(c, "invalid user id")
	}

	var req userUpdateRequest
	if err := c.Bind(&req); err != nil {
		return unprocessable(c, "invalid request body")
	}
	if req.Password != nil && len(*req.Password) < 6 {
		return unprocessable(c, "password must be at least 6 characters")
	}

	user, err := h.users.Update(p, userID, service.UserUpdate{
		Email:     req.Email,
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
		IsActive:  req.IsActive,
		IsAdmin:   req.IsAdmin,
	})
	if err != nil {
		return writeError(c, "user", err)
	}
	return c.JSON(http.StatusOK, user)
}

// Delete removes a member from the caller's company
func (h *UserHandler) Delete(c echo.Context) error {
	p := policy.PrincipalFromUser(middleware.CurrentUser(c))
	prometheus.RecordOperation("user", "delete")

	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		return unprocessable(c, "invalid user id")
	}

	if err := h.users.Delete(p, userID); err != nil {
		return writeError(c, "user", err)
	}
	return c.NoContent(http.StatusNoContent)
}
