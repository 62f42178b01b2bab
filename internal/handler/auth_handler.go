package handler

import (
	"errors"
	"net/http"

	"todo-service/internal/service"
	"todo-service/pkg/logger"
	"todo-service/prometheus"

	"github.com/labstack/echo/v4"
)

// AuthHandler exposes the login endpoint.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login authenticates with form fields username and password and returns a
// bearer access token. Every authentication failure is the same 401.
func (h *AuthHandler) Login(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.LoginCounter.Inc()

	username := c.FormValue("username")
	password := c.FormValue("password")
	if username == "" || password == "" {
		return unprocessable(c, "username and password are required")
	}

	token, err := h.auth.Login(username, password)
	if err != nil {
		if errors.Is(err, service.ErrIncorrectCredentials) {
			prometheus.RecordAuthError("invalid_credentials")
		}
		return writeError(c, "auth", err)
	}

	prometheus.TokensIssuedCounter.Inc()
	log.Debug("access token issued")

	return c.JSON(http.StatusOK, echo.Map{
		"access_token": token,
		"token_type":   "bearer",
	})
}
