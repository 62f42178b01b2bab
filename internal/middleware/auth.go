package middleware

import (
	"errors"
	"net/http"
	"strings"

	"todo-service/internal/model"
	"todo-service/internal/service"
	"todo-service/pkg/logger"
	"todo-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// CurrentUserKey is the Echo context key holding the resolved principal.
const CurrentUserKey = "current_user"

// Auth returns a middleware that decodes the Authorization header, verifies
// the token against the live user row and injects the resolved user into the
// context. Unauthorized responses carry a WWW-Authenticate challenge.
func Auth(auth *service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			log := logger.FromEcho(c)

			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				prometheus.RecordAuthError("missing_token")
				return unauthorized(c, "Not authenticated")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				prometheus.RecordAuthError("invalid_auth_format")
				return unauthorized(c, "Not authenticated")
			}

			user, err := auth.Verify(parts[1])
			if err != nil {
				var svcErr *service.Error
				if errors.As(err, &svcErr) {
					if svcErr.Status == http.StatusUnauthorized {
						prometheus.RecordAuthError("invalid_token")
						return unauthorized(c, svcErr.Detail)
					}
					// Resolved but deactivated principal.
					prometheus.RecordAuthError("inactive_user")
					return c.JSON(svcErr.Status, echo.Map{"detail": svcErr.Detail})
				}
				log.Error("token verification failed", zap.Error(err))
				return c.JSON(http.StatusInternalServerError, echo.Map{"detail": "Internal server error"})
			}

			c.Set(CurrentUserKey, user)
			return next(c)
		}
	}
}

// CurrentUser returns the principal resolved by the Auth middleware.
func CurrentUser(c echo.Context) *model.User {
	user, _ := c.Get(CurrentUserKey).(*model.User)
	return user
}

func unauthorized(c echo.Context, detail string) error {
	c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
	return c.JSON(http.StatusUnauthorized, echo.Map{"detail": detail})
}
