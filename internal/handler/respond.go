package handler

import (
	"errors"
	"net/http"

	"todo-service/internal/service"
	"todo-service/pkg/logger"
	"todo-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// writeError translates a service error into its response. Anything untyped is
// a store or infrastructure failure and surfaces as a 500.
func writeError(c echo.Context, entity string, err error) error {
	var svcErr *service.Error
	if errors.As(err, &svcErr) {
		if svcErr.Status == http.StatusForbidden || svcErr.Status == http.StatusNotFound {
			prometheus.RecordAccessDenied(entity, svcErr.Status)
		}
		return c.JSON(svcErr.Status, echo.Map{"detail": svcErr.Detail})
	}

	logger.FromEcho(c).Error("request failed", zap.String("entity", entity), zap.Error(err))
	return c.JSON(http.StatusInternalServerError, echo.Map{"detail": "Internal server error"})
}

// unprocessable reports a malformed payload or path parameter.
func unprocessable(c echo.Context, detail string) error {
	return c.JSON(http.StatusUnprocessableEntity, echo.Map{"detail": detail})
}
