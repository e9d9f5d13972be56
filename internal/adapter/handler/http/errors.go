package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	pkgErrors "github.com/winning-appliances/service-automation/pkg/errors"
	"go.uber.org/zap"
)

// internalError logs err and writes the generic 500 body.
func internalError(c echo.Context, logger *zap.Logger, err error, msg string) error {
	pkgErrors.LogError(logger, err, msg,
		zap.String("path", c.Request().URL.Path),
		zap.Int("status", pkgErrors.StatusOf(err)))

	return c.JSON(http.StatusInternalServerError, echo.Map{
		"error":   "Internal server error",
		"message": err.Error(),
	})
}
