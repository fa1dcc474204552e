package handler

import (
	"log/slog"
	"net/http"

	"panaderia/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// LogsHandler holds dependencies for the access log endpoint.
type LogsHandler struct {
	uc     usecase.AccessLogUsecase
	logger *slog.Logger
}

// NewLogsHandler is the constructor for LogsHandler, injected by Fx.
func NewLogsHandler(uc usecase.AccessLogUsecase, logger *slog.Logger) *LogsHandler {
	return &LogsHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetLogs returns the most recent access log entries, newest first.
func (h *LogsHandler) GetLogs(c echo.Context) error {
	entries, err := h.uc.Recent(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, entries)
}
