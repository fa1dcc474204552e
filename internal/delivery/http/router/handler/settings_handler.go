// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"panaderia/internal/delivery/http/response"
	"panaderia/internal/domain/device"
	"panaderia/internal/domain/entity"
	"panaderia/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SettingsHandler holds dependencies for the settings document endpoints.
type SettingsHandler struct {
	uc     usecase.SettingsUsecase
	logger *slog.Logger
}

// NewSettingsHandler is the constructor for SettingsHandler, injected by Fx.
func NewSettingsHandler(uc usecase.SettingsUsecase, logger *slog.Logger) *SettingsHandler {
	return &SettingsHandler{
		uc:     uc,
		logger: logger,
	}
}

// saveSettingsRequest is the write payload. Username and action feed the
// access log; the document itself replaces the persisted one in full.
type saveSettingsRequest struct {
	Settings entity.SiteSettings `json:"settings"`
	Username string              `json:"username"`
	Action   string              `json:"action"`
}

// GetSettings returns the persisted document verbatim, or "{}" when nothing
// has been saved yet. Clients merge it onto their own defaults.
func (h *SettingsHandler) GetSettings(c echo.Context) error {
	doc, err := h.uc.Current(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSONBlob(http.StatusOK, doc)
}

// GetResolvedSettings returns the document already merged onto the server's
// defaults, ready to render.
func (h *SettingsHandler) GetResolvedSettings(c echo.Context) error {
	doc := h.uc.Resolved(c.Request().Context())

	return c.JSON(http.StatusOK, doc)
}

// SaveSettings overwrites the persisted document in full and returns it.
func (h *SettingsHandler) SaveSettings(c echo.Context) error {
	var input saveSettingsRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Documento de configuración no válido")
	}

	saved, err := h.uc.Save(
		c.Request().Context(),
		input.Settings,
		input.Username,
		input.Action,
		device.Classify(c.Request().UserAgent()),
	)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, saved)
}
