package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"panaderia/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// SiteHandler holds dependencies for site-level assets.
type SiteHandler struct {
	uc     usecase.AssetsUsecase
	logger *slog.Logger
}

// NewSiteHandler is the constructor for SiteHandler, injected by Fx.
func NewSiteHandler(uc usecase.AssetsUsecase, logger *slog.Logger) *SiteHandler {
	return &SiteHandler{
		uc:     uc,
		logger: logger,
	}
}

// HealthCheck reports service liveness.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// ExportMenu streams the menu catalog as an xlsx attachment.
func (h *SiteHandler) ExportMenu(c echo.Context) error {
	data, filename, err := h.uc.MenuWorkbook(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))

	return c.Blob(http.StatusOK, contentTypeXLSX, data)
}

// SiteQR returns a PNG QR code pointing at the public storefront, sized for
// printed menu cards.
func (h *SiteHandler) SiteQR(c echo.Context) error {
	png, err := h.uc.SiteQR()
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
