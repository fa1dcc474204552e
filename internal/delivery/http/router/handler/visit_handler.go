package handler

import (
	"log/slog"
	"net/http"
	"time"

	"panaderia/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// VisitorCookieName identifies a browser session for visit deduplication.
// It is unrelated to the admin session cookie.
const VisitorCookieName = "visitor_id"

const visitorCookieTTL = 365 * 24 * time.Hour

// VisitHandler holds dependencies for the visit counter endpoints.
type VisitHandler struct {
	uc     usecase.VisitUsecase
	logger *slog.Logger
}

// NewVisitHandler is the constructor for VisitHandler, injected by Fx.
func NewVisitHandler(uc usecase.VisitUsecase, logger *slog.Logger) *VisitHandler {
	return &VisitHandler{
		uc:     uc,
		logger: logger,
	}
}

// RecordVisit counts one visit per browser session. First-time visitors get
// a visitor cookie; repeat calls with the same cookie are not recounted.
func (h *VisitHandler) RecordVisit(c echo.Context) error {
	sessionID := h.visitorSession(c)

	counted, err := h.uc.Record(c.Request().Context(), sessionID, c.Request().UserAgent())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, map[string]bool{"counted": counted})
}

// GetStats returns the advisory visit counters.
func (h *VisitHandler) GetStats(c echo.Context) error {
	stats, err := h.uc.Stats(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, stats)
}

func (h *VisitHandler) visitorSession(c echo.Context) string {
	if cookie, err := c.Cookie(VisitorCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	sessionID := uuid.New().String()
	c.SetCookie(&http.Cookie{
		Name:     VisitorCookieName,
		Value:    sessionID,
		Path:     "/",
		Expires:  time.Now().Add(visitorCookieTTL),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return sessionID
}
