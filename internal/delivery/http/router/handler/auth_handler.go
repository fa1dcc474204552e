package handler

import (
	"log/slog"
	"net/http"

	"panaderia/internal/delivery/http/middleware"
	"panaderia/internal/delivery/http/response"
	"panaderia/internal/domain/device"
	"panaderia/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for the login endpoint.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

type loginRequest struct {
	Password string `json:"password" validate:"required"`
}

// Login resolves the password, issues a session token and sets it as an
// HttpOnly cookie. The token is also returned for non-browser clients.
func (h *AuthHandler) Login(c echo.Context) error {
	var input loginRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Solicitud de acceso no válida")
	}
	if err := c.Validate(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "La contraseña es obligatoria")
	}

	out, err := h.uc.Login(c.Request().Context(), input.Password, device.Classify(c.Request().UserAgent()))
	if err != nil {
		return errors.WithStack(err)
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    out.Token,
		Path:     "/",
		Expires:  out.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return c.JSON(http.StatusOK, out)
}
