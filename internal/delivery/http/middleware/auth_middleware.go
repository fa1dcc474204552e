package middleware

import (
	"net/http"
	"strings"

	"panaderia/internal/delivery/http/response"
	"panaderia/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// SessionCookieName is the cookie the login endpoint issues and the auth
// middleware reads.
const SessionCookieName = "session"

// ContextKeyUsername is where the middleware leaves the authenticated
// username for handlers.
const ContextKeyUsername = "username"

// AuthMiddleware guards the admin endpoints with the session token.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the session token from the session cookie or, for
// non-browser clients, a Bearer Authorization header.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := m.extractToken(c)
		if token == "" {
			return response.Error(c, http.StatusUnauthorized, "SESSION_MISSING", "Sesión requerida", "")
		}

		claims, err := m.tokenSvc.Validate(token)
		if err != nil {
			return response.Error(c, http.StatusUnauthorized, "SESSION_INVALID", "Sesión no válida o expirada", "")
		}

		c.Set(ContextKeyUsername, claims.Username)

		return next(c)
	}
}

func (m *AuthMiddleware) extractToken(c echo.Context) string {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := c.Request().Header.Get("Authorization")
	if token := strings.TrimPrefix(authHeader, "Bearer "); token != authHeader {
		return token
	}

	return ""
}
