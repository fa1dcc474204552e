package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"panaderia/internal/delivery/http/middleware"
	"panaderia/internal/delivery/http/validator"
	domainerrors "panaderia/internal/domain/errors"
	mockUsecase "panaderia/internal/mocks/usecase"
	"panaderia/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoginContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("User-Agent", testIPhoneUA)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login_SetsSessionCookie(t *testing.T) {
	mockAuth := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(mockAuth, newTestLogger())

	c, rec := newLoginContext(t, `{"password":"panaderia2024"}`)

	expiresAt := time.Now().Add(24 * time.Hour).Truncate(time.Second)
	mockAuth.EXPECT().
		Login(c.Request().Context(), "panaderia2024", "iPhone (iOS 17+)").
		Return(&usecase.LoginOutput{Username: "admin", Token: "signed-token", ExpiresAt: expiresAt}, nil)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"admin"`)
	assert.Contains(t, rec.Body.String(), `"token":"signed-token"`)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, middleware.SessionCookieName, cookies[0].Name)
	assert.Equal(t, "signed-token", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	mockAuth := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(mockAuth, newTestLogger())

	c, _ := newLoginContext(t, `{"password":"nope"}`)

	mockAuth.EXPECT().
		Login(c.Request().Context(), "nope", "iPhone (iOS 17+)").
		Return(nil, domainerrors.ErrInvalidCredentials)

	err := h.Login(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthHandler_Login_MissingPassword(t *testing.T) {
	mockAuth := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(mockAuth, newTestLogger())

	c, rec := newLoginContext(t, `{}`)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
