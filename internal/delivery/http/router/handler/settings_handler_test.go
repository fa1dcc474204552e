package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"panaderia/internal/domain/entity"
	"panaderia/internal/domain/settings"
	mockUsecase "panaderia/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testIPhoneUA = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_4 like Mac OS X) AppleWebKit/605.1.15"

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSettingsHandler_GetSettings_Empty(t *testing.T) {
	mockSettings := mockUsecase.NewMockSettingsUsecase(t)
	h := NewSettingsHandler(mockSettings, newTestLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/settings", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockSettings.EXPECT().
		Current(req.Context()).
		Return(json.RawMessage("{}"), nil)

	require.NoError(t, h.GetSettings(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "{}", rec.Body.String())
}

func TestSettingsHandler_GetSettings_RawDocument(t *testing.T) {
	mockSettings := mockUsecase.NewMockSettingsUsecase(t)
	h := NewSettingsHandler(mockSettings, newTestLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/settings", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockSettings.EXPECT().
		Current(req.Context()).
		Return(json.RawMessage(`{"phone":"555-0100"}`), nil)

	require.NoError(t, h.GetSettings(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	// The persisted blob comes back verbatim, partial fields included.
	assert.JSONEq(t, `{"phone":"555-0100"}`, rec.Body.String())
}

func TestSettingsHandler_GetResolvedSettings(t *testing.T) {
	mockSettings := mockUsecase.NewMockSettingsUsecase(t)
	h := NewSettingsHandler(mockSettings, newTestLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/settings/resolved", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockSettings.EXPECT().
		Resolved(req.Context()).
		Return(settings.Defaults())

	require.NoError(t, h.GetResolvedSettings(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var doc entity.SiteSettings
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "Panaderia La Francesa", doc.HeroTitle)
}

func TestSettingsHandler_SaveSettings(t *testing.T) {
	mockSettings := mockUsecase.NewMockSettingsUsecase(t)
	h := NewSettingsHandler(mockSettings, newTestLogger())

	doc := settings.Defaults()
	doc.Phone = "555-0100"
	body, err := json.Marshal(map[string]any{
		"settings": doc,
		"username": "Maria",
		"action":   "Editó el menú",
	})
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/settings", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("User-Agent", testIPhoneUA)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockSettings.EXPECT().
		Save(req.Context(), doc, "Maria", "Editó el menú", "iPhone (iOS 17+)").
		Return(doc, nil)

	require.NoError(t, h.SaveSettings(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var saved entity.SiteSettings
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &saved))
	assert.Equal(t, "555-0100", saved.Phone)
}

func TestSettingsHandler_SaveSettings_MalformedBody(t *testing.T) {
	mockSettings := mockUsecase.NewMockSettingsUsecase(t)
	h := NewSettingsHandler(mockSettings, newTestLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/settings", strings.NewReader("{"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.SaveSettings(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
