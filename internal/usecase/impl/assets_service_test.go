package impl

import (
	"context"
	"testing"

	"panaderia/config"
	domainerrors "panaderia/internal/domain/errors"
	"panaderia/internal/domain/settings"
	mockSvc "panaderia/internal/mocks/service"
	mockUsecase "panaderia/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetsService_MenuWorkbook(t *testing.T) {
	mockSettings := mockUsecase.NewMockSettingsUsecase(t)
	mockExporter := mockSvc.NewMockMenuExporter(t)
	mockQR := mockSvc.NewMockQRCodeService(t)
	cfg := &config.Config{Site: &config.SiteConfig{PublicURL: "https://panaderialafrancesa.com"}}
	service := NewAssetsService(mockSettings, mockExporter, mockQR, cfg, newDiscardLogger())

	ctx := context.Background()
	doc := settings.Defaults()

	mockSettings.EXPECT().
		Resolved(ctx).
		Return(doc)

	mockExporter.EXPECT().
		Workbook(doc).
		Return([]byte("xlsx-bytes"), nil)

	data, filename, err := service.MenuWorkbook(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte("xlsx-bytes"), data)
	assert.Regexp(t, `^menu-panaderia-\d{4}-\d{2}-\d{2}\.xlsx$`, filename)
}

func TestAssetsService_MenuWorkbook_ExportError(t *testing.T) {
	mockSettings := mockUsecase.NewMockSettingsUsecase(t)
	mockExporter := mockSvc.NewMockMenuExporter(t)
	mockQR := mockSvc.NewMockQRCodeService(t)
	cfg := &config.Config{Site: &config.SiteConfig{PublicURL: "https://panaderialafrancesa.com"}}
	service := NewAssetsService(mockSettings, mockExporter, mockQR, cfg, newDiscardLogger())

	ctx := context.Background()
	doc := settings.Defaults()

	mockSettings.EXPECT().
		Resolved(ctx).
		Return(doc)

	mockExporter.EXPECT().
		Workbook(doc).
		Return(nil, errors.New("sheet write failed"))

	_, _, err := service.MenuWorkbook(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrExportFailed)
}

func TestAssetsService_SiteQR(t *testing.T) {
	mockSettings := mockUsecase.NewMockSettingsUsecase(t)
	mockExporter := mockSvc.NewMockMenuExporter(t)
	mockQR := mockSvc.NewMockQRCodeService(t)
	cfg := &config.Config{Site: &config.SiteConfig{PublicURL: "https://panaderialafrancesa.com"}}
	service := NewAssetsService(mockSettings, mockExporter, mockQR, cfg, newDiscardLogger())

	mockQR.EXPECT().
		GeneratePNG("https://panaderialafrancesa.com").
		Return([]byte("png-bytes"), nil)

	png, err := service.SiteQR()
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), png)
}

func TestAssetsService_SiteQR_UnconfiguredURL(t *testing.T) {
	mockSettings := mockUsecase.NewMockSettingsUsecase(t)
	mockExporter := mockSvc.NewMockMenuExporter(t)
	mockQR := mockSvc.NewMockQRCodeService(t)
	service := NewAssetsService(mockSettings, mockExporter, mockQR, &config.Config{}, newDiscardLogger())

	png, err := service.SiteQR()
	require.Error(t, err)
	assert.Nil(t, png)
}
