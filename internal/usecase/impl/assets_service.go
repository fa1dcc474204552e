package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"panaderia/config"
	domainerrors "panaderia/internal/domain/errors"
	"panaderia/internal/domain/service"
	"panaderia/internal/usecase"

	"github.com/pkg/errors"
)

// assetsService implements the AssetsUsecase interface.
type assetsService struct {
	settings usecase.SettingsUsecase
	exporter service.MenuExporter
	qrcode   service.QRCodeService
	cfg      *config.Config
	logger   *slog.Logger
}

// NewAssetsService is the constructor for assetsService.
func NewAssetsService(
	settings usecase.SettingsUsecase,
	exporter service.MenuExporter,
	qrcode service.QRCodeService,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.AssetsUsecase {
	return &assetsService{
		settings: settings,
		exporter: exporter,
		qrcode:   qrcode,
		cfg:      cfg,
		logger:   logger,
	}
}

// MenuWorkbook exports the resolved menu catalog as an xlsx workbook.
func (srv *assetsService) MenuWorkbook(ctx context.Context) ([]byte, string, error) {
	doc := srv.settings.Resolved(ctx)

	data, err := srv.exporter.Workbook(doc)
	if err != nil {
		srv.logger.Error("Failed to export menu workbook", slog.Any("error", err))

		return nil, "", domainerrors.ErrExportFailed.WrapMessage("export menu workbook")
	}

	filename := fmt.Sprintf("menu-panaderia-%s.xlsx", time.Now().UTC().Format("2006-01-02"))

	return data, filename, nil
}

// SiteQR renders a PNG QR code for the public storefront URL.
func (srv *assetsService) SiteQR() ([]byte, error) {
	if srv.cfg.Site == nil || srv.cfg.Site.PublicURL == "" {
		return nil, errors.New("site public URL is not configured")
	}

	png, err := srv.qrcode.GeneratePNG(srv.cfg.Site.PublicURL)
	if err != nil {
		srv.logger.Error("Failed to render site QR code", slog.Any("error", err))

		return nil, errors.Wrap(err, "render site QR code")
	}

	return png, nil
}
