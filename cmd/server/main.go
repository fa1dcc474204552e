package main

import (
	"context"
	"log/slog"
	"os"

	"panaderia/config"
	"panaderia/internal/delivery"
	"panaderia/internal/delivery/http"
	"panaderia/internal/delivery/http/middleware"
	"panaderia/internal/delivery/http/router/handler"
	"panaderia/internal/domain/service"
	"panaderia/internal/infra/auth"
	"panaderia/internal/infra/export"
	logs "panaderia/internal/infra/log"
	"panaderia/internal/infra/persistence/postgres"
	"panaderia/internal/infra/qrcode"
	"panaderia/internal/infra/storage"
	"panaderia/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewSettingsRepository,
			postgres.NewAccessLogRepository,
			postgres.NewVisitRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			auth.NewCredentialTable,
			storage.New,
			export.NewExcelExporter,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSettingsService,
			impl.NewAuthService,
			impl.NewAccessLogService,
			impl.NewVisitService,
			impl.NewUploadService,
			impl.NewAssetsService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSettingsHandler,
			handler.NewAuthHandler,
			handler.NewLogsHandler,
			handler.NewUploadHandler,
			handler.NewVisitHandler,
			handler.NewSiteHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
