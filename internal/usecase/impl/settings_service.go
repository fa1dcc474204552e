// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"panaderia/internal/domain/entity"
	domainerrors "panaderia/internal/domain/errors"
	"panaderia/internal/domain/repository"
	"panaderia/internal/domain/settings"
	"panaderia/internal/usecase"

	"github.com/pkg/errors"
)

const (
	defaultSaveActor  = "Admin"
	defaultSaveAction = "Actualizó configuraciones"
)

// settingsService implements the SettingsUsecase interface.
type settingsService struct {
	settingsRepo repository.SettingsRepository
	accessLog    usecase.AccessLogUsecase
	logger       *slog.Logger
}

// NewSettingsService is the constructor for settingsService.
func NewSettingsService(
	settingsRepo repository.SettingsRepository,
	accessLog usecase.AccessLogUsecase,
	logger *slog.Logger,
) usecase.SettingsUsecase {
	return &settingsService{
		settingsRepo: settingsRepo,
		accessLog:    accessLog,
		logger:       logger,
	}
}

// Current returns the raw persisted document, or "{}" when nothing has been
// saved yet. The blob is handed back verbatim so the admin console edits
// exactly what is stored.
func (srv *settingsService) Current(ctx context.Context) (json.RawMessage, error) {
	doc, err := srv.settingsRepo.Fetch(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrSettingsNotFound) {
			return json.RawMessage("{}"), nil
		}
		srv.logger.Error("Failed to fetch settings document", slog.Any("error", err))

		return nil, domainerrors.ErrSettingsFetchFailed.WrapMessage("fetch settings")
	}

	return json.RawMessage(doc), nil
}

// Resolved returns the persisted document merged onto the baseline defaults.
// Every failure path degrades to the full defaults so the storefront always
// has something to render.
func (srv *settingsService) Resolved(ctx context.Context) entity.SiteSettings {
	defaults := settings.Defaults()

	doc, err := srv.settingsRepo.Fetch(ctx)
	if err != nil {
		if !errors.Is(err, repository.ErrSettingsNotFound) {
			srv.logger.Warn("Falling back to default settings", slog.Any("error", err))
		}

		return defaults
	}

	merged, err := settings.Merge(defaults, doc)
	if err != nil {
		srv.logger.Warn("Persisted settings unreadable, using defaults", slog.Any("error", err))

		return defaults
	}

	return merged
}

// Save overwrites the persisted document in full. On success one access log
// entry is appended best-effort; its failure never fails the save.
func (srv *settingsService) Save(ctx context.Context, doc entity.SiteSettings, actor, action, device string) (entity.SiteSettings, error) {
	blob, err := json.Marshal(doc)
	if err != nil {
		return entity.SiteSettings{}, errors.Wrap(err, "marshal settings document")
	}

	if err := srv.settingsRepo.Save(ctx, blob); err != nil {
		srv.logger.Error("Failed to save settings document", slog.Any("error", err))

		return entity.SiteSettings{}, domainerrors.ErrSettingsSaveFailed.WrapMessage("save settings")
	}

	if actor == "" {
		actor = defaultSaveActor
	}
	if action == "" {
		action = defaultSaveAction
	}
	if err := srv.accessLog.Append(ctx, device, fmt.Sprintf("%s: %s", actor, action)); err != nil {
		srv.logger.Warn("Failed to append access log entry", slog.Any("error", err))
	}

	return doc, nil
}
