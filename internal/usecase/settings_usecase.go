// Package usecase defines the application's use case interfaces.
package usecase

import (
	"context"
	"encoding/json"

	"panaderia/internal/domain/entity"
)

// SettingsUsecase exposes the settings document's read and write contracts.
type SettingsUsecase interface {
	// Current returns the raw persisted document, or an empty JSON object
	// when nothing has been persisted yet. Partial documents are returned
	// as-is; defaulting is the caller's (or Resolved's) concern.
	Current(ctx context.Context) (json.RawMessage, error)

	// Resolved returns the persisted document merged onto the baseline
	// defaults (shallow, top-level fields). When the fetch fails outright
	// the full defaults are returned so the caller can keep rendering.
	Resolved(ctx context.Context) entity.SiteSettings

	// Save overwrites the persisted document in full and appends one
	// best-effort access log entry "<actor>: <action>". A failed log
	// append never rolls back the save; a failed save appends nothing.
	Save(ctx context.Context, doc entity.SiteSettings, actor, action, device string) (entity.SiteSettings, error)
}
