// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"github.com/pkg/errors"
)

// ErrSettingsNotFound is returned when no settings document has been
// persisted yet.
var ErrSettingsNotFound = errors.New("settings document not found")

// SettingsRepository persists the single SiteSettings document as an opaque
// JSON blob. The blob is stored verbatim so partial documents stay partial:
// defaulting happens in the domain merge, never in the store.
type SettingsRepository interface {
	// Fetch returns the raw persisted document.
	Fetch(ctx context.Context) ([]byte, error)

	// Save overwrites the document in full, creating the row if absent.
	// Last write wins; there is deliberately no optimistic-concurrency
	// check (single-admin usage model).
	Save(ctx context.Context, doc []byte) error
}
