package repository

import (
	"context"

	"panaderia/internal/domain/entity"
)

// AccessLogRepository stores the append-only administrative action log.
type AccessLogRepository interface {
	// Append persists one log entry. Entries are never updated or deleted.
	Append(ctx context.Context, entry *entity.AccessLogEntry) error

	// Recent returns up to limit entries, most recent first.
	Recent(ctx context.Context, limit int) ([]*entity.AccessLogEntry, error)
}
