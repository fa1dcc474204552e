package usecase

import (
	"context"

	"panaderia/internal/domain/entity"
)

// AccessLogUsecase appends and reads the administrative access log.
type AccessLogUsecase interface {
	// Append records one action. Entries are advisory and append-only.
	Append(ctx context.Context, device, action string) error

	// Recent returns up to 100 entries, most recent first. There is no
	// pagination beyond that cap.
	Recent(ctx context.Context) ([]*entity.AccessLogEntry, error)
}
