package repository

import (
	"context"
	"time"

	"panaderia/internal/domain/entity"
)

// VisitRepository stores the session-deduplicated visit counter.
type VisitRepository interface {
	// Record persists a visit. Returns false when the session was already
	// counted; that is not an error.
	Record(ctx context.Context, visit *entity.Visit) (bool, error)

	// Count returns the total number of recorded visits.
	Count(ctx context.Context) (int64, error)

	// CountSince returns the number of visits recorded at or after t.
	CountSince(ctx context.Context, t time.Time) (int64, error)
}
