package usecase

import (
	"context"

	"panaderia/internal/domain/entity"
)

// VisitUsecase maintains the session-deduplicated visit counter.
type VisitUsecase interface {
	// Record counts one visit for the given session, classifying the user
	// agent into a device label. Returns false when the session was
	// already counted.
	Record(ctx context.Context, sessionID, userAgent string) (bool, error)

	// Stats returns the advisory visit counters.
	Stats(ctx context.Context) (*entity.VisitStats, error)
}
