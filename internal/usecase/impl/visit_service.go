package impl

import (
	"context"
	"log/slog"
	"time"

	"panaderia/internal/domain/device"
	"panaderia/internal/domain/entity"
	"panaderia/internal/domain/repository"
	"panaderia/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// visitService implements the VisitUsecase interface.
type visitService struct {
	visitRepo repository.VisitRepository
	logger    *slog.Logger
}

// NewVisitService is the constructor for visitService.
func NewVisitService(
	visitRepo repository.VisitRepository,
	logger *slog.Logger,
) usecase.VisitUsecase {
	return &visitService{
		visitRepo: visitRepo,
		logger:    logger,
	}
}

// Record counts one visit per session. Repeat sessions report counted=false
// without an error so the storefront never surfaces the dedup.
func (srv *visitService) Record(ctx context.Context, sessionID, userAgent string) (bool, error) {
	visit := &entity.Visit{
		ID:        uuid.New(),
		SessionID: sessionID,
		Device:    device.Classify(userAgent),
		CreatedAt: time.Now().UTC(),
	}

	counted, err := srv.visitRepo.Record(ctx, visit)
	if err != nil {
		srv.logger.Error("Failed to record visit", slog.Any("error", err))

		return false, errors.Wrap(err, "record visit")
	}

	return counted, nil
}

// Stats returns the total counter plus a same-day counter measured from UTC
// midnight.
func (srv *visitService) Stats(ctx context.Context) (*entity.VisitStats, error) {
	total, err := srv.visitRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "count visits")
	}

	now := time.Now().UTC()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	today, err := srv.visitRepo.CountSince(ctx, midnight)
	if err != nil {
		return nil, errors.Wrap(err, "count today's visits")
	}

	return &entity.VisitStats{
		Total: total,
		Today: today,
	}, nil
}
