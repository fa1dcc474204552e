package impl

import (
	"context"
	"log/slog"
	"time"

	"panaderia/internal/domain/entity"
	"panaderia/internal/domain/repository"
	"panaderia/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// recentLogLimit caps the log listing. Older entries stay in the table but
// are never surfaced.
const recentLogLimit = 100

// accessLogService implements the AccessLogUsecase interface.
type accessLogService struct {
	logRepo repository.AccessLogRepository
	logger  *slog.Logger
}

// NewAccessLogService is the constructor for accessLogService.
func NewAccessLogService(
	logRepo repository.AccessLogRepository,
	logger *slog.Logger,
) usecase.AccessLogUsecase {
	return &accessLogService{
		logRepo: logRepo,
		logger:  logger,
	}
}

// Append records one administrative action.
func (srv *accessLogService) Append(ctx context.Context, device, action string) error {
	entry := &entity.AccessLogEntry{
		ID:        uuid.New(),
		Timestamp: time.Now().UTC(),
		Device:    device,
		Action:    action,
	}

	if err := srv.logRepo.Append(ctx, entry); err != nil {
		return errors.Wrap(err, "append access log entry")
	}

	return nil
}

// Recent returns up to recentLogLimit entries, most recent first.
func (srv *accessLogService) Recent(ctx context.Context) ([]*entity.AccessLogEntry, error) {
	entries, err := srv.logRepo.Recent(ctx, recentLogLimit)
	if err != nil {
		srv.logger.Error("Failed to list access log entries", slog.Any("error", err))

		return nil, errors.Wrap(err, "list access log entries")
	}

	return entries, nil
}
