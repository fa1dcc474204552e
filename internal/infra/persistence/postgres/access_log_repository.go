package postgres

import (
	"context"

	"panaderia/internal/domain/entity"
	"panaderia/internal/domain/repository"
	"panaderia/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// accessLogRepository implements the repository.AccessLogRepository interface.
type accessLogRepository struct {
	db *gorm.DB
}

// NewAccessLogRepository is the constructor for accessLogRepository.
func NewAccessLogRepository(db *gorm.DB) repository.AccessLogRepository {
	return &accessLogRepository{
		db: db,
	}
}

// Append persists one log entry.
func (repo *accessLogRepository) Append(ctx context.Context, entry *entity.AccessLogEntry) error {
	logM := fromLogDomain(entry)

	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		return errors.Wrap(err, "failed to append access log entry")
	}

	return nil
}

// Recent returns up to limit entries, most recent first.
func (repo *accessLogRepository) Recent(ctx context.Context, limit int) ([]*entity.AccessLogEntry, error) {
	var logModels []*model.AccessLogModel

	if err := repo.db.WithContext(ctx).
		Order("timestamp DESC").
		Limit(limit).
		Find(&logModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list access log entries")
	}

	entries := make([]*entity.AccessLogEntry, 0, len(logModels))
	for _, logM := range logModels {
		entries = append(entries, toLogDomain(logM))
	}

	return entries, nil
}

// --- Mapper Functions ---

func toLogDomain(data *model.AccessLogModel) *entity.AccessLogEntry {
	if data == nil {
		return nil
	}

	return &entity.AccessLogEntry{
		ID:        data.ID,
		Timestamp: data.Timestamp,
		Device:    data.Device,
		Action:    data.Action,
	}
}

func fromLogDomain(data *entity.AccessLogEntry) *model.AccessLogModel {
	if data == nil {
		return nil
	}

	return &model.AccessLogModel{
		ID:        data.ID,
		Timestamp: data.Timestamp,
		Device:    data.Device,
		Action:    data.Action,
	}
}
