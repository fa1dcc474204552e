package postgres

import (
	"context"
	"time"

	"panaderia/internal/domain/entity"
	"panaderia/internal/domain/repository"
	"panaderia/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// visitRepository implements the repository.VisitRepository interface.
type visitRepository struct {
	db *gorm.DB
}

// NewVisitRepository is the constructor for visitRepository.
func NewVisitRepository(db *gorm.DB) repository.VisitRepository {
	return &visitRepository{
		db: db,
	}
}

// Record persists a visit. A duplicate session is reported as not-created,
// never as an error; the unique index does the deduplication.
func (repo *visitRepository) Record(ctx context.Context, visit *entity.Visit) (bool, error) {
	visitM := &model.VisitModel{
		ID:        visit.ID,
		SessionID: visit.SessionID,
		Device:    visit.Device,
		CreatedAt: visit.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(visitM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return false, nil
		}

		return false, errors.Wrap(err, "failed to record visit")
	}

	return true, nil
}

// Count returns the total number of recorded visits.
func (repo *visitRepository) Count(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.VisitModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count visits")
	}

	return count, nil
}

// CountSince returns the number of visits recorded at or after t.
func (repo *visitRepository) CountSince(ctx context.Context, t time.Time) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.VisitModel{}).
		Where("created_at >= ?", t).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count visits since")
	}

	return count, nil
}
