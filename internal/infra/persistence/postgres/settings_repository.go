// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"panaderia/internal/domain/repository"
	"panaderia/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// settingsRepository implements the repository.SettingsRepository interface.
type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository is the constructor for settingsRepository.
func NewSettingsRepository(db *gorm.DB) repository.SettingsRepository {
	return &settingsRepository{
		db: db,
	}
}

// Fetch returns the raw persisted document blob.
func (repo *settingsRepository) Fetch(ctx context.Context) ([]byte, error) {
	var settingsM model.SiteSettingsModel

	if err := repo.db.WithContext(ctx).
		Where("key = ?", model.SiteSettingsKey).
		First(&settingsM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSettingsNotFound
		}

		return nil, errors.Wrap(err, "failed to fetch settings document")
	}

	return []byte(settingsM.Data), nil
}

// Save overwrites the single settings row, creating it if absent. Last write
// wins at document granularity; there is intentionally no version check.
func (repo *settingsRepository) Save(ctx context.Context, doc []byte) error {
	settingsM := model.SiteSettingsModel{
		Key:       model.SiteSettingsKey,
		Data:      datatypes.JSON(doc),
		UpdatedAt: time.Now(),
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
		}).
		Create(&settingsM).Error; err != nil {
		return errors.Wrap(err, "failed to save settings document")
	}

	return nil
}
