package model

import (
	"time"

	"github.com/google/uuid"
)

// VisitModel is one session-deduplicated storefront visit. The unique index
// on SessionID is what enforces the deduplication.
type VisitModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	SessionID string    `gorm:"uniqueIndex;size:64;not null"`
	Device    string    `gorm:"size:128"`
	CreatedAt time.Time `gorm:"index"`
}

// TableName overrides the table name used by GORM.
func (VisitModel) TableName() string {
	return "visits"
}
