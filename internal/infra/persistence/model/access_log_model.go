package model

import (
	"time"

	"github.com/google/uuid"
)

// AccessLogModel is one append-only administrative action record.
type AccessLogModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Timestamp time.Time `gorm:"index;not null"`
	Device    string    `gorm:"size:128;not null"`
	Action    string    `gorm:"not null"`
}

// TableName overrides the table name used by GORM.
func (AccessLogModel) TableName() string {
	return "access_logs"
}
