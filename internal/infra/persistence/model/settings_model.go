// Package model contains the GORM row shapes for the persistence layer.
package model

import (
	"time"

	"gorm.io/datatypes"
)

// SiteSettingsKey is the fixed key of the single settings row.
const SiteSettingsKey = "site"

// SiteSettingsModel holds the entire settings document as one JSON blob in
// one row. There is no history and no per-field audit trail.
type SiteSettingsModel struct {
	Key       string         `gorm:"primaryKey;size:64"`
	Data      datatypes.JSON `gorm:"not null"`
	UpdatedAt time.Time
}

// TableName overrides the table name used by GORM.
func (SiteSettingsModel) TableName() string {
	return "site_settings"
}
