package entity

import (
	"time"

	"github.com/google/uuid"
)

// AccessLogEntry is one append-only record of an administrative action.
//
// The log records THAT something happened and from what kind of device, not
// which fields changed. Entries are advisory: losing one never invalidates
// the settings document it described.
type AccessLogEntry struct {
	ID        uuid.UUID `json:"id"`
	Timestamp time.Time `json:"timestamp"` // serialized as ISO-8601
	Device    string    `json:"device"`    // coarse classification of the request's user agent
	Action    string    `json:"action"`    // free text, "<actor>: <description>"
}
