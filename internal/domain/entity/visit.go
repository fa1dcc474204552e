package entity

import (
	"time"

	"github.com/google/uuid"
)

// Visit is one session-deduplicated storefront visit.
type Visit struct {
	ID        uuid.UUID `json:"id"`
	SessionID string    `json:"sessionId"`
	Device    string    `json:"device"`
	CreatedAt time.Time `json:"createdAt"`
}

// VisitStats summarizes the advisory visit counter.
type VisitStats struct {
	Total int64 `json:"total"`
	Today int64 `json:"today"`
}
