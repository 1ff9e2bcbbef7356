package models

import (
	"encoding/json"
	"time"
)

// Screen is the unit of synchronization: a declarative UI document the
// server describes and the client renders. The payload body is opaque to
// the sync core — it is stored, transmitted, and compared as raw JSON
// without ever being interpreted.
type Screen struct {
	// ScreenID is the stable, globally unique identifier of the screen.
	ScreenID string `json:"screen_id"`

	// Name is the human-readable screen name, used for search.
	Name string `json:"name"`

	// Version is the monotonically increasing revision counter.
	// It is assigned by the server on every accepted push; a locally
	// created screen that was never synced carries version 0.
	Version int64 `json:"version"`

	// Payload is the opaque screen document body.
	Payload json.RawMessage `json:"payload,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// IsActive marks a screen that is logically withdrawn when false,
	// without removing its history.
	IsActive bool `json:"is_active"`

	// IsDeleted is the soft-delete flag, distinct from hard removal.
	IsDeleted bool `json:"is_deleted"`
}

// Clone returns a deep copy of the screen. The payload bytes are copied
// so the clone never aliases the receiver's buffer.
func (s Screen) Clone() Screen {
	c := s
	if s.Payload != nil {
		c.Payload = make(json.RawMessage, len(s.Payload))
		copy(c.Payload, s.Payload)
	}
	return c
}

// StoreStats describes the current contents of the local document store.
type StoreStats struct {
	Total      int                `json:"total"`
	ByStatus   map[SyncStatus]int `json:"by_status"`
	TotalBytes int64              `json:"total_bytes"`
}

// ScreenFilter narrows a local screen query. Zero-value fields are ignored,
// so an empty filter matches every stored screen that is not soft-deleted.
type ScreenFilter struct {
	// Statuses restricts results to screens whose sync record carries one
	// of the listed statuses.
	Statuses []SyncStatus

	// NameContains matches screens whose name contains the substring,
	// case-insensitive.
	NameContains string

	// UpdatedAfter and UpdatedBefore bound the screen's UpdatedAt timestamp.
	UpdatedAfter  *time.Time
	UpdatedBefore *time.Time

	// IncludeDeleted also returns soft-deleted screens.
	IncludeDeleted bool

	// Limit and Offset paginate the result set; Limit <= 0 means no limit.
	Limit  int
	Offset int
}
