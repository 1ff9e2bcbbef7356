package models

import "time"

// PushRequest carries one local mutation to the server.
type PushRequest struct {
	// Screen is the full local copy at snapshot time. For deletes only
	// the identifying fields are meaningful.
	Screen Screen `json:"screen"`

	// Operation tells the server whether this is a create, update, or
	// delete.
	Operation OperationKind `json:"operation"`

	// BaseVersion is the server version the mutation was built on.
	// The server answers with a conflict when its current version is
	// newer than this.
	BaseVersion int64 `json:"base_version"`

	// ChangeID deduplicates replays of the same logical change.
	ChangeID string `json:"change_id"`
}

// PushResponse acknowledges an accepted push.
type PushResponse struct {
	ScreenID string `json:"screen_id"`

	// Version is the new server-assigned version of the screen.
	Version int64 `json:"version"`
}

// ScreenListResponse is the paged listing shape.
type ScreenListResponse struct {
	Screens []Screen `json:"screens"`

	// Length is the number of entries in Screens. Provided so clients
	// can validate the response without iterating the slice.
	Length int `json:"length"`
}

// ScreenCountResponse reports the total number of screens on the server.
type ScreenCountResponse struct {
	Count int64 `json:"count"`
}

// SessionRequest opens an agent session.
type SessionRequest struct {
	// ClientID identifies the syncing device or agent instance.
	ClientID string `json:"client_id"`
}

// SessionResponse returns the bearer token the agent attaches to every
// subsequent call.
type SessionResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// BuildInfo is the version endpoint payload. Values are injected through
// linker flags at build time.
type BuildInfo struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}
