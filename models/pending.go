package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// OperationKind is the kind of local mutation a pending item carries.
type OperationKind int

const (
	// OpCreate introduces a screen the server has never seen.
	OpCreate OperationKind = iota + 1

	// OpUpdate amends a screen the server already holds.
	OpUpdate

	// OpDelete removes a screen. A delete supersedes any earlier queued
	// create or update for the same screen id.
	OpDelete
)

var operationKindNames = map[OperationKind]string{
	OpCreate: "create",
	OpUpdate: "update",
	OpDelete: "delete",
}

// String implements [fmt.Stringer].
func (k OperationKind) String() string {
	if name, ok := operationKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%d)", int(k))
}

// ParseOperationKind converts the stored text form back into an
// [OperationKind].
func ParseOperationKind(text string) (OperationKind, error) {
	for kind, name := range operationKindNames {
		if name == text {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("unknown operation kind %q", text)
}

// MarshalText implements [encoding.TextMarshaler].
func (k OperationKind) MarshalText() ([]byte, error) {
	name, ok := operationKindNames[k]
	if !ok {
		return nil, fmt.Errorf("cannot marshal unknown operation kind %d", int(k))
	}
	return []byte(name), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (k *OperationKind) UnmarshalText(text []byte) error {
	kind, err := ParseOperationKind(string(text))
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

// PendingItem is one queued, not-yet-acknowledged local mutation.
//
// The queue holds at most one item per screen id: newer mutations for
// the same screen coalesce into the existing item (amending its snapshot
// and operation kind) instead of queuing duplicates. Coalescing keeps
// EnqueuedAt, AttemptCount, and ChangeID from the original item — it
// amends the request rather than restarting it.
type PendingItem struct {
	ScreenID string `json:"screen_id"`

	Operation OperationKind `json:"operation"`

	// Snapshot is the full screen serialized at enqueue (or last
	// coalesce) time, nil for deletes. It is an independent copy,
	// immutable thereafter, so concurrent local edits never alter an
	// already queued item.
	Snapshot json.RawMessage `json:"snapshot,omitempty"`

	// BaseVersion is the server version the mutation was built on. The
	// server rejects the push with a conflict when its current version
	// is newer.
	BaseVersion int64 `json:"base_version"`

	// ChangeID identifies the logical change across retries and
	// coalesced amendments, letting the server deduplicate replays.
	ChangeID string `json:"change_id"`

	EnqueuedAt time.Time `json:"enqueued_at"`

	// AttemptCount is the number of transmission attempts so far.
	AttemptCount int `json:"attempt_count"`

	// NextAttemptAt is the earliest time the item may be dispatched
	// again. Backoff state lives here so retry spacing survives process
	// restarts.
	NextAttemptAt time.Time `json:"next_attempt_at"`
}
