package models

import (
	"fmt"
	"time"
)

// EventKind classifies a change event delivered to screen subscribers.
type EventKind int

const (
	// EventSaved signals a local or remote save of the screen.
	EventSaved EventKind = iota + 1

	// EventDeleted signals the screen was deleted.
	EventDeleted

	// EventSynced signals the screen reached the synced state.
	EventSynced

	// EventConflict signals an unresolved conflict on the screen.
	EventConflict
)

var eventKindNames = map[EventKind]string{
	EventSaved:    "saved",
	EventDeleted:  "deleted",
	EventSynced:   "synced",
	EventConflict: "conflict",
}

// String implements [fmt.Stringer].
func (k EventKind) String() string {
	if name, ok := eventKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%d)", int(k))
}

// MarshalText implements [encoding.TextMarshaler].
func (k EventKind) MarshalText() ([]byte, error) {
	name, ok := eventKindNames[k]
	if !ok {
		return nil, fmt.Errorf("cannot marshal unknown event kind %d", int(k))
	}
	return []byte(name), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (k *EventKind) UnmarshalText(text []byte) error {
	for kind, name := range eventKindNames {
		if name == string(text) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown event kind %q", string(text))
}

// ChangeEvent is one change notification for a subscribed screen.
// Screen carries the post-change copy when one exists; it is nil for
// deletions.
type ChangeEvent struct {
	ScreenID   string    `json:"screen_id"`
	Kind       EventKind `json:"kind"`
	Screen     *Screen   `json:"screen,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
