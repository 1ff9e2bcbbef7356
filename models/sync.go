package models

import (
	"fmt"
	"time"
)

// SyncStatus describes the relationship between the local copy of a
// screen and the backend. It is a closed enumeration: every persisted
// status round-trips through [SyncStatus.String] and [ParseSyncStatus],
// so an invalid status is unrepresentable past the storage boundary.
type SyncStatus int

const (
	// StatusSynced means the local copy matches the last acknowledged
	// server revision.
	StatusSynced SyncStatus = iota + 1

	// StatusPending means a local mutation is queued and awaiting
	// transmission.
	StatusPending

	// StatusFailed means the retry budget for the pending mutation is
	// exhausted (or the failure was non-retryable). Failed screens are
	// re-queued only by an explicit retry request, never automatically.
	StatusFailed

	// StatusConflict means a push discovered a newer remote revision and
	// the configured resolver declined to resolve it.
	StatusConflict

	// StatusOffline means the last transmission attempt could not reach
	// the backend at all. The mutation stays queued and is retried when
	// connectivity returns, without consuming the retry budget.
	StatusOffline
)

var syncStatusNames = map[SyncStatus]string{
	StatusSynced:   "synced",
	StatusPending:  "pending",
	StatusFailed:   "failed",
	StatusConflict: "conflict",
	StatusOffline:  "offline",
}

// String implements [fmt.Stringer].
func (s SyncStatus) String() string {
	if name, ok := syncStatusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%d)", int(s))
}

// ParseSyncStatus converts the stored text form back into a [SyncStatus].
func ParseSyncStatus(text string) (SyncStatus, error) {
	for status, name := range syncStatusNames {
		if name == text {
			return status, nil
		}
	}
	return 0, fmt.Errorf("unknown sync status %q", text)
}

// MarshalText implements [encoding.TextMarshaler].
func (s SyncStatus) MarshalText() ([]byte, error) {
	name, ok := syncStatusNames[s]
	if !ok {
		return nil, fmt.Errorf("cannot marshal unknown sync status %d", int(s))
	}
	return []byte(name), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (s *SyncStatus) UnmarshalText(text []byte) error {
	status, err := ParseSyncStatus(string(text))
	if err != nil {
		return err
	}
	*s = status
	return nil
}

// SyncRecord is the per-screen sync bookkeeping row. Every screen has
// exactly one record; the record is created and deleted together with
// its screen and is never addressable on its own.
type SyncRecord struct {
	ScreenID string `json:"screen_id"`

	Status SyncStatus `json:"status"`

	// LastSyncedAt is the time of the last acknowledged push or pull,
	// nil for screens that have never reached the server.
	LastSyncedAt *time.Time `json:"last_synced_at,omitempty"`

	// RetryCount is the number of failed push attempts for the current
	// pending mutation. Reset on success and on explicit re-queue.
	RetryCount int `json:"retry_count"`

	// LastError holds the message of the most recent push failure.
	LastError string `json:"last_error,omitempty"`
}
