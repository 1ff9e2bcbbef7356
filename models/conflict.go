package models

import "fmt"

// ConflictCase captures a detected divergence between the local and
// remote copies of one screen. It is produced during a push when the
// remote version is newer than the version the local mutation was based
// on, consumed exactly once by a resolver, and never persisted on its
// own — its resolution updates the document store directly.
type ConflictCase struct {
	Local  Screen `json:"local"`
	Remote Screen `json:"remote"`

	// BaseVersion is the server version the local mutation was built on.
	BaseVersion int64 `json:"base_version"`
}

// ResolutionKind is the decision a conflict resolver produces.
type ResolutionKind int

const (
	// UseLocal keeps the local copy and re-stages it for push on top of
	// the newer remote version.
	UseLocal ResolutionKind = iota + 1

	// UseRemote adopts the remote copy and discards the local mutation.
	UseRemote

	// UseMerged replaces both copies with a resolver-built combination.
	UseMerged
)

var resolutionKindNames = map[ResolutionKind]string{
	UseLocal:  "use_local",
	UseRemote: "use_remote",
	UseMerged: "merged",
}

// String implements [fmt.Stringer].
func (k ResolutionKind) String() string {
	if name, ok := resolutionKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%d)", int(k))
}

// ConflictResolution is the outcome of resolving one [ConflictCase].
// Merged is set only when Kind is [UseMerged].
type ConflictResolution struct {
	Kind   ResolutionKind `json:"kind"`
	Merged *Screen        `json:"merged,omitempty"`
}

// ResolveWithLocal builds a resolution that keeps the local copy.
func ResolveWithLocal() ConflictResolution {
	return ConflictResolution{Kind: UseLocal}
}

// ResolveWithRemote builds a resolution that adopts the remote copy.
func ResolveWithRemote() ConflictResolution {
	return ConflictResolution{Kind: UseRemote}
}

// ResolveWithMerged builds a resolution carrying a resolver-made screen.
func ResolveWithMerged(merged Screen) ConflictResolution {
	return ConflictResolution{Kind: UseMerged, Merged: &merged}
}
