package service

import (
	"context"

	"github.com/MKhiriev/go-screen-sync/models"
)

// Resolver settles a version conflict between the local and remote
// copies of one screen. Implementations must be pure decision functions
// over the ConflictCase they are handed: deterministic, idempotent and
// free of I/O, because the orchestrator may replay a resolution after a
// crash before its outcome was committed. Returning an error means the
// resolver declines; the screen is then parked in the conflict state
// until a manual resolution arrives.
type Resolver interface {
	Resolve(ctx context.Context, conflict models.ConflictCase) (models.ConflictResolution, error)
}

// ResolverFunc adapts an ordinary function to the Resolver interface.
type ResolverFunc func(ctx context.Context, conflict models.ConflictCase) (models.ConflictResolution, error)

// Resolve implements Resolver.
func (f ResolverFunc) Resolve(ctx context.Context, conflict models.ConflictCase) (models.ConflictResolution, error) {
	return f(ctx, conflict)
}

// lastWriteWinsResolver is the default conflict policy: last write wins
// by version order.
type lastWriteWinsResolver struct{}

// NewLastWriteWinsResolver returns the default Resolver. Screens carry
// whole payloads, not field-level diffs, so two diverged copies cannot
// be merged structurally without risking a corrupted payload; the newer
// server copy wins instead and the stale local edit is discarded.
// Deployments that cannot afford to lose local edits plug in their own
// Resolver.
func NewLastWriteWinsResolver() Resolver {
	return &lastWriteWinsResolver{}
}

// Resolve implements Resolver.
func (r *lastWriteWinsResolver) Resolve(_ context.Context, conflict models.ConflictCase) (models.ConflictResolution, error) {
	// A conflict exists because the server moved past the version the
	// local mutation was built on. If the remote copy is genuinely ahead
	// of that base, it is the later write and wins. The equal-or-behind
	// case can only appear when a resolution is replayed after the local
	// copy was already rebased; keeping the local copy makes the replay
	// a no-op instead of an overwrite.
	if conflict.Remote.Version > conflict.BaseVersion {
		return models.ResolveWithRemote(), nil
	}
	return models.ResolveWithLocal(), nil
}

// preferLocalResolver keeps the local copy unconditionally and pushes
// it on top of whatever the server holds.
type preferLocalResolver struct{}

// NewPreferLocalResolver returns a Resolver for deployments where the
// device is authoritative and the backend is a mirror.
func NewPreferLocalResolver() Resolver {
	return &preferLocalResolver{}
}

// Resolve implements Resolver.
func (r *preferLocalResolver) Resolve(_ context.Context, conflict models.ConflictCase) (models.ConflictResolution, error) {
	return models.ResolveWithLocal(), nil
}
