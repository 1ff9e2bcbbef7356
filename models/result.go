package models

import "time"

// SyncError records the individual failure of one pending item inside a
// sync pass. Failures are collected, not escalated: one screen failing
// never aborts the processing of the others.
type SyncError struct {
	ScreenID  string        `json:"screen_id"`
	Operation OperationKind `json:"operation"`
	Message   string        `json:"message"`
}

// SyncResult aggregates the outcome of one synchronization pass.
type SyncResult struct {
	// Synced is the number of pending items acknowledged by the server.
	Synced int `json:"synced"`

	// Failed is the number of items that ended the pass unacknowledged,
	// whether retryable or terminal.
	Failed int `json:"failed"`

	// Errors lists each failed item's cause.
	Errors []SyncError `json:"errors,omitempty"`
}

// Merge folds another result into the receiver.
func (r *SyncResult) Merge(other SyncResult) {
	r.Synced += other.Synced
	r.Failed += other.Failed
	r.Errors = append(r.Errors, other.Errors...)
}

// Summary converts the result into the stable shape consumed by
// operational tooling. The timestamp serializes as RFC 3339.
func (r SyncResult) Summary(at time.Time) SyncSummary {
	return SyncSummary{
		Success:   r.Failed == 0,
		Timestamp: at,
		Synced:    r.Synced,
		Failed:    r.Failed,
	}
}

// SyncSummary is the wire form of a finished sync pass.
type SyncSummary struct {
	Success   bool      `json:"success"`
	Timestamp time.Time `json:"timestamp"`
	Synced    int       `json:"synced"`
	Failed    int       `json:"failed"`
}
