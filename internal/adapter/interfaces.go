// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the screen backend.
//
// The primary abstraction is [ServerAdapter], which decouples the sync engine
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]) plus a WebSocket change feed (ws_feed.go).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrVersionConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-screen-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the screen
// backend. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. It should be called immediately after a
	// successful OpenSession.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// IsTokenExpired reports whether the stored session token is absent,
	// unparsable, or within the renewal margin of its expiry. Callers use it
	// to decide when to open a fresh session before a sync pass.
	IsTokenExpired() bool

	// OpenSession requests a session token for clientID from
	// POST /api/session. On success the bearer token is extracted from the
	// Authorization response header and stored via SetToken. Returns an error
	// if the request fails or the server responds with a non-2xx status.
	OpenSession(ctx context.Context, clientID string) error

	// PushScreen transmits one local mutation (create, update, or delete) to
	// the server. On success the acknowledgement carries the new
	// server-assigned version. On HTTP 409 the returned error wraps
	// [ErrVersionConflict] and, when the response body decodes, carries the
	// server's current copy in a [*ConflictError] reachable via [errors.As].
	PushScreen(ctx context.Context, req models.PushRequest) (models.PushResponse, error)

	// PullScreens retrieves the full server screen set from
	// GET /api/screens. With includeDeleted the response also carries
	// tombstoned screens so the caller can propagate remote deletions.
	PullScreens(ctx context.Context, includeDeleted bool) ([]models.Screen, error)

	// GetScreen fetches a single screen by id. Returns [ErrNotFound]
	// (wrapped) when the server has no screen with that id.
	GetScreen(ctx context.Context, screenID string) (models.Screen, error)

	// ListScreens retrieves one page of screens ordered by recency.
	// limit <= 0 requests the server default page size.
	ListScreens(ctx context.Context, limit, offset int) ([]models.Screen, error)

	// SearchScreens retrieves screens whose name matches query.
	SearchScreens(ctx context.Context, query string) ([]models.Screen, error)

	// CountScreens reports the total number of live screens on the server.
	CountScreens(ctx context.Context) (int64, error)

	// GetBuildInfo fetches the server build metadata from GET /api/version.
	GetBuildInfo(ctx context.Context) (models.BuildInfo, error)

	// WatchScreens opens the server change feed at /api/screens/watch and
	// streams change events until ctx is cancelled or the connection drops,
	// after which the returned channel is closed. Requires a valid bearer
	// token.
	WatchScreens(ctx context.Context) (<-chan models.ChangeEvent, error)
}
