package adapter

import (
	"errors"
	"fmt"
	"net"
	"net/url"

	"github.com/MKhiriev/go-screen-sync/models"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("access forbidden")
	ErrNotFound            = errors.New("resource not found")
	ErrVersionConflict     = errors.New("version conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServerUnavailable   = errors.New("server unavailable")
)

// ConflictError is returned by PushScreen when the server rejects a mutation
// with HTTP 409 and ships its current copy of the screen in the response body.
// It matches [ErrVersionConflict] under [errors.Is]; the remote copy is
// recovered with [errors.As].
type ConflictError struct {
	// Remote is the server's current copy of the conflicting screen.
	Remote models.Screen
}

// Error implements the error interface.
func (e *ConflictError) Error() string {
	return fmt.Sprintf("version conflict: server holds %s at version %d", e.Remote.ScreenID, e.Remote.Version)
}

// Unwrap makes the error match [ErrVersionConflict] via [errors.Is].
func (e *ConflictError) Unwrap() error {
	return ErrVersionConflict
}

// Retryable reports whether err describes a transient transport failure that
// a later attempt may succeed on. Server-side 5xx responses and network-level
// failures (refused connections, timeouts, dropped links) are retryable;
// client-side 4xx responses and version conflicts are not.
func Retryable(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, ErrServerUnavailable) ||
		errors.Is(err, ErrBadGateway) ||
		errors.Is(err, ErrInternalServerError) {
		return true
	}

	return IsConnectivityError(err)
}

// IsConnectivityError reports whether err means the server could not be
// reached at all, as opposed to the server answering with a failure status.
// resty surfaces dial and round-trip failures as *url.Error.
func IsConnectivityError(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	var urlErr *url.Error
	return errors.As(err, &urlErr)
}
