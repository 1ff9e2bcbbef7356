package datasource

import "errors"

var (
	// ErrNoDataSource is returned by [Provider.Active] when no
	// implementation has been registered yet.
	ErrNoDataSource = errors.New("no active data source registered")

	// ErrNotSupported is returned for capabilities an implementation
	// cannot provide, such as local-store maintenance on a pure-remote
	// source.
	ErrNotSupported = errors.New("operation is not supported by this data source")
)
