package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAgentConfigs indicates invalid agent settings
	// (for example, missing server address, timeout, or sync interval).
	ErrInvalidAgentConfigs = errors.New("invalid agent configuration")
	// ErrInvalidStorageConfigs indicates invalid agent storage settings
	// (for example, empty DSN or unsupported in-memory DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidRetryConfigs indicates an unusable retry policy
	// (for example, a zero attempt budget or a cap below the base delay).
	ErrInvalidRetryConfigs = errors.New("invalid retry configuration")
)
