package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a deployment id that cannot be used in a filename or a
	// scoped key).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates invalid HTTP view settings
	// (for example, a non-positive request timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
