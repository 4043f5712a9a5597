package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidShareConfigs indicates invalid sharing settings
	// (for example, an empty vault name or expiration).
	ErrInvalidShareConfigs = errors.New("invalid share configuration")
	// ErrInvalidOpConfigs indicates invalid 1Password CLI settings
	// (for example, an empty executable path or template kind).
	ErrInvalidOpConfigs = errors.New("invalid op configuration")
)
