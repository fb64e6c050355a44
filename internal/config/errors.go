package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, missing app name).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates invalid HTTP server settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAPIConfigs indicates a missing API key.
	ErrInvalidAPIConfigs = errors.New("invalid api configuration")
	// ErrInvalidServiceConfigs indicates a missing or malformed remote
	// service credential.
	ErrInvalidServiceConfigs = errors.New("invalid service configuration")
)

// Resolver errors returned by [ValidateServiceEnv].
var (
	ErrUnknownService         = errors.New("unknown service")
	ErrMissingServiceVariable = errors.New("missing service variable")
)
