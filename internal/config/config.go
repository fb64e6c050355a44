// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// gateway. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, and an optional
// JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
//   - validate: go-playground/validator rules checked after merging.
type StructuredConfig struct {
	// App holds application-level settings: the name announced to the user
	// service and the running version.
	App App `envPrefix:"APP_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds settings shared by all outbound service clients.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// API holds the key protecting API-key authenticated routes.
	API API `envPrefix:"API_"`

	// Services holds the credentials of every remote service the gateway
	// calls. URL and key pairs are resolved by [ResolveService] from the
	// <SERVICE>_URL / <SERVICE>_KEY variables.
	Services Services

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Name identifies this application on the user service. Roles and
	// sections are scoped to it.
	// Env: APP_NAME
	Name string `env:"NAME" validate:"required"`

	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /health endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS" validate:"required"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds settings shared by the outbound service clients.
type Adapter struct {
	// RequestTimeout bounds every outbound call. Zero leaves the transport
	// default in place.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// API holds the credential of API-key authenticated routes.
type API struct {
	// Key is the shared secret expected from API clients.
	// Env: API_KEY
	Key string `env:"KEY" validate:"required"`
}

// ServiceCredential is the URL and key pair authorizing calls to one remote
// service. It is resolved once at startup and never mutated afterwards.
type ServiceCredential struct {
	URL string `validate:"required,url"`
	Key string `validate:"required"`
}

// IsZero reports whether neither URL nor Key is set.
func (c ServiceCredential) IsZero() bool {
	return c.URL == "" && c.Key == ""
}

// Services groups the credentials of the remote services used by the
// gateway.
type Services struct {
	// Mail is the credential of the mail service.
	Mail ServiceCredential `envPrefix:"MAIL_"`

	// User is the credential and app settings of the user service.
	User UserService `envPrefix:"USER_"`
}

// UserService extends the user service credential with the sections this
// application announces at startup.
type UserService struct {
	ServiceCredential

	// Sections lists the application sections roles can be scoped to.
	// Env: USER_SECTIONS (comma separated)
	Sections []string `env:"SECTIONS" envSeparator:","`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables, including <SERVICE>_URL / <SERVICE>_KEY pairs
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	envVars := environ()

	return newConfigBuilder().
		withEnv(envVars).
		withServices(envVars).
		withFlags().
		withJSON().
		build()
}
