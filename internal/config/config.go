// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level settings container of the extconfig
// host. It is populated by merging values from environment variables,
// command-line flags, and an optional JSON file.
//
// These settings describe the host itself (which deployment it is, where its
// base properties live). The external property sources are not configured
// here; they are discovered from the properties map at merge time.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the deployment identity and the locations of the base
	// configuration, bundled resources and merged output.
	App App `envPrefix:"APP_"`

	// Adapter holds outbound settings used when fetching URL sources.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Server holds settings for the optional read-only HTTP view.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// DeploymentID names the environment this process runs as (e.g. "prod").
	// It seeds the default relative filename "/<id>.properties" and selects
	// which "%<id>." scoped keys are merged. May be empty.
	// Env: APP_ID
	DeploymentID string `env:"ID"`

	// PropertiesPath is the host's own base .properties file, loaded into
	// the configuration map before any external source. Optional.
	// Env: APP_PROPERTIES
	PropertiesPath string `env:"PROPERTIES"`

	// ResourceDir is the root of the bundled resources that relative
	// filenames resolve against when no absolute path prefix is configured.
	// Env: APP_RESOURCE_DIR
	ResourceDir string `env:"RESOURCE_DIR"`

	// OutputPath receives the merged configuration as a .properties file.
	// When empty the merged map is written to stdout.
	// Env: APP_OUTPUT
	OutputPath string `env:"OUTPUT"`

	// Version is the version string reported by /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Adapter holds configuration for outbound source fetching.
type Adapter struct {
	// RequestTimeout bounds each URL fetch, connection and body read
	// included. Zero disables the client-side timeout.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP view listens,
	// in "host:port" format (e.g. "0.0.0.0:8080"). Empty disables it.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, defaults, and validates the host
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags parsed from args (typically os.Args[1:])
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
