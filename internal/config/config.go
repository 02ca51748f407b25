// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The go-notas Authors

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for go-notas.
// It is populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Adapter holds network settings for the backend transport.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds settings for the local cache database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds background job settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// LogLevel is the zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// GalleryDir is the directory the fotos screen browses for images.
	// Defaults to the user's home directory when empty.
	// Env: APP_GALLERY_DIR
	GalleryDir string `env:"GALLERY_DIR"`
}

// Adapter holds settings for the outbound HTTP transport.
type Adapter struct {
	// ServerURL is the backend base address (e.g. "http://localhost:8080").
	// Env: ADAPTER_SERVER_URL
	ServerURL string `env:"SERVER_URL"`

	// RequestTimeout is the per-request timeout (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage holds the local cache settings.
type Storage struct {
	// CacheFile is the sqlite file holding the offline note cache.
	// Empty disables the cache.
	// Env: STORAGE_CACHE_FILE
	CacheFile string `env:"CACHE_FILE"`
}

// Workers holds background job settings.
type Workers struct {
	// RefreshInterval is how often the background refresh job reloads the
	// note list. Zero disables the job.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all sources in priority order (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
