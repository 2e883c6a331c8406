// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container of the
// go-memories client. It is populated by merging command-line flags,
// environment variables, an optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds account and log settings.
	App App `envPrefix:"APP_"`

	// Storage holds the on-device database and blob store locations.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the remote service address and request policy.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds background drain and probe intervals.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds account and diagnostics settings.
type App struct {
	// Username used by the login command when none is given explicitly.
	// Env: APP_USERNAME
	Username string `env:"USERNAME"`

	// Password used by the login command when none is given explicitly.
	// Env: APP_PASSWORD
	Password string `env:"PASSWORD"`

	// LogFile is the rotated client log file. Relative paths are resolved
	// next to the executable.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage groups the on-device persistence settings.
type Storage struct {
	// DB holds the SQLite database settings.
	DB DB `envPrefix:"DB_"`

	// Blobs holds the pending-image store settings.
	Blobs Blobs `envPrefix:"BLOBS_"`
}

// DB holds the SQLite connection settings.
type DB struct {
	// DSN is the SQLite file path or DSN (e.g. "memories.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Blobs holds the bbolt file that keeps images waiting for upload.
type Blobs struct {
	// Path of the bbolt database file.
	// Env: STORAGE_BLOBS_PATH
	Path string `env:"PATH"`
}

// Adapter holds the remote service settings.
type Adapter struct {
	// HTTPAddress is the base address of the memories API, either
	// "host:port" or a full URL.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request (e.g. "30s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RetryCount is how many times a request failing at the transport level
	// is repeated before the failure reaches the caller. A negative value
	// disables retries.
	// Env: ADAPTER_RETRY_COUNT
	RetryCount int `env:"RETRY_COUNT"`
}

// Workers holds background worker settings.
type Workers struct {
	// SyncInterval is how often failed outbox entries are retried and the
	// outbox is drained.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// ProbeInterval is how often the reachability prober checks the server.
	// Env: WORKERS_PROBE_INTERVAL
	ProbeInterval time.Duration `env:"PROBE_INTERVAL"`
}

// Default values used for every field left empty by all other sources.
const (
	DefaultDSN            = "memories.db"
	DefaultBlobsPath      = "memories-images.db"
	DefaultLogFile        = "memories.log"
	DefaultHTTPAddress    = "localhost:8000"
	DefaultRequestTimeout = 30 * time.Second
	DefaultRetryCount     = 2
	DefaultSyncInterval   = time.Minute
	DefaultProbeInterval  = 10 * time.Second
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{LogFile: DefaultLogFile},
		Storage: Storage{
			DB:    DB{DSN: DefaultDSN},
			Blobs: Blobs{Path: DefaultBlobsPath},
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
			RetryCount:     DefaultRetryCount,
		},
		Workers: Workers{
			SyncInterval:  DefaultSyncInterval,
			ProbeInterval: DefaultProbeInterval,
		},
	}
}

// GetStructuredConfig loads and merges the configuration. flagCfg is the
// value bound by [BindFlags] after the command line was parsed; it may be
// nil. Sources are consulted in this order, the first non-zero value wins:
//  1. Command-line flags
//  2. Environment variables
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Defaults
func GetStructuredConfig(flagCfg *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(flagCfg).
		withEnv().
		withJSON().
		withDefaults().
		build()
}
