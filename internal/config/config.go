// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ivan Volkov

package config

import (
	"errors"
	"time"
)

// StructuredConfig is the top-level configuration container for shopsync.
// It is populated by merging values from command-line flags, environment
// variables and an optional JSON file, in that order of precedence, with
// compiled-in defaults filling whatever remains empty.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Remote holds the network settings for the remote items service.
	Remote Remote `envPrefix:"REMOTE_"`

	// Storage holds the local persistence settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Sync holds the sync engine and background job settings.
	Sync Sync `envPrefix:"SYNC_"`

	// Server holds the dev server listen settings. Only cmd/devserver reads it.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file. When
	// non-empty the file is parsed and merged underneath the values already
	// loaded from flags and environment variables.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Remote holds client transport settings.
type Remote struct {
	// BaseURL is the base URL of the remote items service
	// (e.g. "http://localhost:8080").
	// Env: REMOTE_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout is the per-request timeout for outbound calls
	// (e.g. "15s").
	// Env: REMOTE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups local persistence settings.
type Storage struct {
	// DB holds the local database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds the SQLite database settings for the local store.
type DB struct {
	// Path is the SQLite database file path. ":memory:" keeps the store
	// in memory, which is mainly useful in tests.
	// Env: STORAGE_DB_PATH
	Path string `env:"PATH"`
}

// Sync holds sync engine and background job settings.
type Sync struct {
	// Interval defines how often the background job runs a full sync cycle.
	// Env: SYNC_INTERVAL
	Interval time.Duration `env:"INTERVAL"`

	// Background enables the periodic background sync job.
	// Env: SYNC_BACKGROUND
	Background bool `env:"BACKGROUND"`

	// MaxAttempts is the total number of attempts (first try included) for
	// each retryable remote call.
	// Env: SYNC_MAX_ATTEMPTS
	MaxAttempts int `env:"MAX_ATTEMPTS"`

	// RetryBaseDelay is the backoff delay before the first retry; subsequent
	// retries double it.
	// Env: SYNC_RETRY_BASE_DELAY
	RetryBaseDelay time.Duration `env:"RETRY_BASE_DELAY"`
}

// Server holds the dev server listen settings.
type Server struct {
	// Address is the TCP address the dev server listens on, "host:port".
	// Env: SERVER_ADDRESS
	Address string `env:"ADDRESS"`
}

func (c *StructuredConfig) validate() error {
	if c.Remote.RequestTimeout < 0 {
		return errors.New("remote request timeout must not be negative")
	}
	if c.Sync.Interval < 0 {
		return errors.New("sync interval must not be negative")
	}
	if c.Sync.MaxAttempts < 0 {
		return errors.New("sync max attempts must not be negative")
	}
	return nil
}
