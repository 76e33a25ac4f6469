// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Password hasher algorithms accepted by [App.PasswordHasher].
const (
	HasherBcrypt   = "bcrypt"
	HasherArgon2id = "argon2id"
)

// StructuredConfig is the top-level configuration container for the
// go-auth-keeper server. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds authentication settings: token signing parameters, password
	// hashing parameters and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the credential store backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control token
// issuance, password hashing and versioning.
type App struct {
	// TokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	// Loaded once at startup and never regenerated. At least 32 bytes.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Tokens carrying a different issuer are rejected.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid after
	// issuance (e.g. "1h", "30m").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// PasswordHasher selects the algorithm used for new password hashes:
	// "bcrypt" or "argon2id". Hashes of either format are always verifiable.
	// Env: APP_PASSWORD_HASHER
	PasswordHasher string `env:"PASSWORD_HASHER"`

	// BcryptCost is the adaptive cost factor for bcrypt hashes.
	// Env: APP_BCRYPT_COST
	BcryptCost int `env:"BCRYPT_COST"`

	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for the credential store.
type Storage struct {
	// DB holds the database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the credential store backend.
type DB struct {
	// DSN selects and configures the backend by its scheme:
	// "mongodb://", "postgres://", "sqlite://<path>" or "memory".
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// Name is the MongoDB database name. Ignored by other backends.
	// Env: STORAGE_DB_NAME
	Name string `env:"NAME"`

	// ConnectAttempts is how many times the initial connection is tried
	// before startup fails.
	// Env: STORAGE_DB_CONNECT_ATTEMPTS
	ConnectAttempts uint64 `env:"CONNECT_ATTEMPTS"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds the graceful shutdown of the HTTP server.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Fields left empty by every source receive defaults (see [defaults]).
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
