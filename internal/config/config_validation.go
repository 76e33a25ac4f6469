// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Defaults applied to fields that no source has set.
const (
	defaultTokenIssuer     = "go-auth-keeper"
	defaultTokenDuration   = 24 * time.Hour
	defaultBcryptCost      = 12
	defaultRequestTimeout  = 30 * time.Second
	defaultShutdownTimeout = 10 * time.Second
	defaultConnectAttempts = 5
	defaultMongoDBName     = "auth"
	defaultVersion         = "N/A"

	// MinTokenSignKeyLength is the minimal HS256 key length in bytes.
	MinTokenSignKeyLength = 32
)

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}
	if cfg.App.PasswordHasher == "" {
		cfg.App.PasswordHasher = HasherBcrypt
	}
	if cfg.App.BcryptCost == 0 {
		cfg.App.BcryptCost = defaultBcryptCost
	}
	if cfg.App.Version == "" {
		cfg.App.Version = defaultVersion
	}
	if cfg.Storage.DB.Name == "" {
		cfg.Storage.DB.Name = defaultMongoDBName
	}
	if cfg.Storage.DB.ConnectAttempts == 0 {
		cfg.Storage.DB.ConnectAttempts = defaultConnectAttempts
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = defaultShutdownTimeout
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty HTTP address", ErrInvalidServerConfigs)
	}

	if len(cfg.App.TokenSignKey) < MinTokenSignKeyLength {
		return fmt.Errorf("%w: token sign key must be at least %d bytes", ErrInvalidAppConfigs, MinTokenSignKeyLength)
	}

	if cfg.App.TokenDuration < 0 {
		return fmt.Errorf("%w: negative token duration", ErrInvalidAppConfigs)
	}

	switch cfg.App.PasswordHasher {
	case HasherBcrypt, HasherArgon2id:
	default:
		return fmt.Errorf("%w: unknown password hasher %q", ErrInvalidAppConfigs, cfg.App.PasswordHasher)
	}

	if cfg.App.BcryptCost < bcrypt.MinCost || cfg.App.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: bcrypt cost out of range", ErrInvalidAppConfigs)
	}

	return nil
}
