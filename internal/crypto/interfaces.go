// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"time"

	"github.com/MKhiriev/go-auth-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// PasswordHasher turns plaintext passwords into salted, adaptive-cost hashes
// and checks candidates against them.
//
// Implementations are safe for concurrent use.
type PasswordHasher interface {
	// Hash returns a self-describing hash of plaintext with a fresh random
	// salt embedded. Two calls with the same input return different strings.
	// Returns ErrEmptyPassword for an empty input. Any non-empty input,
	// whatever its length, can be hashed.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches stored. The comparison is
	// constant-time. A malformed or unknown stored hash yields false.
	Verify(plaintext, stored string) bool
}

// TokenIssuer mints and checks signed bearer tokens.
//
// Implementations are safe for concurrent use.
type TokenIssuer interface {
	// Issue mints a token for subject valid for ttl. A non-positive ttl
	// selects the configured default.
	Issue(subject string, ttl time.Duration) (models.Token, error)

	// Verify checks signature, algorithm, issuer and expiry of token and
	// returns its claims. Returns ErrTokenExpired or ErrTokenInvalid.
	Verify(token string) (models.Claims, error)

	// TTL returns the default token lifetime.
	TTL() time.Duration
}
