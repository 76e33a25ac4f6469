// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
)

const (
	argon2idPrefix = "$argon2id$"

	// bcryptMaxPasswordLength is the number of input bytes bcrypt consumes.
	// Longer passwords are pre-hashed, see bcryptInput.
	bcryptMaxPasswordLength = 72
)

// NewPasswordHasher builds the hasher selected by cfg.PasswordHasher.
// New hashes use the selected algorithm, while Verify accepts hashes
// produced by any supported algorithm, so switching the setting does not
// lock out existing accounts.
func NewPasswordHasher(cfg config.App) (PasswordHasher, error) {
	bcryptHasher, err := newBcryptHasher(cfg.BcryptCost)
	if err != nil {
		return nil, err
	}
	argonHasher := newArgon2idHasher(defaultArgon2idParams)

	var primary PasswordHasher
	switch cfg.PasswordHasher {
	case config.HasherBcrypt, "":
		primary = bcryptHasher
	case config.HasherArgon2id:
		primary = argonHasher
	default:
		return nil, fmt.Errorf("%w: unknown algorithm %q", ErrInvalidHasherConfig, cfg.PasswordHasher)
	}

	return &multiHasher{
		primary: primary,
		bcrypt:  bcryptHasher,
		argon2:  argonHasher,
	}, nil
}

// multiHasher hashes with primary and dispatches Verify by hash prefix.
type multiHasher struct {
	primary PasswordHasher
	bcrypt  *bcryptHasher
	argon2  *argon2idHasher
}

func (m *multiHasher) Hash(plaintext string) (string, error) {
	return m.primary.Hash(plaintext)
}

func (m *multiHasher) Verify(plaintext, stored string) bool {
	switch {
	case strings.HasPrefix(stored, argon2idPrefix):
		return m.argon2.Verify(plaintext, stored)
	case strings.HasPrefix(stored, "$2a$"), strings.HasPrefix(stored, "$2b$"), strings.HasPrefix(stored, "$2y$"):
		return m.bcrypt.Verify(plaintext, stored)
	default:
		return false
	}
}

// ── bcrypt ──────────────────────────────────────────────────────────────────

type bcryptHasher struct {
	cost int
}

func newBcryptHasher(cost int) (*bcryptHasher, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("%w: bcrypt cost %d out of range", ErrInvalidHasherConfig, cost)
	}
	return &bcryptHasher{cost: cost}, nil
}

func (b *bcryptHasher) Hash(plaintext string) (string, error) {
	if plaintext == "" {
		return "", ErrEmptyPassword
	}

	hash, err := bcrypt.GenerateFromPassword(bcryptInput(plaintext), b.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password with bcrypt: %w", err)
	}
	return string(hash), nil
}

func (b *bcryptHasher) Verify(plaintext, stored string) bool {
	if plaintext == "" || stored == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(stored), bcryptInput(plaintext)) == nil
}

// bcryptInput returns plaintext unchanged when bcrypt can consume all of it,
// and the base64 SHA-256 digest of it (44 bytes) otherwise.
func bcryptInput(plaintext string) []byte {
	if len(plaintext) <= bcryptMaxPasswordLength {
		return []byte(plaintext)
	}
	sum := sha256.Sum256([]byte(plaintext))
	return []byte(base64.StdEncoding.EncodeToString(sum[:]))
}

// ── argon2id ────────────────────────────────────────────────────────────────

// argon2idParams are the tuning parameters encoded into every PHC string.
type argon2idParams struct {
	time    uint32
	memory  uint32 // KiB
	threads uint8
	keyLen  uint32
	saltLen uint32
}

// defaultArgon2idParams follow the OWASP recommendation:
// 1 iteration, 64 MiB, 4 lanes, 256-bit output.
var defaultArgon2idParams = argon2idParams{
	time:    1,
	memory:  64 * 1024,
	threads: 4,
	keyLen:  32,
	saltLen: 16,
}

var errMalformedArgon2idHash = errors.New("malformed argon2id hash")

type argon2idHasher struct {
	params argon2idParams
}

func newArgon2idHasher(params argon2idParams) *argon2idHasher {
	return &argon2idHasher{params: params}
}

// Hash produces $argon2id$v=19$m=<KiB>,t=<iter>,p=<lanes>$<salt>$<key>
// with unpadded standard base64 salt and key.
func (a *argon2idHasher) Hash(plaintext string) (string, error) {
	if plaintext == "" {
		return "", ErrEmptyPassword
	}

	salt := make([]byte, a.params.saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("error generating salt: %w", err)
	}

	key := argon2.IDKey([]byte(plaintext), salt, a.params.time, a.params.memory, a.params.threads, a.params.keyLen)

	return fmt.Sprintf("%sv=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2idPrefix,
		argon2.Version,
		a.params.memory, a.params.time, a.params.threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

func (a *argon2idHasher) Verify(plaintext, stored string) bool {
	if plaintext == "" {
		return false
	}

	params, salt, key, err := decodeArgon2idHash(stored)
	if err != nil {
		return false
	}

	candidate := argon2.IDKey([]byte(plaintext), salt, params.time, params.memory, params.threads, params.keyLen)
	return subtle.ConstantTimeCompare(candidate, key) == 1
}

func decodeArgon2idHash(stored string) (argon2idParams, []byte, []byte, error) {
	// "", "argon2id", "v=19", "m=..,t=..,p=..", salt, key
	parts := strings.Split(stored, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return argon2idParams{}, nil, nil, errMalformedArgon2idHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return argon2idParams{}, nil, nil, errMalformedArgon2idHash
	}

	var params argon2idParams
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &params.memory, &params.time, &params.threads); err != nil {
		return argon2idParams{}, nil, nil, errMalformedArgon2idHash
	}
	if params.memory == 0 || params.time == 0 || params.threads == 0 {
		return argon2idParams{}, nil, nil, errMalformedArgon2idHash
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil || len(salt) == 0 {
		return argon2idParams{}, nil, nil, errMalformedArgon2idHash
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 {
		return argon2idParams{}, nil, nil, errMalformedArgon2idHash
	}

	params.keyLen = uint32(len(key))
	params.saltLen = uint32(len(salt))

	return params, salt, key, nil
}
