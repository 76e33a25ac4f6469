// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSignKey = "0123456789abcdef0123456789abcdef"

func newTestIssuer(t *testing.T) TokenIssuer {
	t.Helper()

	issuer, err := NewTokenIssuer(config.App{
		TokenSignKey:  testSignKey,
		TokenIssuer:   "go-auth-keeper",
		TokenDuration: time.Hour,
	})
	require.NoError(t, err)
	return issuer
}

func TestNewTokenIssuer_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.App
	}{
		{"empty key", config.App{TokenIssuer: "iss", TokenDuration: time.Hour}},
		{"short key", config.App{TokenSignKey: "short", TokenIssuer: "iss", TokenDuration: time.Hour}},
		{"empty issuer", config.App{TokenSignKey: testSignKey, TokenDuration: time.Hour}},
		{"zero duration", config.App{TokenSignKey: testSignKey, TokenIssuer: "iss"}},
		{"negative duration", config.App{TokenSignKey: testSignKey, TokenIssuer: "iss", TokenDuration: -time.Minute}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issuer, err := NewTokenIssuer(tt.cfg)
			require.ErrorIs(t, err, ErrInvalidTokenConfig)
			assert.Nil(t, issuer)
		})
	}
}

func TestTokenIssuer_IssueAndVerify(t *testing.T) {
	issuer := newTestIssuer(t)

	token, err := issuer.Issue("user-1", 0)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, issuer.TTL())
	assert.Equal(t, time.Hour, token.ExpiresAt().Sub(token.Claims.IssuedAt.Time))

	claims, err := issuer.Verify(token.String())
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID())
	assert.Equal(t, "go-auth-keeper", claims.Issuer)
	assert.Equal(t, token.Claims.ID, claims.ID)
}

func TestTokenIssuer_CustomTTL(t *testing.T) {
	token, err := newTestIssuer(t).Issue("user-1", 5*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 5*time.Minute, token.ExpiresAt().Sub(token.Claims.IssuedAt.Time))
}

func TestTokenIssuer_FreshTokensDiffer(t *testing.T) {
	issuer := newTestIssuer(t)

	first, err := issuer.Issue("user-1", 0)
	require.NoError(t, err)
	second, err := issuer.Issue("user-1", 0)
	require.NoError(t, err)

	assert.NotEqual(t, first.String(), second.String())
}

func TestTokenIssuer_EmptySubject(t *testing.T) {
	_, err := newTestIssuer(t).Issue("", 0)
	assert.Error(t, err)
}

func TestTokenIssuer_VerifyExpired(t *testing.T) {
	claims := jwt.RegisteredClaims{
		Issuer:    "go-auth-keeper",
		Subject:   "user-1",
		IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSignKey))
	require.NoError(t, err)

	_, err = newTestIssuer(t).Verify(signed)
	assert.ErrorIs(t, err, ErrTokenExpired)
	assert.NotErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenIssuer_VerifyInvalid(t *testing.T) {
	issuer := newTestIssuer(t)
	valid, err := issuer.Issue("user-1", 0)
	require.NoError(t, err)

	otherIssuer, err := NewTokenIssuer(config.App{
		TokenSignKey:  testSignKey,
		TokenIssuer:   "someone-else",
		TokenDuration: time.Hour,
	})
	require.NoError(t, err)
	foreign, err := otherIssuer.Issue("user-1", 0)
	require.NoError(t, err)

	parts := strings.Split(valid.String(), ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + "." + strings.Repeat("A", len(parts[2]))

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{
		Issuer:    "go-auth-keeper",
		Subject:   "user-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte(testSignKey))
	require.NoError(t, err)

	for name, raw := range map[string]string{
		"empty":        "",
		"garbage":      "garbage",
		"tampered":     tampered,
		"wrong issuer": foreign.String(),
		"wrong alg":    hs512,
		"three dots":   "a.b.c",
		"payload swap": parts[0] + "." + strings.Split(foreign.String(), ".")[1] + "." + parts[2],
	} {
		t.Run(name, func(t *testing.T) {
			_, err := issuer.Verify(raw)
			assert.ErrorIs(t, err, ErrTokenInvalid)
		})
	}
}
