// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/crypto"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/store"
	"github.com/MKhiriev/go-auth-keeper/internal/validators"
	"github.com/MKhiriev/go-auth-keeper/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	testSignKey = "0123456789abcdef0123456789abcdef"
	testIssuer  = "go-auth-keeper-test"
)

func testAppConfig() config.App {
	return config.App{
		TokenSignKey:   testSignKey,
		TokenIssuer:    testIssuer,
		TokenDuration:  time.Hour,
		PasswordHasher: config.HasherBcrypt,
		BcryptCost:     bcrypt.MinCost,
		Version:        "test",
	}
}

// newTestAuthService wires the real hasher, issuer and validator to an
// in-memory repository.
func newTestAuthService(t *testing.T) (AuthService, store.UserRepository) {
	t.Helper()

	cfg := testAppConfig()

	hasher, err := crypto.NewPasswordHasher(cfg)
	require.NoError(t, err)
	issuer, err := crypto.NewTokenIssuer(cfg)
	require.NoError(t, err)

	repo := store.NewUserMemoryRepository()
	svc := NewAuthService(repo, hasher, issuer, validators.NewCredentialsValidator(), cfg, logger.Nop())

	return svc, repo
}

func registerReq(name, email, password string) models.RegisterRequest {
	return models.RegisterRequest{Name: name, Email: email, Password: password}
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestAuthService_Register_Success(t *testing.T) {
	svc, repo := newTestAuthService(t)
	ctx := context.Background()

	result, err := svc.Register(ctx, registerReq("Alice", "  Alice@Example.COM ", "s3cret"))
	require.NoError(t, err)

	assert.True(t, result.Created)
	assert.NotEmpty(t, result.Token.SignedString)
	assert.NotEmpty(t, result.User.ID)
	assert.Equal(t, "Alice", result.User.Name)
	assert.Equal(t, "alice@example.com", result.User.Email)
	assert.False(t, result.User.CreatedAt.IsZero())
	assert.Equal(t, result.User.ID, result.Token.Claims.UserID())

	stored, err := repo.FindUserByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", stored.PasswordHash)
	assert.True(t, strings.HasPrefix(stored.PasswordHash, "$2"))
}

func TestAuthService_Register_ValidationErrors(t *testing.T) {
	tests := map[string]models.RegisterRequest{
		"missing name":     registerReq("", "a@b.com", "pw"),
		"blank name":       registerReq("   ", "a@b.com", "pw"),
		"missing email":    registerReq("A", "", "pw"),
		"malformed email":  registerReq("A", "not-an-email", "pw"),
		"missing password": registerReq("A", "a@b.com", ""),
	}

	for name, req := range tests {
		t.Run(name, func(t *testing.T) {
			svc, _ := newTestAuthService(t)

			_, err := svc.Register(context.Background(), req)

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestAuthService_Register_LongPassword(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()
	password := strings.Repeat("x", 80)

	result, err := svc.Register(ctx, registerReq("A", "long@b.com", password))
	require.NoError(t, err)
	assert.True(t, result.Created)

	_, err = svc.Login(ctx, models.LoginRequest{Email: "long@b.com", Password: password})
	require.NoError(t, err)

	_, err = svc.Login(ctx, models.LoginRequest{Email: "long@b.com", Password: password[:72]})
	assert.ErrorIs(t, err, ErrAuthentication)
}

func TestNewAuthService_DummyHashReady(t *testing.T) {
	svc, _ := newTestAuthService(t)

	dummyHash := svc.(*authService).dummyHash
	require.NotEmpty(t, dummyHash)
	assert.True(t, strings.HasPrefix(dummyHash, "$2"))
}

func TestAuthService_Register_DuplicateEmail_CaseInsensitive(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerReq("A", "A@B.com", "pw"))
	require.NoError(t, err)

	_, err = svc.Register(ctx, registerReq("Other", "a@b.com", "other-pw"))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
	assert.NotContains(t, err.Error(), "a@b.com")
}

func TestAuthService_Register_ConcurrentSameEmail(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	const workers = 16
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		created   int
		conflicts int
	)

	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Register(ctx, registerReq(fmt.Sprintf("user-%d", i), "race@example.com", "pw"))

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				created++
			case errors.Is(err, ErrConflict):
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, created)
	assert.Equal(t, workers-1, conflicts)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, registerReq("A", "x@y.com", "pw"))
	require.NoError(t, err)

	result, err := svc.Login(ctx, models.LoginRequest{Email: "X@Y.com", Password: "pw"})
	require.NoError(t, err)

	assert.False(t, result.Created)
	assert.Equal(t, registered.User, result.User)
	assert.NotEqual(t, registered.Token.SignedString, result.Token.SignedString)
}

func TestAuthService_Login_TwoLoginsIssueDistinctTokens(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerReq("A", "x@y.com", "pw"))
	require.NoError(t, err)

	first, err := svc.Login(ctx, models.LoginRequest{Email: "x@y.com", Password: "pw"})
	require.NoError(t, err)
	second, err := svc.Login(ctx, models.LoginRequest{Email: "x@y.com", Password: "pw"})
	require.NoError(t, err)

	assert.NotEqual(t, first.Token.SignedString, second.Token.SignedString)
}

func TestAuthService_Login_FailuresAreIndistinguishable(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerReq("A", "x@y.com", "pw"))
	require.NoError(t, err)

	_, wrongPassword := svc.Login(ctx, models.LoginRequest{Email: "x@y.com", Password: "nope"})
	_, unknownEmail := svc.Login(ctx, models.LoginRequest{Email: "ghost@y.com", Password: "pw"})

	require.Error(t, wrongPassword)
	require.Error(t, unknownEmail)
	assert.ErrorIs(t, wrongPassword, ErrAuthentication)
	assert.ErrorIs(t, unknownEmail, ErrAuthentication)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	tests := map[string]models.LoginRequest{
		"missing email":    {Password: "pw"},
		"missing password": {Email: "x@y.com"},
		"both missing":     {},
	}

	for name, req := range tests {
		t.Run(name, func(t *testing.T) {
			svc, _ := newTestAuthService(t)

			_, err := svc.Login(context.Background(), req)

			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

// ── CurrentUser ──────────────────────────────────────────────────────────────

func TestAuthService_CurrentUser_Success(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, registerReq("A", "X@Y.com", "pw"))
	require.NoError(t, err)

	user, err := svc.CurrentUser(ctx, registered.Token.SignedString)
	require.NoError(t, err)

	assert.Equal(t, registered.User, user)
	assert.Equal(t, "x@y.com", user.Email)
}

func TestAuthService_CurrentUser_RejectedTokens(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, registerReq("A", "x@y.com", "pw"))
	require.NoError(t, err)
	valid := registered.Token.SignedString

	expired := signTestToken(t, testSignKey, registered.User.ID, time.Now().Add(-2*time.Hour), time.Now().Add(-time.Hour))
	foreignKey := signTestToken(t, strings.Repeat("k", 32), registered.User.ID, time.Now(), time.Now().Add(time.Hour))

	tests := map[string]string{
		"empty":       "",
		"garbage":     "not.a.token",
		"tampered":    valid[:len(valid)-2] + flip(valid[len(valid)-2:]),
		"expired":     expired,
		"foreign key": foreignKey,
	}

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := svc.CurrentUser(ctx, token)

			assert.ErrorIs(t, err, ErrAuthentication)
		})
	}
}

func TestAuthService_CurrentUser_DeletedAccount(t *testing.T) {
	svc, repo := newTestAuthService(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, registerReq("A", "x@y.com", "pw"))
	require.NoError(t, err)
	require.NoError(t, repo.DeleteUser(ctx, registered.User.ID))

	_, err = svc.CurrentUser(ctx, registered.Token.SignedString)

	assert.ErrorIs(t, err, ErrAuthentication)
}

// ── Scenario ─────────────────────────────────────────────────────────────────

func TestAuthService_RegisterLoginCurrentUserScenario(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, registerReq("A", "X@Y.com", "pw"))
	require.NoError(t, err)
	assert.True(t, registered.Created)
	assert.Equal(t, "x@y.com", registered.User.Email)

	_, err = svc.Register(ctx, registerReq("A", "x@y.com", "pw"))
	assert.ErrorIs(t, err, ErrConflict)

	loggedIn, err := svc.Login(ctx, models.LoginRequest{Email: "X@Y.com", Password: "pw"})
	require.NoError(t, err)
	assert.NotEqual(t, registered.Token.SignedString, loggedIn.Token.SignedString)

	me, err := svc.CurrentUser(ctx, loggedIn.Token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, registered.User, me)
}

// ── helpers ──────────────────────────────────────────────────────────────────

func signTestToken(t *testing.T, key, subject string, issuedAt, expiresAt time.Time) string {
	t.Helper()

	claims := models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testIssuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
	require.NoError(t, err)
	return signed
}

// flip replaces every character of s so the signature no longer matches.
func flip(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r == 'A' {
			b.WriteRune('B')
		} else {
			b.WriteRune('A')
		}
	}
	return b.String()
}
