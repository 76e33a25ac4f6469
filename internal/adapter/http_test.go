// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testUser = models.PublicUser{
	ID:        "0190f3d2-0000-7000-8000-000000000001",
	Name:      "Alice",
	Email:     "alice@example.com",
	CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
}

// newTestAdapter returns an httpServerAdapter aimed at serverURL.
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()

	a, err := NewHTTPServerAdapter(serverURL, 5*time.Second, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// ── NewHTTPServerAdapter ─────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "localhost:8080", want: "http://localhost:8080"},
		{raw: " http://127.0.0.1:8080/ ", want: "http://127.0.0.1:8080"},
		{raw: "https://auth.example.com", want: "https://auth.example.com"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	a, err := NewHTTPServerAdapter("", time.Second, logger.Nop())

	assert.Nil(t, a)
	assert.Error(t, err)
}

// ── Register / Login ─────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/register", r.URL.Path)

		var req models.RegisterRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Alice@Example.com", req.Email)

		w.Header().Set("Authorization", "Bearer tok-register")
		writeJSON(t, w, http.StatusCreated, models.AuthResponse{Token: "tok-register", User: testUser})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Register(context.Background(), models.RegisterRequest{Name: "Alice", Email: "Alice@Example.com", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, testUser, got)
	assert.Equal(t, "tok-register", a.Token())
}

func TestLogin_TokenFromHeaderWhenBodyHasNone(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login", r.URL.Path)

		w.Header().Set("Authorization", "Bearer tok-header")
		writeJSON(t, w, http.StatusOK, models.AuthResponse{User: testUser})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.LoginRequest{Email: "alice@example.com", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, "tok-header", a.Token())
}

func TestAuthenticate_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
		wantMsg string
	}{
		{name: "bad request", status: http.StatusBadRequest, body: `{"error":"invalid request: email is required"}`, wantErr: ErrBadRequest, wantMsg: "email is required"},
		{name: "unauthorized", status: http.StatusUnauthorized, body: `{"error":"invalid credentials"}`, wantErr: ErrUnauthorized, wantMsg: "invalid credentials"},
		{name: "conflict", status: http.StatusConflict, body: `{"error":"account already exists"}`, wantErr: ErrConflict, wantMsg: "account already exists"},
		{name: "not found plain body", status: http.StatusNotFound, body: "404 page not found\n", wantErr: ErrNotFound, wantMsg: "404 page not found"},
		{name: "internal", status: http.StatusInternalServerError, body: `{"error":"Internal Server Error"}`, wantErr: ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL)
			_, err := a.Login(context.Background(), models.LoginRequest{Email: "a@b.com", Password: "pw"})

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.wantMsg)
			assert.Empty(t, a.Token())
		})
	}
}

func TestAuthenticate_UnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.LoginRequest{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 503: Service Unavailable")
}

// ── CurrentUser ──────────────────────────────────────────────────────────────

func TestCurrentUser_SendsBearer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/auth/me", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		writeJSON(t, w, http.StatusOK, models.CurrentUserResponse{User: testUser})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken(" tok ")

	got, err := a.CurrentUser(context.Background())

	require.NoError(t, err)
	assert.Equal(t, testUser, got)
}

func TestCurrentUser_NoToken(t *testing.T) {
	a := newTestAdapter(t, "http://127.0.0.1:1")

	_, err := a.CurrentUser(context.Background())

	assert.ErrorIs(t, err, ErrNoToken)
}

func TestCurrentUser_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, models.ErrorResponse{Error: "invalid credentials"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("expired")

	_, err := a.CurrentUser(context.Background())

	assert.ErrorIs(t, err, ErrUnauthorized)
}

// ── Version ──────────────────────────────────────────────────────────────────

func TestVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/version", r.URL.Path)
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("1.2.3"))
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1.2.3", got)
}

func TestRequest_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestAdapter(t, srv.URL).Version(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}
