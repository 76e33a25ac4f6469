// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/utils"
	"github.com/MKhiriev/go-auth-keeper/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP implementation of [ServerAdapter].
// address may omit the scheme ("localhost:8080" means http://localhost:8080);
// requests go to the /api mount of the server.
//
// Returns an error if address is empty or cannot be parsed as a URL.
func NewHTTPServerAdapter(address string, timeout time.Duration, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL+"/api", timeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register POSTs req to /api/auth/register and stores the returned token.
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.PublicUser, error) {
	return h.authenticate(ctx, "/auth/register", req)
}

// Login POSTs req to /api/auth/login and stores the returned token.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.PublicUser, error) {
	return h.authenticate(ctx, "/auth/login", req)
}

func (h *httpServerAdapter) authenticate(ctx context.Context, path string, body any) (models.PublicUser, error) {
	var result models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&result).
		Post(path)
	if err != nil {
		return models.PublicUser{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PublicUser{}, err
	}

	token := result.Token
	if token == "" {
		token, err = utils.ParseBearerToken(resp.Header().Get("Authorization"))
		if err != nil {
			return models.PublicUser{}, fmt.Errorf("%s parse bearer token: %w", path, err)
		}
	}

	h.SetToken(token)
	h.logger.Debug().Str("func", "*httpServerAdapter.authenticate").Str("user_id", result.User.ID).Msg("authenticated")

	return result.User, nil
}

// CurrentUser GETs /api/auth/me with the stored token.
func (h *httpServerAdapter) CurrentUser(ctx context.Context) (models.PublicUser, error) {
	token := h.Token()
	if token == "" {
		return models.PublicUser{}, ErrNoToken
	}

	var result models.CurrentUserResponse

	resp, err := h.client.WithBearer(token).
		SetContext(ctx).
		SetResult(&result).
		Get("/auth/me")
	if err != nil {
		return models.PublicUser{}, fmt.Errorf("current user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PublicUser{}, err
	}

	return result.User, nil
}

// Version GETs /api/version.
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}
