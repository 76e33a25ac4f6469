// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a client for the go-auth-keeper REST API.
//
// [ServerAdapter] decouples callers from the transport. The package ships an
// HTTP implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrConflict] for
// 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-auth-keeper/models"
)

// ServerAdapter talks to the authentication server. Implementations keep the
// bearer token returned by Register and Login and attach it to CurrentUser.
type ServerAdapter interface {
	// SetToken stores the bearer token used by authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token or an empty string.
	Token() string

	// Register creates an account. On success the returned token is stored
	// via SetToken.
	Register(ctx context.Context, req models.RegisterRequest) (models.PublicUser, error)

	// Login authenticates and stores the fresh token via SetToken.
	Login(ctx context.Context, req models.LoginRequest) (models.PublicUser, error)

	// CurrentUser resolves the stored token to its account.
	CurrentUser(ctx context.Context) (models.PublicUser, error)

	// Version returns the server version string.
	Version(ctx context.Context) (string, error)
}
