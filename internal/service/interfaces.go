// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-auth-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService is the authentication core: it turns raw credentials into
// accounts and bearer tokens, and bearer tokens back into accounts.
//
// Every method is safe for concurrent use and keeps no state between calls.
type AuthService interface {
	// Register creates an account and issues its first token.
	// Fails with ErrValidation or ErrConflict.
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResult, error)

	// Login checks credentials and issues a fresh token.
	// Fails with ErrValidation or ErrAuthentication.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResult, error)

	// CurrentUser resolves a bearer token to the sanitized account.
	// Fails with ErrAuthentication.
	CurrentUser(ctx context.Context, token string) (models.PublicUser, error)
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// metrics or logging.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService // returns a decorated AuthService applying additional behavior
}

// AppInfoService exposes build and version information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
