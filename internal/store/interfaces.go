// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-auth-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the credential store. Emails passed in are expected to
// be normalized already; the backend enforces their uniqueness atomically.
type UserRepository interface {
	// CreateUser persists user and returns the stored record.
	// Returns ErrEmailAlreadyExists when the email is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the user with the given normalized email or
	// ErrUserNotFound.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID returns the user with the given id or ErrUserNotFound.
	FindUserByID(ctx context.Context, userID string) (models.User, error)

	// DeleteUser removes the user with the given id or returns ErrUserNotFound.
	DeleteUser(ctx context.Context, userID string) error
}
