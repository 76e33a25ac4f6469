// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// Error kinds surfaced by [AuthService]. Messages are deliberately generic:
// they never reveal whether an email is registered.
var (
	// ErrValidation marks malformed input the caller can fix.
	ErrValidation = errors.New("invalid request")

	// ErrConflict is returned when registering an email that already has an
	// account.
	ErrConflict = errors.New("account already exists")

	// ErrAuthentication covers unknown email, wrong password and a bad,
	// expired or orphaned token alike.
	ErrAuthentication = errors.New("invalid credentials")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
