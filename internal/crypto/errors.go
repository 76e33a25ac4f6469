// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	ErrEmptyPassword = errors.New("password is empty")

	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")

	ErrInvalidTokenConfig  = errors.New("invalid token issuer configuration")
	ErrInvalidHasherConfig = errors.New("invalid password hasher configuration")
)
