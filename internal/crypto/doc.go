// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds the two cryptographic primitives of the server:
// password hashing ([PasswordHasher], bcrypt or argon2id) and bearer token
// issuance ([TokenIssuer], HS256 JWT).
//
// Both are constructed once at startup from [config.App] and shared by all
// request goroutines.
package crypto
