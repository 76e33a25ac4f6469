// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP request/response helpers, an HTTP client, JWT token generation
// and validation, id generation and email normalization.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// TokenCtxKey is the key used to store the raw bearer token in the context.
var TokenCtxKey = contextKey("token")

// WithToken returns a copy of ctx carrying the raw bearer token.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, TokenCtxKey, token)
}

// GetTokenFromContext retrieves the raw bearer token from the context.
func GetTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(TokenCtxKey).(string)
	return token, ok && token != ""
}
