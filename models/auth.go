// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RegisterRequest is the payload of POST /auth/register.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest is the payload of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResult is what the authentication core returns after a successful
// registration or login.
type AuthResult struct {
	// Token is the freshly issued bearer token.
	Token Token

	// User is the sanitized view of the authenticated account.
	User PublicUser

	// Created is true when the account was created by this call, which lets
	// callers distinguish a registration result from a login result.
	Created bool
}

// AuthResponse is the JSON body returned by register and login.
type AuthResponse struct {
	Token string     `json:"token"`
	User  PublicUser `json:"user"`
}

// CurrentUserResponse is the JSON body returned by GET /auth/me.
type CurrentUserResponse struct {
	User PublicUser `json:"user"`
}

// ErrorResponse is the JSON body of every error reply.
type ErrorResponse struct {
	Error string `json:"error"`
}
