// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents a registered account used for authentication.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the stable opaque identifier assigned at creation (UUIDv7).
	// It is immutable for the lifetime of the account.
	UserID string `json:"id" bson:"_id"`

	// Email is the normalized (trimmed, lowercased) unique login identifier.
	Email string `json:"email" bson:"email"`

	// Name is the human-readable display name. It is not unique.
	Name string `json:"name" bson:"name"`

	// PasswordHash is the salted output of the password hasher.
	// It is never serialized to JSON and must never be logged.
	PasswordHash string `json:"-" bson:"password_hash"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Public returns the client-safe projection of the account.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:        u.UserID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

// PublicUser is the sanitized view of [User] returned in every client-facing
// response. It has no password hash field at all, so no serializer
// configuration can leak it.
type PublicUser struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
