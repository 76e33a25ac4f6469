// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the JWT claim set carried by every bearer token.
//
// Subject holds the account id, IssuedAt/ExpiresAt bound the validity window
// and ID (jti) is a random nonce so that two tokens minted for the same
// subject within the same second are still distinct.
type Claims struct {
	jwt.RegisteredClaims
}

// UserID returns the account id stored in the "sub" claim.
func (c Claims) UserID() string {
	return c.Subject
}

// Token wraps a signed bearer token together with its decoded claims.
type Token struct {
	// Claims is the claim set that was signed into SignedString.
	Claims Claims `json:"-"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`
}

// ExpiresAt returns the expiry instant of the token or the zero time when
// the claim is absent.
func (t Token) ExpiresAt() time.Time {
	if t.Claims.ExpiresAt == nil {
		return time.Time{}
	}
	return t.Claims.ExpiresAt.Time
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
