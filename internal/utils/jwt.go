// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-auth-keeper/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token with the given parameters.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the account id
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//   - ID        (jti): a random UUID, unique per issued token
//
// All parameters are required. Returns an error if any of them are empty or
// the duration is not positive.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("go-auth-keeper", userID, time.Hour, signKey)
func GenerateJWTToken(issuer, subject string, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || subject == "" || tokenDuration <= 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	return signJWTToken(issuer, subject, time.Now(), tokenDuration, signKey)
}

func signJWTToken(issuer, subject string, now time.Time, tokenDuration time.Duration, signKey string) (models.Token, error) {
	claims := models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Claims: claims, SignedString: tokenString}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts its claims.
//
// Validation includes:
//   - Signing method check (HS256 only; "none" and asymmetric algorithms are refused)
//   - Signature verification using the provided sign key
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim presence and check
//   - Subject (sub) claim presence
//
// The returned error wraps the jwt/v5 sentinel errors, so callers can tell an
// expired token apart with errors.Is(err, jwt.ErrTokenExpired).
//
// Example usage:
//
//	claims, err := utils.ValidateAndParseJWTToken(rawToken, signKey, "go-auth-keeper")
//	if err != nil {
//	    // handle invalid or expired token
//	}
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Claims, error) {
	var claims models.Claims

	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
	)
	if err != nil {
		return models.Claims{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Subject == "" {
		return models.Claims{}, fmt.Errorf("empty subject error: %w", jwt.ErrTokenInvalidClaims)
	}

	return claims, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
