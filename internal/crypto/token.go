// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/utils"
	"github.com/MKhiriev/go-auth-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

type jwtIssuer struct {
	signKey string
	issuer  string
	ttl     time.Duration
}

// NewTokenIssuer builds an HS256 [TokenIssuer] from the signing key, issuer
// name and default lifetime in cfg. The key is read once here and never
// regenerated.
func NewTokenIssuer(cfg config.App) (TokenIssuer, error) {
	if len(cfg.TokenSignKey) < config.MinTokenSignKeyLength {
		return nil, fmt.Errorf("%w: sign key must be at least %d bytes", ErrInvalidTokenConfig, config.MinTokenSignKeyLength)
	}
	if cfg.TokenIssuer == "" {
		return nil, fmt.Errorf("%w: empty issuer", ErrInvalidTokenConfig)
	}
	if cfg.TokenDuration <= 0 {
		return nil, fmt.Errorf("%w: token duration must be positive", ErrInvalidTokenConfig)
	}

	return &jwtIssuer{
		signKey: cfg.TokenSignKey,
		issuer:  cfg.TokenIssuer,
		ttl:     cfg.TokenDuration,
	}, nil
}

func (j *jwtIssuer) Issue(subject string, ttl time.Duration) (models.Token, error) {
	if ttl <= 0 {
		ttl = j.ttl
	}

	token, err := utils.GenerateJWTToken(j.issuer, subject, ttl, j.signKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("error issuing token: %w", err)
	}
	return token, nil
}

func (j *jwtIssuer) Verify(token string) (models.Claims, error) {
	claims, err := utils.ValidateAndParseJWTToken(token, j.signKey, j.issuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Claims{}, fmt.Errorf("%w: %w", ErrTokenExpired, err)
		}
		return models.Claims{}, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}
	return claims, nil
}

func (j *jwtIssuer) TTL() time.Duration {
	return j.ttl
}
