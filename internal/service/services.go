// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/crypto"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/metrics"
	"github.com/MKhiriev/go-auth-keeper/internal/store"
	"github.com/MKhiriev/go-auth-keeper/internal/validators"
)

// Services aggregates the business services exposed to the handlers.
type Services struct {
	AuthService    AuthService
	AppInfoService AppInfoService
}

// NewServices builds the password hasher and token issuer from cfg.App and
// wires them into the authentication core backed by storages. When m is not
// nil the core is decorated with [AuthMetricsService].
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, m *metrics.Metrics, logger *logger.Logger) (*Services, error) {
	hasher, err := crypto.NewPasswordHasher(cfg.App)
	if err != nil {
		return nil, fmt.Errorf("error creating password hasher: %w", err)
	}

	issuer, err := crypto.NewTokenIssuer(cfg.App)
	if err != nil {
		return nil, fmt.Errorf("error creating token issuer: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	authService := NewAuthService(
		storages.UserRepository,
		hasher,
		issuer,
		validators.NewCredentialsValidator(),
		cfg.App,
		logger,
	)
	if m != nil {
		authService = NewAuthMetricsService(m.AuthOperationsTotal).Wrap(authService)
	}

	return &Services{
		AuthService:    authService,
		AppInfoService: appInfoService,
	}, nil
}
