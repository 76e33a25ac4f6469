// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/metrics"
	"github.com/MKhiriev/go-auth-keeper/internal/store"
	"github.com/MKhiriev/go-auth-keeper/models"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServices(t *testing.T) {
	storages := &store.Storages{UserRepository: store.NewUserMemoryRepository()}
	cfg := &config.StructuredConfig{App: testAppConfig()}
	m := metrics.New()

	services, err := NewServices(storages, cfg, m, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "test", services.AppInfoService.GetAppVersion(context.Background()))

	_, err = services.AuthService.Register(context.Background(), models.RegisterRequest{Name: "A", Email: "x@y.com", Password: "pw"})
	require.NoError(t, err)
	assert.InDelta(t, 1, testutil.ToFloat64(m.AuthOperationsTotal.WithLabelValues(operationRegister, outcomeSuccess)), 0)
}

func TestNewServices_InvalidConfig(t *testing.T) {
	tests := map[string]func(*config.App){
		"short sign key":  func(a *config.App) { a.TokenSignKey = "short" },
		"unknown hasher":  func(a *config.App) { a.PasswordHasher = "md5" },
		"missing version": func(a *config.App) { a.Version = "" },
	}

	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			app := testAppConfig()
			mutate(&app)

			services, err := NewServices(&store.Storages{}, &config.StructuredConfig{App: app}, nil, logger.Nop())

			assert.Nil(t, services)
			assert.Error(t, err)
		})
	}
}
