// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-auth-keeper/internal/metrics"
	"github.com/MKhiriev/go-auth-keeper/internal/mock"
	"github.com/MKhiriev/go-auth-keeper/internal/service"
	"github.com/MKhiriev/go-auth-keeper/models"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuthMetricsService_CountsOutcomes(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockAuthService(ctrl)
	m := metrics.New()

	svc := service.NewAuthMetricsService(m.AuthOperationsTotal).Wrap(inner)
	ctx := context.Background()

	inner.EXPECT().Register(ctx, gomock.Any()).Return(models.AuthResult{Created: true}, nil)
	inner.EXPECT().Register(ctx, gomock.Any()).Return(models.AuthResult{}, service.ErrConflict)
	inner.EXPECT().Login(ctx, gomock.Any()).Return(models.AuthResult{}, service.ErrAuthentication)
	inner.EXPECT().Login(ctx, gomock.Any()).Return(models.AuthResult{}, service.ErrValidation)
	inner.EXPECT().CurrentUser(ctx, "t").Return(models.PublicUser{}, errors.New("boom"))

	result, err := svc.Register(ctx, models.RegisterRequest{})
	require.NoError(t, err)
	assert.True(t, result.Created)

	_, err = svc.Register(ctx, models.RegisterRequest{})
	assert.ErrorIs(t, err, service.ErrConflict)
	_, err = svc.Login(ctx, models.LoginRequest{})
	assert.ErrorIs(t, err, service.ErrAuthentication)
	_, err = svc.Login(ctx, models.LoginRequest{})
	assert.ErrorIs(t, err, service.ErrValidation)
	_, err = svc.CurrentUser(ctx, "t")
	assert.Error(t, err)

	counter := m.AuthOperationsTotal
	assert.InDelta(t, 1, testutil.ToFloat64(counter.WithLabelValues("register", "success")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(counter.WithLabelValues("register", "conflict")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(counter.WithLabelValues("login", "auth_error")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(counter.WithLabelValues("login", "validation_error")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(counter.WithLabelValues("current_user", "internal_error")), 0)
}
