// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-auth-keeper/models"
	"github.com/prometheus/client_golang/prometheus"
)

// Operation and outcome label values of the auth operations counter.
const (
	operationRegister    = "register"
	operationLogin       = "login"
	operationCurrentUser = "current_user"

	outcomeSuccess         = "success"
	outcomeValidationError = "validation_error"
	outcomeConflict        = "conflict"
	outcomeAuthError       = "auth_error"
	outcomeInternalError   = "internal_error"
)

// AuthMetricsService counts every call of the wrapped AuthService by
// operation and outcome.
type AuthMetricsService struct {
	inner      AuthService
	operations *prometheus.CounterVec
}

// NewAuthMetricsService returns a wrapper recording into operations, which
// must carry the "operation" and "outcome" labels.
func NewAuthMetricsService(operations *prometheus.CounterVec) AuthServiceWrapper {
	return &AuthMetricsService{
		operations: operations,
	}
}

func (m *AuthMetricsService) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResult, error) {
	result, err := m.inner.Register(ctx, req)
	m.observe(operationRegister, err)
	return result, err
}

func (m *AuthMetricsService) Login(ctx context.Context, req models.LoginRequest) (models.AuthResult, error) {
	result, err := m.inner.Login(ctx, req)
	m.observe(operationLogin, err)
	return result, err
}

func (m *AuthMetricsService) CurrentUser(ctx context.Context, token string) (models.PublicUser, error) {
	user, err := m.inner.CurrentUser(ctx, token)
	m.observe(operationCurrentUser, err)
	return user, err
}

// Wrap returns a copy of the wrapper decorating inner.
func (m *AuthMetricsService) Wrap(inner AuthService) AuthService {
	return &AuthMetricsService{
		inner:      inner,
		operations: m.operations,
	}
}

func (m *AuthMetricsService) observe(operation string, err error) {
	m.operations.WithLabelValues(operation, outcome(err)).Inc()
}

func outcome(err error) string {
	switch {
	case err == nil:
		return outcomeSuccess
	case errors.Is(err, ErrValidation):
		return outcomeValidationError
	case errors.Is(err, ErrConflict):
		return outcomeConflict
	case errors.Is(err, ErrAuthentication):
		return outcomeAuthError
	default:
		return outcomeInternalError
	}
}
