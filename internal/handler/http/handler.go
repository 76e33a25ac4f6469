// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/metrics"
	"github.com/MKhiriev/go-auth-keeper/internal/service"
)

// Handler serves the REST API on top of [service.Services].
type Handler struct {
	services *service.Services

	// metrics is optional; when nil the /metrics route and request
	// instrumentation are disabled.
	metrics *metrics.Metrics

	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, m *metrics.Metrics, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		metrics:        m,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
