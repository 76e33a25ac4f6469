// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics owns the Prometheus registry of the server and the
// collectors recorded by the HTTP and service layers.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "auth_keeper"

// Metrics contains the custom collectors of the server.
type Metrics struct {
	// HTTPRequestsTotal counts served requests by method, route pattern and
	// status code.
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration observes request latency by method and route
	// pattern.
	HTTPRequestDuration *prometheus.HistogramVec

	// AuthOperationsTotal counts authentication core calls by operation
	// (register, login, current_user) and outcome.
	AuthOperationsTotal *prometheus.CounterVec

	registry *prometheus.Registry
}

// New creates a dedicated registry with Go runtime and process collectors
// and registers the custom collectors on it.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	factory := promauto.With(registry)

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests by method, route and status",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency by method and route",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		AuthOperationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "auth_operations_total",
				Help:      "Total number of authentication operations by operation and outcome",
			},
			[]string{"operation", "outcome"},
		),
		registry: registry,
	}
}

// Registry returns the registry the collectors are registered on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}
