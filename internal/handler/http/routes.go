// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// apiPrefixes lists the mount points of the API. Every route is served both
// at the root and under /api.
var apiPrefixes = []string{"", "/api"}

// Init builds the router.
//
// Middleware order: Recoverer, trace id, access logging, metrics. API routes
// additionally get gzip and the request timeout; /metrics does not, since
// promhttp negotiates its own compression.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	if h.metrics != nil {
		router.Use(h.withMetrics)
	}

	for _, prefix := range apiPrefixes {
		router.Group(func(r chi.Router) {
			r.Use(withGZip)
			if h.requestTimeout > 0 {
				r.Use(middleware.Timeout(h.requestTimeout))
			}

			// routes without authorization
			r.Post(prefix+"/auth/register", h.register)
			r.Post(prefix+"/auth/login", h.login)
			r.Get(prefix+"/version", h.getServerVersion)
			r.Get(prefix+"/healthz", h.health)

			// routes with authorization
			r.Group(func(r chi.Router) {
				r.Use(h.auth)
				r.Get(prefix+"/auth/me", h.currentUser)
			})
		})
	}

	if h.metrics != nil {
		router.Method("GET", "/metrics", h.metrics.Handler())
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
