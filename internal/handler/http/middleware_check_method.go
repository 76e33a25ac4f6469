// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-auth-keeper/internal/utils"
	"github.com/MKhiriev/go-auth-keeper/models"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns a handler to be registered via
// [chi.Mux.MethodNotAllowed]. It answers 404 instead of chi's default 405
// when the path matches a route but the method is not registered for it, so
// unsupported methods do not reveal which routes exist.
//
// Route patterns are compared to [http.Request.URL.Path] verbatim;
// parameterised segments are not expanded.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var foundRoute chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == r.URL.Path {
				foundRoute = route
				break
			}
		}

		if _, ok := foundRoute.Handlers[r.Method]; !ok {
			utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(http.StatusNotFound)}, http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}
