// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-auth-keeper/internal/utils"
)

// auth is an HTTP middleware that requires a bearer token.
//
// It extracts the token from the "Authorization" header and stores it in the
// request context under [utils.TokenCtxKey]. Requests without a well-formed
// "Bearer <token>" header are rejected with 401 before reaching the handler.
// The token itself is verified by the service layer.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		token, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			writeError(w, r, ErrInvalidAuthorizationHeader)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithToken(r.Context(), token)))
	})
}
