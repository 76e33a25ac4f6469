// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/service"
	"github.com/MKhiriev/go-auth-keeper/internal/utils"
	"github.com/MKhiriev/go-auth-keeper/models"
)

var errorStatusMap = map[error]int{
	service.ErrValidation:     http.StatusBadRequest,
	service.ErrConflict:       http.StatusConflict,
	service.ErrAuthentication: http.StatusUnauthorized,

	ErrInvalidJSON:                http.StatusBadRequest,
	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,

	context.DeadlineExceeded: http.StatusGatewayTimeout,
}

// matchError returns the sentinel err wraps and the status it maps to, or
// (nil, 500) for unknown errors.
func matchError(err error) (error, int) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return target, status
		}
	}
	return nil, http.StatusInternalServerError
}

func statusFromError(err error) int {
	_, status := matchError(err)
	return status
}

// publicMessage returns the text sent to the client for err. Bad requests
// carry the full chain so the caller can fix the input; authentication and
// conflict errors carry only the sentinel text, and unknown errors only the
// status text.
func publicMessage(err error) string {
	target, status := matchError(err)
	switch {
	case target == nil:
		return http.StatusText(status)
	case status == http.StatusBadRequest:
		return err.Error()
	default:
		return target.Error()
	}
}

// writeError logs err and replies with {"error": ...}.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", "writeError").Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Str("func", "writeError").Int("status", status).Msg("request rejected")
	}

	utils.WriteJSON(w, models.ErrorResponse{Error: publicMessage(err)}, status)
}
