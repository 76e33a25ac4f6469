// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/utils"
	"github.com/MKhiriev/go-auth-keeper/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	result, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("user_id", result.User.ID).Msg("user successfully registered")

	writeAuthResult(w, result, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	result, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("user_id", result.User.ID).Msg("user successfully logged in")

	writeAuthResult(w, result, http.StatusOK)
}

func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	token, ok := utils.GetTokenFromContext(ctx)
	if !ok {
		writeError(w, r, ErrEmptyAuthorizationHeader)
		return
	}

	user, err := h.services.AuthService.CurrentUser(ctx, token)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.CurrentUserResponse{User: user}, http.StatusOK)
}

// writeAuthResult echoes the token in the Authorization header and writes
// {token, user}.
func writeAuthResult(w http.ResponseWriter, result models.AuthResult, status int) {
	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", result.Token.SignedString))
	utils.WriteJSON(w, models.AuthResponse{
		Token: result.Token.SignedString,
		User:  result.User,
	}, status)
}
