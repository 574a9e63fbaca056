// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-service-template/internal/logger"
	"github.com/MKhiriev/go-service-template/internal/utils"
	"github.com/MKhiriev/go-service-template/models"
)

// register creates a user and returns a token in the Authorization header.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var user models.User
	if err := decodeJSON(w, r, &user); err != nil {
		writeError(w, r, "*Handler.register", err)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, user)
	if err != nil {
		writeError(w, r, "*Handler.register", err)
		return
	}

	h.writeToken(w, r, registeredUser, http.StatusCreated)
}

// login checks credentials and returns a token in the Authorization header.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var user models.User
	if err := decodeJSON(w, r, &user); err != nil {
		writeError(w, r, "*Handler.login", err)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, user)
	if err != nil {
		writeError(w, r, "*Handler.login", err)
		return
	}

	logger.FromRequest(r).Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")
	h.writeToken(w, r, foundUser, http.StatusOK)
}

func (h *Handler) writeToken(w http.ResponseWriter, r *http.Request, user models.User, status int) {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		writeError(w, r, "*Handler.writeToken", err)
		return
	}

	w.Header().Set("Authorization", utils.BearerHeader(token.SignedString))
	w.WriteHeader(status)
}
