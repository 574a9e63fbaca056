// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-service-template/internal/logger"
	"github.com/MKhiriev/go-service-template/internal/service"
	"github.com/MKhiriev/go-service-template/internal/store"
	"github.com/MKhiriev/go-service-template/internal/utils"
	"github.com/MKhiriev/go-service-template/internal/validators"
	"github.com/MKhiriev/go-service-template/models"
)

type errorResponse struct {
	status int
	detail string
}

// errorResponses is matched in order with errors.Is; the first hit wins.
var errorResponses = []struct {
	target error
	errorResponse
}{
	{ErrInvalidExampleID, errorResponse{http.StatusNotFound, "Not found."}},
	{store.ErrExampleNotFound, errorResponse{http.StatusNotFound, "Example item not found"}},

	{service.ErrInvalidDataProvided, errorResponse{http.StatusBadRequest, "invalid data provided"}},
	{service.ErrInvalidPage, errorResponse{http.StatusBadRequest, "Invalid page."}},
	{store.ErrLoginAlreadyExists, errorResponse{http.StatusConflict, "login already exists"}},
	{store.ErrNoUserWasFound, errorResponse{http.StatusUnauthorized, "invalid login/password"}},
	{service.ErrWrongPassword, errorResponse{http.StatusUnauthorized, "invalid login/password"}},
	{service.ErrTokenIsExpiredOrInvalid, errorResponse{http.StatusUnauthorized, detailInvalidToken}},

	{service.ErrServiceUnhealthy, errorResponse{http.StatusServiceUnavailable, "service unavailable"}},
}

// responseFromError picks the status and detail for err. Unknown errors
// become 500 without leaking their text.
func responseFromError(err error) errorResponse {
	for _, candidate := range errorResponses {
		if errors.Is(err, candidate.target) {
			return candidate.errorResponse
		}
	}
	return errorResponse{http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)}
}

func statusFromError(err error) int {
	var validationErrs validators.ValidationErrors
	if errors.As(err, &validationErrs) {
		return http.StatusBadRequest
	}
	return responseFromError(err).status
}

// writeError renders err as JSON: validation failures as
// {"validation_errors": [...]}, everything else as {"detail": "..."}.
func writeError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	log := logger.FromRequest(r)

	var validationErrs validators.ValidationErrors
	if errors.As(err, &validationErrs) {
		log.Debug().Err(err).Str("func", funcName).Msg("request validation failed")
		utils.WriteJSON(w, models.ValidationErrorResponse{ValidationErrors: validationErrs}, http.StatusBadRequest)
		return
	}

	resp := responseFromError(err)
	if resp.status >= http.StatusInternalServerError {
		log.Err(err).Str("func", funcName).Msg("request failed")
	} else {
		log.Debug().Err(err).Str("func", funcName).Send()
	}

	utils.WriteJSON(w, models.DetailResponse{Detail: resp.detail}, resp.status)
}
