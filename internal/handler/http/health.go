// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-service-template/internal/logger"
	"github.com/MKhiriev/go-service-template/internal/utils"
)

// getHealth answers 200 while the database is reachable (even with a
// failing cache) and 503 otherwise. The body is always models.HealthStatus.
func (h *Handler) getHealth(w http.ResponseWriter, r *http.Request) {
	status, err := h.services.HealthService.Check(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getHealth").Msg("health check failed")
		utils.WriteJSON(w, status, http.StatusServiceUnavailable)
		return
	}

	utils.WriteJSON(w, status, http.StatusOK)
}
