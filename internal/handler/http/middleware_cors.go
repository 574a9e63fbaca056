// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"
)

const corsMaxAge = 12 * time.Hour

var (
	corsAllowMethods  = strings.Join(append(slices.Clone(routeMethods), http.MethodOptions), ", ")
	corsAllowHeaders  = strings.Join([]string{"Origin", "Content-Type", "Accept", "Authorization", traceIDHeader}, ", ")
	corsExposeHeaders = strings.Join([]string{"Authorization", traceIDHeader}, ", ")
	corsMaxAgeSeconds = strconv.Itoa(int(corsMaxAge.Seconds()))
)

// withCORS adds Cross-Origin Resource Sharing headers. In debug mode every
// origin is accepted, otherwise only the configured ones ("*" included).
// Preflight requests from accepted origins are answered with 204.
func (h *Handler) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin == "" || !h.originAllowed(origin) {
			next.ServeHTTP(w, r)
			return
		}

		headers := w.Header()
		headers.Add("Vary", "Origin")
		headers.Set("Access-Control-Allow-Origin", origin)
		headers.Set("Access-Control-Expose-Headers", corsExposeHeaders)

		if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
			headers.Add("Vary", "Access-Control-Request-Method")
			headers.Add("Vary", "Access-Control-Request-Headers")
			headers.Set("Access-Control-Allow-Methods", corsAllowMethods)
			headers.Set("Access-Control-Allow-Headers", corsAllowHeaders)
			headers.Set("Access-Control-Max-Age", corsMaxAgeSeconds)
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (h *Handler) originAllowed(origin string) bool {
	if h.debug {
		return true
	}
	return slices.Contains(h.allowedOrigins, "*") || slices.Contains(h.allowedOrigins, origin)
}
