// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func executeCORS(h *Handler, method, origin, requestMethod string) (*httptest.ResponseRecorder, bool) {
	nextCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(method, "/api/examples/", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	if requestMethod != "" {
		req.Header.Set("Access-Control-Request-Method", requestMethod)
	}

	rr := httptest.NewRecorder()
	h.withCORS(next).ServeHTTP(rr, req)
	return rr, nextCalled
}

// ── Simple requests ───────────────────────────────────────────────────────────

func TestWithCORS_SimpleRequests(t *testing.T) {
	tests := []struct {
		name       string
		handler    *Handler
		origin     string
		wantOrigin string
	}{
		{name: "no origin", handler: &Handler{allowedOrigins: []string{allowedSite}}},
		{name: "allowed origin", handler: &Handler{allowedOrigins: []string{allowedSite}}, origin: allowedSite, wantOrigin: allowedSite},
		{name: "disallowed origin", handler: &Handler{allowedOrigins: []string{allowedSite}}, origin: "https://evil.example"},
		{name: "wildcard", handler: &Handler{allowedOrigins: []string{"*"}}, origin: "https://any.example", wantOrigin: "https://any.example"},
		{name: "debug allows all", handler: &Handler{debug: true}, origin: "http://localhost:3000", wantOrigin: "http://localhost:3000"},
		{name: "nothing configured", handler: &Handler{}, origin: allowedSite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr, nextCalled := executeCORS(tt.handler, http.MethodGet, tt.origin, "")

			assert.True(t, nextCalled)
			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, tt.wantOrigin, rr.Header().Get("Access-Control-Allow-Origin"))
			if tt.wantOrigin != "" {
				assert.Equal(t, "Authorization, X-Trace-ID", rr.Header().Get("Access-Control-Expose-Headers"))
				assert.Contains(t, rr.Header().Values("Vary"), "Origin")
			}
		})
	}
}

// ── Preflight ─────────────────────────────────────────────────────────────────

func TestWithCORS_Preflight(t *testing.T) {
	h := &Handler{allowedOrigins: []string{allowedSite}}

	rr, nextCalled := executeCORS(h, http.MethodOptions, allowedSite, http.MethodPost)

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, allowedSite, rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, POST, PUT, PATCH, DELETE, OPTIONS", rr.Header().Get("Access-Control-Allow-Methods"))
	assert.Contains(t, rr.Header().Get("Access-Control-Allow-Headers"), "Authorization")
	assert.Equal(t, "43200", rr.Header().Get("Access-Control-Max-Age"))
}

func TestWithCORS_PreflightFromDisallowedOriginPassesThrough(t *testing.T) {
	h := &Handler{allowedOrigins: []string{allowedSite}}

	rr, nextCalled := executeCORS(h, http.MethodOptions, "https://evil.example", http.MethodPost)

	assert.True(t, nextCalled)
	assert.Empty(t, rr.Header().Get("Access-Control-Allow-Methods"))
}

func TestWithCORS_PlainOptionsIsNotPreflight(t *testing.T) {
	h := &Handler{allowedOrigins: []string{allowedSite}}

	rr, nextCalled := executeCORS(h, http.MethodOptions, allowedSite, "")

	assert.True(t, nextCalled)
	assert.Equal(t, allowedSite, rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, rr.Header().Get("Access-Control-Allow-Methods"))
}

func TestWithCORS_ThroughRouter(t *testing.T) {
	f := newFixture(t)

	rr := f.do(http.MethodOptions, "/api/examples/", "",
		"Origin", allowedSite,
		"Access-Control-Request-Method", http.MethodGet)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, allowedSite, rr.Header().Get("Access-Control-Allow-Origin"))
}
