// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/MKhiriev/go-service-template/internal/logger"
	"github.com/MKhiriev/go-service-template/internal/service"
	"github.com/MKhiriev/go-service-template/internal/utils"
	"github.com/MKhiriev/go-service-template/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// executeAuth runs the auth middleware alone, with a nop logger in context.
func executeAuth(h *Handler, authHeader string, next http.Handler) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/examples/", nil)
	req = req.WithContext(logger.Nop().WithContext(req.Context()))
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	rr := httptest.NewRecorder()
	h.auth(next).ServeHTTP(rr, req)
	return rr
}

// ── Table test ────────────────────────────────────────────────────────────────

func TestAuth_Middleware_TableTest(t *testing.T) {
	tests := []struct {
		name        string
		authHeader  string
		parseCalled bool
		parseErr    error
		wantStatus  int
		wantDetail  string
		wantNext    bool
	}{
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
			wantDetail: detailNoCredentials,
		},
		{
			name:       "wrong scheme",
			authHeader: "Basic YWxpY2U6czNjcmV0",
			wantStatus: http.StatusUnauthorized,
			wantDetail: detailInvalidToken,
		},
		{
			name:       "bearer without token",
			authHeader: "Bearer",
			wantStatus: http.StatusUnauthorized,
			wantDetail: detailInvalidToken,
		},
		{
			name:       "token with spaces",
			authHeader: "Bearer a b",
			wantStatus: http.StatusUnauthorized,
			wantDetail: detailInvalidToken,
		},
		{
			name:        "expired token",
			authHeader:  "Bearer " + testToken,
			parseCalled: true,
			parseErr:    service.ErrTokenIsExpiredOrInvalid,
			wantStatus:  http.StatusUnauthorized,
			wantDetail:  detailInvalidToken,
		},
		{
			name:        "valid token",
			authHeader:  "Bearer " + testToken,
			parseCalled: true,
			wantStatus:  http.StatusOK,
			wantNext:    true,
		},
		{
			name:        "lowercase scheme",
			authHeader:  "bearer " + testToken,
			parseCalled: true,
			wantStatus:  http.StatusOK,
			wantNext:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			if tt.parseCalled {
				f.auth.EXPECT().ParseToken(gomock.Any(), testToken).
					Return(models.Token{UserID: testUserID}, tt.parseErr)
			}

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			rr := executeAuth(f.handler, tt.authHeader, next)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantNext, nextCalled)
			if tt.wantDetail != "" {
				assert.Equal(t, tt.wantDetail, detailOf(t, rr))
				assert.Equal(t, `Bearer realm="api"`, rr.Header().Get("WWW-Authenticate"))
			}
		})
	}
}

// ── Context ───────────────────────────────────────────────────────────────────

func TestAuth_UserIDInContext(t *testing.T) {
	f := newFixture(t)
	f.authorized()

	var (
		gotID int64
		ok    bool
	)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, ok = utils.GetUserIDFromContext(r.Context())
	})

	executeAuth(f.handler, "Bearer "+testToken, next)

	require.True(t, ok)
	assert.Equal(t, testUserID, gotID)
}

func TestAuth_ConcurrentRequests(t *testing.T) {
	f := newFixture(t)
	f.authorized()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	const n = 30
	var wg sync.WaitGroup
	codes := make(chan int, n)
	for range n {
		wg.Go(func() {
			codes <- executeAuth(f.handler, "Bearer "+testToken, next).Code
		})
	}
	wg.Wait()
	close(codes)

	for code := range codes {
		assert.Equal(t, http.StatusOK, code)
	}
}
