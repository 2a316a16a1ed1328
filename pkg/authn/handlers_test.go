// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authn

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chi "github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/tenant-auth-service/internal/apierror"
	"github.com/canonical/tenant-auth-service/internal/logging"
	"github.com/canonical/tenant-auth-service/internal/monitoring"
	"github.com/canonical/tenant-auth-service/internal/tracing"
)

func newTestAPI(t *testing.T) (*chi.Mux, *MockServiceInterface) {
	ctrl := gomock.NewController(t)
	service := NewMockServiceInterface(ctrl)

	mux := chi.NewMux()
	NewAPI(service, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger()).RegisterEndpoints(mux)

	return mux, service
}

func TestLoginHandler(t *testing.T) {
	pair := &TokenPair{AccessToken: "access", TokenType: "bearer", ExpiresIn: 3600, RefreshToken: "refresh"}

	testCases := []struct {
		name           string
		tenantHeader   string
		body           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "success",
			tenantHeader:   testTenantID,
			body:           `{"email":"admin@example.com","password":"s3cret"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().Login(gomock.Any(), testTenantID, "admin@example.com", "s3cret").Return(pair, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing tenant header",
			tenantHeader:   "",
			body:           `{"email":"admin@example.com","password":"s3cret"}`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "validation",
		},
		{
			name:           "malformed body",
			tenantHeader:   testTenantID,
			body:           `{`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "validation",
		},
		{
			name:           "missing password",
			tenantHeader:   testTenantID,
			body:           `{"email":"admin@example.com"}`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "validation",
		},
		{
			name:           "bad credentials",
			tenantHeader:   testTenantID,
			body:           `{"email":"admin@example.com","password":"wrong"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().Login(gomock.Any(), testTenantID, "admin@example.com", "wrong").Return(nil, apierror.ErrUnauthenticated)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   "unauthenticated",
		},
		{
			name:           "rate limited",
			tenantHeader:   testTenantID,
			body:           `{"email":"admin@example.com","password":"s3cret"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().Login(gomock.Any(), testTenantID, "admin@example.com", "s3cret").Return(nil, apierror.ErrRateLimited)
			},
			expectedStatus: http.StatusTooManyRequests,
			expectedCode:   "rate_limited",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mux, service := newTestAPI(t)
			tc.setupMocks(service)

			req := httptest.NewRequest(http.MethodPost, "/api/v0/auth/login", strings.NewReader(tc.body))
			if tc.tenantHeader != "" {
				req.Header.Set(TenantHeader, tc.tenantHeader)
			}
			rec := httptest.NewRecorder()

			mux.ServeHTTP(rec, req)

			if rec.Code != tc.expectedStatus {
				t.Fatalf("expected status %d, got %d", tc.expectedStatus, rec.Code)
			}

			if tc.expectedCode != "" {
				var body map[string]string
				if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
					t.Fatalf("failed to decode error body: %v", err)
				}
				if body["code"] != tc.expectedCode {
					t.Fatalf("expected code %q, got %q", tc.expectedCode, body["code"])
				}
			}
		})
	}
}

func TestLoginHandlerResponseBody(t *testing.T) {
	mux, service := newTestAPI(t)

	pair := &TokenPair{AccessToken: "access", TokenType: "bearer", ExpiresIn: 3600, RefreshToken: "refresh"}
	service.EXPECT().Login(gomock.Any(), testTenantID, "admin@example.com", "s3cret").Return(pair, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v0/auth/login", strings.NewReader(`{"email":"admin@example.com","password":"s3cret"}`))
	req.Header.Set(TenantHeader, testTenantID)
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	var got TokenPair
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if got != *pair {
		t.Fatalf("expected %+v, got %+v", *pair, got)
	}
}

func TestRefreshHandler(t *testing.T) {
	mux, service := newTestAPI(t)

	pair := &TokenPair{AccessToken: "new-access", TokenType: "bearer", ExpiresIn: 3600}
	service.EXPECT().Refresh(gomock.Any(), "refresh-token").Return(pair, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v0/auth/refresh", strings.NewReader(`{"refresh_token":"refresh-token"}`))
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	if strings.Contains(rec.Body.String(), "refresh_token") {
		t.Fatal("refresh response must not contain a refresh token")
	}
}

func TestRefreshHandlerInvalidToken(t *testing.T) {
	mux, service := newTestAPI(t)

	service.EXPECT().Refresh(gomock.Any(), "stale").Return(nil, apierror.ErrUnauthenticated)

	req := httptest.NewRequest(http.MethodPost, "/api/v0/auth/refresh", strings.NewReader(`{"refresh_token":"stale"}`))
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}

func TestLogoutHandler(t *testing.T) {
	mux, service := newTestAPI(t)

	service.EXPECT().Logout(gomock.Any(), "refresh-token").Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v0/auth/logout", strings.NewReader(`{"refresh_token":"refresh-token"}`))
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var body map[string]bool
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if !body["ok"] {
		t.Fatal("expected ok true")
	}
}
