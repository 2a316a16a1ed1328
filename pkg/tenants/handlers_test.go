// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenants

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
	"github.com/canonical/tenant-auth-service/internal/types"
)

func newTestAPI(t *testing.T) (*chi.Mux, *MockServiceInterface) {
	ctrl := gomock.NewController(t)
	service := NewMockServiceInterface(ctrl)

	mux := chi.NewMux()
	NewAPI(service, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger()).RegisterEndpoints(mux)

	return mux, service
}

func TestCreateTenantHandler(t *testing.T) {
	tenant := &types.Tenant{ID: "5a4cc1e0-91a0-44cc-9ad5-0b24b6012862", Name: testName}

	testCases := []struct {
		name           string
		body           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name: "success",
			body: `{"name":"acme","admin_email":"admin@acme.example","admin_password":"s3cret-pass"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().Provision(gomock.Any(), testName, testEmail, "s3cret-pass").Return(tenant, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "malformed body",
			body:           `{`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing name",
			body:           `{"admin_email":"admin@acme.example","admin_password":"s3cret-pass"}`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid email",
			body:           `{"name":"acme","admin_email":"not-an-email","admin_password":"s3cret-pass"}`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "short password",
			body:           `{"name":"acme","admin_email":"admin@acme.example","admin_password":"short"}`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "duplicate name",
			body: `{"name":"acme","admin_email":"admin@acme.example","admin_password":"s3cret-pass"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().Provision(gomock.Any(), testName, testEmail, "s3cret-pass").Return(nil, apierror.ErrConflict)
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mux, service := newTestAPI(t)
			tc.setupMocks(service)

			req := httptest.NewRequest(http.MethodPost, "/api/v0/tenants", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()

			mux.ServeHTTP(rec, req)

			if rec.Code != tc.expectedStatus {
				t.Fatalf("expected status %d, got %d", tc.expectedStatus, rec.Code)
			}

			if tc.expectedStatus == http.StatusCreated {
				var body createTenantResponse
				if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				if body.TenantID != tenant.ID {
					t.Fatalf("expected tenant id %q, got %q", tenant.ID, body.TenantID)
				}
			}
		})
	}
}
