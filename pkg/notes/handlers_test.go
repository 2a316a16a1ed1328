// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chi "github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/tenant-auth-service/internal/logging"
	"github.com/canonical/tenant-auth-service/internal/monitoring"
	"github.com/canonical/tenant-auth-service/internal/tracing"
	"github.com/canonical/tenant-auth-service/internal/types"
	"github.com/canonical/tenant-auth-service/pkg/authn"
)

func newTestAPI(t *testing.T) (*chi.Mux, *MockServiceInterface) {
	ctrl := gomock.NewController(t)
	service := NewMockServiceInterface(ctrl)

	mux := chi.NewMux()
	NewAPI(service, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger()).RegisterEndpoints(mux)

	return mux, service
}

func withTestPrincipal(req *http.Request) *http.Request {
	ctx := authn.WithPrincipal(context.Background(), &types.Principal{UserID: "u1", TenantID: testTenantID})
	return req.WithContext(ctx)
}

func TestCreateNoteHandler(t *testing.T) {
	created := &types.Note{ID: "n1", TenantID: testTenantID, Title: "title", Body: "body"}

	testCases := []struct {
		name           string
		body           string
		withPrincipal  bool
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name:          "success",
			body:          `{"title":"title","body":"body"}`,
			withPrincipal: true,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().CreateNote(gomock.Any(), testTenantID, "title", "body").Return(created, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing title",
			body:           `{"body":"body"}`,
			withPrincipal:  true,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "no principal",
			body:           `{"title":"title"}`,
			withPrincipal:  false,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mux, service := newTestAPI(t)
			tc.setupMocks(service)

			req := httptest.NewRequest(http.MethodPost, "/api/v0/notes", strings.NewReader(tc.body))
			if tc.withPrincipal {
				req = withTestPrincipal(req)
			}
			rec := httptest.NewRecorder()

			mux.ServeHTTP(rec, req)

			if rec.Code != tc.expectedStatus {
				t.Fatalf("expected status %d, got %d", tc.expectedStatus, rec.Code)
			}
		})
	}
}

func TestListNotesHandler(t *testing.T) {
	mux, service := newTestAPI(t)

	service.EXPECT().ListNotes(gomock.Any(), testTenantID, uint64(10), uint64(20)).Return([]*types.Note{
		{ID: "n1", TenantID: testTenantID, Title: "a"},
	}, nil)

	req := withTestPrincipal(httptest.NewRequest(http.MethodGet, "/api/v0/notes?limit=10&offset=20", nil))
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var out []*types.Note
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(out) != 1 || out[0].ID != "n1" {
		t.Fatalf("unexpected notes %+v", out)
	}
}

func TestListNotesHandlerInvalidLimit(t *testing.T) {
	mux, _ := newTestAPI(t)

	req := withTestPrincipal(httptest.NewRequest(http.MethodGet, "/api/v0/notes?limit=abc", nil))
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}
