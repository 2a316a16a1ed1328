// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authn

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/tenant-auth-service/internal/logging"
	"github.com/canonical/tenant-auth-service/internal/monitoring"
	"github.com/canonical/tenant-auth-service/internal/storage"
	"github.com/canonical/tenant-auth-service/internal/tracing"
	"github.com/canonical/tenant-auth-service/internal/types"
)

func newTestMiddleware(t *testing.T) (*Middleware, serviceMocks) {
	ctrl := gomock.NewController(t)

	m := serviceMocks{
		store:  NewMockStorageInterface(ctrl),
		tokens: NewMockTokenProviderInterface(ctrl),
		db:     NewMockDBClientInterface(ctrl),
	}

	mw := NewMiddleware(m.tokens, m.store, m.db, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())

	return mw, m
}

func TestAuthenticate(t *testing.T) {
	principal := &types.Principal{UserID: testUserID, TenantID: testTenantID}

	testCases := []struct {
		name           string
		authHeader     string
		setupMocks     func(serviceMocks)
		expectedStatus int
		expectNext     bool
	}{
		{
			name:           "missing header",
			authHeader:     "",
			setupMocks:     func(serviceMocks) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "not a bearer token",
			authHeader:     "Basic dXNlcjpwYXNz",
			setupMocks:     func(serviceMocks) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:       "invalid token",
			authHeader: "Bearer bad-token",
			setupMocks: func(m serviceMocks) {
				m.tokens.EXPECT().ValidateAccess(gomock.Any(), "bad-token").Return(nil, errors.New("invalid token"))
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:       "valid token",
			authHeader: "Bearer good-token",
			setupMocks: func(m serviceMocks) {
				m.tokens.EXPECT().ValidateAccess(gomock.Any(), "good-token").Return(principal, nil)
			},
			expectedStatus: http.StatusOK,
			expectNext:     true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mw, m := newTestMiddleware(t)
			tc.setupMocks(m)

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true

				got, ok := PrincipalFromContext(r.Context())
				if !ok {
					t.Fatal("expected principal in context")
				}
				if got.UserID != testUserID || got.TenantID != testTenantID {
					t.Fatalf("unexpected principal %+v", got)
				}
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v0/users", nil)
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}
			rec := httptest.NewRecorder()

			mw.Authenticate()(next).ServeHTTP(rec, req)

			if rec.Code != tc.expectedStatus {
				t.Fatalf("expected status %d, got %d", tc.expectedStatus, rec.Code)
			}

			if nextCalled != tc.expectNext {
				t.Fatalf("expected next called %v, got %v", tc.expectNext, nextCalled)
			}
		})
	}
}

func TestRequireRoles(t *testing.T) {
	adminUser := &types.User{ID: testUserID, TenantID: testTenantID, Role: types.RoleAdmin}
	plainUser := &types.User{ID: testUserID, TenantID: testTenantID, Role: types.RoleUser}

	testCases := []struct {
		name           string
		withPrincipal  bool
		allowed        []types.Role
		setupMocks     func(serviceMocks)
		expectedStatus int
		expectNext     bool
	}{
		{
			name:           "no principal",
			withPrincipal:  false,
			allowed:        []types.Role{types.RoleAdmin},
			setupMocks:     func(serviceMocks) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:          "role allowed",
			withPrincipal: true,
			allowed:       []types.Role{types.RoleAdmin},
			setupMocks: func(m serviceMocks) {
				m.db.EXPECT().WithTenantTx(gomock.Any(), testTenantID, gomock.Any()).DoAndReturn(passTenantTx)
				m.store.EXPECT().GetUserByID(gomock.Any(), testUserID).Return(adminUser, nil)
			},
			expectedStatus: http.StatusOK,
			expectNext:     true,
		},
		{
			name:          "role denied",
			withPrincipal: true,
			allowed:       []types.Role{types.RoleAdmin},
			setupMocks: func(m serviceMocks) {
				m.db.EXPECT().WithTenantTx(gomock.Any(), testTenantID, gomock.Any()).DoAndReturn(passTenantTx)
				m.store.EXPECT().GetUserByID(gomock.Any(), testUserID).Return(plainUser, nil)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:          "user deleted after token issued",
			withPrincipal: true,
			allowed:       []types.Role{types.RoleAdmin},
			setupMocks: func(m serviceMocks) {
				m.db.EXPECT().WithTenantTx(gomock.Any(), testTenantID, gomock.Any()).DoAndReturn(passTenantTx)
				m.store.EXPECT().GetUserByID(gomock.Any(), testUserID).Return(nil, storage.ErrNotFound)
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mw, m := newTestMiddleware(t)
			tc.setupMocks(m)

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v0/users", nil)
			if tc.withPrincipal {
				ctx := WithPrincipal(context.Background(), &types.Principal{UserID: testUserID, TenantID: testTenantID})
				req = req.WithContext(ctx)
			}
			rec := httptest.NewRecorder()

			mw.RequireRoles(tc.allowed...)(next).ServeHTTP(rec, req)

			if rec.Code != tc.expectedStatus {
				t.Fatalf("expected status %d, got %d", tc.expectedStatus, rec.Code)
			}

			if nextCalled != tc.expectNext {
				t.Fatalf("expected next called %v, got %v", tc.expectNext, nextCalled)
			}
		})
	}
}
