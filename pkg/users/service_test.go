// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package users

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/tenant-auth-service/internal/apierror"
	"github.com/canonical/tenant-auth-service/internal/logging"
	"github.com/canonical/tenant-auth-service/internal/monitoring"
	"github.com/canonical/tenant-auth-service/internal/password"
	"github.com/canonical/tenant-auth-service/internal/storage"
	"github.com/canonical/tenant-auth-service/internal/tracing"
	"github.com/canonical/tenant-auth-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package users -destination ./mock_users.go -source=./interfaces.go

const (
	testTenantID = "e2b2f0a5-42cb-4f5e-a44f-2d0a6c8f3a11"
	testEmail    = "user@example.com"
)

func newTestUsersService(t *testing.T) (*Service, *MockStorageInterface, *MockDBClientInterface) {
	ctrl := gomock.NewController(t)

	store := NewMockStorageInterface(ctrl)
	db := NewMockDBClientInterface(ctrl)

	s := NewService(store, db, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())

	return s, store, db
}

func passTenantTx(ctx context.Context, _ string, fn func(context.Context) error) error {
	return fn(ctx)
}

func TestCreateUserSuccess(t *testing.T) {
	s, store, db := newTestUsersService(t)

	db.EXPECT().WithTenantTx(gomock.Any(), testTenantID, gomock.Any()).DoAndReturn(passTenantTx)
	store.EXPECT().CreateUser(gomock.Any(), testEmail, gomock.Any(), types.RoleUser).DoAndReturn(
		func(_ context.Context, email, hash string, role types.Role) (*types.User, error) {
			if !password.Verify("s3cret-pass", hash) {
				t.Fatal("stored hash does not verify against the plaintext")
			}
			return &types.User{ID: "u1", TenantID: testTenantID, Email: email, Role: role}, nil
		})

	user, err := s.CreateUser(context.Background(), testTenantID, testEmail, "s3cret-pass", types.RoleUser)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if user.Email != testEmail {
		t.Fatalf("expected email %q, got %q", testEmail, user.Email)
	}
}

func TestCreateUserInvalidRole(t *testing.T) {
	s, _, _ := newTestUsersService(t)

	_, err := s.CreateUser(context.Background(), testTenantID, testEmail, "s3cret-pass", types.Role("owner"))
	if !errors.Is(err, apierror.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	s, store, db := newTestUsersService(t)

	db.EXPECT().WithTenantTx(gomock.Any(), testTenantID, gomock.Any()).DoAndReturn(passTenantTx)
	store.EXPECT().CreateUser(gomock.Any(), testEmail, gomock.Any(), types.RoleUser).Return(nil, storage.ErrDuplicateKey)

	_, err := s.CreateUser(context.Background(), testTenantID, testEmail, "s3cret-pass", types.RoleUser)
	if !errors.Is(err, apierror.ErrConflict) {
		t.Fatalf("expected conflict error, got %v", err)
	}
}

func TestListUsers(t *testing.T) {
	s, store, db := newTestUsersService(t)

	expected := []*types.User{
		{ID: "u1", Email: "a@example.com", Role: types.RoleAdmin},
		{ID: "u2", Email: "b@example.com", Role: types.RoleUser},
	}

	db.EXPECT().WithTenantTx(gomock.Any(), testTenantID, gomock.Any()).DoAndReturn(passTenantTx)
	store.EXPECT().ListUsers(gomock.Any()).Return(expected, nil)

	users, err := s.ListUsers(context.Background(), testTenantID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
}

func TestListUsersStorageError(t *testing.T) {
	s, store, db := newTestUsersService(t)
	dbErr := errors.New("db error")

	db.EXPECT().WithTenantTx(gomock.Any(), testTenantID, gomock.Any()).DoAndReturn(passTenantTx)
	store.EXPECT().ListUsers(gomock.Any()).Return(nil, dbErr)

	if _, err := s.ListUsers(context.Background(), testTenantID); !errors.Is(err, dbErr) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}
