// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenants

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	"github.com/canonical/tenant-auth-service/internal/apierror"
	"github.com/canonical/tenant-auth-service/internal/logging"
	"github.com/canonical/tenant-auth-service/internal/monitoring"
	"github.com/canonical/tenant-auth-service/internal/password"
	"github.com/canonical/tenant-auth-service/internal/storage"
	"github.com/canonical/tenant-auth-service/internal/tracing"
	"github.com/canonical/tenant-auth-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package tenants -destination ./mock_tenants.go -source=./interfaces.go

const (
	testName  = "acme"
	testEmail = "admin@acme.example"
)

type serviceMocks struct {
	store    *MockStorageInterface
	db       *MockDBClientInterface
	payments *MockPaymentProviderInterface
	mail     *MockMailProviderInterface
}

func newTestProvisioner(t *testing.T) (*Service, serviceMocks) {
	ctrl := gomock.NewController(t)

	m := serviceMocks{
		store:    NewMockStorageInterface(ctrl),
		db:       NewMockDBClientInterface(ctrl),
		payments: NewMockPaymentProviderInterface(ctrl),
		mail:     NewMockMailProviderInterface(ctrl),
	}

	s := NewService(m.store, m.db, m.payments, m.mail, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())

	return s, m
}

func passTenantTx(ctx context.Context, _ string, fn func(context.Context) error) error {
	return fn(ctx)
}

func TestProvisionSuccess(t *testing.T) {
	s, m := newTestProvisioner(t)

	var boundTenantID string
	m.db.EXPECT().WithTenantTx(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, tenantID string, fn func(context.Context) error) error {
			boundTenantID = tenantID
			return fn(ctx)
		})

	m.store.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, tenant *types.Tenant) (*types.Tenant, error) {
			if tenant.Name != testName {
				t.Fatalf("expected tenant name %q, got %q", testName, tenant.Name)
			}
			if _, err := uuid.Parse(tenant.ID); err != nil {
				t.Fatalf("expected tenant id to be a uuid, got %q", tenant.ID)
			}
			if tenant.ID != boundTenantID {
				t.Fatalf("transaction bound to %q but tenant created with %q", boundTenantID, tenant.ID)
			}
			return tenant, nil
		})

	m.payments.EXPECT().Enabled().Return(true)
	m.payments.EXPECT().CreateCustomer(gomock.Any(), testName, testEmail).Return("cus_123", nil)
	m.store.EXPECT().SetTenantBillingCustomer(gomock.Any(), gomock.Any(), "cus_123").Return(nil)

	m.store.EXPECT().CreateUser(gomock.Any(), testEmail, gomock.Any(), types.RoleAdmin).DoAndReturn(
		func(_ context.Context, email, hash string, role types.Role) (*types.User, error) {
			if !password.Verify("s3cret-pass", hash) {
				t.Fatal("stored hash does not verify against the admin password")
			}
			return &types.User{ID: uuid.NewString(), Email: email, Role: role}, nil
		})

	m.mail.EXPECT().Enabled().Return(true)
	m.mail.EXPECT().SendWelcome(gomock.Any(), testEmail, testName).Return(nil)

	tenant, err := s.Provision(context.Background(), testName, testEmail, "s3cret-pass")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if tenant.ID != boundTenantID {
		t.Fatalf("expected returned tenant id %q, got %q", boundTenantID, tenant.ID)
	}
}

func TestProvisionDuplicateName(t *testing.T) {
	s, m := newTestProvisioner(t)

	m.db.EXPECT().WithTenantTx(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(passTenantTx)
	m.store.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)

	_, err := s.Provision(context.Background(), testName, testEmail, "s3cret-pass")
	if !errors.Is(err, apierror.ErrConflict) {
		t.Fatalf("expected conflict error, got %v", err)
	}
}

func TestProvisionAdminInsertFailureRollsBack(t *testing.T) {
	s, m := newTestProvisioner(t)
	insertErr := errors.New("insert failed")

	// The real client rolls back when the callback errors, the mock only
	// needs to propagate the error unchanged.
	m.db.EXPECT().WithTenantTx(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(passTenantTx)
	m.store.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, tenant *types.Tenant) (*types.Tenant, error) {
			return tenant, nil
		})
	m.payments.EXPECT().Enabled().Return(false)
	m.store.EXPECT().CreateUser(gomock.Any(), testEmail, gomock.Any(), types.RoleAdmin).Return(nil, insertErr)

	// No welcome email after a failed transaction.
	_, err := s.Provision(context.Background(), testName, testEmail, "s3cret-pass")
	if !errors.Is(err, insertErr) {
		t.Fatalf("expected insert error, got %v", err)
	}
}

func TestProvisionBillingFailureIsBestEffort(t *testing.T) {
	s, m := newTestProvisioner(t)

	m.db.EXPECT().WithTenantTx(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(passTenantTx)
	m.store.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, tenant *types.Tenant) (*types.Tenant, error) {
			return tenant, nil
		})
	m.payments.EXPECT().Enabled().Return(true)
	m.payments.EXPECT().CreateCustomer(gomock.Any(), testName, testEmail).Return("", errors.New("provider down"))
	m.store.EXPECT().CreateUser(gomock.Any(), testEmail, gomock.Any(), types.RoleAdmin).Return(&types.User{}, nil)
	m.mail.EXPECT().Enabled().Return(false)

	if _, err := s.Provision(context.Background(), testName, testEmail, "s3cret-pass"); err != nil {
		t.Fatalf("expected provisioning to survive billing failure, got %v", err)
	}
}

func TestProvisionMailFailureIsBestEffort(t *testing.T) {
	s, m := newTestProvisioner(t)

	m.db.EXPECT().WithTenantTx(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(passTenantTx)
	m.store.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, tenant *types.Tenant) (*types.Tenant, error) {
			return tenant, nil
		})
	m.payments.EXPECT().Enabled().Return(false)
	m.store.EXPECT().CreateUser(gomock.Any(), testEmail, gomock.Any(), types.RoleAdmin).Return(&types.User{}, nil)
	m.mail.EXPECT().Enabled().Return(true)
	m.mail.EXPECT().SendWelcome(gomock.Any(), testEmail, testName).Return(errors.New("smtp down"))

	if _, err := s.Provision(context.Background(), testName, testEmail, "s3cret-pass"); err != nil {
		t.Fatalf("expected provisioning to survive mail failure, got %v", err)
	}
}

func TestProvisionPasswordTooLong(t *testing.T) {
	s, _ := newTestProvisioner(t)

	long := make([]byte, password.MaxLength+1)
	for i := range long {
		long[i] = 'a'
	}

	_, err := s.Provision(context.Background(), testName, testEmail, string(long))
	if !errors.Is(err, apierror.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
