// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package tenants implements tenant provisioning. A tenant, its billing
// customer record and its first admin user are created in one tenant-bound
// transaction, so a failure at any step leaves no partial tenant behind.
package tenants

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/canonical/tenant-auth-service/internal/apierror"
	"github.com/canonical/tenant-auth-service/internal/logging"
	"github.com/canonical/tenant-auth-service/internal/monitoring"
	"github.com/canonical/tenant-auth-service/internal/password"
	"github.com/canonical/tenant-auth-service/internal/storage"
	"github.com/canonical/tenant-auth-service/internal/tracing"
	"github.com/canonical/tenant-auth-service/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	store    StorageInterface
	db       DBClientInterface
	payments PaymentProviderInterface
	mail     MailProviderInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(store StorageInterface, db DBClientInterface, payments PaymentProviderInterface, mail MailProviderInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.store = store
	s.db = db
	s.payments = payments
	s.mail = mail

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}

// Provision creates a tenant together with its first admin user. The
// tenant id is generated up front and the whole transaction is bound to
// it, otherwise the row-level policies would reject the inserts. Billing
// customer creation is best-effort, the welcome email is sent only after
// the transaction commits.
func (s *Service) Provision(ctx context.Context, name, adminEmail, adminPassword string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenants.Service.Provision")
	defer span.End()

	hash, err := password.Hash(adminPassword)
	if err != nil {
		if errors.Is(err, password.ErrPasswordTooLong) {
			return nil, apierror.Validation("password too long")
		}

		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	tenantID := uuid.NewString()

	var tenant *types.Tenant
	err = s.db.WithTenantTx(ctx, tenantID, func(ctx context.Context) error {
		var err error
		tenant, err = s.store.CreateTenant(ctx, &types.Tenant{ID: tenantID, Name: name})
		if err != nil {
			return err
		}

		if s.payments.Enabled() {
			customerID, err := s.payments.CreateCustomer(ctx, name, adminEmail)
			if err != nil {
				s.logger.Warnf("failed to create billing customer for tenant %s: %v", tenantID, err)
			} else if err := s.store.SetTenantBillingCustomer(ctx, tenantID, customerID); err != nil {
				return err
			}
		}

		if _, err := s.store.CreateUser(ctx, adminEmail, hash, types.RoleAdmin); err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, fmt.Errorf("%w: tenant name taken", apierror.ErrConflict)
		}

		return nil, fmt.Errorf("failed to provision tenant: %w", err)
	}

	s.logger.Security().TenantProvisioned(tenantID, name)

	if s.mail.Enabled() {
		if err := s.mail.SendWelcome(ctx, adminEmail, name); err != nil {
			s.logger.Warnf("failed to send welcome email for tenant %s: %v", tenantID, err)
		}
	}

	return tenant, nil
}
