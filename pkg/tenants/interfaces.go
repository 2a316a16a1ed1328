// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenants

import (
	"context"

	"github.com/canonical/tenant-auth-service/internal/types"
)

type ServiceInterface interface {
	Provision(ctx context.Context, name, adminEmail, adminPassword string) (*types.Tenant, error)
}

type StorageInterface interface {
	CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)
	SetTenantBillingCustomer(ctx context.Context, tenantID, customerID string) error
	CreateUser(ctx context.Context, email, passwordHash string, role types.Role) (*types.User, error)
}

type DBClientInterface interface {
	WithTenantTx(context.Context, string, func(context.Context) error) error
}

type PaymentProviderInterface interface {
	CreateCustomer(ctx context.Context, name, email string) (string, error)
	Enabled() bool
}

type MailProviderInterface interface {
	SendWelcome(ctx context.Context, toEmail, tenantName string) error
	Enabled() bool
}
