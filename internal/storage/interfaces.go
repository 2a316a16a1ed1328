// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/canonical/tenant-auth-service/internal/types"
)

// StorageInterface covers all tenant-scoped persistence. Every method that
// touches a tenant-scoped table expects to run inside a tenant-bound
// transaction; with no binding the row-level policies match nothing.
type StorageInterface interface {
	CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	SetTenantBillingCustomer(ctx context.Context, tenantID, customerID string) error

	CreateUser(ctx context.Context, email, passwordHash string, role types.Role) (*types.User, error)
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)
	GetUserByID(ctx context.Context, id string) (*types.User, error)
	ListUsers(ctx context.Context) ([]*types.User, error)

	CreateNote(ctx context.Context, title, body string) (*types.Note, error)
	ListNotes(ctx context.Context, limit, offset uint64) ([]*types.Note, error)
}
