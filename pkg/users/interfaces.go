// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package users

import (
	"context"

	"github.com/canonical/tenant-auth-service/internal/types"
)

type ServiceInterface interface {
	CreateUser(ctx context.Context, tenantID, email, password string, role types.Role) (*types.User, error)
	ListUsers(ctx context.Context, tenantID string) ([]*types.User, error)
}

type StorageInterface interface {
	CreateUser(ctx context.Context, email, passwordHash string, role types.Role) (*types.User, error)
	ListUsers(ctx context.Context) ([]*types.User, error)
}

type DBClientInterface interface {
	WithTenantTx(context.Context, string, func(context.Context) error) error
}
