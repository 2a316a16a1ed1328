// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authn

import (
	"context"
	"time"

	"github.com/canonical/tenant-auth-service/internal/types"
)

type ServiceInterface interface {
	Login(ctx context.Context, tenantID, email, password string) (*TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
}

type StorageInterface interface {
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)
	GetUserByID(ctx context.Context, id string) (*types.User, error)
}

type TokenProviderInterface interface {
	IssueAccess(ctx context.Context, userID, tenantID string) (string, time.Duration, error)
	ValidateAccess(ctx context.Context, token string) (*types.Principal, error)
	MintRefresh(ctx context.Context, userID, tenantID string) (string, error)
	RedeemRefresh(ctx context.Context, token string) (*types.Principal, error)
	RevokeRefresh(ctx context.Context, token string) error
}

type LimiterInterface interface {
	Allow(ctx context.Context, key string) error
}

type DBClientInterface interface {
	WithTenantTx(context.Context, string, func(context.Context) error) error
}
