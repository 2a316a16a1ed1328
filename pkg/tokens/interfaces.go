// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tokens

import (
	"context"
	"time"

	"github.com/canonical/tenant-auth-service/internal/types"
)

// ServiceInterface issues and validates the two token families. Access
// tokens are stateless signed claims, refresh tokens are opaque handles
// backed by the key-value store and revocable at any time.
type ServiceInterface interface {
	IssueAccess(ctx context.Context, userID, tenantID string) (string, time.Duration, error)
	ValidateAccess(ctx context.Context, token string) (*types.Principal, error)
	MintRefresh(ctx context.Context, userID, tenantID string) (string, error)
	RefreshValid(ctx context.Context, token string) (bool, error)
	RedeemRefresh(ctx context.Context, token string) (*types.Principal, error)
	RevokeRefresh(ctx context.Context, token string) error
}
