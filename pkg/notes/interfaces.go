// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notes

import (
	"context"

	"github.com/canonical/tenant-auth-service/internal/types"
)

type ServiceInterface interface {
	CreateNote(ctx context.Context, tenantID, title, body string) (*types.Note, error)
	ListNotes(ctx context.Context, tenantID string, limit, offset uint64) ([]*types.Note, error)
}

type StorageInterface interface {
	CreateNote(ctx context.Context, title, body string) (*types.Note, error)
	ListNotes(ctx context.Context, limit, offset uint64) ([]*types.Note, error)
}

type DBClientInterface interface {
	WithTenantTx(context.Context, string, func(context.Context) error) error
}
