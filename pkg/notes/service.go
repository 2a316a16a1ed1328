// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package notes implements the tenant-scoped notes resource. The notes
// table fills in its tenant id from the transaction binding through a
// column default, the application never writes it.
package notes

import (
	"context"
	"fmt"

	"github.com/canonical/tenant-auth-service/internal/logging"
	"github.com/canonical/tenant-auth-service/internal/monitoring"
	"github.com/canonical/tenant-auth-service/internal/tracing"
	"github.com/canonical/tenant-auth-service/internal/types"
)

const (
	defaultListLimit = 50
	maxListLimit     = 100
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	store StorageInterface
	db    DBClientInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(store StorageInterface, db DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.store = store
	s.db = db

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}

func (s *Service) CreateNote(ctx context.Context, tenantID, title, body string) (*types.Note, error) {
	ctx, span := s.tracer.Start(ctx, "notes.Service.CreateNote")
	defer span.End()

	var note *types.Note
	err := s.db.WithTenantTx(ctx, tenantID, func(ctx context.Context) error {
		var err error
		note, err = s.store.CreateNote(ctx, title, body)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	return note, nil
}

// ListNotes clamps the page size to [1, 100], a zero limit selects the
// default page size.
func (s *Service) ListNotes(ctx context.Context, tenantID string, limit, offset uint64) ([]*types.Note, error) {
	ctx, span := s.tracer.Start(ctx, "notes.Service.ListNotes")
	defer span.End()

	if limit == 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	var out []*types.Note
	err := s.db.WithTenantTx(ctx, tenantID, func(ctx context.Context) error {
		var err error
		out, err = s.store.ListNotes(ctx, limit, offset)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}

	return out, nil
}
