// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package users implements user management within a tenant. The insert
// never names the tenant, it inherits it from the transaction binding, so
// a user cannot be created outside the caller's own tenant.
package users

import (
	"context"
	"errors"
	"fmt"

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

func (s *Service) CreateUser(ctx context.Context, tenantID, email, plaintext string, role types.Role) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "users.Service.CreateUser")
	defer span.End()

	if !role.Valid() {
		return nil, apierror.Validation("invalid role")
	}

	hash, err := password.Hash(plaintext)
	if err != nil {
		if errors.Is(err, password.ErrPasswordTooLong) {
			return nil, apierror.Validation("password too long")
		}

		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	var user *types.User
	err = s.db.WithTenantTx(ctx, tenantID, func(ctx context.Context) error {
		var err error
		user, err = s.store.CreateUser(ctx, email, hash, role)
		return err
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, fmt.Errorf("%w: email already registered in tenant", apierror.ErrConflict)
		}

		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

func (s *Service) ListUsers(ctx context.Context, tenantID string) ([]*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "users.Service.ListUsers")
	defer span.End()

	var users []*types.User
	err := s.db.WithTenantTx(ctx, tenantID, func(ctx context.Context) error {
		var err error
		users, err = s.store.ListUsers(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return users, nil
}
