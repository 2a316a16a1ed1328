// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/tenant-auth-service/internal/db"
	"github.com/canonical/tenant-auth-service/internal/logging"
	"github.com/canonical/tenant-auth-service/internal/monitoring"
	"github.com/canonical/tenant-auth-service/internal/tracing"
	"github.com/canonical/tenant-auth-service/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

// currentTenantExpr resolves to the tenant bound to the transaction. Inserts
// take the tenant id from the binding rather than from any caller-supplied
// value, so a request can never write into a tenant other than its own.
const currentTenantExpr = "current_setting('app.current_tenant', true)::uuid"

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

func (s *Storage) CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateTenant")
	defer span.End()

	var newTenant types.Tenant
	var billingCustomerID sql.NullString
	err := s.db.Statement(ctx).
		Insert("tenants").
		Columns("id", "name").
		Values(t.ID, t.Name).
		Suffix("RETURNING id, name, billing_customer_id, created_at").
		QueryRowContext(ctx).
		Scan(&newTenant.ID, &newTenant.Name, &billingCustomerID, &newTenant.CreatedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to insert tenant: %w", err)
	}

	newTenant.BillingCustomerID = billingCustomerID.String
	return &newTenant, nil
}

func (s *Storage) GetTenantByID(ctx context.Context, id string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTenantByID")
	defer span.End()

	var t types.Tenant
	var billingCustomerID sql.NullString
	err := s.db.Statement(ctx).
		Select("id", "name", "billing_customer_id", "created_at").
		From("tenants").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&t.ID, &t.Name, &billingCustomerID, &t.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	t.BillingCustomerID = billingCustomerID.String
	return &t, nil
}

func (s *Storage) SetTenantBillingCustomer(ctx context.Context, tenantID, customerID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetTenantBillingCustomer")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Update("tenants").
		Set("billing_customer_id", customerID).
		Where(sq.Eq{"id": tenantID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to set billing customer: %w", err)
	}
	return nil
}

// CreateUser inserts a user into the tenant bound to the current transaction.
// The tenant_id column is filled from the transaction binding, never from a
// parameter.
func (s *Storage) CreateUser(ctx context.Context, email, passwordHash string, role types.Role) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateUser")
	defer span.End()

	var u types.User
	err := s.db.Statement(ctx).
		Insert("users").
		Columns("tenant_id", "email", "password_hash", "role").
		Values(sq.Expr(currentTenantExpr), email, passwordHash, string(role)).
		Suffix("RETURNING id, tenant_id, email, password_hash, role, created_at").
		QueryRowContext(ctx).
		Scan(&u.ID, &u.TenantID, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	return &u, nil
}

func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*types.User, error) {
	return s.getUser(ctx, "storage.GetUserByEmail", sq.Eq{"email": email})
}

func (s *Storage) GetUserByID(ctx context.Context, id string) (*types.User, error) {
	return s.getUser(ctx, "storage.GetUserByID", sq.Eq{"id": id})
}

func (s *Storage) getUser(ctx context.Context, spanName string, pred interface{}) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, spanName)
	defer span.End()

	var u types.User
	err := s.db.Statement(ctx).
		Select("id", "tenant_id", "email", "password_hash", "role", "created_at").
		From("users").
		Where(pred).
		Limit(1).
		QueryRowContext(ctx).
		Scan(&u.ID, &u.TenantID, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &u, nil
}

func (s *Storage) ListUsers(ctx context.Context) ([]*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListUsers")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "tenant_id", "email", "password_hash", "role", "created_at").
		From("users").
		OrderBy("created_at DESC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []*types.User
	for rows.Next() {
		var u types.User
		if err := rows.Scan(&u.ID, &u.TenantID, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, &u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return users, nil
}

// CreateNote relies on the notes.tenant_id column default, which reads the
// transaction's tenant binding. No tenant id crosses this interface at all.
func (s *Storage) CreateNote(ctx context.Context, title, body string) (*types.Note, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateNote")
	defer span.End()

	var n types.Note
	err := s.db.Statement(ctx).
		Insert("notes").
		Columns("title", "body").
		Values(title, body).
		Suffix("RETURNING id, tenant_id, title, body, created_at").
		QueryRowContext(ctx).
		Scan(&n.ID, &n.TenantID, &n.Title, &n.Body, &n.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("failed to insert note: %w", err)
	}

	return &n, nil
}

func (s *Storage) ListNotes(ctx context.Context, limit, offset uint64) ([]*types.Note, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListNotes")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "tenant_id", "title", "body", "created_at").
		From("notes").
		OrderBy("created_at DESC").
		Limit(limit).
		Offset(offset).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer rows.Close()

	var notes []*types.Note
	for rows.Next() {
		var n types.Note
		if err := rows.Scan(&n.ID, &n.TenantID, &n.Title, &n.Body, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, &n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return notes, nil
}
