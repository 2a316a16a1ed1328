// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package authn implements credential verification, the login and refresh
// flows, and the request authentication middleware.
package authn

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

// TokenPair is the login and refresh response body. RefreshToken is empty
// on refresh responses, only login mints a new one.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	store   StorageInterface
	tokens  TokenProviderInterface
	limiter LimiterInterface
	db      DBClientInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(store StorageInterface, tokens TokenProviderInterface, limiter LimiterInterface, db DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.store = store
	s.tokens = tokens
	s.limiter = limiter
	s.db = db

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}

// Login verifies the credential inside a tenant-bound transaction and
// returns a fresh token pair. Unknown email and wrong password both come
// back as ErrUnauthenticated so the response leaks nothing.
func (s *Service) Login(ctx context.Context, tenantID, email, plaintext string) (*TokenPair, error) {
	ctx, span := s.tracer.Start(ctx, "authn.Service.Login")
	defer span.End()

	if _, err := uuid.Parse(tenantID); err != nil {
		return nil, apierror.Validation("invalid tenant id")
	}

	if err := s.limiter.Allow(ctx, fmt.Sprintf("login:%s:%s", tenantID, email)); err != nil {
		if errors.Is(err, apierror.ErrRateLimited) {
			s.logger.Security().LoginFailure(tenantID, email, "rate limited")
		}

		return nil, err
	}

	var user *types.User
	err := s.db.WithTenantTx(ctx, tenantID, func(ctx context.Context) error {
		var err error
		user, err = s.store.GetUserByEmail(ctx, email)
		return err
	})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Security().LoginFailure(tenantID, email, "unknown user")
			return nil, apierror.ErrUnauthenticated
		}

		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !password.Verify(plaintext, user.PasswordHash) {
		s.logger.Security().LoginFailure(tenantID, email, "bad password")
		return nil, apierror.ErrUnauthenticated
	}

	access, ttl, err := s.tokens.IssueAccess(ctx, user.ID, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue access token: %w", err)
	}

	refresh, err := s.tokens.MintRefresh(ctx, user.ID, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to mint refresh token: %w", err)
	}

	s.logger.Security().LoginSuccess(tenantID, user.ID)

	return &TokenPair{
		AccessToken:  access,
		TokenType:    "bearer",
		ExpiresIn:    int64(ttl.Seconds()),
		RefreshToken: refresh,
	}, nil
}

// Refresh redeems a refresh token for a new access token. The refresh
// token itself stays valid until logout or expiry.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	ctx, span := s.tracer.Start(ctx, "authn.Service.Refresh")
	defer span.End()

	principal, err := s.tokens.RedeemRefresh(ctx, refreshToken)
	if err != nil {
		s.logger.Debugf("refresh token redemption failed: %v", err)
		return nil, apierror.ErrUnauthenticated
	}

	access, ttl, err := s.tokens.IssueAccess(ctx, principal.UserID, principal.TenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue access token: %w", err)
	}

	return &TokenPair{
		AccessToken: access,
		TokenType:   "bearer",
		ExpiresIn:   int64(ttl.Seconds()),
	}, nil
}

// Logout revokes the refresh token. Revoking an unknown token succeeds,
// so repeated logouts are harmless.
func (s *Service) Logout(ctx context.Context, refreshToken string) error {
	ctx, span := s.tracer.Start(ctx, "authn.Service.Logout")
	defer span.End()

	if err := s.tokens.RevokeRefresh(ctx, refreshToken); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	return nil
}
