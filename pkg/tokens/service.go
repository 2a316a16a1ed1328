// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package tokens implements the token service. Access tokens are HS256
// signed JWTs carrying the subject and tenant, verifiable without any
// store round trip. Refresh tokens are opaque uuids whose state lives in
// the key-value store, so revocation takes effect immediately.
package tokens

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/canonical/tenant-auth-service/internal/kv"
	"github.com/canonical/tenant-auth-service/internal/logging"
	"github.com/canonical/tenant-auth-service/internal/monitoring"
	"github.com/canonical/tenant-auth-service/internal/tracing"
	"github.com/canonical/tenant-auth-service/internal/types"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

const refreshKeyPrefix = "rt:"

var _ ServiceInterface = (*Service)(nil)

type Config struct {
	Secret     []byte
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

type Service struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration

	store kv.KVInterface

	now func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

type accessClaims struct {
	TenantID string `json:"tenant_id"`
	jwt.RegisteredClaims
}

func NewService(cfg Config, store kv.KVInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.secret = cfg.Secret
	s.accessTTL = cfg.AccessTTL
	s.refreshTTL = cfg.RefreshTTL
	s.store = store
	s.now = time.Now

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}

// IssueAccess signs a short lived access token for the given user and
// tenant and returns it together with its lifetime.
func (s *Service) IssueAccess(ctx context.Context, userID, tenantID string) (string, time.Duration, error) {
	_, span := s.tracer.Start(ctx, "tokens.Service.IssueAccess")
	defer span.End()

	now := s.now()
	claims := accessClaims{
		TenantID: tenantID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign access token: %w", err)
	}

	return token, s.accessTTL, nil
}

// ValidateAccess verifies the signature and expiry of an access token and
// returns the principal it was issued to. No store lookup is performed.
func (s *Service) ValidateAccess(ctx context.Context, token string) (*types.Principal, error) {
	_, span := s.tracer.Start(ctx, "tokens.Service.ValidateAccess")
	defer span.End()

	claims := new(accessClaims)
	_, err := jwt.ParseWithClaims(token, claims,
		func(t *jwt.Token) (interface{}, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}

		return nil, ErrInvalidToken
	}

	if claims.Subject == "" || claims.TenantID == "" {
		return nil, ErrInvalidToken
	}

	return &types.Principal{UserID: claims.Subject, TenantID: claims.TenantID}, nil
}

// MintRefresh creates an opaque refresh token and records it in the store
// with the configured TTL. The stored value carries an absolute expiry so
// redemption stays correct even if the store's own TTL drifts.
func (s *Service) MintRefresh(ctx context.Context, userID, tenantID string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "tokens.Service.MintRefresh")
	defer span.End()

	jti := uuid.NewString()
	expiry := s.now().Add(s.refreshTTL).Unix()
	value := fmt.Sprintf("%s:%s:%d", userID, tenantID, expiry)

	if err := s.store.SetEx(ctx, refreshKeyPrefix+jti, value, s.refreshTTL); err != nil {
		return "", fmt.Errorf("failed to store refresh token: %w", err)
	}

	return jti, nil
}

// RefreshValid reports whether the refresh token currently exists in the
// store. Existence is the sole criterion, expiry is the store's job.
func (s *Service) RefreshValid(ctx context.Context, token string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "tokens.Service.RefreshValid")
	defer span.End()

	return s.store.Exists(ctx, refreshKeyPrefix+token)
}

// RedeemRefresh resolves a refresh token to its principal. Unknown,
// revoked and expired tokens all come back as ErrInvalidToken so callers
// leak nothing about which case applied.
func (s *Service) RedeemRefresh(ctx context.Context, token string) (*types.Principal, error) {
	ctx, span := s.tracer.Start(ctx, "tokens.Service.RedeemRefresh")
	defer span.End()

	value, err := s.store.Get(ctx, refreshKeyPrefix+token)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return nil, ErrInvalidToken
		}

		return nil, err
	}

	userID, tenantID, expiry, err := parseRefreshValue(value)
	if err != nil {
		return nil, ErrInvalidToken
	}

	if s.now().Unix() >= expiry {
		// Defensive check in case the store outlived the TTL.
		_ = s.store.Delete(ctx, refreshKeyPrefix+token)
		return nil, ErrInvalidToken
	}

	return &types.Principal{UserID: userID, TenantID: tenantID}, nil
}

// RevokeRefresh deletes the refresh token from the store. Revoking a
// token that no longer exists is not an error.
func (s *Service) RevokeRefresh(ctx context.Context, token string) error {
	ctx, span := s.tracer.Start(ctx, "tokens.Service.RevokeRefresh")
	defer span.End()

	if err := s.store.Delete(ctx, refreshKeyPrefix+token); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	s.logger.Security().TokenRevoked(token)

	return nil
}

func parseRefreshValue(value string) (userID, tenantID string, expiry int64, err error) {
	parts := strings.Split(value, ":")
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" {
		return "", "", 0, fmt.Errorf("malformed refresh token value")
	}

	expiry, err = strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return "", "", 0, fmt.Errorf("malformed refresh token expiry: %w", err)
	}

	return parts[0], parts[1], expiry, nil
}
