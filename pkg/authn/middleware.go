// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authn

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"strings"

	"github.com/canonical/tenant-auth-service/internal/apierror"
	"github.com/canonical/tenant-auth-service/internal/logging"
	"github.com/canonical/tenant-auth-service/internal/monitoring"
	"github.com/canonical/tenant-auth-service/internal/storage"
	"github.com/canonical/tenant-auth-service/internal/tracing"
	"github.com/canonical/tenant-auth-service/internal/types"
)

type Middleware struct {
	tokens TokenProviderInterface
	store  StorageInterface
	db     DBClientInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewMiddleware(tokens TokenProviderInterface, store StorageInterface, db DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		tokens:  tokens,
		store:   store,
		db:      db,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// Authenticate validates the bearer token and injects the principal into
// the request context. All failures map to a uniform 401.
func (m *Middleware) Authenticate() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "authn.Middleware.Authenticate")
			defer span.End()

			token, found := m.getBearerToken(r.Header)
			if !found {
				apierror.WriteError(w, apierror.ErrUnauthenticated)
				return
			}

			principal, err := m.tokens.ValidateAccess(ctx, token)
			if err != nil {
				m.logger.Debugf("access token validation failed: %v", err)
				apierror.WriteError(w, apierror.ErrUnauthenticated)
				return
			}

			ctx = WithPrincipal(ctx, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRoles authorizes the authenticated principal against the allowed
// set. The role is read from storage inside a tenant-bound transaction on
// every request so a demotion takes effect before the access token expires.
func (m *Middleware) RequireRoles(roles ...types.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "authn.Middleware.RequireRoles")
			defer span.End()

			principal, ok := PrincipalFromContext(ctx)
			if !ok {
				apierror.WriteError(w, apierror.ErrUnauthenticated)
				return
			}

			var user *types.User
			err := m.db.WithTenantTx(ctx, principal.TenantID, func(ctx context.Context) error {
				var err error
				user, err = m.store.GetUserByID(ctx, principal.UserID)
				return err
			})
			if err != nil {
				if errors.Is(err, storage.ErrNotFound) {
					// The user was deleted after the token was issued.
					apierror.WriteError(w, apierror.ErrUnauthenticated)
					return
				}

				m.logger.Errorf("failed to load user role: %v", err)
				apierror.WriteError(w, err)
				return
			}

			if !slices.Contains(roles, user.Role) {
				apierror.WriteError(w, apierror.ErrForbidden)
				return
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func (m *Middleware) getBearerToken(headers http.Header) (string, bool) {
	bearer := headers.Get("Authorization")
	if bearer == "" {
		return "", false
	}

	// Only support "Bearer <token>" format (RFC 6750)
	if !strings.HasPrefix(bearer, "Bearer ") {
		return "", false
	}

	return strings.TrimPrefix(bearer, "Bearer "), true
}
