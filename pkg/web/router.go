// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"
	"time"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/canonical/tenant-auth-service/internal/db"
	"github.com/canonical/tenant-auth-service/internal/kv"
	"github.com/canonical/tenant-auth-service/internal/logging"
	"github.com/canonical/tenant-auth-service/internal/mail"
	"github.com/canonical/tenant-auth-service/internal/monitoring"
	"github.com/canonical/tenant-auth-service/internal/payments"
	"github.com/canonical/tenant-auth-service/internal/storage"
	"github.com/canonical/tenant-auth-service/internal/tracing"
	"github.com/canonical/tenant-auth-service/internal/types"
	"github.com/canonical/tenant-auth-service/pkg/authn"
	"github.com/canonical/tenant-auth-service/pkg/billing"
	"github.com/canonical/tenant-auth-service/pkg/metrics"
	"github.com/canonical/tenant-auth-service/pkg/notes"
	"github.com/canonical/tenant-auth-service/pkg/ratelimit"
	"github.com/canonical/tenant-auth-service/pkg/status"
	"github.com/canonical/tenant-auth-service/pkg/tenants"
	"github.com/canonical/tenant-auth-service/pkg/tokens"
	"github.com/canonical/tenant-auth-service/pkg/users"
)

// Config carries the token and rate limit settings the router needs to
// assemble the services.
type Config struct {
	JWTSecret       []byte
	AccessTTL       time.Duration
	RefreshTTL      time.Duration
	LoginRateLimit  int64
	LoginRateWindow time.Duration
	WebhookSecret   []byte
}

func NewRouter(
	cfg Config,
	store storage.StorageInterface,
	dbClient db.DBClientInterface,
	kvClient kv.KVInterface,
	paymentsClient payments.ClientInterface,
	mailClient mail.ClientInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"Authorization", "Content-Type", authn.TenantHeader},
		}),
	)

	router.Use(middlewares...)

	tokenService := tokens.NewService(
		tokens.Config{Secret: cfg.JWTSecret, AccessTTL: cfg.AccessTTL, RefreshTTL: cfg.RefreshTTL},
		kvClient, tracer, monitor, logger,
	)
	loginLimiter := ratelimit.NewLimiter(kvClient, cfg.LoginRateLimit, cfg.LoginRateWindow, tracer, monitor, logger)

	authnService := authn.NewService(store, tokenService, loginLimiter, dbClient, tracer, monitor, logger)
	authnMiddleware := authn.NewMiddleware(tokenService, store, dbClient, tracer, monitor, logger)

	tenantsService := tenants.NewService(store, dbClient, paymentsClient, mailClient, tracer, monitor, logger)
	usersService := users.NewService(store, dbClient, tracer, monitor, logger)
	notesService := notes.NewService(store, dbClient, tracer, monitor, logger)
	billingService := billing.NewService(paymentsClient, cfg.WebhookSecret, tracer, monitor, logger)
	billingAPI := billing.NewAPI(billingService, tracer, monitor, logger)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(dbClient, kvClient, tracer, monitor, logger).RegisterEndpoints(router)

	// Public surface: login, refresh, logout, tenant self-service signup
	// and the provider webhook.
	authn.NewAPI(authnService, tracer, monitor, logger).RegisterEndpoints(router)
	tenants.NewAPI(tenantsService, tracer, monitor, logger).RegisterEndpoints(router)
	billingAPI.RegisterWebhookEndpoints(router)

	// Everything below requires a valid access token.
	router.Group(func(r chi.Router) {
		r.Use(authnMiddleware.Authenticate())

		notes.NewAPI(notesService, tracer, monitor, logger).RegisterEndpoints(r)
		billingAPI.RegisterEndpoints(r)

		// User management is admin only.
		r.Group(func(r chi.Router) {
			r.Use(authnMiddleware.RequireRoles(types.RoleAdmin))
			users.NewAPI(usersService, tracer, monitor, logger).RegisterEndpoints(r)
		})
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
