// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package billing

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/tenant-auth-service/internal/apierror"
	"github.com/canonical/tenant-auth-service/internal/logging"
	"github.com/canonical/tenant-auth-service/internal/monitoring"
	"github.com/canonical/tenant-auth-service/internal/tracing"
	"github.com/canonical/tenant-auth-service/pkg/authn"
)

// SignatureHeader carries the hex encoded HMAC of the webhook payload.
const SignatureHeader = "X-Webhook-Signature"

// Webhook bodies are small JSON events, anything past this is suspect.
const maxWebhookBody = 1 << 20

type checkoutResponse struct {
	URL string `json:"url"`
}

type webhookEvent struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

type API struct {
	service ServiceInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// RegisterEndpoints mounts the checkout route on an already authenticated
// router group.
func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Post("/api/v0/billing/checkout", a.createCheckoutSession)
}

// RegisterWebhookEndpoints mounts the provider-facing webhook. It must
// stay outside the authenticated group, the provider has no bearer token.
func (a *API) RegisterWebhookEndpoints(mux *chi.Mux) {
	mux.Post("/webhooks/billing", a.handleWebhook)
}

func (a *API) createCheckoutSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "billing.API.createCheckoutSession")
	defer span.End()

	principal, ok := authn.PrincipalFromContext(ctx)
	if !ok {
		apierror.WriteError(w, apierror.ErrUnauthenticated)
		return
	}

	url, err := a.service.CreateCheckoutSession(ctx, principal.UserID, principal.TenantID)
	if err != nil {
		apierror.WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(checkoutResponse{URL: url}); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}

func (a *API) handleWebhook(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "billing.API.handleWebhook")
	defer span.End()

	payload, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBody))
	if err != nil {
		apierror.WriteError(w, apierror.Validation("failed to read request body"))
		return
	}

	if a.service.SignatureRequired() {
		if !a.service.VerifySignature(payload, r.Header.Get(SignatureHeader)) {
			apierror.WriteError(w, apierror.ErrUnauthenticated)
			return
		}
	} else {
		a.logger.Warnf("accepting unverified webhook event, no webhook secret configured")
	}

	var event webhookEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		apierror.WriteError(w, apierror.Validation("invalid webhook payload"))
		return
	}

	if err := a.service.HandleEvent(ctx, event.Type, event.Data); err != nil {
		a.logger.Errorf("failed to handle webhook event: %v", err)
		apierror.WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]bool{"received": true}); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}
