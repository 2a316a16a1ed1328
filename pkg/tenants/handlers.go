// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenants

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/canonical/tenant-auth-service/internal/apierror"
	"github.com/canonical/tenant-auth-service/internal/logging"
	"github.com/canonical/tenant-auth-service/internal/monitoring"
	"github.com/canonical/tenant-auth-service/internal/tracing"
)

type createTenantRequest struct {
	Name          string `json:"name" validate:"required"`
	AdminEmail    string `json:"admin_email" validate:"required,email"`
	AdminPassword string `json:"admin_password" validate:"required,min=8"`
}

type createTenantResponse struct {
	TenantID string `json:"tenant_id"`
}

type API struct {
	service  ServiceInterface
	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	return &API{
		service:  service,
		validate: validator.New(),
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/v0/tenants", a.createTenant)
}

// createTenant is deliberately unauthenticated, it is the self-service
// entry point that bootstraps the first admin of a new tenant.
func (a *API) createTenant(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenants.API.createTenant")
	defer span.End()

	var req createTenantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierror.WriteError(w, apierror.Validation("invalid request body"))
		return
	}

	if err := a.validate.Struct(req); err != nil {
		apierror.WriteError(w, apierror.Validation("name, admin_email and admin_password are required"))
		return
	}

	tenant, err := a.service.Provision(ctx, req.Name, req.AdminEmail, req.AdminPassword)
	if err != nil {
		a.logger.Errorf("failed to provision tenant: %v", err)
		apierror.WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(createTenantResponse{TenantID: tenant.ID}); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}
