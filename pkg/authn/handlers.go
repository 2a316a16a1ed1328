// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authn

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

// TenantHeader carries the tenant the login credential belongs to. It is
// only trusted on the login endpoint, afterwards the tenant comes from the
// token.
const TenantHeader = "X-Tenant-Id"

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
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
	mux.Post("/api/v0/auth/login", a.login)
	mux.Post("/api/v0/auth/refresh", a.refresh)
	mux.Post("/api/v0/auth/logout", a.logout)
}

func (a *API) login(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "authn.API.login")
	defer span.End()

	tenantID := r.Header.Get(TenantHeader)
	if tenantID == "" {
		apierror.WriteError(w, apierror.Validation("missing X-Tenant-Id header"))
		return
	}

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierror.WriteError(w, apierror.Validation("invalid request body"))
		return
	}

	if err := a.validate.Struct(req); err != nil {
		apierror.WriteError(w, apierror.Validation("email and password are required"))
		return
	}

	pair, err := a.service.Login(ctx, tenantID, req.Email, req.Password)
	if err != nil {
		apierror.WriteError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, pair)
}

func (a *API) refresh(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "authn.API.refresh")
	defer span.End()

	var req refreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierror.WriteError(w, apierror.Validation("invalid request body"))
		return
	}

	if err := a.validate.Struct(req); err != nil {
		apierror.WriteError(w, apierror.Validation("refresh_token is required"))
		return
	}

	pair, err := a.service.Refresh(ctx, req.RefreshToken)
	if err != nil {
		apierror.WriteError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, pair)
}

func (a *API) logout(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "authn.API.logout")
	defer span.End()

	var req refreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierror.WriteError(w, apierror.Validation("invalid request body"))
		return
	}

	if err := a.validate.Struct(req); err != nil {
		apierror.WriteError(w, apierror.Validation("refresh_token is required"))
		return
	}

	if err := a.service.Logout(ctx, req.RefreshToken); err != nil {
		apierror.WriteError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (a *API) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}
