// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package users

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/canonical/tenant-auth-service/internal/apierror"
	"github.com/canonical/tenant-auth-service/internal/logging"
	"github.com/canonical/tenant-auth-service/internal/monitoring"
	"github.com/canonical/tenant-auth-service/internal/tracing"
	"github.com/canonical/tenant-auth-service/internal/types"
	"github.com/canonical/tenant-auth-service/pkg/authn"
)

type createUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role"`
}

// userResponse never carries the password hash.
type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserResponse(u *types.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
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

// RegisterEndpoints mounts the user routes on an already authenticated
// router group. The admin gate is applied by the caller.
func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Post("/api/v0/users", a.createUser)
	mux.Get("/api/v0/users", a.listUsers)
}

func (a *API) createUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "users.API.createUser")
	defer span.End()

	principal, ok := authn.PrincipalFromContext(ctx)
	if !ok {
		apierror.WriteError(w, apierror.ErrUnauthenticated)
		return
	}

	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierror.WriteError(w, apierror.Validation("invalid request body"))
		return
	}

	if err := a.validate.Struct(req); err != nil {
		apierror.WriteError(w, apierror.Validation("email and password are required"))
		return
	}

	role := types.Role(req.Role)
	if req.Role == "" {
		role = types.RoleUser
	}

	user, err := a.service.CreateUser(ctx, principal.TenantID, req.Email, req.Password, role)
	if err != nil {
		apierror.WriteError(w, err)
		return
	}

	a.writeJSON(w, http.StatusCreated, toUserResponse(user))
}

func (a *API) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "users.API.listUsers")
	defer span.End()

	principal, ok := authn.PrincipalFromContext(ctx)
	if !ok {
		apierror.WriteError(w, apierror.ErrUnauthenticated)
		return
	}

	users, err := a.service.ListUsers(ctx, principal.TenantID)
	if err != nil {
		a.logger.Errorf("failed to list users: %v", err)
		apierror.WriteError(w, err)
		return
	}

	out := make([]userResponse, len(users))
	for i, u := range users {
		out[i] = toUserResponse(u)
	}

	a.writeJSON(w, http.StatusOK, out)
}

func (a *API) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}
