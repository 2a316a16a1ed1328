// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notes

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/canonical/tenant-auth-service/internal/apierror"
	"github.com/canonical/tenant-auth-service/internal/logging"
	"github.com/canonical/tenant-auth-service/internal/monitoring"
	"github.com/canonical/tenant-auth-service/internal/tracing"
	"github.com/canonical/tenant-auth-service/pkg/authn"
)

type createNoteRequest struct {
	Title string `json:"title" validate:"required"`
	Body  string `json:"body"`
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

// RegisterEndpoints mounts the note routes on an already authenticated
// router group.
func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Post("/api/v0/notes", a.createNote)
	mux.Get("/api/v0/notes", a.listNotes)
}

func (a *API) createNote(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "notes.API.createNote")
	defer span.End()

	principal, ok := authn.PrincipalFromContext(ctx)
	if !ok {
		apierror.WriteError(w, apierror.ErrUnauthenticated)
		return
	}

	var req createNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierror.WriteError(w, apierror.Validation("invalid request body"))
		return
	}

	if err := a.validate.Struct(req); err != nil {
		apierror.WriteError(w, apierror.Validation("title is required"))
		return
	}

	note, err := a.service.CreateNote(ctx, principal.TenantID, req.Title, req.Body)
	if err != nil {
		a.logger.Errorf("failed to create note: %v", err)
		apierror.WriteError(w, err)
		return
	}

	a.writeJSON(w, http.StatusCreated, note)
}

func (a *API) listNotes(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "notes.API.listNotes")
	defer span.End()

	principal, ok := authn.PrincipalFromContext(ctx)
	if !ok {
		apierror.WriteError(w, apierror.ErrUnauthenticated)
		return
	}

	limit, err := queryUint(r, "limit")
	if err != nil {
		apierror.WriteError(w, apierror.Validation("invalid limit"))
		return
	}

	offset, err := queryUint(r, "offset")
	if err != nil {
		apierror.WriteError(w, apierror.Validation("invalid offset"))
		return
	}

	out, err := a.service.ListNotes(ctx, principal.TenantID, limit, offset)
	if err != nil {
		a.logger.Errorf("failed to list notes: %v", err)
		apierror.WriteError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, out)
}

func queryUint(r *http.Request, name string) (uint64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}

	return strconv.ParseUint(raw, 10, 64)
}

func (a *API) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}
