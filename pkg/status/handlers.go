// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/tenant-auth-service/internal/logging"
	"github.com/canonical/tenant-auth-service/internal/monitoring"
	"github.com/canonical/tenant-auth-service/internal/tracing"
	"github.com/canonical/tenant-auth-service/internal/version"
)

type statusResponse struct {
	Status   string `json:"status"`
	Postgres string `json:"postgres"`
	Redis    string `json:"redis"`
}

type versionResponse struct {
	Version string `json:"version"`
}

type API struct {
	db PingerInterface
	kv PingerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(db, kv PingerInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	return &API{
		db:      db,
		kv:      kv,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/status", a.status)
	mux.Get("/api/v0/version", a.version)
}

func (a *API) status(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "status.API.status")
	defer span.End()

	resp := statusResponse{Status: "ok", Postgres: "ok", Redis: "ok"}

	if err := a.db.Ping(ctx); err != nil {
		a.logger.Errorf("postgres ping failed: %v", err)
		resp.Status = "degraded"
		resp.Postgres = "unavailable"
	}
	a.setAvailability("postgres", resp.Postgres == "ok")

	if err := a.kv.Ping(ctx); err != nil {
		a.logger.Errorf("redis ping failed: %v", err)
		resp.Status = "degraded"
		resp.Redis = "unavailable"
	}
	a.setAvailability("redis", resp.Redis == "ok")

	code := http.StatusOK
	if resp.Status != "ok" {
		code = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}

func (a *API) version(w http.ResponseWriter, r *http.Request) {
	_, span := a.tracer.Start(r.Context(), "status.API.version")
	defer span.End()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(versionResponse{Version: version.Version}); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}

func (a *API) setAvailability(component string, up bool) {
	value := 0.0
	if up {
		value = 1.0
	}

	if err := a.monitor.SetDependencyAvailability(map[string]string{"component": component}, value); err != nil {
		a.logger.Errorf("failed to set availability metric: %v", err)
	}
}
