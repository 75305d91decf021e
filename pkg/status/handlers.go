// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/Miky-dev/GestIA/internal/http/types"
	"github.com/Miky-dev/GestIA/internal/logging"
	"github.com/Miky-dev/GestIA/internal/monitoring"
	"github.com/Miky-dev/GestIA/internal/tracing"
	"github.com/Miky-dev/GestIA/internal/version"
)

const pingTimeout = 2 * time.Second

type Status struct {
	Version string `json:"version"`
}

type DeepStatus struct {
	Status
	Dependencies map[string]bool `json:"dependencies"`
}

type API struct {
	dependencies map[string]PingerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(r chi.Router) {
	r.Get("/api/v0/status", a.alive)
	r.Get("/api/v0/status/deep", a.deep)
}

func (a *API) alive(w http.ResponseWriter, r *http.Request) {
	httptypes.WriteJSON(w, http.StatusOK, Status{Version: version.Version})
}

// deep pings every dependency and publishes its availability gauge. Any
// failing dependency turns the reply into a 503.
func (a *API) deep(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "status.API.deep")
	defer span.End()

	resp := DeepStatus{
		Status:       Status{Version: version.Version},
		Dependencies: make(map[string]bool, len(a.dependencies)),
	}

	code := http.StatusOK
	for name, dep := range a.dependencies {
		pctx, cancel := context.WithTimeout(ctx, pingTimeout)
		err := dep.Ping(pctx)
		cancel()

		available := 1.0
		if err != nil {
			a.logger.Errorf("dependency %s unavailable: %v", name, err)
			available = 0
			code = http.StatusServiceUnavailable
		}

		resp.Dependencies[name] = err == nil
		_ = a.monitor.SetDependencyAvailability(map[string]string{"component": name}, available)
	}

	httptypes.WriteJSON(w, code, resp)
}

func NewAPI(dependencies map[string]PingerInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.dependencies = dependencies

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
