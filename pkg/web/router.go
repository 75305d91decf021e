// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/Miky-dev/GestIA/internal/logging"
	"github.com/Miky-dev/GestIA/internal/monitoring"
	"github.com/Miky-dev/GestIA/internal/tracing"
	"github.com/Miky-dev/GestIA/pkg/metrics"
	"github.com/Miky-dev/GestIA/pkg/status"
)

const apiPrefix = "/api/v0"

// APIInterface is a domain API mounted behind the session guard.
type APIInterface interface {
	RegisterEndpoints(chi.Router)
}

// PublicAPIInterface is an API reachable without a session that guards
// selected routes itself.
type PublicAPIInterface interface {
	RegisterEndpoints(chi.Router, func(http.Handler) http.Handler)
}

type RouterConfig struct {
	CORSAllowedOrigins []string
	Authenticate       func(http.Handler) http.Handler
	Public             []PublicAPIInterface
	Protected          []APIInterface
	Dependencies       map[string]status.PingerInterface
}

func NewRouter(
	cfg RouterConfig,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		middleware.Recoverer,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS(cfg.CORSAllowedOrigins),
	)

	router.Use(middlewares...)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(cfg.Dependencies, tracer, monitor, logger).RegisterEndpoints(router)

	router.Route(apiPrefix, func(r chi.Router) {
		for _, api := range cfg.Public {
			api.RegisterEndpoints(r, cfg.Authenticate)
		}

		r.Group(func(r chi.Router) {
			r.Use(cfg.Authenticate)
			for _, api := range cfg.Protected {
				api.RegisterEndpoints(r)
			}
		})
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
