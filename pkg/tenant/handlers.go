// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/Miky-dev/GestIA/internal/http/types"
	"github.com/Miky-dev/GestIA/internal/logging"
	"github.com/Miky-dev/GestIA/internal/monitoring"
	"github.com/Miky-dev/GestIA/internal/tracing"
	"github.com/Miky-dev/GestIA/pkg/authentication"
)

type Handler struct {
	service ServiceInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewHandler(
	service ServiceInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Handler {
	return &Handler{
		service: service,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (h *Handler) RegisterEndpoints(r chi.Router) {
	r.Get("/company", h.GetCompany)
	r.Put("/company", h.UpdateCompany)
}

func (h *Handler) GetCompany(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "tenant.Handler.GetCompany")
	defer span.End()

	company, err := h.service.GetCompany(ctx, authentication.SessionFromContext(r.Context()))
	if err != nil {
		httptypes.WriteError(w, err, h.logger)
		return
	}

	httptypes.WriteData(w, http.StatusOK, company, "")
}

func (h *Handler) UpdateCompany(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "tenant.Handler.UpdateCompany")
	defer span.End()

	req := new(UpdateCompanyRequest)
	if err := httptypes.Decode(w, r, req); err != nil {
		httptypes.WriteError(w, err, h.logger)
		return
	}

	company, err := h.service.UpdateCompany(ctx, authentication.SessionFromContext(r.Context()), req)
	if err != nil {
		httptypes.WriteError(w, err, h.logger)
		return
	}

	httptypes.WriteData(w, http.StatusOK, company, "company updated")
}
