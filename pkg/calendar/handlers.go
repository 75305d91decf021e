// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package calendar

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/Miky-dev/GestIA/internal/http/types"
	"github.com/Miky-dev/GestIA/internal/logging"
	"github.com/Miky-dev/GestIA/pkg/authentication"
)

type API struct {
	service ServiceInterface

	logger logging.LoggerInterface
}

func (a *API) RegisterEndpoints(r chi.Router) {
	r.Get("/appointments", a.list)
	r.Post("/appointments", a.create)
	r.Put("/appointments/{id}", a.update)
	r.Patch("/appointments/{id}/reschedule", a.reschedule)
	r.Delete("/appointments/{id}", a.delete)
	r.Get("/customers/{id}/appointments", a.listByCustomer)
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	from, err := httptypes.QueryTime(r, "from")
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}
	to, err := httptypes.QueryTime(r, "to")
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	appointments, err := a.service.ListAppointments(r.Context(), authentication.SessionFromContext(r.Context()), from, to)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusOK, appointments, "")
}

func (a *API) listByCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, err := httptypes.PathID(r, "id")
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	appointments, err := a.service.ListCustomerAppointments(r.Context(), authentication.SessionFromContext(r.Context()), customerID)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusOK, appointments, "")
}

func (a *API) create(w http.ResponseWriter, r *http.Request) {
	req := new(AppointmentRequest)
	if err := httptypes.Decode(w, r, req); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	appointment, err := a.service.CreateAppointment(r.Context(), authentication.SessionFromContext(r.Context()), req)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusCreated, appointment, "appointment created")
}

func (a *API) update(w http.ResponseWriter, r *http.Request) {
	id, err := httptypes.PathID(r, "id")
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	req := new(AppointmentRequest)
	if err := httptypes.Decode(w, r, req); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	appointment, err := a.service.UpdateAppointment(r.Context(), authentication.SessionFromContext(r.Context()), id, req)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusOK, appointment, "appointment updated")
}

func (a *API) reschedule(w http.ResponseWriter, r *http.Request) {
	id, err := httptypes.PathID(r, "id")
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	req := new(RescheduleRequest)
	if err := httptypes.Decode(w, r, req); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	appointment, err := a.service.RescheduleAppointment(r.Context(), authentication.SessionFromContext(r.Context()), id, req)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusOK, appointment, "appointment rescheduled")
}

func (a *API) delete(w http.ResponseWriter, r *http.Request) {
	id, err := httptypes.PathID(r, "id")
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	if err := a.service.DeleteAppointment(r.Context(), authentication.SessionFromContext(r.Context()), id); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		logger:  logger,
	}
}
