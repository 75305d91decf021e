// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package employees

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
	r.Get("/employees", a.list)
	r.Post("/employees", a.create)
	r.Put("/employees/{id}", a.update)
	r.Post("/employees/{id}/toggle-status", a.toggleStatus)
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	employees, err := a.service.ListEmployees(r.Context(), authentication.SessionFromContext(r.Context()))
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusOK, employees, "")
}

func (a *API) create(w http.ResponseWriter, r *http.Request) {
	req := new(CreateEmployeeRequest)
	if err := httptypes.Decode(w, r, req); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	employee, err := a.service.CreateEmployee(r.Context(), authentication.SessionFromContext(r.Context()), req)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusCreated, employee, "employee created")
}

func (a *API) update(w http.ResponseWriter, r *http.Request) {
	id, err := httptypes.PathID(r, "id")
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	req := new(UpdateEmployeeRequest)
	if err := httptypes.Decode(w, r, req); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	employee, err := a.service.UpdateEmployee(r.Context(), authentication.SessionFromContext(r.Context()), id, req)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusOK, employee, "employee updated")
}

func (a *API) toggleStatus(w http.ResponseWriter, r *http.Request) {
	id, err := httptypes.PathID(r, "id")
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	employee, err := a.service.ToggleEmployeeStatus(r.Context(), authentication.SessionFromContext(r.Context()), id)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	msg := "employee deactivated"
	if employee.Active {
		msg = "employee activated"
	}

	httptypes.WriteData(w, http.StatusOK, employee, msg)
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		logger:  logger,
	}
}
