// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package customers

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
	r.Get("/customers", a.list)
	r.Post("/customers", a.create)
	r.Get("/customers/{id}", a.get)
	r.Put("/customers/{id}", a.update)
	r.Delete("/customers/{id}", a.delete)
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	page, err := httptypes.QueryInt(r, "page")
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}
	size, err := httptypes.QueryInt(r, "size")
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	result, err := a.service.ListCustomers(r.Context(), authentication.SessionFromContext(r.Context()), page, size)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, httptypes.Response{
		Data:   result.Customers,
		Status: http.StatusOK,
		Meta:   &httptypes.Meta{Page: result.Page, Size: result.Size, Total: result.Total},
	})
}

func (a *API) get(w http.ResponseWriter, r *http.Request) {
	id, err := httptypes.PathID(r, "id")
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	customer, err := a.service.GetCustomer(r.Context(), authentication.SessionFromContext(r.Context()), id)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusOK, customer, "")
}

func (a *API) create(w http.ResponseWriter, r *http.Request) {
	req := new(CustomerRequest)
	if err := httptypes.Decode(w, r, req); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	customer, err := a.service.CreateCustomer(r.Context(), authentication.SessionFromContext(r.Context()), req)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusCreated, customer, "customer created")
}

func (a *API) update(w http.ResponseWriter, r *http.Request) {
	id, err := httptypes.PathID(r, "id")
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	req := new(CustomerRequest)
	if err := httptypes.Decode(w, r, req); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	customer, err := a.service.UpdateCustomer(r.Context(), authentication.SessionFromContext(r.Context()), id, req)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusOK, customer, "customer updated")
}

func (a *API) delete(w http.ResponseWriter, r *http.Request) {
	id, err := httptypes.PathID(r, "id")
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	if err := a.service.DeleteCustomer(r.Context(), authentication.SessionFromContext(r.Context()), id); err != nil {
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
