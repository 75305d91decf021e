// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package dashboard

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
	r.Get("/dashboard", a.summary)
}

func (a *API) summary(w http.ResponseWriter, r *http.Request) {
	summary, err := a.service.Summary(r.Context(), authentication.SessionFromContext(r.Context()))
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusOK, summary, "")
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		logger:  logger,
	}
}
