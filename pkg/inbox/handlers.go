// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package inbox

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
	r.Route("/conversations", func(r chi.Router) {
		r.Get("/", a.list)
		r.Post("/", a.start)
		r.Get("/{id}", a.get)
		r.Post("/{id}/messages", a.send)
		r.Put("/{id}/assignee", a.assign)
		r.Put("/{id}/status", a.setStatus)
	})
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	conversations, err := a.service.ListConversations(r.Context(), authentication.SessionFromContext(r.Context()))
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusOK, conversations, "")
}

func (a *API) get(w http.ResponseWriter, r *http.Request) {
	id, err := httptypes.PathID(r, "id")
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	conversation, err := a.service.GetConversation(r.Context(), authentication.SessionFromContext(r.Context()), id)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusOK, conversation, "")
}

func (a *API) start(w http.ResponseWriter, r *http.Request) {
	req := new(StartConversationRequest)
	if err := httptypes.Decode(w, r, req); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	conversation, err := a.service.StartConversation(r.Context(), authentication.SessionFromContext(r.Context()), req)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusCreated, conversation, "conversation started")
}

func (a *API) send(w http.ResponseWriter, r *http.Request) {
	id, err := httptypes.PathID(r, "id")
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	req := new(SendMessageRequest)
	if err := httptypes.Decode(w, r, req); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	message, err := a.service.SendMessage(r.Context(), authentication.SessionFromContext(r.Context()), id, req)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusCreated, message, "message sent")
}

func (a *API) assign(w http.ResponseWriter, r *http.Request) {
	id, err := httptypes.PathID(r, "id")
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	req := new(AssignRequest)
	if err := httptypes.Decode(w, r, req); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	conversation, err := a.service.AssignConversation(r.Context(), authentication.SessionFromContext(r.Context()), id, req)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusOK, conversation, "")
}

func (a *API) setStatus(w http.ResponseWriter, r *http.Request) {
	id, err := httptypes.PathID(r, "id")
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	req := new(StatusRequest)
	if err := httptypes.Decode(w, r, req); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	conversation, err := a.service.SetConversationStatus(r.Context(), authentication.SessionFromContext(r.Context()), id, req)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusOK, conversation, "")
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		logger:  logger,
	}
}
