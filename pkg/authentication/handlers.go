// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/Miky-dev/GestIA/internal/http/types"
	"github.com/Miky-dev/GestIA/internal/logging"
	"github.com/Miky-dev/GestIA/internal/types"
	"github.com/Miky-dev/GestIA/internal/validation"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// CookieConfig describes the session cookie set on login.
type CookieConfig struct {
	Name   string
	Secure bool
}

type API struct {
	service ServiceInterface
	cookie  CookieConfig

	logger logging.LoggerInterface
}

func (a *API) RegisterEndpoints(r chi.Router, authenticate func(http.Handler) http.Handler) {
	r.Post("/auth/login", a.login)
	r.Post("/auth/logout", a.logout)
	r.With(authenticate).Get("/auth/session", a.session)
}

func (a *API) login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := httptypes.Decode(w, r, &req); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}
	if err := validation.Struct(req); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	result, err := a.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     a.cookie.Name,
		Value:    result.Token,
		Path:     "/",
		Expires:  result.ExpiresAt,
		HttpOnly: true,
		Secure:   a.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	httptypes.WriteData(w, http.StatusOK, result, "logged in")
}

func (a *API) logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     a.cookie.Name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   a.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	httptypes.WriteData(w, http.StatusOK, nil, "logged out")
}

func (a *API) session(w http.ResponseWriter, r *http.Request) {
	session := SessionFromContext(r.Context())
	if session == nil {
		httptypes.WriteError(w, types.ErrUnauthorized, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusOK, session, "")
}

func NewAPI(service ServiceInterface, cookie CookieConfig, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		cookie:  cookie,
		logger:  logger,
	}
}
