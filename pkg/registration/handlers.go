// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package registration

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/Miky-dev/GestIA/internal/http/types"
	"github.com/Miky-dev/GestIA/internal/logging"
	"github.com/Miky-dev/GestIA/internal/types"
	"github.com/Miky-dev/GestIA/pkg/authentication"
)

type API struct {
	service ServiceInterface
	appURL  string

	logger logging.LoggerInterface
}

func (a *API) RegisterEndpoints(r chi.Router, authenticate func(http.Handler) http.Handler) {
	r.Post("/register", a.register)
	r.Post("/verify-email", a.verifyEmail)
	r.Get("/verify-email", a.verifyEmailLink)
	r.With(authenticate).Post("/verify-email/resend", a.resend)
}

func (a *API) register(w http.ResponseWriter, r *http.Request) {
	req := new(RegisterRequest)
	if err := httptypes.Decode(w, r, req); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	result, err := a.service.Register(r.Context(), req)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusCreated, result, "registration completed, check your inbox to verify the email address")
}

func (a *API) verifyEmail(w http.ResponseWriter, r *http.Request) {
	req := new(VerifyEmailRequest)
	if err := httptypes.Decode(w, r, req); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	if err := a.service.VerifyEmail(r.Context(), req.Token); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusOK, nil, "email verified")
}

// verifyEmailLink is the target of the mailed link; it always redirects to
// the login page with the outcome in the query string.
func (a *API) verifyEmailLink(w http.ResponseWriter, r *http.Request) {
	err := a.service.VerifyEmail(r.Context(), r.URL.Query().Get("token"))

	q := url.Values{}
	switch {
	case err == nil:
		q.Set("verified", "1")
	case errors.Is(err, types.ErrInvalidToken):
		q.Set("error", "invalid")
	case errors.Is(err, types.ErrExpiredToken):
		q.Set("error", "expired")
	case errors.Is(err, types.ErrAlreadyVerified):
		q.Set("error", "already")
	default:
		a.logger.Errorf("email verification failed: %v", err)
		q.Set("error", "server")
	}

	http.Redirect(w, r, strings.TrimRight(a.appURL, "/")+"/login?"+q.Encode(), http.StatusSeeOther)
}

func (a *API) resend(w http.ResponseWriter, r *http.Request) {
	if err := a.service.ResendVerification(r.Context(), authentication.SessionFromContext(r.Context())); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusAccepted, nil, "verification email sent")
}

func NewAPI(service ServiceInterface, appURL string, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		appURL:  appURL,
		logger:  logger,
	}
}
