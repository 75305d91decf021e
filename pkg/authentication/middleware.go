// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"net/http"
	"strings"

	"github.com/Miky-dev/GestIA/internal/logging"
	"github.com/Miky-dev/GestIA/internal/monitoring"
	"github.com/Miky-dev/GestIA/internal/tracing"
	"github.com/Miky-dev/GestIA/internal/types"

	httptypes "github.com/Miky-dev/GestIA/internal/http/types"
)

type Middleware struct {
	verifier   TokenVerifierInterface
	sessions   ServiceInterface
	cookieName string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Authenticate resolves the caller from a bearer token or the session cookie
// and rejects the request when neither yields a live session.
func (m *Middleware) Authenticate() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "authentication.Middleware.Authenticate")
			defer span.End()

			token, found := m.getToken(r)
			if !found {
				httptypes.WriteError(w, types.ErrUnauthorized, m.logger)
				return
			}

			claims, err := m.verifier.VerifyToken(ctx, token)
			if err != nil {
				m.logger.Debugf("session token verification failed: %v", err)
				httptypes.WriteError(w, types.ErrUnauthorized, m.logger)
				return
			}

			session, err := m.sessions.ResolveSession(ctx, claims)
			if err != nil {
				httptypes.WriteError(w, err, m.logger)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSession(ctx, session)))
		})
	}
}

func (m *Middleware) getToken(r *http.Request) (string, bool) {
	if token, found := m.getBearerToken(r.Header); found {
		return token, true
	}

	cookie, err := r.Cookie(m.cookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}

	return cookie.Value, true
}

func (m *Middleware) getBearerToken(headers http.Header) (string, bool) {
	bearer := headers.Get("Authorization")
	if bearer == "" {
		return "", false
	}

	// Only support "Bearer <token>" format (RFC 6750)
	if !strings.HasPrefix(bearer, "Bearer ") {
		return "", false
	}

	token := strings.TrimSpace(strings.TrimPrefix(bearer, "Bearer "))
	return token, token != ""
}

func NewMiddleware(verifier TokenVerifierInterface, sessions ServiceInterface, cookieName string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		verifier:   verifier,
		sessions:   sessions,
		cookieName: cookieName,
		tracer:     tracer,
		monitor:    monitor,
		logger:     logger,
	}
}
