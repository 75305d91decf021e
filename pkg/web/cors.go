// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"
	"slices"

	"github.com/go-chi/cors"
)

func middlewareCORS(origins []string) func(http.Handler) http.Handler {
	return cors.Handler(
		cors.Options{
			AllowedOrigins:   origins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
			ExposedHeaders:   []string{"Retry-After", "X-Request-Id"},
			// a wildcard origin cannot be combined with cookies
			AllowCredentials: !slices.Contains(origins, "*"),
			MaxAge:           300,
		},
	)
}
