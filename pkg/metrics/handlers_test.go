// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/Miky-dev/GestIA/internal/logging"
)

func TestMetricsExposition(t *testing.T) {
	router := chi.NewRouter()
	NewAPI(logging.NewNoopLogger()).RegisterEndpoints(router)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v0/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "go_goroutines") {
		t.Error("expected default go collector metrics")
	}
}
