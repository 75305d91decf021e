// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/Miky-dev/GestIA/internal/logging"
	"github.com/Miky-dev/GestIA/internal/tracing"
)

//go:generate mockgen -build_flags=--mod=mod -package status -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go

type pinger struct {
	err error
}

func (p pinger) Ping(context.Context) error {
	return p.err
}

func TestAPI_Deep(t *testing.T) {
	tests := []struct {
		name           string
		db             pinger
		expectedStatus int
		expectedValue  float64
	}{
		{name: "database up", expectedStatus: http.StatusOK, expectedValue: 1},
		{name: "database down", db: pinger{err: errors.New("refused")}, expectedStatus: http.StatusServiceUnavailable, expectedValue: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockMonitor := NewMockMonitorInterface(ctrl)
			mockMonitor.EXPECT().SetDependencyAvailability(map[string]string{"component": "database"}, tt.expectedValue).Return(nil)

			router := chi.NewRouter()
			NewAPI(map[string]PingerInterface{"database": tt.db}, tracing.NewNoopTracer(), mockMonitor, logging.NewNoopLogger()).RegisterEndpoints(router)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v0/status/deep", nil))

			if rec.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d", tt.expectedStatus, rec.Code)
			}

			var resp DeepStatus
			if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp.Dependencies["database"] != (tt.db.err == nil) {
				t.Errorf("unexpected dependency report %v", resp.Dependencies)
			}
		})
	}
}

func TestAPI_Alive(t *testing.T) {
	router := chi.NewRouter()
	NewAPI(nil, tracing.NewNoopTracer(), nil, logging.NewNoopLogger()).RegisterEndpoints(router)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v0/status", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
}
