// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	apptypes "github.com/Miky-dev/GestIA/internal/types"
)

func TestPathID(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		expectedErr error
	}{
		{name: "valid", path: "/items/0190a5b2-7c3e-7d1a-8f00-0123456789ab"},
		{name: "malformed", path: "/items/42", expectedErr: apptypes.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err error

			router := chi.NewRouter()
			router.Get("/items/{id}", func(w http.ResponseWriter, r *http.Request) {
				_, err = PathID(r, "id")
			})
			router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, tt.path, nil))

			if !errors.Is(err, tt.expectedErr) {
				t.Errorf("expected %v, got %v", tt.expectedErr, err)
			}
		})
	}
}

func TestQueryParams(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/?page=3&size=x&from=2026-03-01T00:00:00Z&to=yesterday", nil)

	if page, err := QueryInt(r, "page"); err != nil || page != 3 {
		t.Errorf("expected page 3, got %d (%v)", page, err)
	}
	if _, err := QueryInt(r, "size"); !errors.Is(err, apptypes.ErrInvalidInput) {
		t.Errorf("expected invalid input for size, got %v", err)
	}
	if missing, err := QueryInt(r, "missing"); err != nil || missing != 0 {
		t.Errorf("expected 0 for missing parameter, got %d (%v)", missing, err)
	}
	if from, err := QueryTime(r, "from"); err != nil || from.Day() != 1 {
		t.Errorf("unexpected from %v (%v)", from, err)
	}
	if _, err := QueryTime(r, "to"); !errors.Is(err, apptypes.ErrInvalidInput) {
		t.Errorf("expected invalid input for to, got %v", err)
	}
	if _, err := QueryTime(r, "until"); !errors.Is(err, apptypes.ErrInvalidInput) {
		t.Errorf("expected invalid input for missing until, got %v", err)
	}
}
