// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	apptypes "github.com/Miky-dev/GestIA/internal/types"
)

// PathID returns the uuid path parameter name. A malformed id can never
// identify a record, so it is reported as not found.
func PathID(r *http.Request, name string) (string, error) {
	id := chi.URLParam(r, name)
	if err := uuid.Validate(id); err != nil {
		return "", apptypes.ErrNotFound
	}
	return id, nil
}

// QueryInt parses an optional integer query parameter, 0 when absent.
func QueryInt(r *http.Request, name string) (int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}

	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apptypes.NewValidationError(name, "must be an integer")
	}
	return v, nil
}

// QueryTime parses a required RFC 3339 query parameter.
func QueryTime(r *http.Request, name string) (time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return time.Time{}, apptypes.NewValidationError(name, "is required")
	}

	v, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, apptypes.NewValidationError(name, "must be an RFC 3339 timestamp")
	}
	return v, nil
}
