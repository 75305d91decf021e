// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestErrorMatching(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
	}{
		{name: "validation", err: NewValidationError("email", "is required"), target: ErrInvalidInput},
		{name: "wrapped validation", err: fmt.Errorf("create: %w", NewValidationError("email", "is required")), target: ErrInvalidInput},
		{name: "rate limit", err: &RateLimitError{RetryAfter: time.Minute}, target: ErrRateLimited},
		{name: "conflict", err: &ConflictError{Code: CodeEmailTaken, Message: "email already in use"}, target: ErrConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.target) {
				t.Errorf("expected %v to match %v", tt.err, tt.target)
			}
		})
	}
}

func TestRateLimitErrorRetryAfterSeconds(t *testing.T) {
	tests := []struct {
		retryAfter time.Duration
		expected   int
	}{
		{retryAfter: 0, expected: 1},
		{retryAfter: 1500 * time.Millisecond, expected: 2},
		{retryAfter: 15 * time.Minute, expected: 900},
	}

	for _, tt := range tests {
		e := &RateLimitError{RetryAfter: tt.retryAfter}
		if got := e.RetryAfterSeconds(); got != tt.expected {
			t.Errorf("retry after %v: expected %d, got %d", tt.retryAfter, tt.expected, got)
		}
	}
}

func TestValidationErrorMessageIsStable(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{"b": "second", "a": "first"}}
	if err.Error() != "invalid input: a: first; b: second" {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestNormalizeEmail(t *testing.T) {
	if got := NormalizeEmail("  Mario.Rossi@Example.COM "); got != "mario.rossi@example.com" {
		t.Errorf("unexpected normalized email %q", got)
	}
}

func TestRoleValid(t *testing.T) {
	if !RoleAdmin.Valid() || !RoleSecretary.Valid() {
		t.Errorf("expected known roles to be valid")
	}
	if Role("OWNER").Valid() {
		t.Errorf("expected unknown role to be invalid")
	}
}
