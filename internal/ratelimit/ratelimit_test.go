// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/ulule/limiter/v3"
)

func TestMemoryLimiterWindow(t *testing.T) {
	l := NewMemoryLimiter(5, 15*time.Minute)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		r, err := l.Consume(ctx, "login:a@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !r.Allowed {
			t.Fatalf("attempt %d: expected allowed", i)
		}
		if r.Remaining != 5-i {
			t.Errorf("attempt %d: expected %d remaining, got %d", i, 5-i, r.Remaining)
		}
	}

	r, err := l.Consume(ctx, "login:a@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Allowed {
		t.Fatalf("expected sixth attempt to be rejected")
	}
	if r.RetryAfter <= 0 || r.RetryAfter > 15*time.Minute {
		t.Errorf("expected retry after in (0, 15m], got %s", r.RetryAfter)
	}

	other, _ := l.Consume(ctx, "login:b@example.com")
	if !other.Allowed {
		t.Errorf("expected other keys unaffected")
	}
}

func TestMemoryLimiterReset(t *testing.T) {
	l := NewMemoryLimiter(1, time.Minute)
	ctx := context.Background()

	_, _ = l.Consume(ctx, "k")
	if r, _ := l.Consume(ctx, "k"); r.Allowed {
		t.Fatalf("expected second consume rejected")
	}

	if err := l.Reset(ctx, "k"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if r, _ := l.Consume(ctx, "k"); !r.Allowed {
		t.Errorf("expected consume allowed after reset")
	}
}

func TestResult(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		state     limiter.Context
		allowed   bool
		remaining int
		retry     time.Duration
	}{
		{name: "first point", state: limiter.Context{Limit: 5, Remaining: 4, Reset: now.Add(time.Minute).Unix()}, allowed: true, remaining: 4},
		{name: "last point", state: limiter.Context{Limit: 5, Remaining: 0, Reset: now.Add(time.Minute).Unix()}, allowed: true},
		{name: "exhausted", state: limiter.Context{Limit: 5, Reset: now.Add(time.Minute).Unix(), Reached: true}, retry: time.Minute},
		{name: "exhausted at window edge", state: limiter.Context{Limit: 5, Reset: now.Unix(), Reached: true}, retry: time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := result(tt.state, now)
			if r.Allowed != tt.allowed || r.Remaining != tt.remaining || r.RetryAfter != tt.retry {
				t.Errorf("expected {%v %d %s}, got %+v", tt.allowed, tt.remaining, tt.retry, r)
			}
		})
	}
}
