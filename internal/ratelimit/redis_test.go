// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package ratelimit

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

func TestRedisLimiter(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set, skipping redis limiter test")
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	defer client.Close()

	l, err := NewRedisLimiter(client, 2, time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx := context.Background()
	key := "test:" + uuid.NewString()
	defer func() { _ = l.Reset(ctx, key) }()

	for i := 0; i < 2; i++ {
		r, err := l.Consume(ctx, key)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !r.Allowed {
			t.Fatalf("attempt %d: expected allowed", i+1)
		}
	}

	r, err := l.Consume(ctx, key)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Allowed || r.RetryAfter <= 0 || r.RetryAfter > time.Minute {
		t.Errorf("expected rejection with retry in (0, 1m], got %+v", r)
	}

	if err := l.Reset(ctx, key); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r, _ := l.Consume(ctx, key); !r.Allowed {
		t.Errorf("expected allowed after reset")
	}
}
