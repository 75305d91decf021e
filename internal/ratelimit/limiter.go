// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"
)

const keyPrefix = "ratelimit"

// Limiter is a fixed window counter: points consumptions per key in each window.
type Limiter struct {
	limiter *limiter.Limiter

	now func() time.Time
}

var _ LimiterInterface = (*Limiter)(nil)

func (l *Limiter) Consume(ctx context.Context, key string) (*Result, error) {
	state, err := l.limiter.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to consume rate limit point: %w", err)
	}

	return result(state, l.now()), nil
}

func (l *Limiter) Reset(ctx context.Context, key string) error {
	if _, err := l.limiter.Reset(ctx, key); err != nil {
		return fmt.Errorf("failed to reset rate limit: %w", err)
	}
	return nil
}

// result turns the store's view of a key into a Result.
func result(state limiter.Context, now time.Time) *Result {
	r := new(Result)
	r.Allowed = !state.Reached
	r.Remaining = int(state.Remaining)

	if !r.Allowed {
		r.RetryAfter = time.Unix(state.Reset, 0).Sub(now)
		if r.RetryAfter < time.Second {
			r.RetryAfter = time.Second
		}
	}

	return r
}

func newLimiter(store limiter.Store, points int, duration time.Duration) *Limiter {
	l := new(Limiter)
	l.limiter = limiter.New(store, limiter.Rate{Period: duration, Limit: int64(points)})
	l.now = time.Now

	return l
}

// NewMemoryLimiter keeps counters in process. They are lost on restart and
// not shared between instances.
func NewMemoryLimiter(points int, duration time.Duration) *Limiter {
	store := memory.NewStoreWithOptions(limiter.StoreOptions{
		Prefix:          keyPrefix,
		CleanUpInterval: duration,
	})

	return newLimiter(store, points, duration)
}

// NewRedisLimiter shares counters between every instance using the same Redis.
func NewRedisLimiter(client redis.UniversalClient, points int, duration time.Duration) (*Limiter, error) {
	store, err := sredis.NewStoreWithOptions(client, limiter.StoreOptions{
		Prefix:   keyPrefix,
		MaxRetry: 3,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create redis rate limit store: %w", err)
	}

	return newLimiter(store, points, duration), nil
}
