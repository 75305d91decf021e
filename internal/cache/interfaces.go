// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package cache

import (
	"context"
	"errors"
	"time"
)

var ErrCacheMiss = errors.New("cache miss")

// CacheInterface is a byte oriented key value store with per-key expiry.
type CacheInterface interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	// Clear removes every key matching a glob pattern.
	Clear(ctx context.Context, pattern string) error
}

// ViewCacheInterface caches rendered read models per tenant.
type ViewCacheInterface interface {
	Get(ctx context.Context, tenantID, view, key string, dst any) bool
	Set(ctx context.Context, tenantID, view, key string, value any)
	Invalidate(ctx context.Context, tenantID string, views ...string)
}
