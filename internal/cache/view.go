// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/Miky-dev/GestIA/internal/logging"
	"github.com/Miky-dev/GestIA/internal/tracing"
)

// Views cached per tenant.
const (
	ViewCustomers = "customers"
	ViewCalendar  = "calendar"
	ViewInbox     = "inbox"
	ViewEmployees = "employees"
	ViewDashboard = "dashboard"
)

// ViewCache stores JSON encoded read models under view:<tenant>:<view>:<key>.
// It never fails a request: backend errors are logged and treated as misses.
//
// A Set that follows a miss is dropped when the view was invalidated in
// between, so a read racing a write cannot repopulate the old state.
// Invalidations issued by other instances are not seen here; there the
// staleness is bounded by the ttl.
type ViewCache struct {
	backend CacheInterface
	ttl     time.Duration

	mu          sync.Mutex
	generations map[string]uint64
	misses      map[string]miss
	now         func() time.Time

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

var _ ViewCacheInterface = (*ViewCache)(nil)

// miss remembers the view generation seen by a read that went to storage.
type miss struct {
	generation uint64
	at         time.Time
}

func viewKey(tenantID, view, key string) string {
	return strings.Join([]string{"view", tenantID, view, key}, ":")
}

func scopeKey(tenantID, view string) string {
	return tenantID + ":" + view
}

// recordMiss keeps the oldest outstanding miss per key. Entries older than the
// ttl belong to reads that never stored their result and are replaced.
func (c *ViewCache) recordMiss(tenantID, view, key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if m, ok := c.misses[key]; ok && now.Sub(m.at) < c.ttl {
		return
	}

	c.misses[key] = miss{generation: c.generations[scopeKey(tenantID, view)], at: now}
}

// fresh reports whether a value loaded after the last miss on key may be stored.
func (c *ViewCache) fresh(tenantID, view, key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	m, ok := c.misses[key]
	if !ok {
		return true
	}
	delete(c.misses, key)

	return m.generation == c.generations[scopeKey(tenantID, view)]
}

func (c *ViewCache) Get(ctx context.Context, tenantID, view, key string, dst any) bool {
	ctx, span := c.tracer.Start(ctx, "cache.ViewCache.Get")
	defer span.End()

	full := viewKey(tenantID, view, key)

	raw, err := c.backend.Get(ctx, full)
	if err != nil {
		if !errors.Is(err, ErrCacheMiss) {
			c.logger.Warnf("view cache read failed for %s: %v", view, err)
		}
		c.recordMiss(tenantID, view, full)
		return false
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		c.logger.Warnf("view cache entry for %s is corrupt: %v", view, err)
		c.recordMiss(tenantID, view, full)
		return false
	}

	return true
}

func (c *ViewCache) Set(ctx context.Context, tenantID, view, key string, value any) {
	ctx, span := c.tracer.Start(ctx, "cache.ViewCache.Set")
	defer span.End()

	full := viewKey(tenantID, view, key)

	if !c.fresh(tenantID, view, full) {
		c.logger.Debugf("%s view invalidated while loading, not cached", view)
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		c.logger.Warnf("failed to encode %s view: %v", view, err)
		return
	}

	if err := c.backend.Set(ctx, full, raw, c.ttl); err != nil {
		c.logger.Warnf("view cache write failed for %s: %v", view, err)
	}
}

// Invalidate drops every cached entry of the given views for one tenant.
func (c *ViewCache) Invalidate(ctx context.Context, tenantID string, views ...string) {
	ctx, span := c.tracer.Start(ctx, "cache.ViewCache.Invalidate")
	defer span.End()

	c.mu.Lock()
	for _, view := range views {
		c.generations[scopeKey(tenantID, view)]++
	}
	c.mu.Unlock()

	for _, view := range views {
		if err := c.backend.Clear(ctx, viewKey(tenantID, view, "*")); err != nil {
			c.logger.Errorf("failed to invalidate %s view for tenant %s: %v", view, tenantID, err)
		}
	}
}

func NewViewCache(backend CacheInterface, ttl time.Duration, tracer tracing.TracingInterface, logger logging.LoggerInterface) *ViewCache {
	c := new(ViewCache)
	c.backend = backend
	c.ttl = ttl
	c.generations = make(map[string]uint64)
	c.misses = make(map[string]miss)
	c.now = time.Now

	c.tracer = tracer
	c.logger = logger

	return c
}
