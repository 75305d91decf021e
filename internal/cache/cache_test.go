// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/Miky-dev/GestIA/internal/logging"
	"github.com/Miky-dev/GestIA/internal/tracing"
)

//go:generate mockgen -build_flags=--mod=mod -package cache -destination ./mock_cache.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package cache -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func TestMemoryCacheExpiry(t *testing.T) {
	c := NewMemoryCache()
	defer c.Close()

	now := time.Now()
	c.now = func() time.Time { return now }

	ctx := context.Background()
	if err := c.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := c.Get(ctx, "k")
	if err != nil || string(got) != "v" {
		t.Fatalf("expected hit, got %q, %v", got, err)
	}

	now = now.Add(time.Minute)
	if _, err := c.Get(ctx, "k"); !errors.Is(err, ErrCacheMiss) {
		t.Errorf("expected miss after expiry, got %v", err)
	}

	c.sweep()
	if len(c.items) != 0 {
		t.Errorf("expected expired entries swept, got %d", len(c.items))
	}
}

func TestMemoryCacheClear(t *testing.T) {
	c := NewMemoryCache()
	defer c.Close()

	ctx := context.Background()
	keys := []string{
		"view:t1:customers:1",
		"view:t1:customers:2",
		"view:t1:dashboard:",
		"view:t2:customers:1",
	}
	for _, k := range keys {
		_ = c.Set(ctx, k, []byte("x"), time.Minute)
	}

	if err := c.Clear(ctx, "view:t1:customers:*"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		key string
		hit bool
	}{
		{key: "view:t1:customers:1", hit: false},
		{key: "view:t1:customers:2", hit: false},
		{key: "view:t1:dashboard:", hit: true},
		{key: "view:t2:customers:1", hit: true},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			_, err := c.Get(ctx, tt.key)
			if hit := err == nil; hit != tt.hit {
				t.Errorf("expected hit=%v, got error %v", tt.hit, err)
			}
		})
	}

	if err := c.Clear(ctx, "["); err == nil {
		t.Errorf("expected malformed pattern to be rejected")
	}
}

func TestViewCacheRoundTripAndInvalidate(t *testing.T) {
	backend := NewMemoryCache()
	defer backend.Close()

	vc := NewViewCache(backend, time.Minute, tracing.NewNoopTracer(), logging.NewNoopLogger())
	ctx := context.Background()

	type summary struct {
		Customers int `json:"customers"`
	}

	vc.Set(ctx, "t1", ViewDashboard, "", summary{Customers: 3})
	vc.Set(ctx, "t2", ViewDashboard, "", summary{Customers: 7})

	var got summary
	if !vc.Get(ctx, "t1", ViewDashboard, "", &got) || got.Customers != 3 {
		t.Fatalf("expected cached summary, got %+v", got)
	}

	vc.Invalidate(ctx, "t1", ViewCustomers, ViewDashboard)

	if vc.Get(ctx, "t1", ViewDashboard, "", &got) {
		t.Errorf("expected t1 dashboard invalidated")
	}
	if !vc.Get(ctx, "t2", ViewDashboard, "", &got) || got.Customers != 7 {
		t.Errorf("expected t2 dashboard untouched, got %+v", got)
	}
}

func TestViewCacheBackendFailuresAreMisses(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	backend := NewMockCacheInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	ctx := context.Background()

	mockTracer.EXPECT().Start(gomock.Any(), "cache.ViewCache.Get").Return(ctx, trace.SpanFromContext(ctx))
	mockTracer.EXPECT().Start(gomock.Any(), "cache.ViewCache.Set").Return(ctx, trace.SpanFromContext(ctx))
	mockTracer.EXPECT().Start(gomock.Any(), "cache.ViewCache.Invalidate").Return(ctx, trace.SpanFromContext(ctx))

	backend.EXPECT().Get(gomock.Any(), "view:t1:inbox:").Return(nil, errors.New("connection refused"))
	backend.EXPECT().Set(gomock.Any(), "view:t1:inbox:", gomock.Any(), time.Minute).Return(errors.New("connection refused"))
	backend.EXPECT().Clear(gomock.Any(), "view:t1:inbox:*").Return(errors.New("connection refused"))

	vc := NewViewCache(backend, time.Minute, mockTracer, logging.NewNoopLogger())

	var dst []string
	if vc.Get(ctx, "t1", ViewInbox, "", &dst) {
		t.Errorf("expected backend failure to be a miss")
	}
	vc.Set(ctx, "t1", ViewInbox, "", []string{"a"})
	vc.Invalidate(ctx, "t1", ViewInbox)
}

func TestViewCacheDropsValueLoadedBeforeInvalidate(t *testing.T) {
	backend := NewMemoryCache()
	defer backend.Close()

	vc := NewViewCache(backend, time.Minute, tracing.NewNoopTracer(), logging.NewNoopLogger())
	ctx := context.Background()

	var got []string

	// a read misses and loads the old list while a write lands
	if vc.Get(ctx, "t1", ViewCustomers, "list", &got) {
		t.Fatalf("expected a miss on an empty cache")
	}
	vc.Invalidate(ctx, "t1", ViewCustomers)
	vc.Set(ctx, "t1", ViewCustomers, "list", []string{"before write"})

	if vc.Get(ctx, "t1", ViewCustomers, "list", &got) {
		t.Fatalf("expected the value loaded before the invalidation to be dropped, got %v", got)
	}

	// the next read caches normally
	vc.Set(ctx, "t1", ViewCustomers, "list", []string{"after write"})
	if !vc.Get(ctx, "t1", ViewCustomers, "list", &got) || len(got) != 1 || got[0] != "after write" {
		t.Fatalf("expected the fresh list cached, got %v", got)
	}
}

func TestViewCacheInvalidationIsScoped(t *testing.T) {
	backend := NewMemoryCache()
	defer backend.Close()

	vc := NewViewCache(backend, time.Minute, tracing.NewNoopTracer(), logging.NewNoopLogger())
	ctx := context.Background()

	var got int
	vc.Get(ctx, "t1", ViewDashboard, "", &got)
	vc.Get(ctx, "t2", ViewDashboard, "", &got)

	vc.Invalidate(ctx, "t2", ViewDashboard)
	vc.Invalidate(ctx, "t1", ViewInbox)

	vc.Set(ctx, "t1", ViewDashboard, "", 3)
	if !vc.Get(ctx, "t1", ViewDashboard, "", &got) || got != 3 {
		t.Errorf("expected t1 dashboard cached, other scopes were invalidated")
	}
}
