// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package cache

import (
	"context"
	"path"
	"sync"
	"time"
)

const janitorInterval = time.Minute

type item struct {
	value   []byte
	expires time.Time
}

// MemoryCache keeps entries in process. Expired entries are invisible to
// readers and swept by a janitor goroutine until Close is called.
type MemoryCache struct {
	mu    sync.RWMutex
	items map[string]item
	done  chan struct{}
	once  sync.Once

	now func() time.Time
}

var _ CacheInterface = (*MemoryCache)(nil)

func (m *MemoryCache) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	it, ok := m.items[key]
	if !ok || !m.now().Before(it.expires) {
		return nil, ErrCacheMiss
	}

	return it.value, nil
}

func (m *MemoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.items[key] = item{value: value, expires: m.now().Add(ttl)}
	return nil
}

func (m *MemoryCache) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.items, key)
	return nil
}

func (m *MemoryCache) Clear(_ context.Context, pattern string) error {
	if _, err := path.Match(pattern, ""); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for key := range m.items {
		if ok, _ := path.Match(pattern, key); ok {
			delete(m.items, key)
		}
	}

	return nil
}

func (m *MemoryCache) sweep() {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	for key, it := range m.items {
		if !now.Before(it.expires) {
			delete(m.items, key)
		}
	}
}

func (m *MemoryCache) janitor() {
	ticker := time.NewTicker(janitorInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.sweep()
		case <-m.done:
			return
		}
	}
}

func (m *MemoryCache) Close() error {
	m.once.Do(func() { close(m.done) })
	return nil
}

func NewMemoryCache() *MemoryCache {
	m := new(MemoryCache)
	m.items = make(map[string]item)
	m.done = make(chan struct{})
	m.now = time.Now

	go m.janitor()

	return m
}
