package cache

import (
	"context"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
)

type entry struct {
	value     any
	expiresAt time.Time
}

// Memory is an in-process TTL cache. A zero TTL disables expiry.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
	flight  flightGroup
}

func NewMemory(ttl time.Duration) *Memory {
	return &Memory{
		entries: make(map[string]entry),
		ttl:     ttl,
	}
}

func (m *Memory) Get(_ context.Context, key string) (any, bool) {
	if key == "" {
		return nil, false
	}

	now := time.Now()
	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if m.ttl > 0 && !e.expiresAt.After(now) {
		m.mu.Lock()
		delete(m.entries, key)
		m.mu.Unlock()
		return nil, false
	}

	return e.value, true
}

func (m *Memory) Set(_ context.Context, key string, value any) {
	if key == "" {
		return
	}

	expiresAt := time.Time{}
	if m.ttl > 0 {
		expiresAt = time.Now().Add(m.ttl)
	}

	m.mu.Lock()
	m.entries[key] = entry{value: value, expiresAt: expiresAt}
	m.mu.Unlock()
}

func (m *Memory) Delete(_ context.Context, key string) {
	if key == "" {
		return
	}

	m.mu.Lock()
	delete(m.entries, key)
	m.mu.Unlock()
}

// GetOrLoad returns the cached value for key, loading it at most once
// across concurrent callers on a miss.
func (m *Memory) GetOrLoad(ctx context.Context, key string, loader Loader) (any, error) {
	if loader == nil {
		return nil, errors.New("loader is required")
	}
	if key == "" {
		return loader(ctx)
	}

	if value, ok := m.Get(ctx, key); ok {
		return value, nil
	}

	return m.flight.Do(key, func() (any, error) {
		if cached, ok := m.Get(ctx, key); ok {
			return cached, nil
		}

		loaded, err := loader(ctx)
		if err != nil {
			return nil, err
		}
		m.Set(ctx, key, loaded)
		return loaded, nil
	})
}
