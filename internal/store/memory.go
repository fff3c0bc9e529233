package store

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore is an in-memory Store used when no database is configured
// and in tests.
type MemoryStore struct {
	mu      sync.Mutex
	symbols map[string]struct{}
}

func NewMemoryStore(seed []string) *MemoryStore {
	m := &MemoryStore{symbols: make(map[string]struct{})}
	for _, s := range seed {
		m.symbols[s] = struct{}{}
	}
	return m
}

func (m *MemoryStore) List(_ context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]string, 0, len(m.symbols))
	for s := range m.symbols {
		out = append(out, s)
	}
	sort.Strings(out)
	return out, nil
}

func (m *MemoryStore) Add(_ context.Context, symbol string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.symbols[symbol]; ok {
		return false, nil
	}
	m.symbols[symbol] = struct{}{}
	return true, nil
}

func (m *MemoryStore) Remove(_ context.Context, symbol string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.symbols[symbol]; !ok {
		return false, nil
	}
	delete(m.symbols, symbol)
	return true, nil
}

func (m *MemoryStore) Ping(_ context.Context) error { return nil }

func (m *MemoryStore) Close() error { return nil }
