package cache

import "sync"

// Mem is an in-memory cache without eviction. Entries live until deleted.
// Safe for concurrent use.
type Mem struct {
	mu      sync.RWMutex
	entries map[string]any
}

func NewMem() *Mem {
	return &Mem{entries: make(map[string]any)}
}

func (m *Mem) Get(key string) (any, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.entries[key]
	return v, ok
}

func (m *Mem) Put(key string, val any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = val
}

func (m *Mem) Delete(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
}

// Len returns the number of live entries.
func (m *Mem) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

var _ Cache = (*Mem)(nil)
