package storage

import "sync"

// Memory is a map-backed KV for tests and ephemeral runs. Contents are copied
// on the way in and out so callers never alias the store's buffers.
type Memory struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{entries: make(map[string][]byte)}
}

func (m *Memory) Get(key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.entries[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), p...), true, nil
}

func (m *Memory) Put(key string, payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = append([]byte(nil), payload...)
	return nil
}

func (m *Memory) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}

func (m *Memory) Close() error { return nil }
