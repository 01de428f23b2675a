package snapshot

import "sync"

// memoryDriver keeps snapshots in-process. Records survive page reloads
// within a running server but not a restart; use redis or database for that.
type memoryDriver struct {
	mu   sync.RWMutex
	data map[string]string
}

func newMemoryDriver() *memoryDriver {
	return &memoryDriver{data: make(map[string]string)}
}

func (m *memoryDriver) put(key, value string) error {
	m.mu.Lock()
	m.data[key] = value
	m.mu.Unlock()
	return nil
}

func (m *memoryDriver) get(key string) (string, bool, error) {
	m.mu.RLock()
	v, ok := m.data[key]
	m.mu.RUnlock()
	return v, ok, nil
}

func (m *memoryDriver) del(key string) error {
	m.mu.Lock()
	delete(m.data, key)
	m.mu.Unlock()
	return nil
}
