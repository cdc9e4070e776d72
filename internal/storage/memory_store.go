package storage

import "sync"

// MemoryStore is a process-local store. Documents are copied on the way in
// and out so callers cannot alias stored bytes.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (m *MemoryStore) Read(bucket string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	val, ok := m.data[bucket]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MemoryStore) Write(bucket string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	val := make([]byte, len(data))
	copy(val, data)
	m.data[bucket] = val
	return nil
}

func (m *MemoryStore) Close() error { return nil }
