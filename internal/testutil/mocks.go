package testutil

import (
	"errors"
	"sync"
	"time"

	"cpd/internal/providers"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// Count returns how many entries were logged at level.
func (m *MockLogger) Count(level string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, e := range m.Logs {
		if e.Level == level {
			n++
		}
	}
	return n
}

// MockMetrics implements providers.MetricsProviderInterface and counts the
// domain events.
type MockMetrics struct {
	mu          sync.Mutex
	Published   map[string]int
	Views       map[string]int
	Dropped     map[string]int
	Corruptions map[string]int
	Records     map[string]int
}

func NewMockMetrics() *MockMetrics {
	return &MockMetrics{
		Published:   make(map[string]int),
		Views:       make(map[string]int),
		Dropped:     make(map[string]int),
		Corruptions: make(map[string]int),
		Records:     make(map[string]int),
	}
}

func (m *MockMetrics) inc(target map[string]int, key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if target != nil {
		target[key]++
	}
}

func (m *MockMetrics) IncRequestsTotal(_, _ string, _ int)                  {}
func (m *MockMetrics) ObserveRequestDuration(_ string, _ time.Duration)     {}
func (m *MockMetrics) IncCacheHits()                                        {}
func (m *MockMetrics) IncCacheMisses()                                      {}
func (m *MockMetrics) ObservePersistenceDuration(_ string, _ time.Duration) {}
func (m *MockMetrics) SetRecordsTotal(bucket string, count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Records != nil {
		m.Records[bucket] = count
	}
}
func (m *MockMetrics) IncStoreCorruption(bucket string)    { m.inc(m.Corruptions, bucket) }
func (m *MockMetrics) IncPublished(outcome string)         { m.inc(m.Published, outcome) }
func (m *MockMetrics) IncViews(outcome string)             { m.inc(m.Views, outcome) }
func (m *MockMetrics) IncNotificationDropped(stream string) { m.inc(m.Dropped, stream) }

// MockCompressor implements interfaces.CompressorInterface with injectable behavior.
type MockCompressor struct {
	CompressFn   func([]byte) ([]byte, error)
	DecompressFn func([]byte) ([]byte, error)
	Closed       bool
}

func (m *MockCompressor) Compress(val []byte) ([]byte, error) {
	if m.CompressFn != nil {
		return m.CompressFn(val)
	}
	// Default: return as-is (identity)
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Decompress(val []byte) ([]byte, error) {
	if m.DecompressFn != nil {
		return m.DecompressFn(val)
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Close() { m.Closed = true }

// MockCache implements providers.CacheProviderInterface.
type MockCache struct {
	mu   sync.Mutex
	Data map[string][]byte
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string][]byte)}
}

func (m *MockCache) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = value
}

var ErrInjectedWrite = errors.New("injected write failure")

// FailingStore is an in-memory store whose writes to selected buckets fail.
type FailingStore struct {
	mu     sync.Mutex
	data   map[string][]byte
	fail   map[string]bool
	Writes int
}

func NewFailingStore(buckets ...string) *FailingStore {
	fs := &FailingStore{data: make(map[string][]byte), fail: make(map[string]bool)}
	for _, b := range buckets {
		fs.fail[b] = true
	}
	return fs
}

func (f *FailingStore) SetFailing(bucket string, failing bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fail[bucket] = failing
}

func (f *FailingStore) Read(bucket string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	val, ok := f.data[bucket]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), val...), nil
}

func (f *FailingStore) Write(bucket string, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail[bucket] {
		return ErrInjectedWrite
	}
	f.Writes++
	f.data[bucket] = append([]byte(nil), data...)
	return nil
}

// Raw replaces a bucket's bytes without going through the failure switch.
func (f *FailingStore) Raw(bucket string, data []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[bucket] = data
}

func (f *FailingStore) Close() error { return nil }
