package storage

import (
	"errors"
	"sync"
	"time"

	"cpd/internal/models"
	"cpd/internal/providers"
	"cpd/internal/storage/interfaces"

	"github.com/cespare/xxhash/v2"
	json "github.com/goccy/go-json"
	"go.uber.org/atomic"
)

const (
	BucketLibrary = "library"
	BucketRevenue = "revenue"
)

// Collection is the single owner of one bucket. Every read-modify-write of
// the bucket goes through its mutex, so concurrent callers in this process
// cannot lose each other's updates.
type Collection[T any] struct {
	bucket   string
	store    interfaces.StoreInterface
	logger   providers.Logger
	metrics  providers.MetricsProviderInterface
	mu       sync.Mutex
	revision atomic.Uint64
}

func NewCollection[T any](bucket string, store interfaces.StoreInterface, logger providers.Logger, metrics providers.MetricsProviderInterface) *Collection[T] {
	return &Collection[T]{
		bucket:  bucket,
		store:   store,
		logger:  logger,
		metrics: metrics,
	}
}

func (c *Collection[T]) Bucket() string {
	return c.bucket
}

// Revision counts successful writes made through this collection. Writes
// from other processes sharing the store do not move it; use Snapshot when
// that matters.
func (c *Collection[T]) Revision() uint64 {
	return c.revision.Load()
}

// Load returns the current contents. Unreadable or corrupt buckets are
// logged and read as empty.
func (c *Collection[T]) Load() []T {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load()
	if err != nil {
		c.logger.Errorf(providers.TypeStore, "Failed to read bucket %s: %s", c.bucket, err)
		return []T{}
	}
	return items
}

// Snapshot returns the current contents together with a checksum of the
// stored bytes. Any write to the bucket, from this process or another one,
// changes the checksum. A bucket that cannot be read is reported as an error
// along with empty contents.
func (c *Collection[T]) Snapshot() ([]T, uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, sum, err := c.read()
	if err != nil {
		c.logger.Errorf(providers.TypeStore, "Failed to read bucket %s: %s", c.bucket, err)
		return []T{}, 0, err
	}
	return items, sum, nil
}

// Save replaces the whole bucket.
func (c *Collection[T]) Save(items []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.save(items)
}

// Update hands the current contents to fn and persists what it returns.
// Nothing is written when fn reports no change. A bucket that cannot be read
// for reasons other than corruption is left untouched.
func (c *Collection[T]) Update(fn func(items []T) ([]T, bool)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load()
	if err != nil {
		return &models.StoreWriteError{Bucket: c.bucket, Err: err}
	}
	updated, changed := fn(items)
	if !changed {
		return nil
	}
	return c.save(updated)
}

func (c *Collection[T]) load() ([]T, error) {
	items, _, err := c.read()
	return items, err
}

func (c *Collection[T]) read() ([]T, uint64, error) {
	data, err := c.store.Read(c.bucket)
	if err != nil {
		var corrupt *models.StoreCorruptionError
		if errors.As(err, &corrupt) {
			c.corrupt(corrupt)
			return []T{}, xxhash.Sum64(nil), nil
		}
		return nil, 0, err
	}
	sum := xxhash.Sum64(data)
	if len(data) == 0 {
		return []T{}, sum, nil
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		c.corrupt(&models.StoreCorruptionError{Bucket: c.bucket, Err: err})
		return []T{}, sum, nil
	}
	if items == nil {
		items = []T{}
	}
	return items, sum, nil
}

func (c *Collection[T]) corrupt(err *models.StoreCorruptionError) {
	c.logger.Warnf(providers.TypeStore, "%s, treating it as empty", err)
	c.metrics.IncStoreCorruption(c.bucket)
}

func (c *Collection[T]) save(items []T) error {
	start := time.Now()
	if items == nil {
		items = []T{}
	}

	data, err := json.Marshal(items)
	if err != nil {
		return &models.StoreWriteError{Bucket: c.bucket, Err: err}
	}
	if err := c.store.Write(c.bucket, data); err != nil {
		c.logger.Errorf(providers.TypeStore, "Failed to write bucket %s: %s", c.bucket, err)
		return &models.StoreWriteError{Bucket: c.bucket, Err: err}
	}

	c.revision.Inc()
	c.metrics.ObservePersistenceDuration(c.bucket, time.Since(start))
	c.metrics.SetRecordsTotal(c.bucket, len(items))
	return nil
}
