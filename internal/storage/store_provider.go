package storage

import (
	"fmt"

	"cpd/internal/providers"
	"cpd/internal/storage/interfaces"
	"cpd/internal/structures"
)

// NewStoreProvider opens the backend selected by store.driver.
func NewStoreProvider(conf *structures.Config, compressor interfaces.CompressorInterface, logger providers.Logger) (interfaces.StoreInterface, error) {
	switch conf.Store.Driver {
	case structures.StoreDriverMemory:
		logger.Warnf(providers.TypeApp, "Using in-memory store, data will not survive a restart")
		return NewMemoryStore(), nil
	case structures.StoreDriverRedis:
		logger.Infof(providers.TypeApp, "Using redis store at %s", conf.Store.Redis.Addr)
		store, err := NewRedisStore(conf.Store.Redis)
		if err != nil {
			return nil, err
		}
		return store, nil
	case structures.StoreDriverFile, "":
		logger.Infof(providers.TypeApp, "Using file store in %s", conf.Store.Dir)
		store, err := NewFileStore(conf.Store.Dir, compressor)
		if err != nil {
			return nil, err
		}
		return store, nil
	}
	return nil, fmt.Errorf("unknown store driver %q", conf.Store.Driver)
}
