package di

import (
	"cpd/internal/providers"
	"cpd/internal/storage"
	"cpd/internal/storage/interfaces"
	"cpd/internal/structures"
)

// provideLogger adds the close hook wire hands back to the caller.
func provideLogger(conf *structures.Config) (providers.Logger, func(), error) {
	logger, err := providers.NewLogProvider(conf)
	if err != nil {
		return nil, nil, err
	}
	return logger, logger.Close, nil
}

func provideStore(conf *structures.Config, compressor interfaces.CompressorInterface, logger providers.Logger) (interfaces.StoreInterface, func(), error) {
	store, err := storage.NewStoreProvider(conf, compressor, logger)
	if err != nil {
		compressor.Close()
		return nil, nil, err
	}
	return store, func() {
		if err := store.Close(); err != nil {
			logger.Errorf(providers.TypeApp, "Closing store: %s", err)
		}
		compressor.Close()
	}, nil
}
