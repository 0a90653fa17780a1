package db

import (
	"context"
	"fmt"

	"expedientes_app_go/config"
	"expedientes_app_go/storage"
)

// OpenBackend builds the backend named by cfg.StoreDriver. For the sqlite driver the
// returned close func releases the connection; for the rest it is a no-op.
func OpenBackend(ctx context.Context, cfg *config.Config) (storage.Backend, func(), error) {
	if cfg.StoreDriver != config.StoreDriverSQLite {
		backend, err := storage.NewBackend(ctx, cfg)
		return backend, func() {}, err
	}

	conn, err := Open(cfg)
	if err != nil {
		return nil, nil, err
	}
	backend, err := NewKeyValueBackend(conn)
	if err != nil {
		Close(conn)
		return nil, nil, fmt.Errorf("failed to prepare key/value table: %w", err)
	}
	return backend, func() { Close(conn) }, nil
}

// OpenStore is OpenBackend wrapped in the versioned dataset store
func OpenStore(ctx context.Context, cfg *config.Config) (*storage.VersionedStore, func(), error) {
	backend, closeFn, err := OpenBackend(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return storage.NewVersionedStore(backend, cfg.StorageKey, cfg.StorageVersion), closeFn, nil
}
