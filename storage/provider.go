package storage

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"

	"expedientes_app_go/config"
)

// ErrUnsupportedDriver is returned by NewBackend for drivers it cannot build itself.
// The sqlite driver lives in package db.
var ErrUnsupportedDriver = errors.New("storage: unsupported store driver")

// NewBackend builds the backend selected by cfg.StoreDriver.
// The none driver returns a nil backend, which makes the store a no-op.
func NewBackend(ctx context.Context, cfg *config.Config) (Backend, error) {
	switch cfg.StoreDriver {
	case config.StoreDriverNone:
		log.Println("Storage disabled (STORE_DRIVER=none), data will not persist")
		return nil, nil
	case config.StoreDriverMemory:
		log.Println("Storage connection established (in-memory)")
		return NewMemoryBackend(), nil
	case config.StoreDriverFile, "":
		dir := filepath.Clean(cfg.DataDir)
		log.Printf("Storage connection established (Local filesystem - path: %s)", dir)
		return NewLocalBackend(dir), nil
	case config.StoreDriverR2:
		r2, err := NewR2Backend(cfg)
		if err != nil {
			return nil, err
		}
		if err := r2.Ping(ctx); err != nil {
			log.Printf("[WARNING] %v. Falling back to local storage.", err)
			return NewLocalBackend(cfg.DataDir), nil
		}
		log.Printf("Storage connection established (Cloudflare R2 - bucket: %s)", cfg.R2BucketName)
		return r2, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedDriver, cfg.StoreDriver)
	}
}
