package db

import (
	"context"
	"path/filepath"
	"testing"

	"expedientes_app_go/config"
	"expedientes_app_go/models"
	"expedientes_app_go/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenStore_SQLite(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{
		Environment:    "production",
		StoreDriver:    config.StoreDriverSQLite,
		DBPath:         filepath.Join(t.TempDir(), "nested", "app.db"),
		StorageKey:     config.DefaultStorageKey,
		StorageVersion: config.DefaultStorageVersion,
	}

	store, closeFn, err := OpenStore(ctx, cfg)
	require.NoError(t, err)

	doc := models.EmptyDataset()
	doc.Clients = append(doc.Clients, models.Client{ID: "c1", Name: "Ana"})
	store.Save(ctx, doc)
	closeFn()

	// reopening the same file sees the saved document
	store, closeFn, err = OpenStore(ctx, cfg)
	require.NoError(t, err)
	defer closeFn()

	loaded, ok := store.Load(ctx)
	require.True(t, ok)
	require.Len(t, loaded.Clients, 1)
	assert.Equal(t, "Ana", loaded.Clients[0].Name)
}

func TestOpenBackend_NonSQLiteDrivers(t *testing.T) {
	ctx := context.Background()

	backend, closeFn, err := OpenBackend(ctx, &config.Config{StoreDriver: config.StoreDriverMemory})
	require.NoError(t, err)
	closeFn()
	assert.IsType(t, &storage.MemoryBackend{}, backend)

	backend, _, err = OpenBackend(ctx, &config.Config{StoreDriver: config.StoreDriverNone})
	require.NoError(t, err)
	assert.Nil(t, backend)

	_, _, err = OpenBackend(ctx, &config.Config{StoreDriver: "mongo"})
	assert.ErrorIs(t, err, storage.ErrUnsupportedDriver)
}
