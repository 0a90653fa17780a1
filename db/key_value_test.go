package db

import (
	"context"
	"testing"

	"expedientes_app_go/models"
	"expedientes_app_go/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	// Unique shared memory name so every pooled connection sees the same database
	dbName := "mem_" + uuid.New().String()
	conn, err := gorm.Open(sqlite.Open("file:"+dbName+"?mode=memory&cache=shared&_busy_timeout=5000"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	t.Cleanup(func() { Close(conn) })
	return conn
}

func TestKeyValueBackend(t *testing.T) {
	ctx := context.Background()
	backend, err := NewKeyValueBackend(setupTestDB(t))
	require.NoError(t, err)

	t.Run("missing key", func(t *testing.T) {
		_, err := backend.Get(ctx, "missing")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("set and overwrite", func(t *testing.T) {
		require.NoError(t, backend.Set(ctx, "k", []byte("first")))
		require.NoError(t, backend.Set(ctx, "k", []byte("second")))

		got, err := backend.Get(ctx, "k")
		assert.NoError(t, err)
		assert.Equal(t, "second", string(got))
	})

	t.Run("remove is idempotent", func(t *testing.T) {
		assert.NoError(t, backend.Remove(ctx, "k"))
		assert.NoError(t, backend.Remove(ctx, "k"))
		_, err := backend.Get(ctx, "k")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestKeyValueBackend_WithVersionedStore(t *testing.T) {
	ctx := context.Background()
	backend, err := NewKeyValueBackend(setupTestDB(t))
	require.NoError(t, err)

	store := storage.NewVersionedStore(backend, "software-abogados-data", "1.0.0")
	doc := models.EmptyDataset()
	doc.Users = append(doc.Users, models.User{ID: "u1", Name: "Ana", Email: "ana@example.com", Role: models.RoleAdmin})
	store.Save(ctx, doc)

	got, ok := store.Load(ctx)
	require.True(t, ok)
	assert.Equal(t, "1.0.0", got.Version)
	assert.Equal(t, doc.Users, got.Users)
}
