package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"expedientes_app_go/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "software-abogados-data"

type failingBackend struct{}

func (failingBackend) Get(ctx context.Context, key string) ([]byte, error) {
	return nil, errors.New("disk on fire")
}

func (failingBackend) Set(ctx context.Context, key string, value []byte) error {
	return errors.New("quota exceeded")
}

func (failingBackend) Remove(ctx context.Context, key string) error {
	return errors.New("disk on fire")
}

func sampleDataset() models.Dataset {
	ds := models.EmptyDataset()
	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	ds.Clients = append(ds.Clients, models.Client{
		ID:         "c1",
		Kind:       models.ClientKindPerson,
		Name:       "Juan Pérez",
		DocumentID: models.StringPtr("20-12345678-9"),
		CreatedAt:  created,
	})
	ds.Cases = append(ds.Cases, models.Case{
		ID:               "e1",
		FileNumber:       "12345/2024",
		Caption:          "Pérez c/ ACME s/ despido",
		JurisdictionArea: models.AreaLabor,
		Status:           models.CaseStatusOpen,
		ClientID:         "c1",
		OwnerIDs:         []string{"u1"},
		CreatedAt:        created,
		UpdatedAt:        created,
	})
	ds.Users = append(ds.Users, models.User{ID: "u1", Name: "Ana", Email: "ana@example.com", Role: models.RoleLawyer})
	return ds
}

func TestVersionedStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewVersionedStore(NewMemoryBackend(), testKey, "1.0.0")

	doc := sampleDataset()
	store.Save(ctx, doc)

	got, ok := store.Load(ctx)
	require.True(t, ok)
	assert.Equal(t, "1.0.0", got.Version)

	doc.Version = "1.0.0"
	assert.Equal(t, doc, got)
}

func TestVersionedStore_VersionGate(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryBackend()

	NewVersionedStore(backend, testKey, "0.9.0").Save(ctx, sampleDataset())

	store := NewVersionedStore(backend, testKey, "1.0.0")
	_, ok := store.Load(ctx)
	assert.False(t, ok)

	// mismatched document is cleared, not just ignored
	_, err := backend.Get(ctx, testKey)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestVersionedStore_Absent(t *testing.T) {
	store := NewVersionedStore(NewMemoryBackend(), testKey, "1.0.0")
	_, ok := store.Load(context.Background())
	assert.False(t, ok)
}

func TestVersionedStore_Clear(t *testing.T) {
	ctx := context.Background()
	store := NewVersionedStore(NewMemoryBackend(), testKey, "1.0.0")
	store.Save(ctx, sampleDataset())

	store.Clear(ctx)
	_, ok := store.Load(ctx)
	assert.False(t, ok)
}

func TestVersionedStore_CorruptedJSON(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryBackend()
	backend.Set(ctx, testKey, []byte("{not json"))

	store := NewVersionedStore(backend, testKey, "1.0.0")
	_, ok := store.Load(ctx)
	assert.False(t, ok)
}

func TestVersionedStore_PartialDocumentIsNormalized(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryBackend()
	backend.Set(ctx, testKey, []byte(`{"version":"1.0.0","clients":[{"id":"c1","kind":"PERSON","name":"X"}]}`))

	got, ok := NewVersionedStore(backend, testKey, "1.0.0").Load(ctx)
	require.True(t, ok)
	assert.Len(t, got.Clients, 1)
	assert.NotNil(t, got.Cases)
	assert.Empty(t, got.Invoices)
}

func TestVersionedStore_NilBackendIsNoop(t *testing.T) {
	ctx := context.Background()
	store := NewVersionedStore(nil, testKey, "1.0.0")

	store.Save(ctx, sampleDataset())
	store.Clear(ctx)
	_, ok := store.Load(ctx)
	assert.False(t, ok)
}

func TestVersionedStore_BackendFailuresAreSwallowed(t *testing.T) {
	ctx := context.Background()
	store := NewVersionedStore(failingBackend{}, testKey, "1.0.0")

	assert.NotPanics(t, func() {
		store.Save(ctx, sampleDataset())
		store.Clear(ctx)
	})
	_, ok := store.Load(ctx)
	assert.False(t, ok)
}
