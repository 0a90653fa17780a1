package repository

import (
	"context"
	"log"
	"sync"
	"time"

	"expedientes_app_go/models"

	"github.com/google/uuid"
)

// Store is the persistence the repository loads from and writes through to.
// *storage.VersionedStore implements it.
type Store interface {
	Load(ctx context.Context) (models.Dataset, bool)
	Save(ctx context.Context, doc models.Dataset)
}

// Option configures a Repository
type Option func(*Repository)

// WithClock overrides the time source used for created_at/updated_at
func WithClock(now func() time.Time) Option {
	return func(r *Repository) { r.now = now }
}

// WithIDGenerator overrides the identifier generator
func WithIDGenerator(newID func() string) Option {
	return func(r *Repository) { r.newID = newID }
}

// Repository owns the in-memory dataset and is the only component that mutates it.
// Every mutation rewrites the whole document through the Store before returning.
// All methods are safe for concurrent use.
type Repository struct {
	mu    sync.Mutex
	store Store
	data  models.Dataset
	now   func() time.Time
	newID func() string
}

// New loads the dataset from store. When nothing usable is stored, every
// collection starts empty and the empty shape is persisted immediately.
func New(ctx context.Context, store Store, opts ...Option) *Repository {
	r := &Repository{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
		newID: func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(r)
	}

	if store != nil {
		if doc, ok := store.Load(ctx); ok {
			doc.Normalize()
			r.data = doc
			log.Printf("[INFO] Loaded dataset: %d clients, %d cases, %d deadlines, %d hearings, %d fees, %d invoices",
				len(doc.Clients), len(doc.Cases), len(doc.Deadlines), len(doc.Hearings), len(doc.Fees), len(doc.Invoices))
			return r
		}
	}

	r.data = models.EmptyDataset()
	r.persist(ctx)
	return r
}

// Snapshot returns a deep copy of the whole dataset
func (r *Repository) Snapshot(ctx context.Context) models.Dataset {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.data.Clone()
}

// persist must be called with r.mu held
func (r *Repository) persist(ctx context.Context) {
	if r.store == nil {
		return
	}
	r.store.Save(ctx, r.data)
}

// stamp returns a fresh identifier and a single clock reading for a new record
func (r *Repository) stamp() (string, time.Time) {
	return r.newID(), r.now()
}

func findIndex[T models.Entity[T]](items []T, id string) int {
	for i := range items {
		if items[i].EntityID() == id {
			return i
		}
	}
	return -1
}

func getByID[T models.Entity[T]](items []T, id string) (T, bool) {
	if i := findIndex(items, id); i >= 0 {
		return items[i].Clone(), true
	}
	var zero T
	return zero, false
}

func removeByID[T models.Entity[T]](items []T, id string) ([]T, bool) {
	i := findIndex(items, id)
	if i < 0 {
		return items, false
	}
	return append(items[:i], items[i+1:]...), true
}

func filterBy[T models.Entity[T]](items []T, keep func(*T) bool) []T {
	out := []T{}
	for i := range items {
		if keep(&items[i]) {
			out = append(out, items[i].Clone())
		}
	}
	return out
}
