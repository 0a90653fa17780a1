package storage

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"expedientes_app_go/models"
)

// VersionedStore persists the whole dataset as one JSON document under a fixed key.
// Documents written with a different version are discarded on load.
// Failures are logged and swallowed; callers never see a storage error.
type VersionedStore struct {
	backend Backend
	key     string
	version string
}

// NewVersionedStore creates a store over backend. A nil backend turns every operation into a no-op.
func NewVersionedStore(backend Backend, key, version string) *VersionedStore {
	return &VersionedStore{backend: backend, key: key, version: version}
}

// Version returns the document version stamped on save
func (s *VersionedStore) Version() string {
	return s.version
}

// Load returns the stored dataset. ok is false when nothing usable is stored.
func (s *VersionedStore) Load(ctx context.Context) (models.Dataset, bool) {
	if s.backend == nil {
		return models.Dataset{}, false
	}

	data, err := s.backend.Get(ctx, s.key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Printf("[WARNING] Failed to read stored data (%s): %v", s.key, err)
		}
		return models.Dataset{}, false
	}
	if len(data) == 0 {
		return models.Dataset{}, false
	}

	var doc models.Dataset
	if err := json.Unmarshal(data, &doc); err != nil {
		log.Printf("[WARNING] Stored data is corrupted (%s): %v", s.key, err)
		return models.Dataset{}, false
	}

	if doc.Version != s.version {
		log.Printf("[INFO] Stored data version %q does not match %q, clearing", doc.Version, s.version)
		s.Clear(ctx)
		return models.Dataset{}, false
	}

	doc.Normalize()
	return doc, true
}

// Save writes doc with the current version stamped in, replacing any previous value
func (s *VersionedStore) Save(ctx context.Context, doc models.Dataset) {
	if s.backend == nil {
		return
	}

	doc.Version = s.version
	doc.Normalize()
	data, err := json.Marshal(doc)
	if err != nil {
		log.Printf("[WARNING] Failed to encode data (%s): %v", s.key, err)
		return
	}
	if err := s.backend.Set(ctx, s.key, data); err != nil {
		log.Printf("[WARNING] Failed to write stored data (%s): %v", s.key, err)
	}
}

// Clear removes the stored document
func (s *VersionedStore) Clear(ctx context.Context) {
	if s.backend == nil {
		return
	}
	if err := s.backend.Remove(ctx, s.key); err != nil {
		log.Printf("[WARNING] Failed to clear stored data (%s): %v", s.key, err)
	}
}
