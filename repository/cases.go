package repository

import (
	"context"

	"expedientes_app_go/models"
)

// ListCases returns a copy of every case in collection order
func (r *Repository) ListCases(ctx context.Context) []models.Case {
	r.mu.Lock()
	defer r.mu.Unlock()
	return models.CloneAll(r.data.Cases)
}

// GetCase returns the case with id, or false when it does not exist
func (r *Repository) GetCase(ctx context.Context, id string) (models.Case, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return getByID(r.data.Cases, id)
}

// CreateCase stores a new case and returns it
func (r *Repository) CreateCase(ctx context.Context, in models.CaseInput) models.Case {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := models.NewCase(in)
	id, now := r.stamp()
	c.ID = id
	c.CreatedAt = now
	c.UpdatedAt = now

	r.data.Cases = append(r.data.Cases, c)
	r.persist(ctx)
	return c.Clone()
}

// UpdateCase merges patch into the stored case. It returns false, without persisting, for an unknown id.
func (r *Repository) UpdateCase(ctx context.Context, id string, patch models.CasePatch) (models.Case, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := findIndex(r.data.Cases, id)
	if i < 0 {
		return models.Case{}, false
	}
	patch.Apply(&r.data.Cases[i])
	r.data.Cases[i].UpdatedAt = r.now()
	r.persist(ctx)
	return r.data.Cases[i].Clone(), true
}

// DeleteCase removes the case. Deleting an unknown id returns false and does not persist.
func (r *Repository) DeleteCase(ctx context.Context, id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	rest, ok := removeByID(r.data.Cases, id)
	if !ok {
		return false
	}
	r.data.Cases = rest
	r.persist(ctx)
	return true
}
