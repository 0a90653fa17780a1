package repository

import (
	"context"

	"expedientes_app_go/models"
)

// ListHearings returns a copy of every hearing in collection order
func (r *Repository) ListHearings(ctx context.Context) []models.Hearing {
	r.mu.Lock()
	defer r.mu.Unlock()
	return models.CloneAll(r.data.Hearings)
}

// GetHearing returns the hearing with id, or false when it does not exist
func (r *Repository) GetHearing(ctx context.Context, id string) (models.Hearing, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return getByID(r.data.Hearings, id)
}

// CreateHearing stores a new hearing and returns it
func (r *Repository) CreateHearing(ctx context.Context, in models.HearingInput) models.Hearing {
	r.mu.Lock()
	defer r.mu.Unlock()

	h := models.NewHearing(in)
	id, now := r.stamp()
	h.ID = id
	h.CreatedAt = now
	h.UpdatedAt = now

	r.data.Hearings = append(r.data.Hearings, h)
	r.persist(ctx)
	return h.Clone()
}

// UpdateHearing merges patch into the stored hearing. It returns false, without persisting, for an unknown id.
func (r *Repository) UpdateHearing(ctx context.Context, id string, patch models.HearingPatch) (models.Hearing, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := findIndex(r.data.Hearings, id)
	if i < 0 {
		return models.Hearing{}, false
	}
	patch.Apply(&r.data.Hearings[i])
	r.data.Hearings[i].UpdatedAt = r.now()
	r.persist(ctx)
	return r.data.Hearings[i].Clone(), true
}

// DeleteHearing removes the hearing. Deleting an unknown id returns false and does not persist.
func (r *Repository) DeleteHearing(ctx context.Context, id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	rest, ok := removeByID(r.data.Hearings, id)
	if !ok {
		return false
	}
	r.data.Hearings = rest
	r.persist(ctx)
	return true
}

// HearingsByCase returns the hearings scheduled for caseID
func (r *Repository) HearingsByCase(ctx context.Context, caseID string) []models.Hearing {
	r.mu.Lock()
	defer r.mu.Unlock()
	return filterBy(r.data.Hearings, func(h *models.Hearing) bool { return h.CaseID == caseID })
}
