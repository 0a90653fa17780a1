package repository

import (
	"context"

	"expedientes_app_go/models"
)

// ListDeadlines returns a copy of every deadline in collection order
func (r *Repository) ListDeadlines(ctx context.Context) []models.Deadline {
	r.mu.Lock()
	defer r.mu.Unlock()
	return models.CloneAll(r.data.Deadlines)
}

// GetDeadline returns the deadline with id, or false when it does not exist
func (r *Repository) GetDeadline(ctx context.Context, id string) (models.Deadline, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return getByID(r.data.Deadlines, id)
}

// CreateDeadline stores a new deadline and returns it
func (r *Repository) CreateDeadline(ctx context.Context, in models.DeadlineInput) models.Deadline {
	r.mu.Lock()
	defer r.mu.Unlock()

	d := models.NewDeadline(in)
	id, now := r.stamp()
	d.ID = id
	d.CreatedAt = now
	d.UpdatedAt = now

	r.data.Deadlines = append(r.data.Deadlines, d)
	r.persist(ctx)
	return d.Clone()
}

// UpdateDeadline merges patch into the stored deadline. It returns false, without persisting, for an unknown id.
func (r *Repository) UpdateDeadline(ctx context.Context, id string, patch models.DeadlinePatch) (models.Deadline, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := findIndex(r.data.Deadlines, id)
	if i < 0 {
		return models.Deadline{}, false
	}
	patch.Apply(&r.data.Deadlines[i])
	r.data.Deadlines[i].UpdatedAt = r.now()
	r.persist(ctx)
	return r.data.Deadlines[i].Clone(), true
}

// DeleteDeadline removes the deadline. Deleting an unknown id returns false and does not persist.
func (r *Repository) DeleteDeadline(ctx context.Context, id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	rest, ok := removeByID(r.data.Deadlines, id)
	if !ok {
		return false
	}
	r.data.Deadlines = rest
	r.persist(ctx)
	return true
}

// DeadlinesByCase returns the deadlines attached to caseID
func (r *Repository) DeadlinesByCase(ctx context.Context, caseID string) []models.Deadline {
	r.mu.Lock()
	defer r.mu.Unlock()
	return filterBy(r.data.Deadlines, func(d *models.Deadline) bool { return d.CaseID == caseID })
}
