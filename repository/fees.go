package repository

import (
	"context"

	"expedientes_app_go/models"
)

// ListFees returns a copy of every fee in collection order
func (r *Repository) ListFees(ctx context.Context) []models.Fee {
	r.mu.Lock()
	defer r.mu.Unlock()
	return models.CloneAll(r.data.Fees)
}

// GetFee returns the fee with id, or false when it does not exist
func (r *Repository) GetFee(ctx context.Context, id string) (models.Fee, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return getByID(r.data.Fees, id)
}

// CreateFee stores a new fee and returns it
func (r *Repository) CreateFee(ctx context.Context, in models.FeeInput) models.Fee {
	r.mu.Lock()
	defer r.mu.Unlock()

	f := models.NewFee(in)
	id, now := r.stamp()
	f.ID = id
	f.CreatedAt = now
	f.UpdatedAt = now

	r.data.Fees = append(r.data.Fees, f)
	r.persist(ctx)
	return f.Clone()
}

// UpdateFee merges patch into the stored fee. It returns false, without persisting, for an unknown id.
func (r *Repository) UpdateFee(ctx context.Context, id string, patch models.FeePatch) (models.Fee, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := findIndex(r.data.Fees, id)
	if i < 0 {
		return models.Fee{}, false
	}
	patch.Apply(&r.data.Fees[i])
	r.data.Fees[i].UpdatedAt = r.now()
	r.persist(ctx)
	return r.data.Fees[i].Clone(), true
}

// DeleteFee removes the fee. Deleting an unknown id returns false and does not persist.
func (r *Repository) DeleteFee(ctx context.Context, id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	rest, ok := removeByID(r.data.Fees, id)
	if !ok {
		return false
	}
	r.data.Fees = rest
	r.persist(ctx)
	return true
}

func (r *Repository) FeesByClient(ctx context.Context, clientID string) []models.Fee {
	r.mu.Lock()
	defer r.mu.Unlock()
	return filterBy(r.data.Fees, func(f *models.Fee) bool { return f.ClientID == clientID })
}

func (r *Repository) FeesByCase(ctx context.Context, caseID string) []models.Fee {
	r.mu.Lock()
	defer r.mu.Unlock()
	return filterBy(r.data.Fees, func(f *models.Fee) bool { return f.CaseID == caseID })
}

// FeesByIDs returns the fees whose id is in ids, in collection order. Unknown ids are skipped.
func (r *Repository) FeesByIDs(ctx context.Context, ids []string) []models.Fee {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.feesByIDs(ids)
}

// feesByIDs must be called with r.mu held
func (r *Repository) feesByIDs(ids []string) []models.Fee {
	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}
	return filterBy(r.data.Fees, func(f *models.Fee) bool {
		_, ok := wanted[f.ID]
		return ok
	})
}
