package repository

import (
	"context"

	"expedientes_app_go/models"
)

// ListInvoices returns a copy of every invoice in collection order
func (r *Repository) ListInvoices(ctx context.Context) []models.Invoice {
	r.mu.Lock()
	defer r.mu.Unlock()
	return models.CloneAll(r.data.Invoices)
}

// GetInvoice returns the invoice with id, or false when it does not exist
func (r *Repository) GetInvoice(ctx context.Context, id string) (models.Invoice, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return getByID(r.data.Invoices, id)
}

// CreateInvoice stores a new invoice and returns it
func (r *Repository) CreateInvoice(ctx context.Context, in models.InvoiceInput) models.Invoice {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.createInvoice(ctx, in)
}

// CreateInvoiceFromFees builds an invoice from the stored fees in feeIDs and stores it.
// The fees are read and the invoice written under one lock, so draft sees the fees as
// they are when the invoice is saved. draft must not call back into the repository.
func (r *Repository) CreateInvoiceFromFees(ctx context.Context, feeIDs []string, draft func(fees []models.Fee) models.InvoiceInput) models.Invoice {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.createInvoice(ctx, draft(r.feesByIDs(feeIDs)))
}

// createInvoice must be called with r.mu held
func (r *Repository) createInvoice(ctx context.Context, in models.InvoiceInput) models.Invoice {
	inv := models.NewInvoice(in)
	id, now := r.stamp()
	inv.ID = id
	inv.CreatedAt = now
	inv.UpdatedAt = now

	r.data.Invoices = append(r.data.Invoices, inv)
	r.persist(ctx)
	return inv.Clone()
}

// UpdateInvoice merges patch into the stored invoice. It returns false, without persisting, for an unknown id.
func (r *Repository) UpdateInvoice(ctx context.Context, id string, patch models.InvoicePatch) (models.Invoice, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := findIndex(r.data.Invoices, id)
	if i < 0 {
		return models.Invoice{}, false
	}
	patch.Apply(&r.data.Invoices[i])
	r.data.Invoices[i].UpdatedAt = r.now()
	r.persist(ctx)
	return r.data.Invoices[i].Clone(), true
}

// DeleteInvoice removes the invoice. Deleting an unknown id returns false and does not persist.
func (r *Repository) DeleteInvoice(ctx context.Context, id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	rest, ok := removeByID(r.data.Invoices, id)
	if !ok {
		return false
	}
	r.data.Invoices = rest
	r.persist(ctx)
	return true
}

func (r *Repository) InvoicesByClient(ctx context.Context, clientID string) []models.Invoice {
	r.mu.Lock()
	defer r.mu.Unlock()
	return filterBy(r.data.Invoices, func(inv *models.Invoice) bool { return inv.ClientID == clientID })
}

// InvoicesByCase matches invoices whose optional case_id equals caseID
func (r *Repository) InvoicesByCase(ctx context.Context, caseID string) []models.Invoice {
	r.mu.Lock()
	defer r.mu.Unlock()
	return filterBy(r.data.Invoices, func(inv *models.Invoice) bool {
		return inv.CaseID != nil && *inv.CaseID == caseID
	})
}
