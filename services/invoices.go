package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"expedientes_app_go/models"
	"expedientes_app_go/query"
)

const (
	// vatRate is the Argentine IVA applied to generated invoices
	vatRate = 0.21
	// invoiceDueDays is the payment term of generated invoices
	invoiceDueDays = 30
)

type InvoiceService struct{ *base }

func invoiceOp(action string) Op { return Op{Entity: "invoices", Action: action} }

// InvoiceStats aggregates the whole invoice collection. Issued counts ISSUED and SENT.
type InvoiceStats struct {
	Total         int     `json:"total"`
	Issued        int     `json:"issued"`
	Paid          int     `json:"paid"`
	Overdue       int     `json:"overdue"`
	TotalAmount   float64 `json:"total_amount"`
	IssuedAmount  float64 `json:"issued_amount"`
	PaidAmount    float64 `json:"paid_amount"`
	OverdueAmount float64 `json:"overdue_amount"`
}

func (s *InvoiceService) List(ctx context.Context, f query.InvoiceFilter, o query.Order) ([]models.Invoice, error) {
	return run(ctx, s.base, invoiceOp(ActionList), func() []models.Invoice {
		return query.SortInvoices(query.FilterInvoices(s.repo.ListInvoices(ctx), f), o)
	})
}

func (s *InvoiceService) ListPage(ctx context.Context, f query.InvoiceFilter, o query.Order, page, size int) (query.Page[models.Invoice], error) {
	return run(ctx, s.base, invoiceOp(ActionList), func() query.Page[models.Invoice] {
		return query.Paginate(query.SortInvoices(query.FilterInvoices(s.repo.ListInvoices(ctx), f), o), page, size)
	})
}

func (s *InvoiceService) Get(ctx context.Context, id string) (models.Invoice, bool, error) {
	return runFound(ctx, s.base, invoiceOp(ActionGet), func() (models.Invoice, bool) {
		return s.repo.GetInvoice(ctx, id)
	})
}

func (s *InvoiceService) ByClient(ctx context.Context, clientID string) ([]models.Invoice, error) {
	return run(ctx, s.base, invoiceOp(ActionByClient), func() []models.Invoice {
		return s.repo.InvoicesByClient(ctx, clientID)
	})
}

func (s *InvoiceService) ByCase(ctx context.Context, caseID string) ([]models.Invoice, error) {
	return run(ctx, s.base, invoiceOp(ActionByCase), func() []models.Invoice {
		return s.repo.InvoicesByCase(ctx, caseID)
	})
}

func (s *InvoiceService) Create(ctx context.Context, in models.InvoiceInput) (models.Invoice, error) {
	return run(ctx, s.base, invoiceOp(ActionCreate), func() models.Invoice {
		return s.repo.CreateInvoice(ctx, in)
	})
}

func (s *InvoiceService) Update(ctx context.Context, id string, patch models.InvoicePatch) (models.Invoice, bool, error) {
	return runFound(ctx, s.base, invoiceOp(ActionUpdate), func() (models.Invoice, bool) {
		return s.repo.UpdateInvoice(ctx, id, patch)
	})
}

func (s *InvoiceService) Delete(ctx context.Context, id string) (bool, error) {
	return run(ctx, s.base, invoiceOp(ActionDelete), func() bool {
		return s.repo.DeleteInvoice(ctx, id)
	})
}

func (s *InvoiceService) Search(ctx context.Context, q string) ([]models.Invoice, error) {
	return run(ctx, s.base, invoiceOp(ActionSearch), func() []models.Invoice {
		return query.FilterInvoices(s.repo.ListInvoices(ctx), query.InvoiceFilter{Search: q})
	})
}

func (s *InvoiceService) Stats(ctx context.Context) (InvoiceStats, error) {
	return run(ctx, s.base, invoiceOp(ActionStats), func() InvoiceStats {
		return ComputeInvoiceStats(s.repo.ListInvoices(ctx))
	})
}

func ComputeInvoiceStats(invoices []models.Invoice) InvoiceStats {
	st := InvoiceStats{Total: len(invoices)}
	for i := range invoices {
		inv := &invoices[i]
		st.TotalAmount += inv.Total
		switch {
		case inv.IsOutstanding():
			st.Issued++
			st.IssuedAmount += inv.Total
		case inv.Status == models.InvoiceStatusPaid:
			st.Paid++
			st.PaidAmount += inv.Total
		case inv.Status == models.InvoiceStatusOverdue:
			st.Overdue++
			st.OverdueAmount += inv.Total
		}
	}
	return st
}

// GenerateFromFees drafts an invoice for the selected fees. Unknown fee ids add
// nothing to the amounts but are still listed on the invoice, and a fee may
// already appear on another invoice.
func (s *InvoiceService) GenerateFromFees(ctx context.Context, feeIDs []string, clientID string, caseID *string) (models.Invoice, error) {
	return run(ctx, s.base, invoiceOp(ActionGenerate), func() models.Invoice {
		now := s.now()
		return s.repo.CreateInvoiceFromFees(ctx, feeIDs, func(fees []models.Fee) models.InvoiceInput {
			return DraftInvoiceFromFees(fees, feeIDs, clientID, caseID, now)
		})
	})
}

// DraftInvoiceFromFees computes the invoice input for fees at now
func DraftInvoiceFromFees(fees []models.Fee, feeIDs []string, clientID string, caseID *string, now time.Time) models.InvoiceInput {
	var subtotal float64
	for _, f := range fees {
		subtotal += f.Amount
	}
	taxes := subtotal * vatRate

	currency := models.CurrencyARS
	if len(fees) > 0 && fees[0].Currency != "" {
		currency = fees[0].Currency
	}

	var caseRef *string
	if caseID != nil {
		v := *caseID
		caseRef = &v
	}

	ids := make([]string, len(feeIDs))
	copy(ids, feeIDs)

	return models.InvoiceInput{
		Number:      invoiceNumber(now),
		ClientID:    clientID,
		CaseID:      caseRef,
		IssueDate:   FormatDate(now),
		DueDate:     FormatDate(now.AddDate(0, 0, invoiceDueDays)),
		Subtotal:    subtotal,
		Taxes:       taxes,
		Total:       subtotal + taxes,
		Currency:    currency,
		Status:      models.InvoiceStatusDraft,
		InvoiceType: models.InvoiceTypeA,
		SaleTerms:   models.SaleTermsCurrentAccount,
		Notes:       models.StringPtr(fmt.Sprintf("Factura generada automáticamente desde %d honorario(s)", len(fees))),
		FeeIDs:      ids,
	}
}

// invoiceNumber is FAC-<year>-<last 6 digits of unix millis>
func invoiceNumber(now time.Time) string {
	millis := strconv.FormatInt(now.UnixMilli(), 10)
	if len(millis) > 6 {
		millis = millis[len(millis)-6:]
	}
	return fmt.Sprintf("FAC-%d-%s", now.Year(), millis)
}
