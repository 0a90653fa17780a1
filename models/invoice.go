package models

import "time"

// Invoice status constants
const (
	InvoiceStatusDraft     = "DRAFT"
	InvoiceStatusIssued    = "ISSUED"
	InvoiceStatusSent      = "SENT"
	InvoiceStatusPaid      = "PAID"
	InvoiceStatusOverdue   = "OVERDUE"
	InvoiceStatusCancelled = "CANCELLED"
)

// Invoice type constants (AFIP letters)
const (
	InvoiceTypeA = "A"
	InvoiceTypeB = "B"
	InvoiceTypeC = "C"
	InvoiceTypeE = "E"
)

// Sale terms constants
const (
	SaleTermsCash           = "CASH"
	SaleTermsCurrentAccount = "CURRENT_ACCOUNT"
	SaleTermsCheck          = "CHECK"
	SaleTermsCard           = "CARD"
)

// Invoice represents a billing document (factura) aggregating fees for a client.
// FeeIDs is not deduplicated and a fee may appear on more than one invoice.
type Invoice struct {
	ID            string    `json:"id"`
	Number        string    `json:"number"`
	ClientID      string    `json:"client_id"`
	CaseID        *string   `json:"case_id,omitempty"`
	IssueDate     string    `json:"issue_date"`
	DueDate       string    `json:"due_date"`
	PaidDate      *string   `json:"paid_date,omitempty"`
	Subtotal      float64   `json:"subtotal"`
	Taxes         float64   `json:"taxes"`
	Total         float64   `json:"total"`
	Currency      string    `json:"currency"`
	Status        string    `json:"status"`
	InvoiceType   string    `json:"invoice_type"`
	SaleTerms     string    `json:"sale_terms"`
	Notes         *string   `json:"notes,omitempty"`
	FeeIDs        []string  `json:"fee_ids"`
	PaymentMethod *string   `json:"payment_method,omitempty"`
	ReceiptNumber *string   `json:"receipt_number,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// InvoiceInput holds the fields supplied when issuing an invoice
type InvoiceInput struct {
	Number        string   `json:"number" validate:"required"`
	ClientID      string   `json:"client_id" validate:"required"`
	CaseID        *string  `json:"case_id,omitempty"`
	IssueDate     string   `json:"issue_date" validate:"required,datetime=2006-01-02"`
	DueDate       string   `json:"due_date" validate:"required,datetime=2006-01-02"`
	PaidDate      *string  `json:"paid_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Subtotal      float64  `json:"subtotal" validate:"gte=0"`
	Taxes         float64  `json:"taxes" validate:"gte=0"`
	Total         float64  `json:"total" validate:"gte=0"`
	Currency      string   `json:"currency" validate:"required,oneof=ARS USD EUR"`
	Status        string   `json:"status" validate:"required,oneof=DRAFT ISSUED SENT PAID OVERDUE CANCELLED"`
	InvoiceType   string   `json:"invoice_type" validate:"required,oneof=A B C E"`
	SaleTerms     string   `json:"sale_terms" validate:"required,oneof=CASH CURRENT_ACCOUNT CHECK CARD"`
	Notes         *string  `json:"notes,omitempty"`
	FeeIDs        []string `json:"fee_ids"`
	PaymentMethod *string  `json:"payment_method,omitempty" validate:"omitempty,oneof=CASH TRANSFER CHECK CARD OTHER"`
	ReceiptNumber *string  `json:"receipt_number,omitempty"`
}

// InvoicePatch lists the invoice fields that may change on update
type InvoicePatch struct {
	Number        *string  `json:"number,omitempty"`
	ClientID      *string  `json:"client_id,omitempty"`
	CaseID        *string  `json:"case_id,omitempty"`
	IssueDate     *string  `json:"issue_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	DueDate       *string  `json:"due_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	PaidDate      *string  `json:"paid_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Subtotal      *float64 `json:"subtotal,omitempty" validate:"omitempty,gte=0"`
	Taxes         *float64 `json:"taxes,omitempty" validate:"omitempty,gte=0"`
	Total         *float64 `json:"total,omitempty" validate:"omitempty,gte=0"`
	Currency      *string  `json:"currency,omitempty" validate:"omitempty,oneof=ARS USD EUR"`
	Status        *string  `json:"status,omitempty" validate:"omitempty,oneof=DRAFT ISSUED SENT PAID OVERDUE CANCELLED"`
	InvoiceType   *string  `json:"invoice_type,omitempty" validate:"omitempty,oneof=A B C E"`
	SaleTerms     *string  `json:"sale_terms,omitempty" validate:"omitempty,oneof=CASH CURRENT_ACCOUNT CHECK CARD"`
	Notes         *string  `json:"notes,omitempty"`
	FeeIDs        []string `json:"fee_ids,omitempty"`
	PaymentMethod *string  `json:"payment_method,omitempty" validate:"omitempty,oneof=CASH TRANSFER CHECK CARD OTHER"`
	ReceiptNumber *string  `json:"receipt_number,omitempty"`
}

// NewInvoice builds an invoice from its input
func NewInvoice(in InvoiceInput) Invoice {
	feeIDs := cloneStrings(in.FeeIDs)
	if feeIDs == nil {
		feeIDs = []string{}
	}
	return Invoice{
		Number:        in.Number,
		ClientID:      in.ClientID,
		CaseID:        cloneString(in.CaseID),
		IssueDate:     in.IssueDate,
		DueDate:       in.DueDate,
		PaidDate:      cloneString(in.PaidDate),
		Subtotal:      in.Subtotal,
		Taxes:         in.Taxes,
		Total:         in.Total,
		Currency:      in.Currency,
		Status:        in.Status,
		InvoiceType:   in.InvoiceType,
		SaleTerms:     in.SaleTerms,
		Notes:         cloneString(in.Notes),
		FeeIDs:        feeIDs,
		PaymentMethod: cloneString(in.PaymentMethod),
		ReceiptNumber: cloneString(in.ReceiptNumber),
	}
}

// Apply merges the non-nil patch fields into inv
func (p InvoicePatch) Apply(inv *Invoice) {
	if p.Number != nil {
		inv.Number = *p.Number
	}
	if p.ClientID != nil {
		inv.ClientID = *p.ClientID
	}
	if p.CaseID != nil {
		inv.CaseID = cloneString(p.CaseID)
	}
	if p.IssueDate != nil {
		inv.IssueDate = *p.IssueDate
	}
	if p.DueDate != nil {
		inv.DueDate = *p.DueDate
	}
	if p.PaidDate != nil {
		inv.PaidDate = cloneString(p.PaidDate)
	}
	if p.Subtotal != nil {
		inv.Subtotal = *p.Subtotal
	}
	if p.Taxes != nil {
		inv.Taxes = *p.Taxes
	}
	if p.Total != nil {
		inv.Total = *p.Total
	}
	if p.Currency != nil {
		inv.Currency = *p.Currency
	}
	if p.Status != nil {
		inv.Status = *p.Status
	}
	if p.InvoiceType != nil {
		inv.InvoiceType = *p.InvoiceType
	}
	if p.SaleTerms != nil {
		inv.SaleTerms = *p.SaleTerms
	}
	if p.Notes != nil {
		inv.Notes = cloneString(p.Notes)
	}
	if p.FeeIDs != nil {
		inv.FeeIDs = cloneStrings(p.FeeIDs)
	}
	if p.PaymentMethod != nil {
		inv.PaymentMethod = cloneString(p.PaymentMethod)
	}
	if p.ReceiptNumber != nil {
		inv.ReceiptNumber = cloneString(p.ReceiptNumber)
	}
}

// Clone returns a deep copy of the invoice
func (inv Invoice) Clone() Invoice {
	inv.CaseID = cloneString(inv.CaseID)
	inv.PaidDate = cloneString(inv.PaidDate)
	inv.Notes = cloneString(inv.Notes)
	inv.FeeIDs = cloneStrings(inv.FeeIDs)
	inv.PaymentMethod = cloneString(inv.PaymentMethod)
	inv.ReceiptNumber = cloneString(inv.ReceiptNumber)
	return inv
}

// EntityID returns the invoice identifier
func (inv Invoice) EntityID() string { return inv.ID }

// IsOutstanding reports whether the invoice was issued or sent but not yet settled
func (inv *Invoice) IsOutstanding() bool {
	return inv.Status == InvoiceStatusIssued || inv.Status == InvoiceStatusSent
}
