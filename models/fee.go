package models

import "time"

// Currency constants
const (
	CurrencyARS = "ARS"
	CurrencyUSD = "USD"
	CurrencyEUR = "EUR"
)

// Fee kind constants
const (
	FeeKindFees            = "FEES"
	FeeKindExpenses        = "EXPENSES"
	FeeKindFeesAndExpenses = "FEES_AND_EXPENSES"
	FeeKindAdvance         = "ADVANCE"
	FeeKindOther           = "OTHER"
)

// Fee status constants
const (
	FeeStatusPending   = "PENDING"
	FeeStatusInvoiced  = "INVOICED"
	FeeStatusCollected = "COLLECTED"
	FeeStatusOverdue   = "OVERDUE"
	FeeStatusCancelled = "CANCELLED"
)

// Payment method constants
const (
	PaymentCash     = "CASH"
	PaymentTransfer = "TRANSFER"
	PaymentCheck    = "CHECK"
	PaymentCard     = "CARD"
	PaymentOther    = "OTHER"
)

// Fee represents a billable line item (honorario) tied to a case and a client.
// Dates are YYYY-MM-DD.
type Fee struct {
	ID             string    `json:"id"`
	CaseID         string    `json:"case_id"`
	ClientID       string    `json:"client_id"`
	Concept        string    `json:"concept"`
	Description    *string   `json:"description,omitempty"`
	Amount         float64   `json:"amount"`
	Currency       string    `json:"currency"`
	Kind           string    `json:"kind"`
	Status         string    `json:"status"`
	ServiceDate    string    `json:"service_date"`
	DueDate        *string   `json:"due_date,omitempty"`
	CollectionDate *string   `json:"collection_date,omitempty"`
	PaymentMethod  *string   `json:"payment_method,omitempty"`
	Observations   *string   `json:"observations,omitempty"`
	InvoiceNumber  *string   `json:"invoice_number,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// FeeInput holds the fields supplied when recording a fee
type FeeInput struct {
	CaseID         string  `json:"case_id" validate:"required"`
	ClientID       string  `json:"client_id" validate:"required"`
	Concept        string  `json:"concept" validate:"required,max=200"`
	Description    *string `json:"description,omitempty"`
	Amount         float64 `json:"amount" validate:"gte=0"`
	Currency       string  `json:"currency" validate:"required,oneof=ARS USD EUR"`
	Kind           string  `json:"kind" validate:"required,oneof=FEES EXPENSES FEES_AND_EXPENSES ADVANCE OTHER"`
	Status         string  `json:"status" validate:"required,oneof=PENDING INVOICED COLLECTED OVERDUE CANCELLED"`
	ServiceDate    string  `json:"service_date" validate:"required,datetime=2006-01-02"`
	DueDate        *string `json:"due_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	CollectionDate *string `json:"collection_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	PaymentMethod  *string `json:"payment_method,omitempty" validate:"omitempty,oneof=CASH TRANSFER CHECK CARD OTHER"`
	Observations   *string `json:"observations,omitempty"`
	InvoiceNumber  *string `json:"invoice_number,omitempty"`
}

// FeePatch lists the fee fields that may change on update
type FeePatch struct {
	CaseID         *string  `json:"case_id,omitempty"`
	ClientID       *string  `json:"client_id,omitempty"`
	Concept        *string  `json:"concept,omitempty" validate:"omitempty,max=200"`
	Description    *string  `json:"description,omitempty"`
	Amount         *float64 `json:"amount,omitempty" validate:"omitempty,gte=0"`
	Currency       *string  `json:"currency,omitempty" validate:"omitempty,oneof=ARS USD EUR"`
	Kind           *string  `json:"kind,omitempty" validate:"omitempty,oneof=FEES EXPENSES FEES_AND_EXPENSES ADVANCE OTHER"`
	Status         *string  `json:"status,omitempty" validate:"omitempty,oneof=PENDING INVOICED COLLECTED OVERDUE CANCELLED"`
	ServiceDate    *string  `json:"service_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	DueDate        *string  `json:"due_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	CollectionDate *string  `json:"collection_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	PaymentMethod  *string  `json:"payment_method,omitempty" validate:"omitempty,oneof=CASH TRANSFER CHECK CARD OTHER"`
	Observations   *string  `json:"observations,omitempty"`
	InvoiceNumber  *string  `json:"invoice_number,omitempty"`
}

// NewFee builds a fee from its input
func NewFee(in FeeInput) Fee {
	return Fee{
		CaseID:         in.CaseID,
		ClientID:       in.ClientID,
		Concept:        in.Concept,
		Description:    cloneString(in.Description),
		Amount:         in.Amount,
		Currency:       in.Currency,
		Kind:           in.Kind,
		Status:         in.Status,
		ServiceDate:    in.ServiceDate,
		DueDate:        cloneString(in.DueDate),
		CollectionDate: cloneString(in.CollectionDate),
		PaymentMethod:  cloneString(in.PaymentMethod),
		Observations:   cloneString(in.Observations),
		InvoiceNumber:  cloneString(in.InvoiceNumber),
	}
}

// Apply merges the non-nil patch fields into f
func (p FeePatch) Apply(f *Fee) {
	if p.CaseID != nil {
		f.CaseID = *p.CaseID
	}
	if p.ClientID != nil {
		f.ClientID = *p.ClientID
	}
	if p.Concept != nil {
		f.Concept = *p.Concept
	}
	if p.Description != nil {
		f.Description = cloneString(p.Description)
	}
	if p.Amount != nil {
		f.Amount = *p.Amount
	}
	if p.Currency != nil {
		f.Currency = *p.Currency
	}
	if p.Kind != nil {
		f.Kind = *p.Kind
	}
	if p.Status != nil {
		f.Status = *p.Status
	}
	if p.ServiceDate != nil {
		f.ServiceDate = *p.ServiceDate
	}
	if p.DueDate != nil {
		f.DueDate = cloneString(p.DueDate)
	}
	if p.CollectionDate != nil {
		f.CollectionDate = cloneString(p.CollectionDate)
	}
	if p.PaymentMethod != nil {
		f.PaymentMethod = cloneString(p.PaymentMethod)
	}
	if p.Observations != nil {
		f.Observations = cloneString(p.Observations)
	}
	if p.InvoiceNumber != nil {
		f.InvoiceNumber = cloneString(p.InvoiceNumber)
	}
}

// Clone returns a deep copy of the fee
func (f Fee) Clone() Fee {
	f.Description = cloneString(f.Description)
	f.DueDate = cloneString(f.DueDate)
	f.CollectionDate = cloneString(f.CollectionDate)
	f.PaymentMethod = cloneString(f.PaymentMethod)
	f.Observations = cloneString(f.Observations)
	f.InvoiceNumber = cloneString(f.InvoiceNumber)
	return f
}

// EntityID returns the fee identifier
func (f Fee) EntityID() string { return f.ID }
