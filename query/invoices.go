package query

import (
	"strings"

	"expedientes_app_go/models"
)

// InvoiceFilter narrows an invoice listing. Search covers number, notes and receipt number.
type InvoiceFilter struct {
	Search       string      `json:"search,omitempty"`
	Statuses     []string    `json:"statuses,omitempty"`
	ClientIDs    []string    `json:"client_ids,omitempty"`
	CaseIDs      []string    `json:"case_ids,omitempty"`
	InvoiceTypes []string    `json:"invoice_types,omitempty"`
	Issued       DateRange   `json:"issued,omitempty"`
	Total        AmountRange `json:"total,omitempty"`
}

func (f InvoiceFilter) ActiveCount() int {
	return countActive(f.Search, f.Statuses, f.ClientIDs, f.CaseIDs, f.InvoiceTypes) +
		f.Issued.activeCount() + f.Total.activeCount()
}

func (f InvoiceFilter) Active() bool { return f.ActiveCount() > 0 }

func (f InvoiceFilter) Match(inv *models.Invoice) bool {
	return matchesAny(normalizeSearch(f.Search), inv.Number, models.StringValue(inv.Notes), models.StringValue(inv.ReceiptNumber)) &&
		inSet(f.Statuses, inv.Status) &&
		inSet(f.ClientIDs, inv.ClientID) &&
		inSetOptional(f.CaseIDs, inv.CaseID) &&
		inSet(f.InvoiceTypes, inv.InvoiceType) &&
		f.Issued.contains(inv.IssueDate) &&
		f.Total.contains(inv.Total)
}

// DefaultInvoiceOrder lists the most recently issued invoice first
var DefaultInvoiceOrder = Order{Field: "issue_date", Direction: Desc}

var invoiceSorter = sorter[models.Invoice]{
	def: DefaultInvoiceOrder,
	fields: map[string]compareFunc[models.Invoice]{
		"issue_date": func(a, b *models.Invoice) int { return compareDate(a.IssueDate, b.IssueDate) },
		"number":     func(a, b *models.Invoice) int { return strings.Compare(a.Number, b.Number) },
		"total":      func(a, b *models.Invoice) int { return compareFloat(a.Total, b.Total) },
		"status":     func(a, b *models.Invoice) int { return strings.Compare(a.Status, b.Status) },
		"client":     func(a, b *models.Invoice) int { return strings.Compare(a.ClientID, b.ClientID) },
	},
}

func FilterInvoices(items []models.Invoice, f InvoiceFilter) []models.Invoice {
	return filterItems(items, f.Match)
}

func SortInvoices(items []models.Invoice, o Order) []models.Invoice {
	return invoiceSorter.sort(items, o)
}

func ResolveInvoiceOrder(o Order) Order { return invoiceSorter.resolve(o) }
