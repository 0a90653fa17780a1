package query

import (
	"strings"

	"expedientes_app_go/models"
)

// FeeFilter narrows a fee listing. Search covers concept, description, invoice number and observations.
type FeeFilter struct {
	Search    string      `json:"search,omitempty"`
	Kinds     []string    `json:"kinds,omitempty"`
	Statuses  []string    `json:"statuses,omitempty"`
	ClientIDs []string    `json:"client_ids,omitempty"`
	CaseIDs   []string    `json:"case_ids,omitempty"`
	Service   DateRange   `json:"service,omitempty"`
	Amount    AmountRange `json:"amount,omitempty"`
}

func (f FeeFilter) ActiveCount() int {
	return countActive(f.Search, f.Kinds, f.Statuses, f.ClientIDs, f.CaseIDs) +
		f.Service.activeCount() + f.Amount.activeCount()
}

func (f FeeFilter) Active() bool { return f.ActiveCount() > 0 }

func (f FeeFilter) Match(fee *models.Fee) bool {
	return matchesAny(normalizeSearch(f.Search), fee.Concept, models.StringValue(fee.Description),
		models.StringValue(fee.InvoiceNumber), models.StringValue(fee.Observations)) &&
		inSet(f.Kinds, fee.Kind) &&
		inSet(f.Statuses, fee.Status) &&
		inSet(f.ClientIDs, fee.ClientID) &&
		inSet(f.CaseIDs, fee.CaseID) &&
		f.Service.contains(fee.ServiceDate) &&
		f.Amount.contains(fee.Amount)
}

// DefaultFeeOrder lists the most recent service date first
var DefaultFeeOrder = Order{Field: "service_date", Direction: Desc}

var feeSorter = sorter[models.Fee]{
	def: DefaultFeeOrder,
	fields: map[string]compareFunc[models.Fee]{
		"service_date": func(a, b *models.Fee) int { return compareDate(a.ServiceDate, b.ServiceDate) },
		"amount":       func(a, b *models.Fee) int { return compareFloat(a.Amount, b.Amount) },
		"concept":      func(a, b *models.Fee) int { return strings.Compare(a.Concept, b.Concept) },
		"status":       func(a, b *models.Fee) int { return strings.Compare(a.Status, b.Status) },
		"client":       func(a, b *models.Fee) int { return strings.Compare(a.ClientID, b.ClientID) },
	},
}

func FilterFees(items []models.Fee, f FeeFilter) []models.Fee {
	return filterItems(items, f.Match)
}

func SortFees(items []models.Fee, o Order) []models.Fee {
	return feeSorter.sort(items, o)
}

func ResolveFeeOrder(o Order) Order { return feeSorter.resolve(o) }
