package query

import (
	"strings"

	"expedientes_app_go/models"
)

// CaseFilter narrows a case listing. Search covers file number, caption and client id.
type CaseFilter struct {
	Search            string    `json:"search,omitempty"`
	JurisdictionAreas []string  `json:"jurisdiction_areas,omitempty"`
	Statuses          []string  `json:"statuses,omitempty"`
	Jurisdictions     []string  `json:"jurisdictions,omitempty"`
	Created           DateRange `json:"created,omitempty"`
}

func (f CaseFilter) ActiveCount() int {
	return countActive(f.Search, f.JurisdictionAreas, f.Statuses, f.Jurisdictions) + f.Created.activeCount()
}

func (f CaseFilter) Active() bool { return f.ActiveCount() > 0 }

// Match reports whether c satisfies every dimension of the filter
func (f CaseFilter) Match(c *models.Case) bool {
	return matchesAny(normalizeSearch(f.Search), c.FileNumber, c.Caption, c.ClientID) &&
		inSet(f.JurisdictionAreas, c.JurisdictionArea) &&
		inSet(f.Statuses, c.Status) &&
		inSetOptional(f.Jurisdictions, c.Jurisdiction) &&
		f.Created.containsTime(c.CreatedAt)
}

// DefaultCaseOrder lists the most recently updated cases first
var DefaultCaseOrder = Order{Field: "updated_at", Direction: Desc}

var caseSorter = sorter[models.Case]{
	def: DefaultCaseOrder,
	fields: map[string]compareFunc[models.Case]{
		"updated_at":  func(a, b *models.Case) int { return compareTime(a.UpdatedAt, b.UpdatedAt) },
		"file_number": func(a, b *models.Case) int { return strings.Compare(a.FileNumber, b.FileNumber) },
		"caption":     func(a, b *models.Case) int { return strings.Compare(a.Caption, b.Caption) },
		"client":      func(a, b *models.Case) int { return strings.Compare(a.ClientID, b.ClientID) },
	},
}

func FilterCases(items []models.Case, f CaseFilter) []models.Case {
	return filterItems(items, f.Match)
}

func SortCases(items []models.Case, o Order) []models.Case {
	return caseSorter.sort(items, o)
}

// ResolveCaseOrder reports the order SortCases will actually apply
func ResolveCaseOrder(o Order) Order { return caseSorter.resolve(o) }
