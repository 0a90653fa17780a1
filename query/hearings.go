package query

import (
	"strings"

	"expedientes_app_go/models"
)

// HearingFilter narrows a hearing listing. Search covers title, description, court and judge.
type HearingFilter struct {
	Search   string    `json:"search,omitempty"`
	Kinds    []string  `json:"kinds,omitempty"`
	Statuses []string  `json:"statuses,omitempty"`
	Courts   []string  `json:"courts,omitempty"`
	Dates    DateRange `json:"dates,omitempty"`
}

func (f HearingFilter) ActiveCount() int {
	return countActive(f.Search, f.Kinds, f.Statuses, f.Courts) + f.Dates.activeCount()
}

func (f HearingFilter) Active() bool { return f.ActiveCount() > 0 }

func (f HearingFilter) Match(h *models.Hearing) bool {
	return matchesAny(normalizeSearch(f.Search), h.Title, models.StringValue(h.Description),
		models.StringValue(h.Court), models.StringValue(h.Judge)) &&
		inSet(f.Kinds, h.Kind) &&
		inSet(f.Statuses, h.Status) &&
		inSetOptional(f.Courts, h.Court) &&
		f.Dates.contains(h.Date)
}

// DefaultHearingOrder puts the earliest hearing first
var DefaultHearingOrder = Order{Field: "date", Direction: Asc}

var hearingSorter = sorter[models.Hearing]{
	def: DefaultHearingOrder,
	fields: map[string]compareFunc[models.Hearing]{
		"date":   func(a, b *models.Hearing) int { return compareDate(a.Date, b.Date) },
		"title":  func(a, b *models.Hearing) int { return strings.Compare(a.Title, b.Title) },
		"kind":   func(a, b *models.Hearing) int { return strings.Compare(a.Kind, b.Kind) },
		"status": func(a, b *models.Hearing) int { return strings.Compare(a.Status, b.Status) },
	},
}

func FilterHearings(items []models.Hearing, f HearingFilter) []models.Hearing {
	return filterItems(items, f.Match)
}

func SortHearings(items []models.Hearing, o Order) []models.Hearing {
	return hearingSorter.sort(items, o)
}

func ResolveHearingOrder(o Order) Order { return hearingSorter.resolve(o) }
