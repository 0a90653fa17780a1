package query

import (
	"cmp"
	"strings"

	"expedientes_app_go/models"
)

// CaseResolver looks up the case a record points to. It returns false for a dangling id.
type CaseResolver func(caseID string) (models.Case, bool)

// DeadlineFilter narrows a deadline listing. Search covers title and description,
// plus the owning case's file number and caption when a resolver is given.
type DeadlineFilter struct {
	Search     string    `json:"search,omitempty"`
	Statuses   []string  `json:"statuses,omitempty"`
	Priorities []string  `json:"priorities,omitempty"`
	Kinds      []string  `json:"kinds,omitempty"`
	CaseIDs    []string  `json:"case_ids,omitempty"`
	Due        DateRange `json:"due,omitempty"`
}

func (f DeadlineFilter) ActiveCount() int {
	return countActive(f.Search, f.Statuses, f.Priorities, f.Kinds, f.CaseIDs) + f.Due.activeCount()
}

func (f DeadlineFilter) Active() bool { return f.ActiveCount() > 0 }

func (f DeadlineFilter) Match(d *models.Deadline, resolve CaseResolver) bool {
	if !inSet(f.Statuses, d.Status) || !inSet(f.Priorities, d.Priority) ||
		!inSet(f.Kinds, d.Kind) || !inSet(f.CaseIDs, d.CaseID) || !f.Due.containsTime(d.DueAt) {
		return false
	}

	term := normalizeSearch(f.Search)
	if matchesAny(term, d.Title, models.StringValue(d.Description)) {
		return true
	}
	if resolve == nil {
		return false
	}
	c, ok := resolve(d.CaseID)
	return ok && matchesAny(term, c.FileNumber, c.Caption)
}

// DefaultDeadlineOrder puts the closest due date first
var DefaultDeadlineOrder = Order{Field: "due_at", Direction: Asc}

var deadlineSorter = sorter[models.Deadline]{
	def: DefaultDeadlineOrder,
	fields: map[string]compareFunc[models.Deadline]{
		"due_at":    func(a, b *models.Deadline) int { return compareTime(a.DueAt, b.DueAt) },
		"starts_at": func(a, b *models.Deadline) int { return compareTime(a.StartsAt, b.StartsAt) },
		"title":     func(a, b *models.Deadline) int { return strings.Compare(a.Title, b.Title) },
		// by urgency, HIGH first when ascending
		"priority": func(a, b *models.Deadline) int {
			return cmp.Compare(models.PriorityRank(a.Priority), models.PriorityRank(b.Priority))
		},
		"status": func(a, b *models.Deadline) int { return strings.Compare(a.Status, b.Status) },
	},
}

func FilterDeadlines(items []models.Deadline, f DeadlineFilter, resolve CaseResolver) []models.Deadline {
	return filterItems(items, func(d *models.Deadline) bool { return f.Match(d, resolve) })
}

func SortDeadlines(items []models.Deadline, o Order) []models.Deadline {
	return deadlineSorter.sort(items, o)
}

func ResolveDeadlineOrder(o Order) Order { return deadlineSorter.resolve(o) }
