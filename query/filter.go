package query

import (
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// DateRange bounds a date inclusively on both ends. From and To are YYYY-MM-DD; empty means unbounded.
type DateRange struct {
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
}

func (r DateRange) contains(date string) bool {
	if r.From != "" && date < r.From {
		return false
	}
	if r.To != "" && date > r.To {
		return false
	}
	return true
}

// containsTime compares the calendar date of t in UTC
func (r DateRange) containsTime(t time.Time) bool {
	return r.contains(t.UTC().Format(dateLayout))
}

func (r DateRange) activeCount() int {
	n := 0
	if r.From != "" {
		n++
	}
	if r.To != "" {
		n++
	}
	return n
}

// AmountRange bounds an amount inclusively. Nil bounds impose no constraint.
type AmountRange struct {
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`
}

func (r AmountRange) contains(v float64) bool {
	if r.Min != nil && v < *r.Min {
		return false
	}
	if r.Max != nil && v > *r.Max {
		return false
	}
	return true
}

func (r AmountRange) activeCount() int {
	n := 0
	if r.Min != nil {
		n++
	}
	if r.Max != nil {
		n++
	}
	return n
}

// normalizeSearch trims and lowercases a search term
func normalizeSearch(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// matchesAny reports whether term is a substring of any field. An empty term matches everything.
func matchesAny(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	for _, f := range fields {
		if f != "" && strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// inSet reports whether v is in set. An empty set matches everything.
func inSet(set []string, v string) bool {
	if len(set) == 0 {
		return true
	}
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// inSetOptional is inSet for optional fields; a nil value never matches a non-empty set
func inSetOptional(set []string, v *string) bool {
	if len(set) == 0 {
		return true
	}
	if v == nil {
		return false
	}
	return inSet(set, *v)
}

func countActive(search string, sets ...[]string) int {
	n := 0
	if normalizeSearch(search) != "" {
		n++
	}
	for _, s := range sets {
		if len(s) > 0 {
			n++
		}
	}
	return n
}

func filterItems[T any](items []T, keep func(*T) bool) []T {
	out := []T{}
	for i := range items {
		if keep(&items[i]) {
			out = append(out, items[i])
		}
	}
	return out
}
