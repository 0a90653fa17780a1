package query

import (
	"cmp"
	"sort"
	"strings"
	"time"
)

// Direction is the sort direction of an Order
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// ParseDirection accepts "asc" or "desc" in any case; anything else is empty
func ParseDirection(s string) Direction {
	switch Direction(strings.ToLower(strings.TrimSpace(s))) {
	case Asc:
		return Asc
	case Desc:
		return Desc
	default:
		return ""
	}
}

// Order selects a sort field and direction
type Order struct {
	Field     string    `json:"field"`
	Direction Direction `json:"direction"`
}

// Toggle returns the order after selecting field in a column header: re-selecting
// a field sorted descending flips it to ascending, anything else sorts descending
func (o Order) Toggle(field string) Order {
	if o.Field == field && o.Direction == Desc {
		return Order{Field: field, Direction: Asc}
	}
	return Order{Field: field, Direction: Desc}
}

type compareFunc[T any] func(a, b *T) int

// sorter holds the comparable fields of one entity kind and its default order
type sorter[T any] struct {
	fields map[string]compareFunc[T]
	def    Order
}

// resolve replaces an unknown field with the default field and a missing direction with the default direction
func (s sorter[T]) resolve(o Order) Order {
	if _, ok := s.fields[o.Field]; !ok {
		o.Field = s.def.Field
	}
	if o.Direction != Asc && o.Direction != Desc {
		o.Direction = s.def.Direction
	}
	return o
}

// sort returns a sorted copy of items. Ties keep collection order in both directions.
func (s sorter[T]) sort(items []T, o Order) []T {
	o = s.resolve(o)
	compare := s.fields[o.Field]

	out := make([]T, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		c := compare(&out[i], &out[j])
		if o.Direction == Desc {
			return c > 0
		}
		return c < 0
	})
	return out
}

func compareTime(a, b time.Time) int {
	return a.Compare(b)
}

// compareDate orders YYYY-MM-DD strings, which sort lexicographically by date
func compareDate(a, b string) int {
	return strings.Compare(a, b)
}

func compareFloat(a, b float64) int {
	return cmp.Compare(a, b)
}
