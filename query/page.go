package query

// DefaultPageSize is used when a non-positive page size is requested
const DefaultPageSize = 10

// Page is one slice of a result set
type Page[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// Paginate returns items[(page-1)*size : page*size]. Pages are 1-based; a
// non-positive or out-of-range page yields an empty slice.
func Paginate[T any](items []T, page, size int) Page[T] {
	if size <= 0 {
		size = DefaultPageSize
	}
	total := len(items)
	result := Page[T]{
		Items:      []T{},
		Page:       page,
		PageSize:   size,
		Total:      total,
		TotalPages: (total + size - 1) / size,
	}
	if page < 1 {
		return result
	}

	start := (page - 1) * size
	if start >= total {
		return result
	}
	end := start + size
	if end > total {
		end = total
	}
	result.Items = append(result.Items, items[start:end]...)
	return result
}
