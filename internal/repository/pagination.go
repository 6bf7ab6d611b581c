package repository

// Page represents a simple limit/offset window for listing operations.
type Page struct {
	Limit  int
	Offset int
}

// PageResult carries a slice of items and the total count before windowing.
// I return the total so clients can compute pagination without an extra round trip.
type PageResult[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

// Window slices items to the page. A non-positive limit returns everything after offset.
func Window[T any](items []T, p Page) PageResult[T] {
	total := len(items)
	start := min(max(p.Offset, 0), total)
	end := total
	if p.Limit > 0 {
		end = min(start+p.Limit, total)
	}
	return PageResult[T]{Items: items[start:end], Total: total}
}
