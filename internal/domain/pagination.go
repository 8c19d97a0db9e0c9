package domain

import "math"

// Default page parameters for list endpoints.
const (
	DefaultPageNumber = 0
	DefaultPageSize   = 10
)

// maxPageEnd bounds the index one past a page's last element, so offsets and
// limits fit the int32 the queries take.
const maxPageEnd = math.MaxInt32

// Page selects a zero-based page of a list.
type Page struct {
	Number int
	Size   int
}

// Valid reports whether the page has a non-negative number, a positive size
// and ends within maxPageEnd.
func (p Page) Valid() bool {
	if p.Number < 0 || p.Size < 1 || p.Size > maxPageEnd {
		return false
	}
	return p.Number < maxPageEnd/p.Size
}

// Offset returns the index of the first element of the page. Only meaningful
// for a valid page.
func (p Page) Offset() int {
	return p.Number * p.Size
}

// Paginate returns the page of items. Pages past the end, and invalid pages,
// are empty.
func Paginate[T any](items []T, p Page) []T {
	if !p.Valid() {
		return []T{}
	}
	start := p.Offset()
	if start >= len(items) {
		return []T{}
	}
	end := min(start+p.Size, len(items))
	return items[start:end]
}
