package repository

// Default page sizes used by listing endpoints.
const (
	DefaultProductPageSize = 12
	DefaultUserPageSize    = 15
	MaxPageSize            = 100
)

// PageRequest is a zero-based page request.
type PageRequest struct {
	Page int
	Size int
}

// Normalize clamps the request to sane bounds using defaultSize when Size is unset.
func (p PageRequest) Normalize(defaultSize int) PageRequest {
	if p.Page < 0 {
		p.Page = 0
	}
	if p.Size <= 0 {
		p.Size = defaultSize
	}
	if p.Size > MaxPageSize {
		p.Size = MaxPageSize
	}

	return p
}

// Offset returns the row offset of the page.
func (p PageRequest) Offset() int {
	return p.Page * p.Size
}

// Page is one slice of a sorted result set.
type Page[T any] struct {
	Items []T
	Page  int
	Size  int
	Total int64
}

// TotalPages returns the number of pages for Total items.
func (p *Page[T]) TotalPages() int {
	if p.Size <= 0 {
		return 0
	}

	return int((p.Total + int64(p.Size) - 1) / int64(p.Size))
}
