package entity

const (
	// DefaultPageLimit is the page size used when none is requested.
	DefaultPageLimit = 10
	// MaxPageLimit caps the page size a client may request.
	MaxPageLimit = 50
)

// Page is a 1-based page request.
type Page struct {
	Number int
	Limit  int
}

// NewPage normalises a requested page. Limits below the default are raised
// to it and limits above MaxPageLimit are capped.
func NewPage(number, limit int) Page {
	if number < 1 {
		number = 1
	}
	if limit < DefaultPageLimit {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}

	return Page{Number: number, Limit: limit}
}

// Offset returns the number of rows to skip.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Limit
}

// PageResult is one page of items plus the total count across all pages.
type PageResult[T any] struct {
	Items []T
	Page  Page
	Total int64
}

// Pages returns the number of pages needed to hold Total items.
func (r PageResult[T]) Pages() int {
	if r.Page.Limit <= 0 {
		return 0
	}

	return int((r.Total + int64(r.Page.Limit) - 1) / int64(r.Page.Limit))
}
