package catalog

import "github.com/devfolio-app/portfolio-backend/internal/catalog/domain"

// DefaultPageSize is the fixed number of records shown per page.
const DefaultPageSize = 6

// Page is the result of paginating a filtered subset.
type Page struct {
	Items      []domain.Record
	Number     int // clamped into [1, TotalPages]
	TotalPages int // always >= 1, even for an empty subset
	TotalItems int
}

// Paginate clamps the requested page into [1, totalPages] and returns the
// corresponding contiguous slice. totalPages is at least 1 so an empty
// subset still reads "page 1 of 1" rather than "page 0 of 0". It is pure.
func Paginate(filtered []domain.Record, pageSize, requested int) Page {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	total := len(filtered)
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	page := requested
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Page{
		Items:      filtered[start:end],
		Number:     page,
		TotalPages: totalPages,
		TotalItems: total,
	}
}
