package pagination

import "strconv"

// PerPage is the fixed page size for every listing.
const PerPage = 10

// Page describes one resolved page of a listing.
type Page struct {
	Number     int
	TotalPages int
	TotalItems int64
	HasNext    bool
	HasPrev    bool
}

// ParsePage turns the raw page query parameter into a 1-based page number.
// Non-numeric input and numbers below 1 resolve to the first page.
func ParsePage(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// Resolve clamps the requested page against the item count: pages past the
// end resolve to the last page, and an empty listing still has one page.
func Resolve(requested int, totalItems int64) Page {
	totalPages := int((totalItems + PerPage - 1) / PerPage)
	if totalPages < 1 {
		totalPages = 1
	}

	number := requested
	if number < 1 {
		number = 1
	}
	if number > totalPages {
		number = totalPages
	}

	return Page{
		Number:     number,
		TotalPages: totalPages,
		TotalItems: totalItems,
		HasNext:    number < totalPages,
		HasPrev:    number > 1,
	}
}

// Offset is the item offset of the page within the full listing.
func (p Page) Offset() int {
	return (p.Number - 1) * PerPage
}
