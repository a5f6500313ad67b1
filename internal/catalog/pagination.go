package catalog

import (
	"fmt"
	"math"
)

// DefaultPageSize is used when no positive page size is configured.
const DefaultPageSize = 36

// Pagination tracks which slice of a ResultSet is visible.
// Page starts at 1 and is never bounds-checked against the result set.
type Pagination struct {
	PageSize int `json:"page_size"`
	Page     int `json:"page"`
}

// NewPagination returns a cursor on page 1.
func NewPagination(pageSize int) Pagination {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return Pagination{PageSize: pageSize, Page: 1}
}

// AtPage returns a copy of p positioned on page; values below 1 become 1.
func (p Pagination) AtPage(page int) Pagination {
	if page < 1 {
		page = 1
	}
	p.Page = page
	return p
}

// Advance moves to the next page. The page number saturates at math.MaxInt.
func (p Pagination) Advance() Pagination {
	if p.Page < math.MaxInt {
		p.Page++
	}
	return p
}

// Reset moves back to page 1.
func (p Pagination) Reset() Pagination {
	p.Page = 1
	return p
}

// VisibleSlice returns rs[(page-1)*size : page*size] clipped to the bounds of rs.
func (p Pagination) VisibleSlice(rs ResultSet) ResultSet {
	return rs[p.offset(p.Page-1, len(rs)):p.offset(p.Page, len(rs))]
}

// Cumulative returns every item up to and including the current page.
func (p Pagination) Cumulative(rs ResultSet) ResultSet {
	return rs[:p.offset(p.Page, len(rs))]
}

// Remaining returns how many matches are left after the current page, never below zero.
func (p Pagination) Remaining(rs ResultSet) int {
	return len(rs) - p.offset(p.Page, len(rs))
}

// HasMore reports whether a "show more" action would reveal anything.
func (p Pagination) HasMore(rs ResultSet) bool {
	return p.Remaining(rs) > 0
}

// ShowMoreLabel formats the "show more" button text.
func ShowMoreLabel(remaining int) string {
	if remaining < 0 {
		remaining = 0
	}
	return fmt.Sprintf("Show more (%d)", remaining)
}

// offset returns pages*size clipped to [0, n] without overflowing for large pages.
func (p Pagination) offset(pages, n int) int {
	size := p.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}
	if pages <= 0 {
		return 0
	}
	if pages > (n+size-1)/size {
		return n
	}
	return min(pages*size, n)
}
