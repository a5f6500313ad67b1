package catalog

import (
	"strings"

	"golang.org/x/text/cases"
)

// FilterSpec is the user-supplied criteria for one search submission.
type FilterSpec struct {
	Title  string `json:"title" form:"title"`
	Author string `json:"author" form:"author"`
	Genre  string `json:"genre" form:"genre"`
}

// MatchAll returns a spec that selects the whole catalog.
func MatchAll() FilterSpec {
	return FilterSpec{Author: Any, Genre: Any}
}

// Normalize trims the title and maps missing author/genre values to Any.
// Any other value, including unknown ids, is kept as-is and will match nothing.
func (s FilterSpec) Normalize() FilterSpec {
	s.Title = strings.TrimSpace(s.Title)
	if strings.TrimSpace(s.Author) == "" {
		s.Author = Any
	}
	if strings.TrimSpace(s.Genre) == "" {
		s.Genre = Any
	}
	return s
}

// IsEmpty reports whether the spec matches every book.
func (s FilterSpec) IsEmpty() bool {
	n := s.Normalize()
	return n.Title == "" && n.Author == Any && n.Genre == Any
}

// ResultSet is the ordered subset of the catalog matching a FilterSpec.
type ResultSet []*Book

// Filter returns the books matching spec, in catalog order.
func Filter(c *Catalog, spec FilterSpec) ResultSet {
	spec = spec.Normalize()
	folder := cases.Fold()
	needle := folder.String(spec.Title)

	result := make(ResultSet, 0, len(c.books))
	for _, book := range c.books {
		if !matchesTitle(folder, book, needle) {
			continue
		}
		if spec.Author != Any && book.Author != spec.Author {
			continue
		}
		if spec.Genre != Any && !book.HasGenre(spec.Genre) {
			continue
		}
		result = append(result, book)
	}
	return result
}

func matchesTitle(folder cases.Caser, book *Book, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(folder.String(book.Title), needle)
}
