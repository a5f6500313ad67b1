// Package catalog holds the immutable book catalog and the browsing core built on it:
// filtering, pagination, preview projection and detail lookup.
//
// # Flow
//
//	FilterSpec → Filter → ResultSet → Pagination.VisibleSlice → Render → []PreviewItem
//
// A Catalog is read-only after New returns. The only mutable state (result set,
// page, selected book) lives in a Browser, which is owned by exactly one UI
// controller at a time.
package catalog

import (
	"errors"
	"fmt"
	"maps"
	"sort"
	"time"
)

// Any matches every author or genre.
const Any = "any"

var (
	// ErrNotFound is returned when a book id does not exist in the catalog.
	ErrNotFound = errors.New("book not found")
	// ErrDuplicateBook is returned when two books share an id.
	ErrDuplicateBook = errors.New("duplicate book id")
)

// Book is a single catalog record.
type Book struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	Image       string    `json:"image"`
	Description string    `json:"description"`
	Published   time.Time `json:"published"`
	Genres      []string  `json:"genres"`
}

// HasGenre reports whether the book is tagged with the genre id.
func (b *Book) HasGenre(genre string) bool {
	for _, g := range b.Genres {
		if g == genre {
			return true
		}
	}
	return false
}

// AuthorTable maps author ids to display names.
type AuthorTable map[string]string

// GenreTable maps genre ids to display names.
type GenreTable map[string]string

// Option is a single dropdown entry.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Catalog is the complete, immutable set of books known to the application.
type Catalog struct {
	books   []*Book
	byID    map[string]*Book
	authors AuthorTable
	genres  GenreTable
}

// New builds a catalog from the given records. The input is copied, so later
// changes to the caller's slices and maps are not observed.
func New(books []Book, authors AuthorTable, genres GenreTable) (*Catalog, error) {
	c := &Catalog{
		books:   make([]*Book, 0, len(books)),
		byID:    make(map[string]*Book, len(books)),
		authors: make(AuthorTable, len(authors)),
		genres:  make(GenreTable, len(genres)),
	}

	for i := range books {
		book := books[i]
		if _, exists := c.byID[book.ID]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateBook, book.ID)
		}
		book.Genres = append([]string(nil), book.Genres...)
		c.books = append(c.books, &book)
		c.byID[book.ID] = &book
	}
	for id, name := range authors {
		c.authors[id] = name
	}
	for id, name := range genres {
		c.genres[id] = name
	}

	return c, nil
}

// Books returns the catalog in its original order as a ResultSet.
func (c *Catalog) Books() ResultSet {
	return append(ResultSet(nil), c.books...)
}

// Len returns the number of books.
func (c *Catalog) Len() int {
	return len(c.books)
}

// Authors returns a copy of the author display table.
func (c *Catalog) Authors() AuthorTable {
	return maps.Clone(c.authors)
}

// Genres returns a copy of the genre display table.
func (c *Catalog) Genres() GenreTable {
	return maps.Clone(c.genres)
}

// AuthorName resolves an author id, returning "" for unknown ids.
func (c *Catalog) AuthorName(id string) string {
	return c.authors[id]
}

// GenreName resolves a genre id, returning "" for unknown ids.
func (c *Catalog) GenreName(id string) string {
	return c.genres[id]
}

// AuthorOptions returns the author dropdown, "All Authors" first.
func (c *Catalog) AuthorOptions() []Option {
	return options(c.authors, "All Authors")
}

// GenreOptions returns the genre dropdown, "All Genres" first.
func (c *Catalog) GenreOptions() []Option {
	return options(c.genres, "All Genres")
}

func options(table map[string]string, anyLabel string) []Option {
	opts := make([]Option, 0, len(table)+1)
	for id, name := range table {
		opts = append(opts, Option{Value: id, Label: name})
	}
	sort.Slice(opts, func(i, j int) bool {
		if opts[i].Label == opts[j].Label {
			return opts[i].Value < opts[j].Value
		}
		return opts[i].Label < opts[j].Label
	})
	return append([]Option{{Value: Any, Label: anyLabel}}, opts...)
}
