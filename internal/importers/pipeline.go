package importers

import (
	"fmt"
	"html"
	"log"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/mrlokans/bookshelf/internal/entities"
)

// Source describes where a dataset came from.
type Source struct {
	Name     string
	Location string
}

// String returns the location recorded as import provenance.
func (s Source) String() string {
	if s.Location != "" {
		return s.Location
	}
	return s.Name
}

// Converter produces a dataset from some input.
//
// Implementations:
//   - FileConverter (dataset.go) - JSON or YAML file on disk
//   - ReaderConverter (dataset.go) - JSON or YAML stream
//   - dataset.Embedded (internal/dataset) - the bundled sample catalog
type Converter interface {
	Convert() (*Dataset, Source, error)
}

// Store persists a converted catalog, replacing whatever was stored before.
type Store interface {
	SaveCatalog(source string, authors []entities.Author, genres []entities.Genre, books []entities.Book) error
}

// Result summarizes one import.
type Result struct {
	Source  string `json:"source"`
	Books   int    `json:"books"`
	Authors int    `json:"authors"`
	Genres  int    `json:"genres"`
}

// Pipeline handles the import workflow:
// convert → validate → sanitize → save.
type Pipeline struct {
	store     Store
	sanitizer *bluemonday.Policy
}

// NewPipeline creates a new import pipeline writing to store.
func NewPipeline(store Store) *Pipeline {
	return &Pipeline{
		store:     store,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// Import converts, validates and stores a dataset.
func (p *Pipeline) Import(converter Converter) (Result, error) {
	ds, source, err := converter.Convert()
	if err != nil {
		return Result{}, err
	}
	if err := Validate(ds); err != nil {
		return Result{}, err
	}

	authors, genres, books, err := p.ToEntities(ds)
	if err != nil {
		return Result{}, err
	}

	if err := p.store.SaveCatalog(source.String(), authors, genres, books); err != nil {
		return Result{}, fmt.Errorf("failed to save catalog: %w", err)
	}

	log.Printf("Imported catalog from %s: %d books", source, len(books))

	return Result{
		Source:  source.String(),
		Books:   len(books),
		Authors: len(authors),
		Genres:  len(genres),
	}, nil
}

// ToEntities converts a validated dataset, keeping book order and stripping markup
// from titles and descriptions.
func (p *Pipeline) ToEntities(ds *Dataset) ([]entities.Author, []entities.Genre, []entities.Book, error) {
	authors := make([]entities.Author, 0, len(ds.Authors))
	for id, name := range ds.Authors {
		authors = append(authors, entities.Author{ID: id, Name: p.clean(name)})
	}

	genres := make([]entities.Genre, 0, len(ds.Genres))
	for id, name := range ds.Genres {
		genres = append(genres, entities.Genre{ID: id, Name: p.clean(name)})
	}

	books := make([]entities.Book, 0, len(ds.Books))
	for i, raw := range ds.Books {
		published, err := ParsePublished(raw.Published)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("books[%d]: %w", i, err)
		}

		genreRefs := make([]entities.Genre, 0, len(raw.Genres))
		seen := make(map[string]bool, len(raw.Genres))
		for _, g := range raw.Genres {
			if seen[g] {
				continue
			}
			seen[g] = true
			genreRefs = append(genreRefs, entities.Genre{ID: g})
		}

		books = append(books, entities.Book{
			ID:          raw.ID,
			Position:    i,
			Title:       p.clean(raw.Title),
			AuthorID:    raw.Author,
			Image:       strings.TrimSpace(raw.Image),
			Description: p.clean(raw.Description),
			Published:   published,
			Genres:      genreRefs,
		})
	}

	return authors, genres, books, nil
}

// clean strips all markup; text is rendered through html/template, which escapes it again.
func (p *Pipeline) clean(s string) string {
	return strings.TrimSpace(html.UnescapeString(p.sanitizer.Sanitize(s)))
}
