package importers

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/bookshelf/internal/entities"
)

type mockStore struct {
	source      string
	authors     []entities.Author
	genres      []entities.Genre
	books       []entities.Book
	returnError error
}

func (m *mockStore) SaveCatalog(source string, authors []entities.Author, genres []entities.Genre, books []entities.Book) error {
	if m.returnError != nil {
		return m.returnError
	}
	m.source = source
	m.authors = authors
	m.genres = genres
	m.books = books
	return nil
}

const sampleJSON = `{
  "books": [
    {"id": "b1", "title": "Dune", "author": "a1", "genres": ["g1"], "image": "https://example.org/dune.jpg",
     "description": "<p>Spice &amp; sand</p>", "published": "1965-08-01T00:00:00.000Z"},
    {"id": "b2", "title": "The Dispossessed", "author": "a2", "genres": ["g1", "g1"], "published": "1974-05-01"}
  ],
  "authors": {"a1": "Frank Herbert", "a2": "Ursula K. Le Guin"},
  "genres": {"g1": "Science Fiction"}
}`

const sampleYAML = `
books:
  - id: b1
    title: Dune
    author: a1
    genres: [g1]
    published: 1965-08-01
authors:
  a1: Frank Herbert
genres:
  g1: Science Fiction
`

func TestPipeline_Import_JSON(t *testing.T) {
	store := &mockStore{}
	pipeline := NewPipeline(store)

	result, err := pipeline.Import(&ReaderConverter{Reader: strings.NewReader(sampleJSON), Format: FormatJSON, Name: "inline.json"})
	require.NoError(t, err)

	assert.Equal(t, Result{Source: "inline.json", Books: 2, Authors: 2, Genres: 1}, result)
	assert.Equal(t, "inline.json", store.source)
	require.Len(t, store.books, 2)

	dune := store.books[0]
	assert.Equal(t, "b1", dune.ID)
	assert.Equal(t, 0, dune.Position)
	assert.Equal(t, "a1", dune.AuthorID)
	assert.Equal(t, "Spice & sand", dune.Description)
	assert.Equal(t, 1965, dune.Published.Year())

	// Duplicate genre references collapse to one association
	assert.Equal(t, []string{"g1"}, store.books[1].GenreIDs())
	assert.Equal(t, 1, store.books[1].Position)
}

func TestPipeline_Import_YAML(t *testing.T) {
	store := &mockStore{}
	pipeline := NewPipeline(store)

	result, err := pipeline.Import(&ReaderConverter{Reader: strings.NewReader(sampleYAML), Format: FormatYAML, Name: "inline.yaml"})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Books)
	require.Len(t, store.books, 1)
	assert.Equal(t, "Dune", store.books[0].Title)
	assert.Equal(t, 1965, store.books[0].Published.Year())
}

func TestPipeline_Import_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleJSON), 0644))

	store := &mockStore{}
	result, err := NewPipeline(store).Import(NewFileConverter(path))
	require.NoError(t, err)
	assert.Equal(t, path, result.Source)
	assert.Len(t, store.books, 2)
}

func TestPipeline_Import_Errors(t *testing.T) {
	t.Run("unsupported extension", func(t *testing.T) {
		_, err := NewPipeline(&mockStore{}).Import(NewFileConverter("catalog.csv"))
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := NewPipeline(&mockStore{}).Import(NewFileConverter(filepath.Join(t.TempDir(), "missing.json")))
		assert.Error(t, err)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		_, err := NewPipeline(&mockStore{}).Import(&ReaderConverter{Reader: strings.NewReader("{"), Format: FormatJSON})
		assert.Error(t, err)
	})

	t.Run("invalid dataset is not stored", func(t *testing.T) {
		store := &mockStore{}
		bad := `{"books": [{"id": "b1", "title": "Orphan", "author": "nobody"}], "authors": {}, "genres": {}}`

		_, err := NewPipeline(store).Import(&ReaderConverter{Reader: strings.NewReader(bad), Format: FormatJSON})

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Nil(t, store.books)
	})

	t.Run("store failure", func(t *testing.T) {
		store := &mockStore{returnError: errors.New("disk full")}
		_, err := NewPipeline(store).Import(&ReaderConverter{Reader: strings.NewReader(sampleJSON), Format: FormatJSON})
		assert.ErrorContains(t, err, "disk full")
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Dataset {
		return &Dataset{
			Books: []RawBook{
				{ID: "b1", Title: "Dune", Author: "a1", Genres: []string{"g1"}, Image: "https://example.org/d.jpg", Published: "1965-08-01"},
			},
			Authors: map[string]string{"a1": "Frank Herbert"},
			Genres:  map[string]string{"g1": "Science Fiction"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(ds *Dataset)
		problem string
	}{
		{name: "valid", mutate: func(ds *Dataset) {}},
		{name: "missing id", mutate: func(ds *Dataset) { ds.Books[0].ID = "" }, problem: "Books[0].ID: is required"},
		{name: "missing title", mutate: func(ds *Dataset) { ds.Books[0].Title = "" }, problem: "Books[0].Title: is required"},
		{name: "bad image url", mutate: func(ds *Dataset) { ds.Books[0].Image = "not a url" }, problem: "is not a valid URL"},
		{name: "bad date", mutate: func(ds *Dataset) { ds.Books[0].Published = "yesterday" }, problem: "is not a valid date"},
		{name: "unknown author", mutate: func(ds *Dataset) { ds.Books[0].Author = "a2" }, problem: `unknown author "a2"`},
		{name: "unknown genre", mutate: func(ds *Dataset) { ds.Books[0].Genres = []string{"g9"} }, problem: `unknown genre "g9"`},
		{name: "empty genre id", mutate: func(ds *Dataset) { ds.Books[0].Genres = []string{""} }, problem: "Books[0].Genres[0]: is required"},
		{
			name: "duplicate id",
			mutate: func(ds *Dataset) {
				ds.Books = append(ds.Books, RawBook{ID: "b1", Title: "Dune again", Author: "a1"})
			},
			problem: `duplicate id "b1"`,
		},
		{name: "empty author name", mutate: func(ds *Dataset) { ds.Authors["a1"] = "" }, problem: "is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := valid()
			tt.mutate(ds)

			err := Validate(ds)
			if tt.problem == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.problem)
		})
	}
}

func TestParsePublished(t *testing.T) {
	tests := []struct {
		input   string
		year    int
		wantErr bool
	}{
		{input: "2013-04-22T22:00:00.000Z", year: 2013},
		{input: "1965-08-01T00:00:00Z", year: 1965},
		{input: "1965-08-01", year: 1965},
		{input: "1901", year: 1901},
		{input: "", year: 1},
		{input: "01/02/1999", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePublished(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.year, got.Year())
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	f, err := FormatFromPath("data/Catalog.JSON")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	f, err = FormatFromPath("catalog.yml")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	_, err = FormatFromPath("catalog.txt")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}
