package scheduler

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/bookshelf/internal/catalog"
	"github.com/mrlokans/bookshelf/internal/entities"
	"github.com/mrlokans/bookshelf/internal/importers"
)

// memoryStore keeps the last saved catalog in memory.
type memoryStore struct {
	authors []entities.Author
	genres  []entities.Genre
	books   []entities.Book
	saveErr error
	loadErr error
	loaded  int
}

func (m *memoryStore) SaveCatalog(source string, authors []entities.Author, genres []entities.Genre, books []entities.Book) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.authors, m.genres, m.books = authors, genres, books
	return nil
}

func (m *memoryStore) LoadCatalog() (*catalog.Catalog, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	m.loaded++

	authors := catalog.AuthorTable{}
	for _, a := range m.authors {
		authors[a.ID] = a.Name
	}
	genres := catalog.GenreTable{}
	for _, g := range m.genres {
		genres[g.ID] = g.Name
	}
	books := make([]catalog.Book, 0, len(m.books))
	for _, b := range m.books {
		books = append(books, catalog.Book{ID: b.ID, Title: b.Title, Author: b.AuthorID, Genres: b.GenreIDs()})
	}
	return catalog.New(books, authors, genres)
}

const refreshedDataset = `{
  "books": [
    {"id": "b1", "title": "Dune", "author": "a1", "genres": ["g1"]},
    {"id": "b2", "title": "Children of Dune", "author": "a1", "genres": ["g1"]},
    {"id": "b3", "title": "Dune Messiah", "author": "a1", "genres": ["g1"]}
  ],
  "authors": {"a1": "Frank Herbert"},
  "genres": {"g1": "Science Fiction"}
}`

func jsonConverter(data string) func() importers.Converter {
	return func() importers.Converter {
		return &importers.ReaderConverter{Reader: strings.NewReader(data), Format: importers.FormatJSON, Name: "refresh.json"}
	}
}

func initialCatalog(t *testing.T) *catalog.Catalog {
	cat, err := catalog.New(
		[]catalog.Book{{ID: "old", Title: "Old Book", Author: "a0"}},
		catalog.AuthorTable{"a0": "Someone"},
		catalog.GenreTable{},
	)
	require.NoError(t, err)
	return cat
}

func TestCatalogRefresher_RunNow(t *testing.T) {
	store := &memoryStore{}
	initial := initialCatalog(t)
	r := NewCatalogRefresher(store, jsonConverter(refreshedDataset), "", initial)

	assert.Same(t, initial, r.Catalog())

	require.NoError(t, r.RunNow())
	assert.Equal(t, 3, r.Catalog().Len())

	last, err := r.LastRun()
	assert.NoError(t, err)
	assert.False(t, last.IsZero())
}

func TestCatalogRefresher_FailedRunKeepsCatalog(t *testing.T) {
	initial := initialCatalog(t)

	t.Run("invalid dataset", func(t *testing.T) {
		r := NewCatalogRefresher(&memoryStore{}, jsonConverter(`{"books": [{"id": "x"}]}`), "", initial)

		assert.Error(t, r.RunNow())
		assert.Same(t, initial, r.Catalog())

		_, err := r.LastRun()
		assert.Error(t, err)
	})

	t.Run("store failure", func(t *testing.T) {
		store := &memoryStore{saveErr: errors.New("database is locked")}
		r := NewCatalogRefresher(store, jsonConverter(refreshedDataset), "", initial)

		assert.ErrorContains(t, r.RunNow(), "database is locked")
		assert.Same(t, initial, r.Catalog())
	})

	t.Run("load failure", func(t *testing.T) {
		store := &memoryStore{loadErr: errors.New("corrupt")}
		r := NewCatalogRefresher(store, jsonConverter(refreshedDataset), "", initial)

		assert.ErrorContains(t, r.RunNow(), "corrupt")
		assert.Same(t, initial, r.Catalog())
	})
}

func TestCatalogRefresher_StartStop(t *testing.T) {
	t.Run("empty schedule stays idle", func(t *testing.T) {
		r := NewCatalogRefresher(&memoryStore{}, jsonConverter(refreshedDataset), "", initialCatalog(t))
		require.NoError(t, r.Start(context.Background()))
		assert.False(t, r.IsRunning())
	})

	t.Run("invalid schedule", func(t *testing.T) {
		r := NewCatalogRefresher(&memoryStore{}, jsonConverter(refreshedDataset), "every day", initialCatalog(t))
		assert.Error(t, r.Start(context.Background()))
		assert.False(t, r.IsRunning())
	})

	t.Run("context cancellation stops the scheduler", func(t *testing.T) {
		r := NewCatalogRefresher(&memoryStore{}, jsonConverter(refreshedDataset), "0 * * * *", initialCatalog(t))

		ctx, cancel := context.WithCancel(context.Background())
		require.NoError(t, r.Start(ctx))
		assert.True(t, r.IsRunning())

		cancel()
		assert.Eventually(t, func() bool { return !r.IsRunning() }, time.Second, 10*time.Millisecond)
	})

	t.Run("stop is idempotent", func(t *testing.T) {
		r := NewCatalogRefresher(&memoryStore{}, jsonConverter(refreshedDataset), "*/15 * * * *", initialCatalog(t))
		require.NoError(t, r.Start(context.Background()))

		r.Stop()
		r.Stop()
		assert.False(t, r.IsRunning())
	})
}

func TestValidateSchedule(t *testing.T) {
	assert.NoError(t, ValidateSchedule("0 */6 * * *"))
	assert.Error(t, ValidateSchedule("0 0 * * * *"))
	assert.Error(t, ValidateSchedule(""))

	next, err := NextRunTime("0 0 * * *")
	require.NoError(t, err)
	assert.True(t, next.After(time.Now()))
	assert.Equal(t, 0, next.Hour())
}
