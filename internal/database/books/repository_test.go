package books

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/bookshelf/internal/catalog"
	"github.com/mrlokans/bookshelf/internal/entities"
)

func setupTestDB(t *testing.T) *Repository {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "books.db")

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.Author{}, &entities.Genre{}, &entities.Book{})
	require.NoError(t, err)

	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})

	return NewRepository(db)
}

func sampleDataset() ([]entities.Author, []entities.Genre, []entities.Book) {
	authors := []entities.Author{
		{ID: "a1", Name: "Frank Herbert"},
		{ID: "a2", Name: "Ursula K. Le Guin"},
	}
	genres := []entities.Genre{
		{ID: "g1", Name: "Science Fiction"},
		{ID: "g2", Name: "Fantasy"},
	}
	books := []entities.Book{
		{ID: "b-zeta", Title: "Dune", AuthorID: "a1", Genres: []entities.Genre{{ID: "g1"}}, Published: time.Date(1965, 8, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "b-alpha", Title: "A Wizard of Earthsea", AuthorID: "a2", Genres: []entities.Genre{{ID: "g2"}}, Published: time.Date(1968, 1, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "b-mid", Title: "The Lathe of Heaven", AuthorID: "a2", Genres: []entities.Genre{{ID: "g1"}, {ID: "g2"}}, Published: time.Date(1971, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
	return authors, genres, books
}

func TestRepository_ReplaceCatalog(t *testing.T) {
	t.Run("stores books in given order", func(t *testing.T) {
		repo := setupTestDB(t)
		require.NoError(t, repo.ReplaceCatalog(sampleDataset()))

		books, err := repo.GetAllBooks()
		require.NoError(t, err)
		require.Len(t, books, 3)
		assert.Equal(t, "b-zeta", books[0].ID)
		assert.Equal(t, "b-alpha", books[1].ID)
		assert.Equal(t, "b-mid", books[2].ID)
		assert.Equal(t, 2, books[2].Position)
		assert.ElementsMatch(t, []string{"g1", "g2"}, books[2].GenreIDs())
	})

	t.Run("replaces previous dataset", func(t *testing.T) {
		repo := setupTestDB(t)
		require.NoError(t, repo.ReplaceCatalog(sampleDataset()))

		err := repo.ReplaceCatalog(
			[]entities.Author{{ID: "a9", Name: "Terry Pratchett"}},
			[]entities.Genre{{ID: "g9", Name: "Humour"}},
			[]entities.Book{{ID: "b9", Title: "Mort", AuthorID: "a9", Genres: []entities.Genre{{ID: "g9"}}}},
		)
		require.NoError(t, err)

		count, err := repo.CountBooks()
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)

		authors, err := repo.GetAllAuthors()
		require.NoError(t, err)
		require.Len(t, authors, 1)
		assert.Equal(t, "Terry Pratchett", authors[0].Name)

		book, err := repo.GetBookByID("b9")
		require.NoError(t, err)
		assert.Equal(t, "Terry Pratchett", book.Author.Name)
		assert.Equal(t, []string{"g9"}, book.GenreIDs())
	})

	t.Run("empty dataset", func(t *testing.T) {
		repo := setupTestDB(t)
		require.NoError(t, repo.ReplaceCatalog(nil, nil, nil))

		count, err := repo.CountBooks()
		require.NoError(t, err)
		assert.Zero(t, count)
	})
}

func TestRepository_GetBookByID_NotFound(t *testing.T) {
	repo := setupTestDB(t)

	_, err := repo.GetBookByID("missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepository_LoadCatalog(t *testing.T) {
	repo := setupTestDB(t)
	require.NoError(t, repo.ReplaceCatalog(sampleDataset()))

	c, err := repo.LoadCatalog()
	require.NoError(t, err)
	require.Equal(t, 3, c.Len())

	assert.Equal(t, "b-zeta", c.Books()[0].ID)
	assert.Equal(t, "Ursula K. Le Guin", c.AuthorName("a2"))
	assert.Equal(t, "Fantasy", c.GenreName("g2"))

	book, err := catalog.Select(c, "b-zeta")
	require.NoError(t, err)
	assert.Equal(t, 1965, book.Published.Year())

	fantasy := catalog.Filter(c, catalog.FilterSpec{Genre: "g2"})
	assert.Len(t, fantasy, 2)
}
