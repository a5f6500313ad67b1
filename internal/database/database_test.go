package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/bookshelf/internal/entities"
)

// setupTestDB creates a fresh test database
func setupTestDB(t *testing.T) *Database {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := NewDatabase(dbPath, WithLogLevel(logger.Silent))
	require.NoError(t, err)

	t.Cleanup(func() { db.Close() })
	return db
}

func TestDatabase(t *testing.T) {
	db := setupTestDB(t)

	t.Run("empty database has no catalog", func(t *testing.T) {
		has, err := db.HasCatalog()
		require.NoError(t, err)
		assert.False(t, has)

		c, err := db.LoadCatalog()
		require.NoError(t, err)
		assert.Equal(t, 0, c.Len())
	})

	t.Run("SaveCatalog stores dataset and provenance", func(t *testing.T) {
		err := db.SaveCatalog("fixtures/catalog.json",
			[]entities.Author{{ID: "a1", Name: "Octavia E. Butler"}},
			[]entities.Genre{{ID: "g1", Name: "Science Fiction"}},
			[]entities.Book{
				{ID: "b1", Title: "Kindred", AuthorID: "a1", Genres: []entities.Genre{{ID: "g1"}}},
				{ID: "b2", Title: "Dawn", AuthorID: "a1", Genres: []entities.Genre{{ID: "g1"}}},
			},
		)
		require.NoError(t, err)

		has, err := db.HasCatalog()
		require.NoError(t, err)
		assert.True(t, has)

		info, err := db.Settings().ImportInfo()
		require.NoError(t, err)
		require.NotNil(t, info)
		assert.Equal(t, "fixtures/catalog.json", info.Source)
		assert.Equal(t, 2, info.BookCount)
	})

	t.Run("LoadCatalog returns stored order", func(t *testing.T) {
		c, err := db.LoadCatalog()
		require.NoError(t, err)
		require.Equal(t, 2, c.Len())
		assert.Equal(t, "Kindred", c.Books()[0].Title)
		assert.Equal(t, "Dawn", c.Books()[1].Title)
		assert.Equal(t, "Octavia E. Butler", c.AuthorName("a1"))
	})

	t.Run("Ping succeeds while open", func(t *testing.T) {
		assert.NoError(t, db.Ping())
	})
}

func TestDatabase_PingAfterClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "closed.db")
	db, err := NewDatabase(dbPath, WithLogLevel(logger.Silent))
	require.NoError(t, err)

	require.NoError(t, db.Close())
	assert.Error(t, db.Ping())
}
