// Package books provides database operations for the stored catalog dataset:
// authors, genres and books in catalog order.
//
// # Usage
//
//	repo := books.NewRepository(db)
//	err := repo.ReplaceCatalog(authors, genres, books)
//	c, err := repo.LoadCatalog()
package books

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/mrlokans/bookshelf/internal/catalog"
	"github.com/mrlokans/bookshelf/internal/entities"
)

const createBatchSize = 100

// Repository handles all catalog database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ReplaceCatalog removes the stored dataset and writes the given one in a single
// transaction. Book positions are assigned from slice order.
func (r *Repository) ReplaceCatalog(authors []entities.Author, genres []entities.Genre, books []entities.Book) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM book_genres").Error; err != nil {
			return fmt.Errorf("failed to clear book genres: %w", err)
		}
		for _, model := range []any{&entities.Book{}, &entities.Author{}, &entities.Genre{}} {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
				return fmt.Errorf("failed to clear %T: %w", model, err)
			}
		}

		if len(authors) > 0 {
			if err := tx.CreateInBatches(authors, createBatchSize).Error; err != nil {
				return fmt.Errorf("failed to save authors: %w", err)
			}
		}
		if len(genres) > 0 {
			if err := tx.CreateInBatches(genres, createBatchSize).Error; err != nil {
				return fmt.Errorf("failed to save genres: %w", err)
			}
		}

		for i := range books {
			books[i].Position = i
		}
		if len(books) > 0 {
			if err := tx.Omit("Author", "Genres.*").CreateInBatches(books, createBatchSize).Error; err != nil {
				return fmt.Errorf("failed to save books: %w", err)
			}
		}
		return nil
	})
}

// GetAllBooks returns every book with its genres, in catalog order.
func (r *Repository) GetAllBooks() ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.Preload("Genres").Order("position ASC").Find(&books).Error
	return books, err
}

// GetBookByID retrieves a single book with its author and genres.
func (r *Repository) GetBookByID(id string) (*entities.Book, error) {
	var book entities.Book
	err := r.db.Preload("Author").Preload("Genres").Where("id = ?", id).First(&book).Error
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// GetAllAuthors returns every author.
func (r *Repository) GetAllAuthors() ([]entities.Author, error) {
	var authors []entities.Author
	err := r.db.Order("name ASC").Find(&authors).Error
	return authors, err
}

// GetAllGenres returns every genre.
func (r *Repository) GetAllGenres() ([]entities.Genre, error) {
	var genres []entities.Genre
	err := r.db.Order("name ASC").Find(&genres).Error
	return genres, err
}

// CountBooks returns the number of stored books.
func (r *Repository) CountBooks() (int64, error) {
	var count int64
	err := r.db.Model(&entities.Book{}).Count(&count).Error
	return count, err
}

// LoadCatalog builds an immutable catalog from the stored dataset.
func (r *Repository) LoadCatalog() (*catalog.Catalog, error) {
	books, err := r.GetAllBooks()
	if err != nil {
		return nil, fmt.Errorf("failed to load books: %w", err)
	}
	authors, err := r.GetAllAuthors()
	if err != nil {
		return nil, fmt.Errorf("failed to load authors: %w", err)
	}
	genres, err := r.GetAllGenres()
	if err != nil {
		return nil, fmt.Errorf("failed to load genres: %w", err)
	}

	return ToCatalog(books, authors, genres)
}

// ToCatalog converts stored entities into catalog records.
func ToCatalog(books []entities.Book, authors []entities.Author, genres []entities.Genre) (*catalog.Catalog, error) {
	authorTable := make(catalog.AuthorTable, len(authors))
	for _, a := range authors {
		authorTable[a.ID] = a.Name
	}
	genreTable := make(catalog.GenreTable, len(genres))
	for _, g := range genres {
		genreTable[g.ID] = g.Name
	}

	records := make([]catalog.Book, 0, len(books))
	for i := range books {
		b := &books[i]
		records = append(records, catalog.Book{
			ID:          b.ID,
			Title:       b.Title,
			Author:      b.AuthorID,
			Image:       b.Image,
			Description: b.Description,
			Published:   b.Published,
			Genres:      b.GenreIDs(),
		})
	}

	return catalog.New(records, authorTable, genreTable)
}
