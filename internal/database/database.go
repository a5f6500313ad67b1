package database

import (
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/bookshelf/internal/catalog"
	"github.com/mrlokans/bookshelf/internal/database/books"
	"github.com/mrlokans/bookshelf/internal/database/settings"
	"github.com/mrlokans/bookshelf/internal/entities"
)

type Database struct {
	DB *gorm.DB

	books    *books.Repository
	settings *settings.Repository
}

// Option customises how the database is opened.
type Option func(*gorm.Config)

// WithLogLevel sets the gorm logger level.
func WithLogLevel(level logger.LogLevel) Option {
	return func(cfg *gorm.Config) {
		cfg.Logger = logger.Default.LogMode(level)
	}
}

func NewDatabase(dbPath string, opts ...Option) (*Database, error) {
	gormCfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}
	for _, opt := range opts {
		opt(gormCfg)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), gormCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Auto-migrate all entities
	err = db.AutoMigrate(
		&entities.Author{},
		&entities.Genre{},
		&entities.Book{},
		&entities.Setting{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Printf("Database initialized successfully at %s", dbPath)

	return &Database{
		DB:       db,
		books:    books.NewRepository(db),
		settings: settings.NewRepository(db),
	}, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Ping checks that the underlying connection is alive.
func (d *Database) Ping() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// Books returns the catalog repository.
func (d *Database) Books() *books.Repository {
	return d.books
}

// Settings returns the settings repository.
func (d *Database) Settings() *settings.Repository {
	return d.settings
}

// SaveCatalog replaces the stored dataset and records where it came from.
func (d *Database) SaveCatalog(source string, authors []entities.Author, genres []entities.Genre, bookList []entities.Book) error {
	if err := d.books.ReplaceCatalog(authors, genres, bookList); err != nil {
		return err
	}
	if err := d.settings.RecordImport(source, len(bookList)); err != nil {
		return fmt.Errorf("failed to record import: %w", err)
	}
	log.Printf("Catalog saved: %d books, %d authors, %d genres from %s", len(bookList), len(authors), len(genres), source)
	return nil
}

// LoadCatalog reads the stored dataset into an immutable catalog.
func (d *Database) LoadCatalog() (*catalog.Catalog, error) {
	return d.books.LoadCatalog()
}

// HasCatalog reports whether any books are stored.
func (d *Database) HasCatalog() (bool, error) {
	count, err := d.books.CountBooks()
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
