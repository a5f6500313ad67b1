// Package database provides the data access layer for the stored catalog dataset.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup, migrations, SaveCatalog/LoadCatalog
//	├── books/           # Authors, genres and books in catalog order
//	└── settings/        # Key/value settings (import provenance)
//
// # Using Sub-packages
//
//	// Initialize database connection
//	db, err := database.NewDatabase("./bookshelf.db")
//
//	// Replace the dataset, then build the in-memory catalog
//	err = db.SaveCatalog("catalog.json", authors, genres, books)
//	c, err := db.LoadCatalog()
//
// Only the dataset is stored. Search state (filter, page) never reaches the
// database; the catalog is read once at startup and is immutable afterwards.
//
// # Adding a New Domain
//
//  1. Create a new sub-package: internal/database/<domain>/
//  2. Define a Repository struct with a *gorm.DB field
//  3. Add NewRepository(db *gorm.DB) constructor
//  4. Expose it from Database and migrate its entities in NewDatabase
package database
