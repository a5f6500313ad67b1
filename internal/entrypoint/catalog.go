package entrypoint

import (
	"fmt"
	"log"

	"github.com/mrlokans/bookshelf/internal/catalog"
	"github.com/mrlokans/bookshelf/internal/database"
	"github.com/mrlokans/bookshelf/internal/dataset"
	"github.com/mrlokans/bookshelf/internal/importers"
)

// EnsureCatalog imports the dataset at path (or the embedded sample when path is
// empty) unless the database already holds a catalog and reload is false.
func EnsureCatalog(db *database.Database, path string, reload bool) error {
	hasCatalog, err := db.HasCatalog()
	if err != nil {
		return fmt.Errorf("failed to check stored catalog: %w", err)
	}
	if hasCatalog && !reload {
		log.Printf("Using stored catalog")
		return nil
	}

	result, err := importers.NewPipeline(db).Import(dataset.Converter(path))
	if err != nil {
		return fmt.Errorf("failed to import catalog: %w", err)
	}
	log.Printf("Loaded %d books, %d authors, %d genres from %s", result.Books, result.Authors, result.Genres, result.Source)
	return nil
}

// OpenCatalog opens the database at dbPath, makes sure it holds a catalog and
// loads it. The caller closes the returned database.
func OpenCatalog(dbPath, datasetPath string, reload bool, opts ...database.Option) (*database.Database, *catalog.Catalog, error) {
	db, err := database.NewDatabase(dbPath, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := EnsureCatalog(db, datasetPath, reload); err != nil {
		db.Close()
		return nil, nil, err
	}

	cat, err := db.LoadCatalog()
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	return db, cat, nil
}
