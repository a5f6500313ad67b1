package http

import (
	"github.com/mrlokans/bookshelf/internal/catalog"
	"github.com/mrlokans/bookshelf/internal/database/settings"
)

// CatalogSource returns the catalog to serve. Each request reads it once, so a
// refresh never changes the books seen halfway through a request.
type CatalogSource interface {
	Catalog() *catalog.Catalog
}

type staticCatalog struct {
	catalog *catalog.Catalog
}

func (s staticCatalog) Catalog() *catalog.Catalog {
	return s.catalog
}

// StaticCatalog serves the same catalog for the life of the process.
func StaticCatalog(cat *catalog.Catalog) CatalogSource {
	return staticCatalog{catalog: cat}
}

// Pinger checks storage connectivity.
type Pinger interface {
	Ping() error
}

// ImportInfoStore reports where the served catalog was imported from.
type ImportInfoStore interface {
	ImportInfo() (*settings.ImportInfo, error)
}
