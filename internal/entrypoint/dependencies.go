package entrypoint

import (
	"github.com/mrlokans/bookshelf/internal/catalog"
	"github.com/mrlokans/bookshelf/internal/database"
	http_controllers "github.com/mrlokans/bookshelf/internal/http"
)

// Dependencies are the long-lived objects shared by every request.
// CatalogSource, when set, replaces Catalog so refreshed datasets are served.
type Dependencies struct {
	Database      *database.Database
	Catalog       *catalog.Catalog
	CatalogSource http_controllers.CatalogSource
}
