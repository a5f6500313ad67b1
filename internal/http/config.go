package http

import (
	"github.com/mrlokans/bookshelf/internal/catalog"
	"github.com/mrlokans/bookshelf/internal/security"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Core dependencies. CatalogSource takes precedence over Catalog when set.
	Catalog       *catalog.Catalog
	CatalogSource CatalogSource
	Database      Pinger
	ImportInfo    ImportInfoStore

	// UI paths
	TemplatesPath string
	StaticPath    string

	// Browsing
	PageSize     int
	DefaultTheme string // "day", "night" or "system"

	// Sessions and CSRF (optional; theme changes are not persisted without them)
	SessionManager *security.SessionManager
	CSRFSecret     []byte
	SecureCookies  bool

	// Prometheus request metrics and /metrics
	MetricsEnabled bool

	// Application info
	Version string
}
