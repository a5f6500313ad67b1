package http

import (
	"html/template"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookshelf/internal/metrics"
	"github.com/mrlokans/bookshelf/internal/security"
)

// NewRouter creates and configures the HTTP router with all endpoints.
// Uses RouterConfig to receive all dependencies.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	if cfg.MetricsEnabled {
		router.Use(metrics.Middleware())
	}

	// Apply security headers to all responses
	router.Use(security.SecurityHeadersMiddleware())

	// CSRF must run before session so that session context is preserved
	if len(cfg.CSRFSecret) > 0 {
		router.Use(security.CSRFMiddleware(cfg.CSRFSecret, cfg.SecureCookies))
	}

	// Session runs after CSRF so session context isn't overwritten by CSRF's request replacement
	if cfg.SessionManager != nil {
		router.Use(cfg.SessionManager.ThemeSession())
	}

	funcMap := template.FuncMap{
		"themeLabel": themeLabel,
	}

	// Load HTML templates with custom functions
	tmpl := template.Must(template.New("").Funcs(funcMap).ParseGlob(cfg.TemplatesPath + "/*.html"))
	router.SetHTMLTemplate(tmpl)

	// Serve static files
	router.Static("/static", cfg.StaticPath)

	catalogs := cfg.CatalogSource
	if catalogs == nil {
		catalogs = StaticCatalog(cfg.Catalog)
	}

	health := NewHealthController(cfg.Database, cfg.ImportInfo, catalogs, cfg.Version)
	booksController := NewBooksController(catalogs, cfg.ImportInfo, cfg.PageSize)
	uiController := NewUIController(catalogs, cfg.SessionManager, cfg.PageSize, cfg.DefaultTheme)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})
	if cfg.MetricsEnabled {
		router.GET("/metrics", metrics.Handler())
	}

	// Books API endpoints
	router.GET("/api/books", booksController.GetBooks)
	router.GET("/api/books/:id", booksController.GetBook)
	router.GET("/api/catalog", booksController.GetCatalog)
	router.GET("/api/authors", booksController.GetAuthors)
	router.GET("/api/genres", booksController.GetGenres)
	router.GET("/api/theme", booksController.GetTheme)

	// UI routes
	router.GET("/", uiController.BooksPage)
	router.GET("/ui/books/more", uiController.MoreBooks)
	router.GET("/ui/books/:id", uiController.BookPage)

	// Settings routes
	router.GET("/settings", uiController.SettingsPage)
	if cfg.SessionManager != nil {
		router.POST("/settings/theme", uiController.SetTheme)
		router.POST("/settings/theme/reset", uiController.ResetTheme)
	}

	return router
}
