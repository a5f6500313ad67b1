package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookshelf/internal/config"
	"github.com/mrlokans/bookshelf/internal/dataset"
	http_controllers "github.com/mrlokans/bookshelf/internal/http"
	"github.com/mrlokans/bookshelf/internal/importers"
	"github.com/mrlokans/bookshelf/internal/metrics"
	"github.com/mrlokans/bookshelf/internal/scheduler"
	"github.com/mrlokans/bookshelf/internal/security"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Starting server at %s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// SIGKILL can't be caught, so only SIGINT and SIGTERM trigger a graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

// NewRouterConfig wires the stored catalog, sessions and CSRF protection into a
// router configuration.
func NewRouterConfig(cfg *config.Config, deps Dependencies, version string) (http_controllers.RouterConfig, error) {
	sqlDB, err := deps.Database.DB.DB()
	if err != nil {
		return http_controllers.RouterConfig{}, fmt.Errorf("failed to get SQL DB for sessions: %w", err)
	}

	sessionManager, err := security.NewSessionManager(sqlDB, cfg.Session)
	if err != nil {
		return http_controllers.RouterConfig{}, fmt.Errorf("failed to initialize session manager: %w", err)
	}

	// Generate or use configured CSRF secret
	var csrfSecret []byte
	if cfg.Session.Secret != "" {
		csrfSecret = security.ParseSecret(cfg.Session.Secret)
	} else {
		secret, err := security.GenerateSecret()
		if err != nil {
			return http_controllers.RouterConfig{}, fmt.Errorf("failed to generate CSRF secret: %w", err)
		}
		csrfSecret = security.ParseSecret(secret)
		log.Printf("Generated session secret (set SESSION_SECRET to persist)")
	}

	return http_controllers.RouterConfig{
		Catalog:        deps.Catalog,
		CatalogSource:  deps.CatalogSource,
		Database:       deps.Database,
		ImportInfo:     deps.Database.Settings(),
		TemplatesPath:  cfg.UI.TemplatesPath,
		StaticPath:     cfg.UI.StaticPath,
		PageSize:       cfg.Catalog.PageSize,
		DefaultTheme:   cfg.Theme.Default,
		SessionManager: sessionManager,
		CSRFSecret:     csrfSecret,
		SecureCookies:  cfg.Session.SecureCookies,
		MetricsEnabled: cfg.Metrics.Enabled,
		Version:        version,
	}, nil
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Bookshelf v%s", version)

	db, cat, err := OpenCatalog(cfg.Database.Path, cfg.Catalog.DatasetPath, cfg.Catalog.ReloadOnStart)
	if err != nil {
		log.Fatalf("Failed to open catalog: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	metrics.CatalogBooks.Set(float64(cat.Len()))
	log.Printf("Serving %d books, %d per page", cat.Len(), cfg.Catalog.PageSize)

	if !cfg.Session.SecureCookies {
		log.Printf("WARNING: secure cookies are disabled. Use only for local development without HTTPS.")
	}

	datasetPath := cfg.Catalog.DatasetPath
	refresher := scheduler.NewCatalogRefresher(db, func() importers.Converter {
		return dataset.Converter(datasetPath)
	}, cfg.Catalog.RefreshSchedule, cat)
	if err := refresher.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start catalog refresh: %v", err)
	}

	routerCfg, err := NewRouterConfig(cfg, Dependencies{Database: db, Catalog: cat, CatalogSource: refresher}, version)
	if err != nil {
		log.Fatalf("Failed to configure router: %v", err)
	}

	router := http_controllers.NewRouter(routerCfg)

	onShutdown := func(ctx context.Context) {
		refresher.Stop()
	}

	Serve(router, cfg, onShutdown)
}
