package config

import (
	"time"

	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Global
		Database
		UI
		Catalog
		Theme
		Session
		Metrics
	}

	HTTP struct {
		Port int32
		Host string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Database struct {
		Path string
	}
	UI struct {
		TemplatesPath string
		StaticPath    string
	}
	Catalog struct {
		DatasetPath     string // JSON or YAML dataset; empty uses the embedded sample
		PageSize        int    // Books per "show more" step (default: 36)
		ReloadOnStart   bool   // Re-import the dataset even if the database already has one
		RefreshSchedule string // Cron expression for re-importing the dataset; empty disables
	}
	Theme struct {
		Default string // "day", "night" or "system" to follow the browser preference
	}
	Session struct {
		Secret        string // CSRF key; auto-generated if empty
		Lifetime      time.Duration
		SecureCookies bool // Set to false for local dev without HTTPS
	}
	Metrics struct {
		Enabled bool
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8188)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("templates_path", "./templates")
	v.SetDefault("static_path", "./static")

	// Catalog defaults
	v.SetDefault("catalog_dataset_path", "")
	v.SetDefault("catalog_page_size", DefaultPageSize)
	v.SetDefault("catalog_reload_on_start", false)
	v.SetDefault("catalog_refresh_schedule", "")

	v.SetDefault("theme_default", ThemeSystem)

	// Session defaults
	v.SetDefault("session_secret", "")           // Auto-generated if empty
	v.SetDefault("session_lifetime", "720h")     // 30 days
	v.SetDefault("session_secure_cookies", true) // HTTPS-only cookies

	v.SetDefault("metrics_enabled", true)

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		UI: UI{
			TemplatesPath: v.GetString("TEMPLATES_PATH"),
			StaticPath:    v.GetString("STATIC_PATH"),
		},
		Catalog: Catalog{
			DatasetPath:     v.GetString("CATALOG_DATASET_PATH"),
			PageSize:        v.GetInt("CATALOG_PAGE_SIZE"),
			ReloadOnStart:   v.GetBool("CATALOG_RELOAD_ON_START"),
			RefreshSchedule: v.GetString("CATALOG_REFRESH_SCHEDULE"),
		},
		Theme: Theme{
			Default: v.GetString("THEME_DEFAULT"),
		},
		Session: Session{
			Secret:        v.GetString("SESSION_SECRET"),
			Lifetime:      v.GetDuration("SESSION_LIFETIME"),
			SecureCookies: v.GetBool("SESSION_SECURE_COOKIES"),
		},
		Metrics: Metrics{
			Enabled: v.GetBool("METRICS_ENABLED"),
		},
	}
}
