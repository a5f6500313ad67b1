// Package security provides browser session state and request hardening for the web UI.
//
// There are no user accounts. A session only remembers the theme chosen on the
// settings page, so a returning browser sees the same palette.
//
// # Configuration
//
//	SESSION_SECRET=<hex-32-bytes>   # CSRF key, auto-generated if empty
//	SESSION_LIFETIME=720h           # Session duration
//	SESSION_SECURE_COOKIES=true     # HTTPS-only cookies
//
// # Usage
//
//	sessions, _ := security.NewSessionManager(sqlDB, cfg.Session)
//	router.Use(security.SecurityHeadersMiddleware())
//	router.Use(security.CSRFMiddleware(secret, cfg.Session.SecureCookies))
//	router.Use(sessions.ThemeSession())
//
// Read the theme in handlers:
//
//	name, ok := security.SessionTheme(c)
package security
