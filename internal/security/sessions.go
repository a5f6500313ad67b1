package security

import (
	"database/sql"
	"net/http"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookshelf/internal/config"
	"github.com/mrlokans/bookshelf/internal/theme"
)

// Session data keys
const (
	SessionKeyTheme = "theme"
)

// SessionManager wraps scs.SessionManager with application-specific methods.
type SessionManager struct {
	*scs.SessionManager
}

// NewSessionManager creates a configured session manager.
// The sqlDB parameter should be the underlying *sql.DB from GORM.
func NewSessionManager(sqlDB *sql.DB, cfg config.Session) (*SessionManager, error) {
	// Create sessions table if it doesn't exist
	_, err := sqlDB.Exec(`CREATE TABLE IF NOT EXISTS sessions (
		token TEXT PRIMARY KEY,
		data BLOB NOT NULL,
		expiry REAL NOT NULL
	);
	CREATE INDEX IF NOT EXISTS sessions_expiry_idx ON sessions(expiry);`)
	if err != nil {
		return nil, err
	}

	sm := scs.New()
	sm.Store = sqlite3store.New(sqlDB)

	if cfg.Lifetime > 0 {
		sm.Lifetime = cfg.Lifetime
	}

	sm.Cookie.Name = "session"
	sm.Cookie.HttpOnly = true
	sm.Cookie.Secure = cfg.SecureCookies
	sm.Cookie.SameSite = http.SameSiteLaxMode // Lax so the theme survives links from other sites
	sm.Cookie.Path = "/"
	sm.Cookie.Persist = true

	return &SessionManager{SessionManager: sm}, nil
}

// Theme returns the theme stored in the session.
// ok is false when the browser never picked one.
func (sm *SessionManager) Theme(r *http.Request) (theme.Name, bool) {
	stored := sm.GetString(r.Context(), SessionKeyTheme)
	if stored == "" {
		return theme.Day, false
	}
	name, ok := theme.Parse(stored)
	if !ok {
		return theme.Day, false
	}
	return name, true
}

// SetTheme remembers the theme for this browser. Unknown names are stored as day.
// The rest of the request sees the new theme through SessionTheme.
func (sm *SessionManager) SetTheme(c *gin.Context, name string) theme.Name {
	applied, _ := theme.Apply(name)
	sm.Put(c.Request.Context(), SessionKeyTheme, string(applied))
	c.Set(ContextKeyTheme, applied)
	return applied
}

// ClearTheme forgets the stored theme.
func (sm *SessionManager) ClearTheme(c *gin.Context) {
	sm.Remove(c.Request.Context(), SessionKeyTheme)
	c.Set(ContextKeyTheme, theme.Name(""))
}

// SessionTheme returns the theme ThemeSession found in the session, if any.
func SessionTheme(c *gin.Context) (theme.Name, bool) {
	value, exists := c.Get(ContextKeyTheme)
	if !exists {
		return "", false
	}
	name, ok := value.(theme.Name)
	return name, ok && name != ""
}
