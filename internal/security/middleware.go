package security

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/gin-gonic/gin"
)

// ContextKeyTheme holds the theme stored in the browser session.
const ContextKeyTheme = "session_theme"

// ThemeSession loads the browser session and exposes its stored theme through
// SessionTheme. Run it after CSRFMiddleware, which replaces the request.
func (sm *SessionManager) ThemeSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string
		if cookie, err := c.Request.Cookie(sm.Cookie.Name); err == nil {
			token = cookie.Value
		}

		ctx, err := sm.Load(c.Request.Context(), token)
		if err != nil {
			log.Printf("Failed to load session: %v", err)
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		c.Request = c.Request.WithContext(ctx)

		if name, ok := sm.Theme(c.Request); ok {
			c.Set(ContextKeyTheme, name)
		}

		writer := &sessionWriter{ResponseWriter: c.Writer, sm: sm, ctx: ctx}
		c.Writer = writer

		c.Next()

		// Redirects and empty responses may never touch the writer
		writer.commit()
	}
}

// sessionWriter saves a changed session before the response headers go out.
type sessionWriter struct {
	gin.ResponseWriter
	sm        *SessionManager
	ctx       context.Context
	committed bool
}

func (w *sessionWriter) commit() {
	if w.committed {
		return
	}
	w.committed = true

	switch w.sm.Status(w.ctx) {
	case scs.Modified:
		token, expiry, err := w.sm.Commit(w.ctx)
		if err != nil {
			log.Printf("Failed to save session: %v", err)
			return
		}
		w.sm.WriteSessionCookie(w.ctx, w.ResponseWriter, token, expiry)
	case scs.Destroyed:
		w.sm.WriteSessionCookie(w.ctx, w.ResponseWriter, "", time.Time{})
	}
}

func (w *sessionWriter) WriteHeader(code int) {
	w.commit()
	w.ResponseWriter.WriteHeader(code)
}

func (w *sessionWriter) WriteHeaderNow() {
	w.commit()
	w.ResponseWriter.WriteHeaderNow()
}

func (w *sessionWriter) Write(b []byte) (int, error) {
	w.commit()
	return w.ResponseWriter.Write(b)
}

func (w *sessionWriter) WriteString(s string) (int, error) {
	w.commit()
	return w.ResponseWriter.WriteString(s)
}
