package security

import (
	"crypto/rand"
	"encoding/hex"
	"html/template"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/csrf"
)

// CSRFFieldName is the form field gorilla/csrf reads the token from.
const CSRFFieldName = "gorilla.csrf.Token"

// CSRFTokenHeader is the header name for CSRF token in HTMX requests.
const CSRFTokenHeader = "X-CSRF-Token"

const csrfContextKey = "csrf_token"

// GenerateSecret returns 32 random bytes hex encoded.
func GenerateSecret() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// ParseSecret decodes a configured secret. Non-hex values are used as raw bytes.
func ParseSecret(secret string) []byte {
	if decoded, err := hex.DecodeString(secret); err == nil {
		return decoded
	}
	return []byte(secret)
}

// CSRFMiddleware creates a Gin middleware for CSRF protection.
// Safe methods (GET, HEAD, OPTIONS, TRACE) pass through and receive a token.
// When secure is false the request is treated as plain HTTP, which skips
// the Referer check gorilla/csrf applies to TLS requests.
func CSRFMiddleware(secret []byte, secure bool) gin.HandlerFunc {
	csrfProtect := csrf.Protect(
		secret,
		csrf.Secure(secure),
		csrf.HttpOnly(true),
		csrf.SameSite(csrf.SameSiteLaxMode),
		csrf.Path("/"),
		csrf.FieldName(CSRFFieldName),
		csrf.RequestHeader(CSRFTokenHeader),
		csrf.ErrorHandler(http.HandlerFunc(csrfErrorHandler)),
	)

	return func(c *gin.Context) {
		if !secure && c.Request.TLS == nil {
			c.Request = csrf.PlaintextHTTPRequest(c.Request)
		}

		passed := false
		handler := csrfProtect(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			passed = true
			c.Set(csrfContextKey, csrf.Token(r))
			c.Request = r
			c.Next()
		}))

		handler.ServeHTTP(c.Writer, c.Request)

		// The error handler already answered; the route must not run
		if !passed {
			c.Abort()
		}
	}
}

// csrfErrorHandler handles CSRF validation failures.
func csrfErrorHandler(w http.ResponseWriter, r *http.Request) {
	accept := r.Header.Get("Accept")
	if strings.Contains(accept, "application/json") {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":"CSRF token invalid or missing","code":403}`))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusForbidden)
	_, _ = w.Write([]byte(`<!DOCTYPE html>
<html>
<head><title>Form Expired</title></head>
<body style="font-family: system-ui; max-width: 400px; margin: 100px auto; text-align: center;">
<h1>Form Expired</h1>
<p>The form submission was invalid or has expired.</p>
<p><a href="/settings">Back to settings</a></p>
</body>
</html>`))
}

// GetCSRFToken retrieves the CSRF token from the Gin context.
func GetCSRFToken(c *gin.Context) string {
	return c.GetString(csrfContextKey)
}

// CSRFTokenField returns an HTML hidden input field with the CSRF token.
func CSRFTokenField(c *gin.Context) template.HTML {
	token := GetCSRFToken(c)
	if token == "" {
		return ""
	}
	return template.HTML(`<input type="hidden" name="` + CSRFFieldName + `" value="` + template.HTMLEscapeString(token) + `">`)
}
