// Package sessioncookie centralizes the wallet session cookie.
package sessioncookie

import (
	"net/http"
	"strings"
	"time"

	"github.com/santiment/sanbase/internal/services/web/platform/requestmeta"
)

// Name is the session cookie name.
const Name = "sanbase_session"

// Read returns the trimmed session token when present.
func Read(r *http.Request) (string, bool) {
	if r == nil {
		return "", false
	}
	cookie, err := r.Cookie(Name)
	if err != nil || cookie == nil {
		return "", false
	}
	value := strings.TrimSpace(cookie.Value)
	if value == "" {
		return "", false
	}
	return value, true
}

// Write stores token until expires. A zero expires makes a browser-session cookie.
func Write(w http.ResponseWriter, r *http.Request, token string, expires time.Time) {
	if w == nil {
		return
	}
	cookie := &http.Cookie{
		Name:     Name,
		Value:    strings.TrimSpace(token),
		Path:     "/",
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPS(r),
		SameSite: http.SameSiteLaxMode,
	}
	if !expires.IsZero() {
		cookie.Expires = expires.UTC()
	}
	http.SetCookie(w, cookie)
}

// Clear expires the session cookie.
func Clear(w http.ResponseWriter, r *http.Request) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     Name,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPS(r),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}
