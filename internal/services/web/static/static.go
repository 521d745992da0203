// Package static embeds the stylesheet, scripts and images served under
// /static/.
package static

import (
	"embed"
	"net/http"
	"strings"
)

// FS exposes web static assets for HTTP serving.
//
//go:embed *.css *.js *.svg
var FS embed.FS

// Handler serves FS with explicit content types for known asset kinds.
// It expects the /static/ prefix to be stripped already.
func Handler() http.Handler {
	return WithStaticMime(http.FileServer(http.FS(FS)))
}

// WithStaticMime attaches explicit content-type hints for known static assets.
func WithStaticMime(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch path := strings.ToLower(r.URL.Path); {
		case strings.HasSuffix(path, ".css"):
			w.Header().Set("Content-Type", "text/css; charset=utf-8")
		case strings.HasSuffix(path, ".js"):
			w.Header().Set("Content-Type", "application/javascript")
		case strings.HasSuffix(path, ".svg"):
			w.Header().Set("Content-Type", "image/svg+xml")
		}
		w.Header().Set("Cache-Control", "public, max-age=86400")
		next.ServeHTTP(w, r)
	})
}
