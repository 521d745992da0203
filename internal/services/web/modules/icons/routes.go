package icons

import (
	"net/http"

	"github.com/santiment/sanbase/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.IconsCatalog, h.handleCatalog)
	mux.HandleFunc(http.MethodGet+" "+routepath.IconsMarkdown, h.handleMarkdown)
	mux.HandleFunc(http.MethodGet+" "+routepath.IconsResolve, h.handleResolve)
	mux.HandleFunc(http.MethodGet+" "+routepath.IconPattern, h.handleIcon)
}
