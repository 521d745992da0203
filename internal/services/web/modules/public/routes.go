package public

import (
	"net/http"

	"github.com/santiment/sanbase/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Root+"{$}", h.handleRoot)
	mux.HandleFunc(http.MethodGet+" "+routepath.Health, h.handleHealth)
	mux.HandleFunc(http.MethodGet+" "+routepath.Favicon, h.handleFavicon)
	mux.HandleFunc(http.MethodGet+" /{rest...}", h.handleNotFound)
}
