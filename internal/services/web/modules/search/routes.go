package search

import (
	"net/http"

	"github.com/santiment/sanbase/internal/services/web/platform/httpx"
	"github.com/santiment/sanbase/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.SearchPrefix+"{$}", h.handlePage)
	suggestions := http.Handler(http.HandlerFunc(h.handleSuggestions))
	if h.deps.SuggestLimiter != nil {
		suggestions = httpx.RateLimit(h.deps.SuggestLimiter)(suggestions)
	}
	mux.Handle(http.MethodGet+" "+routepath.SearchSuggestions, suggestions)
}
