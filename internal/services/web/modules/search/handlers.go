package search

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/santiment/sanbase/internal/platform/icons"
	"github.com/santiment/sanbase/internal/search"
	"github.com/santiment/sanbase/internal/services/web/module"
	apperrors "github.com/santiment/sanbase/internal/services/web/platform/errors"
	"github.com/santiment/sanbase/internal/services/web/platform/httpx"
	"github.com/santiment/sanbase/internal/services/web/platform/pagerender"
	webi18n "github.com/santiment/sanbase/internal/services/web/platform/i18n"
	"github.com/santiment/sanbase/internal/services/web/platform/weberror"
	"github.com/santiment/sanbase/internal/services/web/templates"
)

// maxSuggestionsLimit bounds the max query parameter.
const maxSuggestionsLimit = 50

type suggestionsResponse struct {
	Query       string   `json:"query"`
	Suggestions []string `json:"suggestions"`
}

type handlers struct {
	deps module.Dependencies
	data []string
}

func newHandlers(deps module.Dependencies) handlers {
	data := deps.SearchData
	if data == nil {
		data = icons.Names()
	}
	return handlers{deps: deps, data: data}
}

func (h handlers) handlePage(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	max, err := parseMax(query.Get("max"))
	if err != nil {
		weberror.WriteModuleError(w, r, err, h.deps)
		return
	}
	q := strings.TrimSpace(query.Get("q"))
	view := templates.SearchView{
		Props: search.Props{
			IconPosition: search.ParseIconPosition(query.Get("icon")),
			DefaultValue: q,
		},
		Suggestions:    search.Suggest(h.data, q, max),
		MaxSuggestions: max,
		Live:           true,
	}
	loc, lang := webi18n.ResolveLocalizer(w, r, h.deps.ResolveLanguage)
	err = pagerender.WriteLocalizedPage(w, r, h.deps, loc, lang, pagerender.ModulePage{
		TitleKey: "title.search",
		Fragment: templates.SearchPage(view, loc),
	})
	if err != nil {
		log.Printf("render search request_id=%s err=%v", httpx.RequestIDOf(r), err)
	}
}

func (h handlers) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	max, err := parseMax(query.Get("max"))
	if err != nil {
		weberror.WriteJSONError(w, r, err, h.deps)
		return
	}
	q := strings.TrimSpace(query.Get("q"))
	_ = httpx.WriteJSON(w, http.StatusOK, suggestionsResponse{
		Query:       q,
		Suggestions: search.Suggest(h.data, q, max),
	})
}

// parseMax reads the max parameter. Empty selects the default.
func parseMax(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return search.DefaultMaxSuggestions, nil
	}
	max, err := strconv.Atoi(raw)
	if err != nil || max <= 0 || max > maxSuggestionsLimit {
		return 0, apperrors.Wrap(apperrors.KindInvalidInput, fmt.Errorf("max must be between 1 and %d", maxSuggestionsLimit))
	}
	return max, nil
}
