package icons

import (
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/santiment/sanbase/internal/platform/icons"
	"github.com/santiment/sanbase/internal/services/web/module"
	"github.com/santiment/sanbase/internal/services/web/platform/httpx"
	"github.com/santiment/sanbase/internal/services/web/platform/pagerender"
	webi18n "github.com/santiment/sanbase/internal/services/web/platform/i18n"
	"github.com/santiment/sanbase/internal/services/web/templates"
)

// resolvedIcon is the JSON answer of the resolve endpoint.
type resolvedIcon struct {
	icons.Icon
	URL string `json:"url"`
}

type handlers struct {
	deps module.Dependencies
}

func newHandlers(deps module.Dependencies) handlers {
	return handlers{deps: deps}
}

// src never fails for resolved icons; the bare asset is the fallback.
func (h handlers) src(icon icons.Icon) string {
	out, err := h.deps.IconSrc(icon)
	if err != nil {
		return icon.Asset
	}
	return out
}

func (h handlers) handleIcon(w http.ResponseWriter, r *http.Request) {
	icon := icons.Resolve(r.PathValue("name"))
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	if err := templates.ProjectIcon(icon, h.src(icon)).Render(r.Context(), w); err != nil {
		log.Printf("render icon request_id=%s err=%v", httpx.RequestIDOf(r), err)
	}
}

func (h handlers) handleResolve(w http.ResponseWriter, r *http.Request) {
	icon := icons.Resolve(r.URL.Query().Get("name"))
	_ = httpx.WriteJSON(w, http.StatusOK, resolvedIcon{Icon: icon, URL: h.src(icon)})
}

func (h handlers) handleCatalog(w http.ResponseWriter, r *http.Request) {
	loc, lang := webi18n.ResolveLocalizer(w, r, h.deps.ResolveLanguage)
	err := pagerender.WriteLocalizedPage(w, r, h.deps, loc, lang, pagerender.ModulePage{
		TitleKey: "title.icons",
		Fragment: templates.IconCatalog(icons.Catalog(), h.src, loc),
	})
	if err != nil {
		log.Printf("render icon catalog request_id=%s err=%v", httpx.RequestIDOf(r), err)
	}
}

func (handlers) handleMarkdown(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, strings.TrimRight(icons.CatalogMarkdown(), "\n")+"\n")
}
