package public

import (
	"io"
	"log"
	"net/http"

	"github.com/santiment/sanbase/internal/services/web/module"
	"github.com/santiment/sanbase/internal/services/web/platform/httpx"
	"github.com/santiment/sanbase/internal/services/web/platform/pagerender"
	webi18n "github.com/santiment/sanbase/internal/services/web/platform/i18n"
	"github.com/santiment/sanbase/internal/services/web/platform/weberror"
	"github.com/santiment/sanbase/internal/services/web/routepath"
	"github.com/santiment/sanbase/internal/services/web/templates"
)

const faviconPath = routepath.Static + "project-icon-default.svg"

type handlers struct {
	deps module.Dependencies
}

func newHandlers(deps module.Dependencies) handlers {
	return handlers{deps: deps}
}

func (h handlers) handleRoot(w http.ResponseWriter, r *http.Request) {
	loc, lang := webi18n.ResolveLocalizer(w, r, h.deps.ResolveLanguage)
	err := pagerender.WriteLocalizedPage(w, r, h.deps, loc, lang, pagerender.ModulePage{
		TitleKey: "title.home",
		Fragment: templates.HomePage(loc),
	})
	if err != nil {
		log.Printf("render home request_id=%s err=%v", httpx.RequestIDOf(r), err)
	}
}

func (handlers) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, "ok")
}

func (handlers) handleFavicon(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, faviconPath, http.StatusMovedPermanently)
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound, h.deps)
}
