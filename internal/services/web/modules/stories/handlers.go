package stories

import (
	"errors"
	"log"
	"net/http"

	"github.com/santiment/sanbase/internal/backtest"
	"github.com/santiment/sanbase/internal/services/web/module"
	apperrors "github.com/santiment/sanbase/internal/services/web/platform/errors"
	"github.com/santiment/sanbase/internal/services/web/platform/httpx"
	"github.com/santiment/sanbase/internal/services/web/platform/pagerender"
	webi18n "github.com/santiment/sanbase/internal/services/web/platform/i18n"
	"github.com/santiment/sanbase/internal/services/web/platform/weberror"
	"github.com/santiment/sanbase/internal/services/web/templates"
)

type handlers struct {
	deps    module.Dependencies
	stories []story
}

func newHandlers(deps module.Dependencies, stories []story) handlers {
	return handlers{deps: deps, stories: stories}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	links := make([]templates.StoryLink, 0, len(h.stories))
	for _, s := range h.stories {
		links = append(links, s.link())
	}
	loc, lang := webi18n.ResolveLocalizer(w, r, h.deps.ResolveLanguage)
	err := pagerender.WriteLocalizedPage(w, r, h.deps, loc, lang, pagerender.ModulePage{
		TitleKey: "title.stories",
		Fragment: templates.StoriesIndex(links, loc),
	})
	if err != nil {
		log.Printf("render story index request_id=%s err=%v", httpx.RequestIDOf(r), err)
	}
}

func (h handlers) handleStory(w http.ResponseWriter, r *http.Request) {
	s, ok := find(h.stories, r.PathValue("group"), r.PathValue("story"))
	if !ok {
		weberror.WriteModuleError(w, r, apperrors.E(apperrors.KindNotFound, "story not found"), h.deps)
		return
	}
	loc, lang := webi18n.ResolveLocalizer(w, r, h.deps.ResolveLanguage)
	content, err := s.render(r, loc)
	if err != nil {
		if errors.Is(err, backtest.ErrInvalidPriceProp) {
			err = apperrors.Wrap(apperrors.KindInvalidInput, err)
		}
		weberror.WriteModuleError(w, r, err, h.deps)
		return
	}
	err = pagerender.WriteLocalizedPage(w, r, h.deps, loc, lang, pagerender.ModulePage{
		Title:    s.group + " / " + s.name,
		Fragment: templates.StoryPage(s.link(), content, loc),
	})
	if err != nil {
		log.Printf("render story group=%s story=%s request_id=%s err=%v", s.group, s.name, httpx.RequestIDOf(r), err)
	}
}
