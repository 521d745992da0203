package stories

import (
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/santiment/sanbase/internal/backtest"
	"github.com/santiment/sanbase/internal/platform/icons"
	"github.com/santiment/sanbase/internal/search"
	"github.com/santiment/sanbase/internal/services/web/module"
	"github.com/santiment/sanbase/internal/services/web/templates"
)

const (
	groupProjectIcon = "ProjectIcon"
	groupSearch      = "Search"
	groupAuthForm    = "AuthForm"
	groupBacktest    = "Backtest"

	storyAccount = "0x52bc44d5378309ee2abf1539bf71de1b7d7be3b5"
)

// suggestionData is the fixed corpus of the suggestion story.
var suggestionData = []string{"Bibox Token", "Bigbom", "Binance Coin", "BioCoin", "BitBay", "bitcoin"}

// story renders one component state for a request.
type story struct {
	group  string
	name   string
	render func(r *http.Request, loc templates.Localizer) (templ.Component, error)
}

func (s story) link() templates.StoryLink {
	return templates.StoryLink{Group: s.group, Name: s.name}
}

func catalog(deps module.Dependencies) []story {
	sample := deps.Sample
	if len(sample.History) == 0 {
		if bundled, err := backtest.LoadSample(); err == nil {
			sample = bundled
		}
	}
	iconStory := func(name, project string) story {
		return story{group: groupProjectIcon, name: name, render: func(*http.Request, templates.Localizer) (templ.Component, error) {
			icon := icons.Resolve(project)
			src, err := deps.IconSrc(icon)
			if err != nil {
				return nil, err
			}
			return templates.ProjectIcon(icon, src), nil
		}}
	}
	return []story{
		iconStory("Known", "Santiment"),
		iconStory("Default", "Not a listed project"),
		{group: groupSearch, name: "Simple", render: renderSimpleSearch},
		{group: groupSearch, name: "Suggestions", render: renderSuggestions},
		{group: groupAuthForm, name: "Without account", render: func(_ *http.Request, loc templates.Localizer) (templ.Component, error) {
			return templates.AuthForm(templates.AuthFormView{}, loc), nil
		}},
		{group: groupAuthForm, name: "With account", render: func(_ *http.Request, loc templates.Localizer) (templ.Component, error) {
			return templates.AuthForm(templates.AuthFormView{Account: storyAccount}, loc), nil
		}},
		{group: groupBacktest, name: "Sample", render: func(r *http.Request, _ templates.Localizer) (templ.Component, error) {
			prop, err := backtest.ParsePriceProp(r.URL.Query().Get("prop"))
			if err != nil {
				return nil, err
			}
			chart, err := sample.Chart(prop)
			if err != nil {
				return nil, err
			}
			return templates.BacktestChart("story-backtest", chart), nil
		}},
	}
}

func renderSimpleSearch(_ *http.Request, loc templates.Localizer) (templ.Component, error) {
	placeholder := templates.T(loc, "search.placeholder")
	return templates.Join(
		templates.Search(search.Props{IconPosition: search.IconLeft, DefaultValue: "Left icon", Placeholder: placeholder}, loc),
		templates.Search(search.Props{IconPosition: search.IconRight, DefaultValue: "Right icon", Placeholder: placeholder}, loc),
		templates.Search(search.Props{}, loc),
		templates.Search(search.Props{IconPosition: search.IconRight}, loc),
	), nil
}

func renderSuggestions(r *http.Request, loc templates.Localizer) (templ.Component, error) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	return templates.SearchWithSuggestions(templates.SearchView{
		Props: search.Props{
			IconPosition: search.IconLeft,
			DefaultValue: query,
			Placeholder:  templates.T(loc, "search.placeholder"),
		},
		Suggestions:    search.Suggest(suggestionData, query, search.DefaultMaxSuggestions),
		MaxSuggestions: search.DefaultMaxSuggestions,
	}, loc), nil
}

func find(stories []story, group, name string) (story, bool) {
	for _, s := range stories {
		if strings.EqualFold(s.group, group) && strings.EqualFold(s.name, name) {
			return s, true
		}
	}
	return story{}, false
}
