package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/santiment/sanbase/internal/platform/branding"
	"github.com/santiment/sanbase/internal/platform/icons"
	"github.com/santiment/sanbase/internal/services/web/module"
	webi18n "github.com/santiment/sanbase/internal/services/web/platform/i18n"
	"github.com/santiment/sanbase/internal/services/web/routepath"
	"github.com/santiment/sanbase/internal/wallet"
)

const (
	// MainContentID is the HTMX swap target of every page.
	MainContentID = "main-content"

	chartScriptURL      = "https://cdn.jsdelivr.net/npm/chart.js@2.9.4/dist/Chart.min.js"
	annotationScriptURL = "https://cdn.jsdelivr.net/npm/chartjs-plugin-annotation@0.5.7/chartjs-plugin-annotation.min.js"
	htmxScriptURL       = "https://unpkg.com/htmx.org@2.0.4/dist/htmx.min.js"
)

// PageContext provides shared layout context for pages.
type PageContext struct {
	Title     string
	Lang      string
	Loc       Localizer
	Viewer    module.Viewer
	Languages []webi18n.LanguageOption
}

// ComposePageTitle appends the brand suffix once.
func ComposePageTitle(title string) string {
	title = strings.TrimSpace(title)
	suffix := " | " + branding.AppName
	switch {
	case title == "" || title == branding.AppName:
		return branding.AppName
	case strings.HasSuffix(title, suffix):
		return title
	case strings.HasSuffix(title, " - "+branding.AppName):
		return strings.TrimSuffix(title, " - "+branding.AppName) + suffix
	default:
		return title + suffix
	}
}

// Layout renders the full document around its children.
func Layout(page PageContext) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var m markup
		m.raw(`<!DOCTYPE html><html`).attr("lang", localeOrDefault(page.Lang)).raw(`><head><meta charset="utf-8">`)
		m.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		m.raw(`<title>`).text(ComposePageTitle(page.Title)).raw(`</title>`)
		m.raw(`<link rel="icon"`).attr("href", routepath.Favicon).raw(`>`)
		m.raw(`<link rel="stylesheet"`).attr("href", routepath.Static+"app.css").raw(`>`)
		for _, src := range []string{htmxScriptURL, chartScriptURL, annotationScriptURL, routepath.Static + "app.js"} {
			m.raw(`<script defer`).attr("src", src).raw(`></script>`)
		}
		m.raw(`</head><body class="color-mode-day">`, icons.LucideSprite())
		writeHeader(&m, page)
		m.raw(`<main id="main">`)
		if err := m.render(ctx, w, MainContent()); err != nil {
			return err
		}
		m.raw(`</main></body></html>`)
		return m.flush(w)
	})
}

// MainContent renders the swap target around its children. HTMX requests
// receive only this fragment.
func MainContent() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var m markup
		m.raw(`<div`).attr("id", MainContentID).raw(` class="main-content">`)
		if err := m.flush(w); err != nil {
			return err
		}
		if err := renderChildren(ctx, w); err != nil {
			return err
		}
		m.raw(`</div>`)
		return m.flush(w)
	})
}

func writeHeader(m *markup, page PageContext) {
	m.raw(`<header class="app-header"><a class="brand"`).attr("href", routepath.Root).raw(`>`).text(branding.AppName).raw(`</a>`)
	m.raw(`<nav class="app-nav">`)
	for _, link := range []struct{ href, key string }{
		{routepath.IconsPrefix, "title.icons"},
		{routepath.SearchPrefix, "title.search"},
		{routepath.BacktestSample, "title.backtest"},
		{routepath.StoriesPrefix, "title.stories"},
	} {
		m.raw(`<a`).attr("href", link.href).raw(`>`).text(T(page.Loc, link.key)).raw(`</a>`)
	}
	m.raw(`</nav>`)
	if len(page.Languages) > 0 {
		m.raw(`<nav class="lang-switch"`).attr("aria-label", T(page.Loc, "nav.language")).raw(`>`)
		for _, option := range page.Languages {
			m.raw(`<a`).attr("href", option.URL).attr("hreflang", option.Tag)
			if option.Active {
				m.raw(` class="active" aria-current="true"`)
			}
			m.raw(`>`).text(option.Tag).raw(`</a>`)
		}
		m.raw(`</nav>`)
	}
	if page.Viewer.SignedIn {
		m.raw(`<div class="viewer"><a`).attr("href", routepath.AppAccount).raw(`>`).text(wallet.ShortAccount(page.Viewer.Account)).raw(`</a>`)
		m.raw(`<form method="post"`).attr("action", routepath.AuthLogout).raw(`><button type="submit" class="ui button">`)
		m.text(T(page.Loc, "auth.sign_out")).raw(`</button></form></div>`)
	} else {
		m.raw(`<a class="sign-in"`).attr("href", routepath.AuthWallet).raw(`>`).text(T(page.Loc, "home.sign_in")).raw(`</a>`)
	}
	m.raw(`</header>`)
}
