package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/santiment/sanbase/internal/platform/icons"
	"github.com/santiment/sanbase/internal/services/web/routepath"
	"github.com/santiment/sanbase/internal/wallet"
)

// HomePage renders the landing page.
func HomePage(loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var m markup
		m.raw(`<section class="home"><h1>`).text(T(loc, "title.home")).raw(`</h1><p class="lead">`).text(T(loc, "home.lead")).raw(`</p><ul class="ui list home-links">`)
		for _, link := range []struct {
			href  string
			key   string
			glyph icons.Glyph
		}{
			{routepath.IconsPrefix, "home.icons", icons.GlyphChart},
			{routepath.SearchPrefix, "home.search", icons.GlyphSearch},
			{routepath.BacktestSample, "home.backtest", icons.GlyphChart},
			{routepath.StoriesPrefix, "home.stories", icons.GlyphDay},
			{routepath.AuthWallet, "home.sign_in", icons.GlyphWallet},
		} {
			m.raw(`<li class="item"><a`).attr("href", link.href).raw(`>`)
			if err := m.render(ctx, w, Glyph(link.glyph)); err != nil {
				return err
			}
			m.text(T(loc, link.key)).raw(`</a></li>`)
		}
		m.raw(`</ul></section>`)
		return m.flush(w)
	})
}

// SearchPage renders the search box with the current suggestions.
func SearchPage(view SearchView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var m markup
		m.raw(`<section class="search-page"><h1>`).text(T(loc, "title.search")).raw(`</h1>`)
		m.raw(`<form method="get"`).attr("action", routepath.SearchPrefix).raw(`>`)
		if err := m.render(ctx, w, SearchWithSuggestions(view, loc)); err != nil {
			return err
		}
		m.raw(`</form></section>`)
		return m.flush(w)
	})
}

// AuthPage renders the sign-in page.
func AuthPage(view AuthFormView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var m markup
		m.raw(`<section class="auth-page"><h1>`).text(T(loc, "title.auth")).raw(`</h1>`)
		if err := m.render(ctx, w, AuthForm(view, loc)); err != nil {
			return err
		}
		m.raw(`</section>`)
		return m.flush(w)
	})
}

// AccountPage renders the signed-in account summary.
func AccountPage(account string, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var m markup
		m.raw(`<section class="account-page"><h1>`).text(T(loc, "title.account")).raw(`</h1>`)
		m.raw(`<p class="lead"`).attr("title", account).raw(`>`).text(T(loc, "account.lead", wallet.ShortAccount(account))).raw(`</p>`)
		m.raw(`<form method="post"`).attr("action", routepath.AuthLogout).raw(`><button type="submit" class="ui button">`)
		m.text(T(loc, "auth.sign_out")).raw(`</button></form></section>`)
		return m.flush(w)
	})
}

// StoryLink is one entry of the story index.
type StoryLink struct {
	Group string
	Name  string
}

// StoriesIndex lists every story grouped in registration order.
func StoriesIndex(links []StoryLink, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var m markup
		m.raw(`<section class="stories"><h1>`).text(T(loc, "title.stories")).raw(`</h1><p class="lead">`).text(T(loc, "stories.lead")).raw(`</p>`)
		group := ""
		for _, link := range links {
			if link.Group != group {
				if group != "" {
					m.raw(`</ul>`)
				}
				group = link.Group
				m.raw(`<h2>`).text(group).raw(`</h2><ul class="ui list story-links">`)
			}
			m.raw(`<li class="item"><a`).attr("href", routepath.Story(link.Group, link.Name)).raw(`>`).text(link.Name).raw(`</a></li>`)
		}
		if group != "" {
			m.raw(`</ul>`)
		}
		m.raw(`</section>`)
		return m.flush(w)
	})
}

// StoryPage renders one story in both color modes.
func StoryPage(link StoryLink, content templ.Component, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var m markup
		m.raw(`<section class="story"><nav class="breadcrumbs"><a`).attr("href", routepath.StoriesPrefix).raw(`>`).text(T(loc, "title.stories")).raw(`</a> / `)
		m.text(link.Group).raw(`</nav><h1>`).text(link.Name).raw(`</h1>`)
		if err := m.render(ctx, w, ColorModeComparison(content, loc)); err != nil {
			return err
		}
		m.raw(`</section>`)
		return m.flush(w)
	})
}
