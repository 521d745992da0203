package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
	"github.com/santiment/sanbase/internal/platform/icons"
	"github.com/santiment/sanbase/internal/search"
	"github.com/santiment/sanbase/internal/services/web/routepath"
)

// SearchView is one rendered search box.
type SearchView struct {
	Props       search.Props
	Suggestions []string
	// MaxSuggestions is forwarded to the live suggestion request.
	MaxSuggestions int
	// Live enables the HTMX suggestion lookup.
	Live bool
}

// Glyph renders a sprite reference for a control glyph.
func Glyph(glyph icons.Glyph) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var m markup
		m.raw(`<svg class="lucide" aria-hidden="true" width="16" height="16"><use`)
		m.attr("href", "#"+icons.LucideSymbolID(icons.LucideNameOrDefault(glyph))).raw(`></use></svg>`)
		return m.flush(w)
	})
}

// Search renders a search input with its glyph on the configured side.
func Search(props search.Props, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return writeSearchInput(ctx, w, SearchView{Props: props}, loc)
	})
}

// SearchWithSuggestions renders a search input followed by its suggestion
// list. An empty list with a non-blank query shows the empty state.
func SearchWithSuggestions(view SearchView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var m markup
		m.raw(`<div class="search-with-suggestions">`)
		if err := m.flush(w); err != nil {
			return err
		}
		if err := writeSearchInput(ctx, w, view, loc); err != nil {
			return err
		}
		if err := SuggestionList(view.Suggestions, view.Props.DefaultValue, loc).Render(ctx, w); err != nil {
			return err
		}
		m.raw(`</div>`)
		return m.flush(w)
	})
}

// SuggestionList renders the suggestions for query.
func SuggestionList(suggestions []string, query string, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var m markup
		m.raw(`<ul class="ui list suggestions" role="listbox">`)
		for _, suggestion := range suggestions {
			m.raw(`<li class="item suggestion" role="option"><a`).attr("href", routepath.Search(suggestion)).raw(`>`).text(suggestion).raw(`</a></li>`)
		}
		if len(suggestions) == 0 && query != "" {
			m.raw(`<li class="item suggestions-empty">`).text(T(loc, "search.empty")).raw(`</li>`)
		}
		m.raw(`</ul>`)
		return m.flush(w)
	})
}

func writeSearchInput(ctx context.Context, w io.Writer, view SearchView, loc Localizer) error {
	props := view.Props.Normalized()
	placeholder := props.Placeholder
	if placeholder == "" {
		placeholder = T(loc, "search.placeholder")
	}
	var m markup
	class := "ui icon input search-input"
	if props.IconPosition == search.IconLeft {
		class = "ui left icon input search-input"
	}
	m.raw(`<div`).attr("class", class).attr("data-icon-position", string(props.IconPosition)).raw(`>`)
	if props.IconPosition == search.IconLeft {
		if err := m.render(ctx, w, Glyph(icons.GlyphSearch)); err != nil {
			return err
		}
	}
	m.raw(`<input type="search" name="q" autocomplete="off"`).attr("value", props.DefaultValue).attr("placeholder", placeholder)
	if view.Live {
		max := view.MaxSuggestions
		if max <= 0 {
			max = search.DefaultMaxSuggestions
		}
		m.attr("hx-get", routepath.SearchPrefix).attr("hx-trigger", "input changed delay:200ms")
		m.attr("hx-target", "next .suggestions").attr("hx-select", ".suggestions").attr("hx-swap", "outerHTML")
		m.attr("hx-vals", `{"max":`+strconv.Itoa(max)+`}`)
	}
	m.raw(`>`)
	if props.IconPosition == search.IconRight {
		if err := m.render(ctx, w, Glyph(icons.GlyphSearch)); err != nil {
			return err
		}
	}
	m.raw(`</div>`)
	return m.flush(w)
}
