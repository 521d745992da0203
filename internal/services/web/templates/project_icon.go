package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/santiment/sanbase/internal/platform/icons"
)

// ProjectIcon renders the resolved icon as an img tag. src is the delivery
// URL of icon.Asset.
func ProjectIcon(icon icons.Icon, src string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		href := src
		if href == "" {
			href = icon.Asset
		}
		alt := icon.Name
		if alt == "" {
			alt = icon.Key
		}
		var m markup
		m.raw(`<img`).attr("src", href).attr("alt", alt).attr("class", icon.Class)
		m.intAttr("width", icon.Width).intAttr("height", icon.Height)
		m.attr("data-icon-key", icon.Key).raw(`>`)
		return m.flush(w)
	})
}

// IconCatalog renders the icon table.
func IconCatalog(entries []icons.Entry, srcFor func(icons.Icon) string, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var m markup
		m.raw(`<section class="icons-catalog"><h1>`).text(T(loc, "title.icons")).raw(`</h1><p class="lead">`).text(T(loc, "icons.lead")).raw(`</p>`)
		m.raw(`<table class="ui table"><thead><tr><th></th><th>`).text(T(loc, "icons.project"))
		m.raw(`</th><th>`).text(T(loc, "icons.ticker")).raw(`</th><th>`).text(T(loc, "icons.key")).raw(`</th></tr></thead><tbody>`)
		for _, entry := range entries {
			icon := icons.Resolve(entry.Name)
			src := icon.Asset
			if srcFor != nil {
				src = srcFor(icon)
			}
			m.raw(`<tr><td>`)
			if err := m.render(ctx, w, ProjectIcon(icon, src)); err != nil {
				return err
			}
			m.raw(`</td><td>`).text(entry.Name).raw(`</td><td>`).text(entry.Ticker).raw(`</td><td><code>`).text(entry.Key()).raw(`</code></td></tr>`)
		}
		m.raw(`</tbody></table></section>`)
		return m.flush(w)
	})
}
