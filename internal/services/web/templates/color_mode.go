package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/santiment/sanbase/internal/platform/icons"
)

// ColorModeComparison renders content twice, once per color mode.
func ColorModeComparison(content templ.Component, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var m markup
		m.raw(`<div class="color-mode-comparison">`)
		for _, mode := range []struct {
			class string
			key   string
			glyph icons.Glyph
		}{
			{"color-mode-day", "stories.day", icons.GlyphDay},
			{"color-mode-night", "stories.night", icons.GlyphNight},
		} {
			m.raw(`<div`).attr("class", "color-mode-panel "+mode.class).raw(`><div class="color-mode-label">`)
			if err := m.render(ctx, w, Glyph(mode.glyph)); err != nil {
				return err
			}
			m.text(T(loc, mode.key)).raw(`</div>`)
			if err := m.render(ctx, w, content); err != nil {
				return err
			}
			m.raw(`</div>`)
		}
		m.raw(`</div>`)
		return m.flush(w)
	})
}
