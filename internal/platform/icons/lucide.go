package icons

import "strings"

const lucideSymbolPrefix = "lucide-"

// Glyph identifies a control glyph drawn by the web surface.
type Glyph string

const (
	GlyphSearch Glyph = "search"
	GlyphWallet Glyph = "wallet"
	GlyphChart  Glyph = "chart"
	GlyphLogOut Glyph = "log-out"
	GlyphDay    Glyph = "day"
	GlyphNight  Glyph = "night"
)

var lucideGlyphNames = map[Glyph]string{
	GlyphSearch: "search",
	GlyphWallet: "wallet",
	GlyphChart:  "chart-line",
	GlyphLogOut: "log-out",
	GlyphDay:    "sun",
	GlyphNight:  "moon",
}

var lucideSymbols = map[string]string{
	"search":     `<circle cx="11" cy="11" r="8"/><path d="m21 21-4.3-4.3"/>`,
	"wallet":     `<path d="M19 7V4a1 1 0 0 0-1-1H5a2 2 0 0 0 0 4h15a1 1 0 0 1 1 1v4h-3a2 2 0 0 0 0 4h3a1 1 0 0 0 1-1v-2a1 1 0 0 0-1-1"/><path d="M3 5v14a2 2 0 0 0 2 2h15a1 1 0 0 0 1-1v-4"/>`,
	"chart-line": `<path d="M3 3v16a2 2 0 0 0 2 2h16"/><path d="m19 9-5 5-4-4-3 3"/>`,
	"log-out":    `<path d="M9 21H5a2 2 0 0 1-2-2V5a2 2 0 0 1 2-2h4"/><polyline points="16 17 21 12 16 7"/><line x1="21" x2="9" y1="12" y2="12"/>`,
	"sun":        `<circle cx="12" cy="12" r="4"/><path d="M12 2v2"/><path d="M12 20v2"/><path d="M2 12h2"/><path d="M20 12h2"/>`,
	"moon":       `<path d="M12 3a6 6 0 0 0 9 9 9 9 0 1 1-9-9Z"/>`,
}

// LucideName returns the Lucide icon name for a glyph.
func LucideName(glyph Glyph) (string, bool) {
	name, ok := lucideGlyphNames[glyph]
	return name, ok
}

// LucideNameOrDefault provides a stable Lucide name even when the glyph is unknown.
func LucideNameOrDefault(glyph Glyph) string {
	if name, ok := lucideGlyphNames[glyph]; ok {
		return name
	}
	return "search"
}

// LucideSymbolID returns the sprite symbol ID for a Lucide icon name.
func LucideSymbolID(name string) string {
	return lucideSymbolPrefix + name
}

// LucideSprite returns the SVG sprite markup for every control glyph.
func LucideSprite() string {
	var builder strings.Builder
	builder.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" style="display:none">`)
	for _, glyph := range []Glyph{GlyphSearch, GlyphWallet, GlyphChart, GlyphLogOut, GlyphDay, GlyphNight} {
		name := lucideGlyphNames[glyph]
		builder.WriteString(`<symbol id="`)
		builder.WriteString(LucideSymbolID(name))
		builder.WriteString(`" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round">`)
		builder.WriteString(lucideSymbols[name])
		builder.WriteString(`</symbol>`)
	}
	builder.WriteString(`</svg>`)
	return builder.String()
}
