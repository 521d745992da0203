// Package i18n defines the supported locales and tag helpers shared by the
// web and MCP surfaces.
package i18n

import (
	"strings"

	"github.com/santiment/sanbase/internal/platform/i18n/catalog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	// DefaultTag is used when no supported language matches.
	DefaultTag = language.AmericanEnglish

	supportedTags = []language.Tag{
		language.AmericanEnglish,
		language.MustParse("ru-RU"),
	}
	matcher = language.NewMatcher(supportedTags)
)

// SupportedTags returns the locales with message catalogs.
func SupportedTags() []language.Tag {
	out := make([]language.Tag, len(supportedTags))
	copy(out, supportedTags)
	return out
}

// ParseTag maps a language string to a supported tag.
// "ru", "ru-RU" and "RU_ru" all resolve to ru-RU.
func ParseTag(raw string) (language.Tag, bool) {
	raw = strings.TrimSpace(strings.ReplaceAll(raw, "_", "-"))
	if raw == "" {
		return DefaultTag, false
	}
	tag, err := language.Parse(raw)
	if err != nil {
		return DefaultTag, false
	}
	matched, _, confidence := matcher.Match(tag)
	if confidence < language.High {
		return DefaultTag, false
	}
	return supportedOf(matched), true
}

// MatchAcceptLanguage picks the best supported tag for an Accept-Language header.
func MatchAcceptLanguage(header string) (language.Tag, bool) {
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return DefaultTag, false
	}
	matched, _, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return DefaultTag, false
	}
	return supportedOf(matched), true
}

// Printer returns a message printer backed by the embedded catalogs.
func Printer(tag language.Tag) *message.Printer {
	_ = catalog.Default()
	return message.NewPrinter(supportedOf(tag))
}

// supportedOf strips the -u-rg extension the matcher may add so the
// result compares equal to an entry of SupportedTags.
func supportedOf(tag language.Tag) language.Tag {
	base, _ := tag.Base()
	for _, candidate := range supportedTags {
		if candidateBase, _ := candidate.Base(); candidateBase == base {
			return candidate
		}
	}
	return DefaultTag
}
