package icons

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	// DefaultAsset is served when a name matches no known project.
	DefaultAsset = "project-icon-default.svg"
	// DefaultSize is the width and height, in pixels, of a resolved icon.
	DefaultSize = 16
	// ClassKnown marks icons resolved from the project table.
	ClassKnown = "project-icon"
	// ClassDefault marks the fallback icon.
	ClassDefault = "project-icon-default"
)

// Icon is the outcome of resolving a display name.
type Icon struct {
	Key    string `json:"key"`
	Name   string `json:"name,omitempty"`
	Asset  string `json:"asset"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Class  string `json:"class"`
	Known  bool   `json:"known"`
}

// Normalize returns the canonical lookup key for a display name.
//
// The key is case-folded, stripped of combining marks, and keeps letters and
// digits only, with every separator run collapsed to a single dash.
func Normalize(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	folded := cases.Fold().String(name)
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if stripped, _, err := transform.String(stripMarks, folded); err == nil {
		folded = stripped
	}

	var builder strings.Builder
	builder.Grow(len(folded))
	separator := false
	for _, r := range folded {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if separator && builder.Len() > 0 {
				builder.WriteByte('-')
			}
			separator = false
			builder.WriteRune(r)
			continue
		}
		separator = true
	}
	return builder.String()
}

// Lookup finds the table entry for name by display name or exact ticker.
func Lookup(name string) (Entry, bool) {
	return byKey.lookup(name)
}

// Resolve maps a display name to its icon. Unknown names get the default icon.
func Resolve(name string) Icon {
	if entry, ok := byKey.lookup(name); ok {
		return Icon{
			Key:    entry.Key(),
			Name:   entry.Name,
			Asset:  entry.Asset,
			Width:  DefaultSize,
			Height: DefaultSize,
			Class:  ClassKnown,
			Known:  true,
		}
	}
	return Icon{
		Key:    Normalize(name),
		Asset:  DefaultAsset,
		Width:  DefaultSize,
		Height: DefaultSize,
		Class:  ClassDefault,
	}
}
