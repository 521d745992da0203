// Package search implements the search box behaviour: its display props and
// the suggestion list shown while the user types.
package search

import (
	"strings"

	"golang.org/x/text/cases"
)

// DefaultMaxSuggestions caps suggestions when the caller does not.
const DefaultMaxSuggestions = 5

// IconPosition places the search glyph inside the input.
type IconPosition string

const (
	IconLeft  IconPosition = "left"
	IconRight IconPosition = "right"
)

// ParseIconPosition accepts "left" or "right"; anything else is IconLeft.
func ParseIconPosition(raw string) IconPosition {
	if IconPosition(strings.ToLower(strings.TrimSpace(raw))) == IconRight {
		return IconRight
	}
	return IconLeft
}

// Props configure one rendered search box.
type Props struct {
	IconPosition IconPosition
	DefaultValue string
	Placeholder  string
}

// Normalized fills defaults.
func (p Props) Normalized() Props {
	p.IconPosition = ParseIconPosition(string(p.IconPosition))
	return p
}

// Suggest returns up to max entries of data containing query, ignoring case,
// in their original order. A blank query suggests nothing. max <= 0 uses
// DefaultMaxSuggestions.
func Suggest(data []string, query string, max int) []string {
	query = strings.TrimSpace(query)
	if query == "" || len(data) == 0 {
		return []string{}
	}
	if max <= 0 {
		max = DefaultMaxSuggestions
	}
	needle := cases.Fold().String(query)
	out := make([]string, 0, min(max, len(data)))
	for _, candidate := range data {
		if !strings.Contains(cases.Fold().String(candidate), needle) {
			continue
		}
		out = append(out, candidate)
		if len(out) == max {
			break
		}
	}
	return out
}
