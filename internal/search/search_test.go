package search

import (
	"slices"
	"testing"
)

var storyData = []string{"Bibox Token", "Bigbom", "Binance Coin", "BioCoin", "BitBay", "bitcoin"}

func TestSuggest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		query string
		max   int
		want  []string
	}{
		{name: "prefix keeps order", query: "bi", max: 5, want: []string{"Bibox Token", "Bigbom", "Binance Coin", "BioCoin", "BitBay"}},
		{name: "case insensitive", query: "BITCOIN", max: 5, want: []string{"bitcoin"}},
		{name: "substring", query: "coin", max: 5, want: []string{"Binance Coin", "BioCoin", "bitcoin"}},
		{name: "cap", query: "b", max: 2, want: []string{"Bibox Token", "Bigbom"}},
		{name: "default cap", query: "b", max: 0, want: []string{"Bibox Token", "Bigbom", "Binance Coin", "BioCoin", "BitBay"}},
		{name: "blank query", query: "   ", max: 5, want: []string{}},
		{name: "no match", query: "eth", max: 5, want: []string{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := Suggest(storyData, tc.query, tc.max)
			if !slices.Equal(got, tc.want) {
				t.Fatalf("Suggest(%q, %d) = %v, want %v", tc.query, tc.max, got, tc.want)
			}
		})
	}
}

func TestSuggestNeverReturnsNil(t *testing.T) {
	t.Parallel()

	if got := Suggest(nil, "bit", 5); got == nil {
		t.Fatal("expected empty slice, got nil")
	}
}

func TestParseIconPosition(t *testing.T) {
	t.Parallel()

	tests := map[string]IconPosition{
		"right":  IconRight,
		" Right": IconRight,
		"left":   IconLeft,
		"":       IconLeft,
		"top":    IconLeft,
	}
	for raw, want := range tests {
		if got := ParseIconPosition(raw); got != want {
			t.Errorf("ParseIconPosition(%q) = %q, want %q", raw, got, want)
		}
	}
	if got := (Props{IconPosition: "bogus"}).Normalized().IconPosition; got != IconLeft {
		t.Fatalf("Normalized().IconPosition = %q, want left", got)
	}
}
