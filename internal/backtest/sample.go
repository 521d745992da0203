package backtest

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"time"
)

//go:embed sample_history.json
var sampleJSON []byte

// Sample is a bundled backtest used by the demo page and stories.
type Sample struct {
	Ticker        string         `json:"ticker"`
	PostUpdatedAt time.Time      `json:"postUpdatedAt"`
	Change        float64        `json:"change"`
	History       []HistoryPoint `json:"history"`
}

// LoadSample decodes the bundled sample.
func LoadSample() (Sample, error) {
	var sample Sample
	if err := json.Unmarshal(sampleJSON, &sample); err != nil {
		return Sample{}, fmt.Errorf("decode sample history: %w", err)
	}
	return sample, nil
}

// Chart builds the sample chart for prop.
func (s Sample) Chart(prop PriceProp) (Chart, error) {
	return BuildChart(s.History, Params{
		PostUpdatedAt: s.PostUpdatedAt,
		Change:        s.Change,
		PriceProp:     prop,
	})
}

// Request is the wire shape accepted by the chart endpoints.
type Request struct {
	History       []HistoryPoint `json:"history"`
	PostUpdatedAt time.Time      `json:"postUpdatedAt"`
	Change        float64        `json:"change"`
	PriceProp     string         `json:"priceProp"`
}

// Chart validates the request and builds its chart.
func (r Request) Chart() (Chart, error) {
	prop, err := ParsePriceProp(r.PriceProp)
	if err != nil {
		return Chart{}, err
	}
	return BuildChart(r.History, Params{
		PostUpdatedAt: r.PostUpdatedAt,
		Change:        r.Change,
		PriceProp:     prop,
	})
}
