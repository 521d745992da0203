// Package backtest builds Chart.js configurations for the post backtest
// widget: a bare price line with a vertical marker at the moment a post was
// published, coloured by the sign of the price change since then.
package backtest

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// PriceProp selects which history field is plotted.
type PriceProp string

const (
	PriceUSD  PriceProp = "priceUsd"
	PriceBTC  PriceProp = "priceBtc"
	Volume    PriceProp = "volume"
	Marketcap PriceProp = "marketcap"
)

const (
	// ColorPositive marks a post followed by a price increase.
	ColorPositive = "rgb(48, 157, 129)"
	// ColorNegative marks a post followed by a flat or falling price.
	ColorNegative = "rgb(200, 47, 63)"
	// LineColor is the dataset stroke colour.
	LineColor = "rgba(255, 193, 7, 1)"

	xAxisID = "x-axis-0"
)

var (
	// ErrInvalidPriceProp is returned for an unknown PriceProp.
	ErrInvalidPriceProp = errors.New("invalid price property")
	// ErrMissingPostTime is returned when Params.PostUpdatedAt is zero.
	ErrMissingPostTime = errors.New("post time is required")
)

// ParsePriceProp validates raw. An empty value selects PriceUSD.
func ParsePriceProp(raw string) (PriceProp, error) {
	switch prop := PriceProp(strings.TrimSpace(raw)); prop {
	case "":
		return PriceUSD, nil
	case PriceUSD, PriceBTC, Volume, Marketcap:
		return prop, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPriceProp, raw)
	}
}

// HistoryPoint is one sample of a project's market history.
type HistoryPoint struct {
	Datetime  time.Time `json:"datetime"`
	PriceUSD  float64   `json:"priceUsd"`
	PriceBTC  float64   `json:"priceBtc"`
	Volume    float64   `json:"volume"`
	Marketcap float64   `json:"marketcap"`
}

// Value returns the field selected by prop.
func (p HistoryPoint) Value(prop PriceProp) float64 {
	switch prop {
	case PriceBTC:
		return p.PriceBTC
	case Volume:
		return p.Volume
	case Marketcap:
		return p.Marketcap
	default:
		return p.PriceUSD
	}
}

// Params carries the post being backtested.
type Params struct {
	PostUpdatedAt time.Time
	Change        float64
	PriceProp     PriceProp
}

type (
	// Chart is a Chart.js v2 line chart configuration.
	Chart struct {
		Options Options `json:"options"`
		Data    Data    `json:"data"`
	}

	Data struct {
		Labels   []string  `json:"labels"`
		Datasets []Dataset `json:"datasets"`
	}

	Dataset struct {
		Data        []float64 `json:"data"`
		BorderColor string    `json:"borderColor"`
		BorderWidth int       `json:"borderWidth"`
		PointRadius int       `json:"pointRadius"`
		Fill        bool      `json:"fill"`
	}

	Options struct {
		Animation  bool              `json:"animation"`
		Legend     Display           `json:"legend"`
		Tooltips   Tooltips          `json:"tooltips"`
		Scales     Scales            `json:"scales"`
		Annotation AnnotationOptions `json:"annotation"`
	}

	Display struct {
		Display bool `json:"display"`
	}

	Tooltips struct {
		Enabled bool `json:"enabled"`
	}

	Axis struct {
		ID      string `json:"id,omitempty"`
		Display bool   `json:"display"`
	}

	Scales struct {
		YAxes []Axis `json:"yAxes"`
		XAxes []Axis `json:"xAxes"`
	}

	AnnotationOptions struct {
		Annotations []Annotation `json:"annotations"`
	}

	// Annotation is a chartjs-plugin-annotation line.
	Annotation struct {
		DrawTime    string `json:"drawTime"`
		Type        string `json:"type"`
		Mode        string `json:"mode"`
		ScaleID     string `json:"scaleID"`
		Value       string `json:"value"`
		BorderColor string `json:"borderColor"`
		BorderWidth int    `json:"borderWidth"`
	}
)

// BuildChart turns history into a chart configuration. Labels and values
// keep the input order; an empty history yields an empty line.
func BuildChart(history []HistoryPoint, params Params) (Chart, error) {
	prop, err := ParsePriceProp(string(params.PriceProp))
	if err != nil {
		return Chart{}, err
	}
	if params.PostUpdatedAt.IsZero() {
		return Chart{}, ErrMissingPostTime
	}

	labels := make([]string, 0, len(history))
	values := make([]float64, 0, len(history))
	for _, point := range history {
		labels = append(labels, FormatTime(point.Datetime))
		values = append(values, point.Value(prop))
	}

	return Chart{
		Options: Options{
			Animation: false,
			Legend:    Display{Display: false},
			Tooltips:  Tooltips{Enabled: false},
			Scales: Scales{
				YAxes: []Axis{{Display: false}},
				XAxes: []Axis{{ID: xAxisID, Display: false}},
			},
			Annotation: AnnotationOptions{Annotations: []Annotation{{
				DrawTime:    "afterDatasetsDraw",
				Type:        "line",
				Mode:        "vertical",
				ScaleID:     xAxisID,
				Value:       FormatTime(params.PostUpdatedAt),
				BorderColor: ChangeColor(params.Change),
				BorderWidth: 1,
			}}},
		},
		Data: Data{
			Labels: labels,
			Datasets: []Dataset{{
				Data:        values,
				BorderColor: LineColor,
				BorderWidth: 1,
				PointRadius: 0,
				Fill:        false,
			}},
		},
	}, nil
}

// ChangeColor returns the marker colour for a price change.
// Zero counts as negative.
func ChangeColor(change float64) string {
	if change > 0 {
		return ColorPositive
	}
	return ColorNegative
}

// FormatTime renders t as RFC 3339 in UTC.
func FormatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
