package backtest

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func testHistory() []HistoryPoint {
	start := time.Date(2018, 1, 8, 0, 0, 0, 0, time.UTC)
	return []HistoryPoint{
		{Datetime: start, PriceUSD: 3.1, PriceBTC: 0.0002, Volume: 100, Marketcap: 1000},
		{Datetime: start.Add(time.Hour), PriceUSD: 3.3, PriceBTC: 0.00021, Volume: 200, Marketcap: 1100},
		{Datetime: start.Add(2 * time.Hour), PriceUSD: 2.9, PriceBTC: 0.00019, Volume: 150, Marketcap: 900},
	}
}

func TestBuildChartAlignsLabelsAndData(t *testing.T) {
	t.Parallel()

	history := testHistory()
	chart, err := BuildChart(history, Params{PostUpdatedAt: history[1].Datetime, Change: 0.1})
	if err != nil {
		t.Fatalf("BuildChart() error = %v", err)
	}
	if len(chart.Data.Datasets) != 1 {
		t.Fatalf("datasets = %d, want 1", len(chart.Data.Datasets))
	}
	dataset := chart.Data.Datasets[0]
	wantLabels := []string{"2018-01-08T00:00:00Z", "2018-01-08T01:00:00Z", "2018-01-08T02:00:00Z"}
	wantData := []float64{3.1, 3.3, 2.9}
	if len(chart.Data.Labels) != len(wantLabels) || len(dataset.Data) != len(wantData) {
		t.Fatalf("labels = %v, data = %v", chart.Data.Labels, dataset.Data)
	}
	for i := range wantLabels {
		if chart.Data.Labels[i] != wantLabels[i] {
			t.Errorf("label[%d] = %q, want %q", i, chart.Data.Labels[i], wantLabels[i])
		}
		if dataset.Data[i] != wantData[i] {
			t.Errorf("data[%d] = %v, want %v", i, dataset.Data[i], wantData[i])
		}
	}
	if dataset.BorderColor != "rgba(255, 193, 7, 1)" || dataset.BorderWidth != 1 || dataset.PointRadius != 0 || dataset.Fill {
		t.Fatalf("unexpected dataset style: %+v", dataset)
	}
}

func TestBuildChartSelectsPriceProp(t *testing.T) {
	t.Parallel()

	history := testHistory()
	tests := map[PriceProp]float64{
		"":        3.1,
		PriceUSD:  3.1,
		PriceBTC:  0.0002,
		Volume:    100,
		Marketcap: 1000,
	}
	for prop, want := range tests {
		chart, err := BuildChart(history, Params{PostUpdatedAt: history[0].Datetime, PriceProp: prop})
		if err != nil {
			t.Fatalf("BuildChart(%q) error = %v", prop, err)
		}
		if got := chart.Data.Datasets[0].Data[0]; got != want {
			t.Errorf("BuildChart(%q) first value = %v, want %v", prop, got, want)
		}
	}
}

func TestBuildChartAnnotationColorFollowsChange(t *testing.T) {
	t.Parallel()

	post := time.Date(2018, 1, 8, 3, 0, 0, 0, time.FixedZone("MSK", 3*60*60))
	tests := []struct {
		change float64
		want   string
	}{
		{change: 0.25, want: "rgb(48, 157, 129)"},
		{change: -0.25, want: "rgb(200, 47, 63)"},
		{change: 0, want: "rgb(200, 47, 63)"},
	}
	for _, tc := range tests {
		chart, err := BuildChart(nil, Params{PostUpdatedAt: post, Change: tc.change})
		if err != nil {
			t.Fatalf("BuildChart() error = %v", err)
		}
		annotations := chart.Options.Annotation.Annotations
		if len(annotations) != 1 {
			t.Fatalf("annotations = %d, want 1", len(annotations))
		}
		got := annotations[0]
		if got.BorderColor != tc.want {
			t.Errorf("change %v color = %q, want %q", tc.change, got.BorderColor, tc.want)
		}
		if got.Value != "2018-01-08T00:00:00Z" {
			t.Errorf("annotation value = %q, want UTC post time", got.Value)
		}
		if got.DrawTime != "afterDatasetsDraw" || got.Type != "line" || got.Mode != "vertical" || got.ScaleID != "x-axis-0" || got.BorderWidth != 1 {
			t.Errorf("unexpected annotation: %+v", got)
		}
	}
}

func TestBuildChartEmptyHistory(t *testing.T) {
	t.Parallel()

	chart, err := BuildChart(nil, Params{PostUpdatedAt: time.Unix(0, 1)})
	if err != nil {
		t.Fatalf("BuildChart() error = %v", err)
	}
	encoded, err := json.Marshal(chart.Data)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(encoded), `"labels":[]`) || !strings.Contains(string(encoded), `"data":[]`) {
		t.Fatalf("expected empty arrays, got %s", encoded)
	}
}

func TestBuildChartRejectsInvalidInput(t *testing.T) {
	t.Parallel()

	if _, err := BuildChart(testHistory(), Params{PostUpdatedAt: time.Now(), PriceProp: "priceEur"}); !errors.Is(err, ErrInvalidPriceProp) {
		t.Fatalf("unknown prop error = %v, want %v", err, ErrInvalidPriceProp)
	}
	if _, err := BuildChart(testHistory(), Params{}); !errors.Is(err, ErrMissingPostTime) {
		t.Fatalf("zero post time error = %v, want %v", err, ErrMissingPostTime)
	}
}

func TestChartOptionsEncodeForChartJS(t *testing.T) {
	t.Parallel()

	chart, err := BuildChart(testHistory(), Params{PostUpdatedAt: time.Date(2018, 1, 8, 1, 0, 0, 0, time.UTC), Change: 1})
	if err != nil {
		t.Fatalf("BuildChart() error = %v", err)
	}
	encoded, err := json.Marshal(chart.Options)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, fragment := range []string{
		`"animation":false`,
		`"legend":{"display":false}`,
		`"tooltips":{"enabled":false}`,
		`"yAxes":[{"display":false}]`,
		`"xAxes":[{"id":"x-axis-0","display":false}]`,
		`"scaleID":"x-axis-0"`,
		`"value":"2018-01-08T01:00:00Z"`,
	} {
		if !strings.Contains(string(encoded), fragment) {
			t.Errorf("options missing %s: %s", fragment, encoded)
		}
	}
}

func TestParsePriceProp(t *testing.T) {
	t.Parallel()

	if got, err := ParsePriceProp(" volume "); err != nil || got != Volume {
		t.Fatalf("ParsePriceProp(volume) = %q, %v", got, err)
	}
	if got, err := ParsePriceProp(""); err != nil || got != PriceUSD {
		t.Fatalf("ParsePriceProp(empty) = %q, %v", got, err)
	}
	if _, err := ParsePriceProp("PRICEUSD"); err == nil {
		t.Fatal("expected case-sensitive rejection")
	}
}
