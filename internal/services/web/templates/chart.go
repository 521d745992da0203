package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/santiment/sanbase/internal/backtest"
)

// BacktestChart renders a canvas carrying its Chart.js configuration.
// The page script draws every canvas[data-chart].
func BacktestChart(id string, chart backtest.Chart) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		config, err := templ.JSONString(chartConfig{Type: "line", Chart: chart})
		if err != nil {
			return err
		}
		var m markup
		m.raw(`<div class="backtest-chart"><canvas`).attr("id", id).attr("data-chart", config)
		m.raw(` width="300" height="120"></canvas></div>`)
		return m.flush(w)
	})
}

type chartConfig struct {
	Type string `json:"type"`
	backtest.Chart
}

// BacktestPage renders the sample backtest with its ticker heading.
func BacktestPage(ticker string, chart backtest.Chart, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var m markup
		m.raw(`<section class="backtest"><h1>`).text(T(loc, "title.backtest")).raw(` `).text(ticker).raw(`</h1>`)
		m.raw(`<p class="lead">`).text(T(loc, "backtest.lead")).raw(`</p>`)
		if err := m.render(ctx, w, BacktestChart("backtest-"+ticker, chart)); err != nil {
			return err
		}
		m.raw(`</section>`)
		return m.flush(w)
	})
}
