package domain

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/santiment/sanbase/internal/backtest"
)

// HistoryPointInput is one price observation. Field names match the HTTP
// chart request; Datetime is RFC3339.
type HistoryPointInput struct {
	Datetime  string  `json:"datetime" jsonschema:"RFC3339 timestamp of the observation"`
	PriceUSD  float64 `json:"priceUsd,omitempty" jsonschema:"price in USD"`
	PriceBTC  float64 `json:"priceBtc,omitempty" jsonschema:"price in BTC"`
	Volume    float64 `json:"volume,omitempty" jsonschema:"traded volume"`
	Marketcap float64 `json:"marketcap,omitempty" jsonschema:"market capitalization"`
}

// BuildBacktestChartInput represents the MCP tool input for chart building.
type BuildBacktestChartInput struct {
	History       []HistoryPointInput `json:"history,omitempty" jsonschema:"price history in display order; omit to use the bundled sample"`
	PostUpdatedAt string              `json:"postUpdatedAt,omitempty" jsonschema:"RFC3339 time the post was published; required with history"`
	Change        float64             `json:"change,omitempty" jsonschema:"price change after the post; positive marks the line green"`
	PriceProp     string              `json:"priceProp,omitempty" jsonschema:"plotted field: priceUsd (default), priceBtc, volume or marketcap"`
}

// BuildBacktestChartResult represents the MCP tool output for chart building.
type BuildBacktestChartResult struct {
	Ticker string         `json:"ticker,omitempty" jsonschema:"ticker of the bundled sample when it was used"`
	Chart  backtest.Chart `json:"chart" jsonschema:"Chart.js v2 line chart configuration"`
}

// BuildBacktestChartTool defines the MCP tool schema for chart building.
func BuildBacktestChartTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "build_backtest_chart",
		Description: "Builds the Chart.js configuration plotting a price history with a vertical marker at the post time",
	}
}

// BuildBacktestChartHandler builds charts, falling back to sample when no
// history is given.
func BuildBacktestChartHandler(sample backtest.Sample) mcp.ToolHandlerFor[BuildBacktestChartInput, BuildBacktestChartResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input BuildBacktestChartInput) (*mcp.CallToolResult, BuildBacktestChartResult, error) {
		prop, err := backtest.ParsePriceProp(input.PriceProp)
		if err != nil {
			return nil, BuildBacktestChartResult{}, err
		}
		if len(input.History) == 0 {
			if len(sample.History) == 0 {
				return nil, BuildBacktestChartResult{}, fmt.Errorf("history is required")
			}
			chart, err := sample.Chart(prop)
			if err != nil {
				return nil, BuildBacktestChartResult{}, fmt.Errorf("sample chart: %w", err)
			}
			return &mcp.CallToolResult{}, BuildBacktestChartResult{Ticker: sample.Ticker, Chart: chart}, nil
		}

		postedAt, err := parseTimestamp("postUpdatedAt", input.PostUpdatedAt)
		if err != nil {
			return nil, BuildBacktestChartResult{}, err
		}
		history := make([]backtest.HistoryPoint, 0, len(input.History))
		for idx, point := range input.History {
			at, err := parseTimestamp(fmt.Sprintf("history[%d].datetime", idx), point.Datetime)
			if err != nil {
				return nil, BuildBacktestChartResult{}, err
			}
			history = append(history, backtest.HistoryPoint{
				Datetime:  at,
				PriceUSD:  point.PriceUSD,
				PriceBTC:  point.PriceBTC,
				Volume:    point.Volume,
				Marketcap: point.Marketcap,
			})
		}
		chart, err := backtest.BuildChart(history, backtest.Params{
			PostUpdatedAt: postedAt,
			Change:        input.Change,
			PriceProp:     prop,
		})
		if err != nil {
			return nil, BuildBacktestChartResult{}, err
		}
		return &mcp.CallToolResult{}, BuildBacktestChartResult{Chart: chart}, nil
	}
}

func parseTimestamp(field, raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, fmt.Errorf("%s is required", field)
	}
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s must be RFC3339: %w", field, err)
	}
	return parsed, nil
}
