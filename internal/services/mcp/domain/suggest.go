package domain

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/santiment/sanbase/internal/platform/icons"
	"github.com/santiment/sanbase/internal/search"
)

// MaxSuggestionsLimit bounds SuggestProjectsInput.Max.
const MaxSuggestionsLimit = 50

// SuggestProjectsInput represents the MCP tool input for project suggestions.
type SuggestProjectsInput struct {
	Query string `json:"query" jsonschema:"case-insensitive substring to look for"`
	Max   int    `json:"max,omitempty" jsonschema:"maximum suggestions to return (1-50, default 5)"`
}

// SuggestProjectsResult represents the MCP tool output for project suggestions.
type SuggestProjectsResult struct {
	Query       string   `json:"query" jsonschema:"trimmed query"`
	Suggestions []string `json:"suggestions" jsonschema:"matching project names in catalog order"`
}

// SuggestProjectsTool defines the MCP tool schema for project suggestions.
func SuggestProjectsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "suggest_projects",
		Description: "Suggests project names containing the query, ignoring case, in catalog order",
	}
}

// SuggestProjectsHandler suggests from data. Nil data uses the icon catalog names.
func SuggestProjectsHandler(data []string) mcp.ToolHandlerFor[SuggestProjectsInput, SuggestProjectsResult] {
	if data == nil {
		data = icons.Names()
	}
	return func(_ context.Context, _ *mcp.CallToolRequest, input SuggestProjectsInput) (*mcp.CallToolResult, SuggestProjectsResult, error) {
		if input.Max < 0 || input.Max > MaxSuggestionsLimit {
			return nil, SuggestProjectsResult{}, fmt.Errorf("max must be between 1 and %d", MaxSuggestionsLimit)
		}
		query := strings.TrimSpace(input.Query)
		return &mcp.CallToolResult{}, SuggestProjectsResult{
			Query:       query,
			Suggestions: search.Suggest(data, query, input.Max),
		}, nil
	}
}
