package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/santiment/sanbase/internal/platform/assets/imagecdn"
	"github.com/santiment/sanbase/internal/platform/icons"
)

const (
	// IconCatalogURI addresses the markdown icon catalog resource.
	IconCatalogURI = "sanbase://icons/catalog"
	// IconURITemplate addresses one resolved icon.
	IconURITemplate = "sanbase://icons/{name}"

	iconURIPrefix = "sanbase://icons/"
)

// ResolveProjectIconInput represents the MCP tool input for icon resolution.
type ResolveProjectIconInput struct {
	Name string `json:"name" jsonschema:"project display name, e.g. Santiment or Binance Coin"`
}

// ResolveProjectIconResult represents the MCP tool output for icon resolution.
type ResolveProjectIconResult struct {
	Key    string `json:"key" jsonschema:"canonical lookup key"`
	Name   string `json:"name,omitempty" jsonschema:"matched project name; empty for the default icon"`
	Asset  string `json:"asset" jsonschema:"bundled asset identifier"`
	URL    string `json:"url" jsonschema:"delivery URL for the asset"`
	Width  int    `json:"width" jsonschema:"icon width in pixels"`
	Height int    `json:"height" jsonschema:"icon height in pixels"`
	Class  string `json:"class" jsonschema:"CSS class applied to the img element"`
	Known  bool   `json:"known" jsonschema:"whether the name matched a listed project"`
}

// ResolveProjectIconTool defines the MCP tool schema for icon resolution.
func ResolveProjectIconTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "resolve_project_icon",
		Description: "Resolves a project display name to its bundled icon. Unknown names resolve to the default icon",
	}
}

// ResolveProjectIconHandler resolves icons against cdn.
func ResolveProjectIconHandler(cdn imagecdn.CDN) mcp.ToolHandlerFor[ResolveProjectIconInput, ResolveProjectIconResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ResolveProjectIconInput) (*mcp.CallToolResult, ResolveProjectIconResult, error) {
		result, err := resolveIcon(cdn, input.Name)
		if err != nil {
			return nil, ResolveProjectIconResult{}, err
		}
		return &mcp.CallToolResult{}, result, nil
	}
}

func resolveIcon(cdn imagecdn.CDN, name string) (ResolveProjectIconResult, error) {
	icon := icons.Resolve(name)
	src, err := cdn.URL(imagecdn.Request{
		Asset:    icon.Asset,
		Delivery: &imagecdn.Delivery{WidthPX: icon.Width, HeightPX: icon.Height},
	})
	if err != nil {
		return ResolveProjectIconResult{}, fmt.Errorf("icon url: %w", err)
	}
	return ResolveProjectIconResult{
		Key:    icon.Key,
		Name:   icon.Name,
		Asset:  icon.Asset,
		URL:    src,
		Width:  icon.Width,
		Height: icon.Height,
		Class:  icon.Class,
		Known:  icon.Known,
	}, nil
}

// IconCatalogResource defines the icon catalog resource.
func IconCatalogResource() *mcp.Resource {
	return &mcp.Resource{
		URI:         IconCatalogURI,
		Name:        "icon_catalog",
		Description: "Every listed project with its ticker, lookup key and bundled asset",
		MIMEType:    "text/markdown",
	}
}

// IconCatalogResourceHandler serves the markdown catalog.
func IconCatalogResourceHandler() mcp.ResourceHandler {
	return func(_ context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		uri := IconCatalogURI
		if req != nil && req.Params != nil && req.Params.URI != "" {
			uri = req.Params.URI
		}
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{URI: uri, MIMEType: "text/markdown", Text: icons.CatalogMarkdown()}},
		}, nil
	}
}

// IconResourceTemplate defines the per-name icon resource.
func IconResourceTemplate() *mcp.ResourceTemplate {
	return &mcp.ResourceTemplate{
		URITemplate: IconURITemplate,
		Name:        "project_icon",
		Description: "Resolved icon for one project name",
		MIMEType:    "application/json",
	}
}

// IconResourceHandler resolves the name addressed by sanbase://icons/{name}.
func IconResourceHandler(cdn imagecdn.CDN) mcp.ResourceHandler {
	return func(_ context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		if req == nil || req.Params == nil || req.Params.URI == "" {
			return nil, fmt.Errorf("icon name is required; use URI format %s", IconURITemplate)
		}
		uri := req.Params.URI
		name, err := parseIconNameFromURI(uri)
		if err != nil {
			return nil, err
		}
		result, err := resolveIcon(cdn, name)
		if err != nil {
			return nil, err
		}
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal icon: %w", err)
		}
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{URI: uri, MIMEType: "application/json", Text: string(data)}},
		}, nil
	}
}

func parseIconNameFromURI(uri string) (string, error) {
	if !strings.HasPrefix(uri, iconURIPrefix) {
		return "", fmt.Errorf("unexpected icon URI %q", uri)
	}
	name, err := url.PathUnescape(strings.TrimPrefix(uri, iconURIPrefix))
	if err != nil {
		return "", fmt.Errorf("decode icon name: %w", err)
	}
	if strings.TrimSpace(name) == "" || strings.Contains(name, "/") {
		return "", fmt.Errorf("icon name is required; use URI format %s", IconURITemplate)
	}
	return name, nil
}
