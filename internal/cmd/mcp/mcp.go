// Package mcp parses MCP command configuration and runs the MCP server.
package mcp

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	entrypoint "github.com/santiment/sanbase/internal/platform/cmd"
	"github.com/santiment/sanbase/internal/services/mcp/service"
)

// Config holds the MCP command configuration.
type Config struct {
	Transport    string `env:"MCP_TRANSPORT" envDefault:"stdio"`
	HTTPAddr     string `env:"MCP_HTTP_ADDR" envDefault:"localhost:8091"`
	AssetBaseURL string `env:"ASSET_BASE_URL"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	if fs == nil {
		return Config{}, fmt.Errorf("flag parser is required")
	}
	fs.StringVar(&cfg.Transport, "transport", cfg.Transport, "Transport: stdio or http")
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address for the http transport")
	fs.StringVar(&cfg.AssetBaseURL, "asset-base-url", cfg.AssetBaseURL, "Base URL for project icon assets")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	cfg.Transport = strings.ToLower(strings.TrimSpace(cfg.Transport))
	switch service.TransportKind(cfg.Transport) {
	case service.TransportStdio, service.TransportHTTP:
	default:
		return Config{}, fmt.Errorf("transport %q is not supported", cfg.Transport)
	}
	return cfg, nil
}

// Run starts the MCP server on the configured transport.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceMCP, func(ctx context.Context) error {
		transport := service.TransportKind(cfg.Transport)
		if transport == service.TransportHTTP {
			log.Printf("mcp listening transport=http addr=%s", cfg.HTTPAddr)
		}
		return service.Run(ctx, service.Config{
			Transport:    transport,
			HTTPAddr:     cfg.HTTPAddr,
			AssetBaseURL: cfg.AssetBaseURL,
		})
	})
}
