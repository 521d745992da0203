// Package cmd holds the startup plumbing shared by the web and MCP commands.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/santiment/sanbase/internal/platform/config"
	"github.com/santiment/sanbase/internal/platform/otel"
	"github.com/santiment/sanbase/internal/platform/timeouts"
)

// Service names used for log prefixes and telemetry resources.
const (
	ServiceWeb = "web"
	ServiceMCP = "mcp"
)

// ParseConfig loads SANBASE_* environment values into cfg.
func ParseConfig[T any](cfg *T) error {
	if cfg == nil {
		return errors.New("config target is required")
	}
	return config.ParseEnv(cfg)
}

// ParseArgs parses flags registered on fs after ParseConfig, so flags
// override the environment.
func ParseArgs(fs *flag.FlagSet, args []string) error {
	if fs == nil {
		return errors.New("flag parser is required")
	}
	if args == nil {
		args = []string{}
	}
	return fs.Parse(args)
}

// LogPrefix returns the log prefix for a service, e.g. "[WEB] ".
func LogPrefix(service string) string {
	service = strings.TrimSpace(service)
	if service == "" {
		return ""
	}
	return "[" + strings.ToUpper(service) + "] "
}

// SetupLogging points the default logger at the service prefix.
func SetupLogging(service string) {
	log.SetPrefix(LogPrefix(service))
	log.SetFlags(log.LstdFlags | log.LUTC)
}

// RunWithTelemetry installs the tracer provider for service, runs run, and
// flushes spans before returning run's error.
func RunWithTelemetry(ctx context.Context, service string, run func(context.Context) error) error {
	service = strings.TrimSpace(service)
	if service == "" {
		return fmt.Errorf("service name is required")
	}
	if run == nil {
		return fmt.Errorf("run function is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	shutdown, err := otel.Setup(ctx, "sanbase-"+service)
	if err != nil {
		return fmt.Errorf("setup telemetry: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		defer cancel()
		if err := shutdown(flushCtx); err != nil {
			log.Printf("otel shutdown service=%s err=%v", service, err)
		}
	}()
	return run(ctx)
}
