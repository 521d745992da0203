// Package main starts the sanbase MCP server on stdio or HTTP.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	mcpcmd "github.com/santiment/sanbase/internal/cmd/mcp"
	entrypoint "github.com/santiment/sanbase/internal/platform/cmd"
)

func main() {
	cfg, err := mcpcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	// stdio carries protocol frames on stdout; the std logger writes to stderr.
	entrypoint.SetupLogging(entrypoint.ServiceMCP)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := mcpcmd.Run(ctx, cfg); err != nil {
		log.Fatalf("failed to serve MCP: %v", err)
	}
}
