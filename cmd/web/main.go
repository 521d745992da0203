// Package main starts the browser-facing sanbase web service.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	webcmd "github.com/santiment/sanbase/internal/cmd/web"
	entrypoint "github.com/santiment/sanbase/internal/platform/cmd"
)

func main() {
	cfg, err := webcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	entrypoint.SetupLogging(entrypoint.ServiceWeb)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Probe {
		if err := webcmd.Probe(ctx, cfg); err != nil {
			log.Fatalf("probe: %v", err)
		}
		return
	}

	if err := webcmd.Run(ctx, cfg); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}
