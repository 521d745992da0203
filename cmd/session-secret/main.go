// Package main prints a session signing secret for the web service.
package main

import (
	"flag"
	"os"

	"github.com/santiment/sanbase/internal/platform/config"
	"github.com/santiment/sanbase/internal/tools/sessionsecret"
)

func main() {
	cfg, err := sessionsecret.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	if err := sessionsecret.Run(cfg, os.Stdout, nil); err != nil {
		config.Exitf("generate secret: %v", err)
	}
}
