// Command icondocgen writes the project icon catalog page, or with -check
// fails when the committed page is stale.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/santiment/sanbase/internal/platform/icons"
)

var errStale = errors.New("icon catalog is stale; rerun icondocgen")

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer, stderr io.Writer) error {
	var outPath, rootFlag string
	var check bool
	flags := flag.NewFlagSet("icondocgen", flag.ContinueOnError)
	flags.StringVar(&outPath, "out", "docs/icon-catalog.md", "output path for the icon catalog")
	flags.StringVar(&rootFlag, "root", "", "repo root (defaults to locating go.mod)")
	flags.BoolVar(&check, "check", false, "fail instead of writing when the page differs")
	flags.SetOutput(stderr)
	if err := flags.Parse(args); err != nil {
		return err
	}

	root, err := resolveRoot(rootFlag)
	if err != nil {
		return err
	}
	output := outPath
	if !filepath.IsAbs(output) {
		output = filepath.Join(root, outPath)
	}
	content := []byte(page())

	if check {
		existing, err := os.ReadFile(output)
		if err != nil {
			return fmt.Errorf("read catalog: %w", err)
		}
		if !bytes.Equal(existing, content) {
			return errStale
		}
		fmt.Fprintf(stdout, "%s is up to date\n", outPath)
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(output, content, 0o644); err != nil {
		return fmt.Errorf("write catalog: %w", err)
	}
	fmt.Fprintf(stdout, "wrote %s (%d projects)\n", outPath, len(icons.Catalog()))
	return nil
}

func page() string {
	return "---\ntitle: \"Project Icons\"\n---\n\n" + icons.CatalogMarkdown()
}

func resolveRoot(flagRoot string) (string, error) {
	if flagRoot != "" {
		return filepath.Clean(flagRoot), nil
	}
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working dir: %w", err)
	}
	start := dir
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("go.mod not found above %s", start)
		}
		dir = parent
	}
}
