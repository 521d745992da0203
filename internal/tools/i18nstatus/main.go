// Command i18nstatus reports translation coverage of the embedded catalogs
// against the base locale.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	i18ncatalog "github.com/santiment/sanbase/internal/platform/i18n/catalog"
)

type report struct {
	BaseLocale string         `json:"base_locale"`
	Locales    []localeStatus `json:"locales"`
}

type localeStatus struct {
	Locale      string   `json:"locale"`
	Translated  int      `json:"translated"`
	Completion  float64  `json:"completion"`
	MissingKeys []string `json:"missing_keys"`
	ExtraKeys   []string `json:"extra_keys"`
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer, stderr io.Writer) error {
	var asJSON, strict bool
	flags := flag.NewFlagSet("i18nstatus", flag.ContinueOnError)
	flags.BoolVar(&asJSON, "json", false, "print the report as JSON")
	flags.BoolVar(&strict, "strict", false, "fail when any locale is missing keys")
	flags.SetOutput(stderr)
	if err := flags.Parse(args); err != nil {
		return err
	}

	bundle, err := i18ncatalog.LoadEmbedded()
	if err != nil {
		return fmt.Errorf("load i18n catalogs: %w", err)
	}
	rep := buildReport(bundle)

	if asJSON {
		encoder := json.NewEncoder(stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(rep); err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
	} else {
		writeText(stdout, rep)
	}

	if strict {
		for _, status := range rep.Locales {
			if len(status.MissingKeys) > 0 {
				return fmt.Errorf("locale %s is missing %d keys", status.Locale, len(status.MissingKeys))
			}
		}
	}
	return nil
}

func buildReport(bundle *i18ncatalog.Bundle) report {
	base := keySet(bundle.Keys(i18ncatalog.BaseLocale))
	rep := report{BaseLocale: i18ncatalog.BaseLocale}
	for _, locale := range bundle.Locales() {
		keys := bundle.Keys(locale)
		have := keySet(keys)
		status := localeStatus{Locale: locale, MissingKeys: []string{}, ExtraKeys: []string{}}
		for _, key := range bundle.Keys(i18ncatalog.BaseLocale) {
			if _, ok := have[key]; ok {
				status.Translated++
			} else {
				status.MissingKeys = append(status.MissingKeys, key)
			}
		}
		for _, key := range keys {
			if _, ok := base[key]; !ok {
				status.ExtraKeys = append(status.ExtraKeys, key)
			}
		}
		status.Completion = percent(status.Translated, len(base))
		rep.Locales = append(rep.Locales, status)
	}
	return rep
}

func writeText(out io.Writer, rep report) {
	fmt.Fprintf(out, "base locale: %s\n", rep.BaseLocale)
	for _, status := range rep.Locales {
		fmt.Fprintf(out, "%s: %.1f%% translated, %d missing, %d extra\n",
			status.Locale, status.Completion, len(status.MissingKeys), len(status.ExtraKeys))
		if len(status.MissingKeys) > 0 {
			fmt.Fprintf(out, "  missing: %s\n", strings.Join(status.MissingKeys, ", "))
		}
	}
}

func keySet(keys []string) map[string]struct{} {
	out := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		out[key] = struct{}{}
	}
	return out
}

func percent(part, total int) float64 {
	if total == 0 {
		return 100
	}
	return math.Round(float64(part)/float64(total)*1000) / 10
}
