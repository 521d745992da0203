// Package sessionsecret prints a fresh SANBASE_SESSION_SECRET assignment.
package sessionsecret

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/santiment/sanbase/internal/wallet"
)

// EnvName is the variable the web service reads its signing key from.
const EnvName = "SANBASE_SESSION_SECRET"

const minBytes = 32

// Config holds configuration for secret generation.
type Config struct {
	Bytes int
}

// ParseConfig parses flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := Config{Bytes: minBytes}
	fs.IntVar(&cfg.Bytes, "bytes", cfg.Bytes, "number of random bytes (minimum 32)")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run generates a secret and writes it to out as an env assignment.
// The secret is checked against wallet.NewSessions before it is printed.
func Run(cfg Config, out io.Writer, reader io.Reader) error {
	if cfg.Bytes < minBytes {
		return fmt.Errorf("bytes must be at least %d", minBytes)
	}
	if out == nil {
		return errors.New("output is required")
	}
	if reader == nil {
		reader = rand.Reader
	}

	secret := make([]byte, cfg.Bytes)
	if _, err := io.ReadFull(reader, secret); err != nil {
		return fmt.Errorf("generate random bytes: %w", err)
	}
	if _, err := wallet.NewSessions(wallet.SessionConfig{Secret: secret, Now: time.Now}); err != nil {
		return err
	}
	_, err := fmt.Fprintf(out, "%s=%s\n", EnvName, base64.RawStdEncoding.EncodeToString(secret))
	return err
}
