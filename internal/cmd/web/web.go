// Package web parses web service configuration and launches the HTTP server
// with its ops health listener.
package web

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"strings"
	"time"

	entrypoint "github.com/santiment/sanbase/internal/platform/cmd"
	platformgrpc "github.com/santiment/sanbase/internal/platform/grpc"
	"github.com/santiment/sanbase/internal/services/web"
	"github.com/santiment/sanbase/internal/services/web/platform/httpx"
	"github.com/santiment/sanbase/internal/wallet"
	"golang.org/x/sync/errgroup"
)

// healthServiceName is reported by the ops gRPC health listener.
const healthServiceName = "sanbase.web"

// Config holds the web command configuration.
type Config struct {
	HTTPAddr string `env:"WEB_HTTP_ADDR" envDefault:"localhost:8090"`
	// HealthAddr serves gRPC health checks. Empty disables the listener.
	HealthAddr   string `env:"WEB_HEALTH_ADDR"`
	AssetBaseURL string `env:"ASSET_BASE_URL"`
	// WalletAccounts may sign in. Empty disables wallet sign-in.
	WalletAccounts []string `env:"WEB_WALLET_ACCOUNTS" envSeparator:","`
	// SuggestRate is the per-client suggestion rate per second. Zero disables limiting.
	SuggestRate  float64 `env:"WEB_SUGGEST_RATE" envDefault:"10"`
	SuggestBurst int     `env:"WEB_SUGGEST_BURST" envDefault:"20"`
	// Probe checks a running instance's health listener instead of serving.
	Probe bool
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	if fs == nil {
		return Config{}, errors.New("flag parser is required")
	}
	accounts := strings.Join(cfg.WalletAccounts, ",")
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.HealthAddr, "health-addr", cfg.HealthAddr, "gRPC health listen address (empty disables)")
	fs.StringVar(&cfg.AssetBaseURL, "asset-base-url", cfg.AssetBaseURL, "Base URL for project icon assets")
	fs.StringVar(&accounts, "wallet-accounts", accounts, "Comma-separated wallet accounts allowed to sign in")
	fs.Float64Var(&cfg.SuggestRate, "suggest-rate", cfg.SuggestRate, "Suggestion requests per second per client (0 disables)")
	fs.IntVar(&cfg.SuggestBurst, "suggest-burst", cfg.SuggestBurst, "Suggestion request burst per client")
	fs.BoolVar(&cfg.Probe, "probe", false, "Probe the health listener at -health-addr and exit")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	cfg.WalletAccounts = splitAccounts(accounts)
	if cfg.SuggestRate < 0 || cfg.SuggestBurst < 0 {
		return Config{}, fmt.Errorf("suggest rate and burst must not be negative")
	}
	return cfg, nil
}

// Run starts the web server and, when configured, the health listener. The
// first of them to fail stops the other.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWeb, func(ctx context.Context) error {
		serverCfg, err := serverConfig(cfg)
		if err != nil {
			return err
		}
		server, err := web.NewServer(ctx, serverCfg)
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()

		healthListener, err := listenHealth(cfg.HealthAddr)
		if err != nil {
			return err
		}

		group, groupCtx := errgroup.WithContext(ctx)
		if healthListener != nil {
			health := platformgrpc.NewHealthServer(healthServiceName)
			log.Printf("health listening addr=%s", healthListener.Addr())
			group.Go(func() error {
				return health.Serve(groupCtx, healthListener)
			})
		}
		group.Go(func() error {
			log.Printf("web listening addr=%s", server.Addr())
			if err := server.ListenAndServe(groupCtx); err != nil {
				return fmt.Errorf("serve web: %w", err)
			}
			return nil
		})
		return group.Wait()
	})
}

// Probe reports whether the instance behind cfg.HealthAddr is serving.
func Probe(ctx context.Context, cfg Config) error {
	if strings.TrimSpace(cfg.HealthAddr) == "" {
		return errors.New("probe requires -health-addr")
	}
	return platformgrpc.Probe(ctx, cfg.HealthAddr, healthServiceName)
}

func serverConfig(cfg Config) (web.Config, error) {
	sessionCfg, generated, err := wallet.LoadSessionConfigFromEnv(time.Now)
	if err != nil {
		return web.Config{}, err
	}
	if generated {
		log.Printf("session secret not set; sessions will not survive restarts")
	}
	sessions, err := wallet.NewSessions(sessionCfg)
	if err != nil {
		return web.Config{}, fmt.Errorf("init sessions: %w", err)
	}
	authenticator, err := wallet.AllowList(cfg.WalletAccounts...)
	if err != nil {
		return web.Config{}, fmt.Errorf("wallet accounts: %w", err)
	}
	if authenticator == wallet.Unavailable {
		log.Printf("no wallet accounts configured; wallet sign-in is disabled")
	}
	var limiter *httpx.RateLimiter
	if cfg.SuggestRate > 0 {
		limiter = httpx.NewRateLimiter(cfg.SuggestRate, max(cfg.SuggestBurst, 1))
	}
	return web.Config{
		HTTPAddr:       cfg.HTTPAddr,
		AssetBaseURL:   cfg.AssetBaseURL,
		Authenticator:  authenticator,
		Sessions:       sessions,
		SuggestLimiter: limiter,
	}, nil
}

// listenHealth opens the health listener. An empty addr disables it.
func listenHealth(addr string) (net.Listener, error) {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return nil, nil
	}
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen health on %s: %w", addr, err)
	}
	return listener, nil
}

func splitAccounts(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
