package web

import (
	"context"
	"flag"
	"testing"
	"time"

	platformgrpc "github.com/santiment/sanbase/internal/platform/grpc"
	"github.com/santiment/sanbase/internal/wallet"
	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "localhost:8090" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "localhost:8090")
	}
	if cfg.HealthAddr != "" || len(cfg.WalletAccounts) != 0 {
		t.Fatalf("cfg = %+v", cfg)
	}
	if cfg.SuggestRate != 10 || cfg.SuggestBurst != 20 {
		t.Fatalf("suggest rate = %v burst = %d", cfg.SuggestRate, cfg.SuggestBurst)
	}
}

func TestParseConfigReadsEnv(t *testing.T) {
	t.Setenv("SANBASE_WEB_HTTP_ADDR", "0.0.0.0:9000")
	t.Setenv("SANBASE_ASSET_BASE_URL", "https://cdn.example.com")
	t.Setenv("SANBASE_WEB_WALLET_ACCOUNTS", "0x52bc44d5378309ee2abf1539bf71de1b7d7be3b5, 0x0000000000000000000000000000000000000001")

	cfg, err := ParseConfig(flag.NewFlagSet("web", flag.ContinueOnError), nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "0.0.0.0:9000" || cfg.AssetBaseURL != "https://cdn.example.com" {
		t.Fatalf("cfg = %+v", cfg)
	}
	if len(cfg.WalletAccounts) != 2 || cfg.WalletAccounts[1] != "0x0000000000000000000000000000000000000001" {
		t.Fatalf("WalletAccounts = %q", cfg.WalletAccounts)
	}
}

func TestParseConfigFlagsOverrideEnv(t *testing.T) {
	t.Setenv("SANBASE_WEB_HTTP_ADDR", "0.0.0.0:9000")

	cfg, err := ParseConfig(flag.NewFlagSet("web", flag.ContinueOnError), []string{
		"-http-addr", "127.0.0.1:9001",
		"-wallet-accounts", " 0x52bc44d5378309ee2abf1539bf71de1b7d7be3b5 ,,",
		"-suggest-rate", "0",
	})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "127.0.0.1:9001" {
		t.Fatalf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if len(cfg.WalletAccounts) != 1 || cfg.SuggestRate != 0 {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestParseConfigRejectsNegativeRate(t *testing.T) {
	if _, err := ParseConfig(flag.NewFlagSet("web", flag.ContinueOnError), []string{"-suggest-rate", "-1"}); err == nil {
		t.Fatal("expected error")
	}
}

func TestServerConfigWiresWallet(t *testing.T) {
	t.Setenv("SANBASE_SESSION_SECRET", "")

	cfg, err := serverConfig(Config{
		HTTPAddr:       "127.0.0.1:0",
		WalletAccounts: []string{"0x52bc44d5378309ee2abf1539bf71de1b7d7be3b5"},
		SuggestRate:    5,
	})
	if err != nil {
		t.Fatalf("serverConfig() error = %v", err)
	}
	if cfg.Sessions == nil || cfg.SuggestLimiter == nil {
		t.Fatalf("cfg = %+v", cfg)
	}
	if cfg.Authenticator == wallet.Unavailable {
		t.Fatalf("authenticator should accept the configured account")
	}
}

func TestServerConfigRejectsMalformedAccount(t *testing.T) {
	if _, err := serverConfig(Config{WalletAccounts: []string{"satoshi"}}); err == nil {
		t.Fatal("expected error")
	}
}

func TestListenHealthServesChecks(t *testing.T) {
	listener, err := listenHealth("127.0.0.1:0")
	if err != nil {
		t.Fatalf("listenHealth() error = %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- platformgrpc.NewHealthServer(healthServiceName).Serve(ctx, listener)
	}()

	conn, err := gogrpc.NewClient(listener.Addr().String(), gogrpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()
	waitCtx, waitCancel := context.WithTimeout(ctx, 5*time.Second)
	defer waitCancel()
	if err := platformgrpc.WaitForHealth(waitCtx, conn, healthServiceName, nil); err != nil {
		t.Fatalf("WaitForHealth() error = %v", err)
	}

	cancel()
	if err := <-serveErr; err != nil {
		t.Fatalf("Serve() error = %v", err)
	}
}

func TestListenHealthDisabledWhenEmpty(t *testing.T) {
	listener, err := listenHealth(" ")
	if err != nil || listener != nil {
		t.Fatalf("listenHealth() = %v, %v", listener, err)
	}
}

func TestRunStopsWhenContextEnds(t *testing.T) {
	t.Setenv("SANBASE_OTEL_ENABLED", "false")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Run(ctx, Config{HTTPAddr: "127.0.0.1:0", HealthAddr: "127.0.0.1:0"})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
}

func TestProbeRequiresHealthAddr(t *testing.T) {
	if err := Probe(context.Background(), Config{}); err == nil {
		t.Fatal("expected error")
	}
}

func TestProbeFindsServingListener(t *testing.T) {
	listener, err := listenHealth("127.0.0.1:0")
	if err != nil {
		t.Fatalf("listenHealth() error = %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		_ = platformgrpc.NewHealthServer(healthServiceName).Serve(ctx, listener)
	}()

	if err := Probe(ctx, Config{HealthAddr: listener.Addr().String()}); err != nil {
		t.Fatalf("Probe() error = %v", err)
	}
}
