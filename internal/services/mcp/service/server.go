package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/santiment/sanbase/internal/backtest"
	"github.com/santiment/sanbase/internal/platform/assets/imagecdn"
	"github.com/santiment/sanbase/internal/platform/branding"
	"github.com/santiment/sanbase/internal/platform/timeouts"
)

// serverVersion identifies the MCP server version.
const serverVersion = "0.1.0"

// defaultHTTPAddr binds the HTTP transport to loopback.
const defaultHTTPAddr = "localhost:8091"

// serverName identifies this MCP server to clients.
var serverName = branding.AppName + " MCP"

// TransportKind identifies the MCP transport implementation.
type TransportKind string

const (
	// TransportStdio uses standard input/output for MCP.
	TransportStdio TransportKind = "stdio"
	// TransportHTTP runs MCP over streamable HTTP for remote clients.
	TransportHTTP TransportKind = "http"
)

// Config configures the MCP server.
type Config struct {
	Transport    TransportKind
	HTTPAddr     string
	AssetBaseURL string
	// SearchData is the suggestion corpus. Nil uses the icon catalog names.
	SearchData []string
	// Sample backs build_backtest_chart calls without history. Zero loads
	// the bundled sample.
	Sample backtest.Sample
}

// Server hosts the MCP server.
type Server struct {
	mcpServer *mcp.Server
}

// New creates a configured MCP server with every tool and resource
// registered.
func New(cfg Config) (*Server, error) {
	sample := cfg.Sample
	if len(sample.History) == 0 {
		bundled, err := backtest.LoadSample()
		if err != nil {
			return nil, err
		}
		sample = bundled
	}
	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, &mcp.ServerOptions{
		CompletionHandler: completionHandler,
	})
	deps := mcpRegistrationDeps{
		cdn:        imagecdn.New(cfg.AssetBaseURL),
		searchData: cfg.SearchData,
		sample:     sample,
	}
	for _, module := range newMCPRegistrationModules(deps) {
		if err := module.register(mcpServerRegistrationAdapter{server: mcpServer}); err != nil {
			return nil, fmt.Errorf("register MCP module %q: %w", module.name, err)
		}
	}
	return &Server{mcpServer: mcpServer}, nil
}

// completionHandler answers completion requests with no values.
func completionHandler(context.Context, *mcp.CompleteRequest) (*mcp.CompleteResult, error) {
	return &mcp.CompleteResult{
		Completion: mcp.CompletionResultDetails{
			Values: []string{},
		},
	}, nil
}

// Run is the service entrypoint for MCP and blocks until context cancellation.
func Run(ctx context.Context, cfg Config) error {
	if cfg.Transport == "" {
		cfg.Transport = TransportStdio
	}
	server, err := New(cfg)
	if err != nil {
		return err
	}
	switch cfg.Transport {
	case TransportStdio:
		return server.Serve(ctx)
	case TransportHTTP:
		return server.ServeHTTP(ctx, cfg.HTTPAddr)
	default:
		return fmt.Errorf("transport %q is not supported", cfg.Transport)
	}
}

// Serve runs the MCP server on stdio until it stops or the context ends.
func (s *Server) Serve(ctx context.Context) error {
	return s.serveWithTransport(ctx, &mcp.StdioTransport{})
}

// Handler returns the streamable HTTP handler for the server.
func (s *Server) Handler() http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.mcpServer
	}, nil)
}

// ServeHTTP serves MCP over streamable HTTP on addr until ctx ends.
func (s *Server) ServeHTTP(ctx context.Context, addr string) error {
	if s == nil || s.mcpServer == nil {
		return fmt.Errorf("MCP server is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	addr = strings.TrimSpace(addr)
	if addr == "" {
		addr = defaultHTTPAddr
	}
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: timeouts.ReadHeader,
	}
	serveErr := make(chan error, 1)
	go func() {
		log.Printf("mcp http listening addr=%s", addr)
		serveErr <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown mcp http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve mcp http: %w", err)
	}
}

// serveWithTransport runs the MCP server on transport. Context cancellation
// is a clean stop.
func (s *Server) serveWithTransport(ctx context.Context, transport mcp.Transport) error {
	if s == nil || s.mcpServer == nil {
		return fmt.Errorf("MCP server is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	err := s.mcpServer.Run(ctx, transport)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("serve MCP: %w", err)
	}
	return nil
}
