// Package web hosts the browser-facing Sanbase service.
package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/santiment/sanbase/internal/backtest"
	"github.com/santiment/sanbase/internal/platform/timeouts"
	"github.com/santiment/sanbase/internal/services/web/app"
	"github.com/santiment/sanbase/internal/services/web/module"
	"github.com/santiment/sanbase/internal/services/web/modules"
	"github.com/santiment/sanbase/internal/services/web/platform/httpx"
	"github.com/santiment/sanbase/internal/services/web/platform/observability"
	"github.com/santiment/sanbase/internal/services/web/routepath"
	webstatic "github.com/santiment/sanbase/internal/services/web/static"
	"github.com/santiment/sanbase/internal/wallet"
	"go.opentelemetry.io/otel/trace"
)

// Config defines startup inputs for the web service.
type Config struct {
	HTTPAddr     string
	AssetBaseURL string
	// Authenticator verifies wallet credentials. Nil disables sign-in.
	Authenticator wallet.Authenticator
	// Sessions signs the session cookie. Nil disables sign-in.
	Sessions *wallet.Sessions
	// Sample backs the backtest demo page. Zero loads the bundled sample.
	Sample         backtest.Sample
	SearchData     []string
	SuggestLimiter *httpx.RateLimiter
	// TracerProvider receives request spans. Nil uses the global provider.
	TracerProvider trace.TracerProvider
	Logger         *log.Logger
}

// Server hosts the web HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewHandler builds the root handler from the default module registry.
func NewHandler(cfg Config) (http.Handler, error) {
	sample := cfg.Sample
	if len(sample.History) == 0 {
		bundled, err := backtest.LoadSample()
		if err != nil {
			return nil, err
		}
		sample = bundled
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	principal := newPrincipalResolver(cfg)
	deps := module.Dependencies{
		AssetBaseURL:    cfg.AssetBaseURL,
		Authenticator:   cfg.Authenticator,
		Sessions:        cfg.Sessions,
		Sample:          sample,
		SearchData:      cfg.SearchData,
		SuggestLimiter:  cfg.SuggestLimiter,
		ResolveLanguage: principal.resolveLanguage,
		ResolveViewer:   principal.resolveViewer,
	}
	h, err := app.Composer{}.Compose(app.ComposeInput{
		Dependencies:     deps,
		Authenticated:    principal.authenticated,
		PublicModules:    modules.DefaultPublicModules(),
		ProtectedModules: modules.DefaultProtectedModules(),
	})
	if err != nil {
		return nil, err
	}
	rootMux := http.NewServeMux()
	rootMux.Handle(routepath.Static, http.StripPrefix(routepath.Static, webstatic.Handler()))
	rootMux.Handle(routepath.Root, h)
	return httpx.Chain(rootMux,
		httpx.RecoverPanic(),
		httpx.RequestID(),
		withRequestPrincipalState(),
		observability.Tracing(cfg.TracerProvider),
		observability.RequestLogger(logger),
	), nil
}

// NewServer validates config and constructs a web server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose web handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	if s == nil {
		return ""
	}
	return s.httpAddr
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown web http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve web http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
