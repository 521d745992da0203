// Package backtest serves backtest chart configurations and the sample
// backtest page.
package backtest

import (
	"net/http"

	"github.com/santiment/sanbase/internal/services/web/module"
	"github.com/santiment/sanbase/internal/services/web/routepath"
)

// Module provides backtest routes.
type Module struct{}

// New returns a backtest module.
func New() Module {
	return Module{}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "backtest" }

// Mount wires backtest route handlers.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(deps))
	return module.Mount{Prefix: routepath.BacktestPrefix, Handler: mux}, nil
}
