// Package public serves the landing page, health probe and not-found page.
package public

import (
	"net/http"

	"github.com/santiment/sanbase/internal/services/web/module"
	"github.com/santiment/sanbase/internal/services/web/routepath"
)

// Module provides public root routes.
type Module struct{}

// New returns a public module.
func New() Module {
	return Module{}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "public" }

// Mount wires public route handlers.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(deps))
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
