// Package icons serves resolved project icons and the icon catalog.
package icons

import (
	"net/http"

	"github.com/santiment/sanbase/internal/services/web/module"
	"github.com/santiment/sanbase/internal/services/web/routepath"
)

// Module provides icon routes.
type Module struct{}

// New returns an icons module.
func New() Module {
	return Module{}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "icons" }

// Mount wires icon route handlers.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(deps))
	return module.Mount{Prefix: routepath.IconsPrefix, Handler: mux}, nil
}
