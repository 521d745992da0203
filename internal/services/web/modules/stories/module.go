// Package stories renders every presentational component in isolation, side
// by side in day and night color modes.
package stories

import (
	"net/http"

	"github.com/santiment/sanbase/internal/services/web/module"
	"github.com/santiment/sanbase/internal/services/web/routepath"
)

// Module provides the component story catalog.
type Module struct{}

// New returns a stories module.
func New() Module {
	return Module{}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "stories" }

// Mount wires story route handlers.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(deps, catalog(deps)))
	return module.Mount{Prefix: routepath.StoriesPrefix, Handler: mux}, nil
}
