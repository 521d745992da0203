// Package auth serves the wallet sign-in form and session endpoints.
package auth

import (
	"net/http"

	"github.com/santiment/sanbase/internal/services/web/module"
	"github.com/santiment/sanbase/internal/services/web/routepath"
)

// Module provides wallet auth routes.
type Module struct{}

// New returns an auth module.
func New() Module {
	return Module{}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "auth" }

// Mount wires auth route handlers.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(deps), deps))
	return module.Mount{Prefix: routepath.AuthPrefix, Handler: mux}, nil
}
