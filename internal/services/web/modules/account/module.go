// Package account serves the signed-in wallet summary.
package account

import (
	"log"
	"net/http"

	"github.com/santiment/sanbase/internal/services/web/module"
	apperrors "github.com/santiment/sanbase/internal/services/web/platform/errors"
	"github.com/santiment/sanbase/internal/services/web/platform/httpx"
	"github.com/santiment/sanbase/internal/services/web/platform/pagerender"
	webi18n "github.com/santiment/sanbase/internal/services/web/platform/i18n"
	"github.com/santiment/sanbase/internal/services/web/platform/weberror"
	"github.com/santiment/sanbase/internal/services/web/routepath"
	"github.com/santiment/sanbase/internal/services/web/templates"
)

// Module provides the account page. It is mounted behind the auth gate.
type Module struct{}

// New returns an account module.
func New() Module {
	return Module{}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "account" }

// Mount wires account route handlers.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	mux.HandleFunc(http.MethodGet+" "+routepath.AccountPrefix+"{$}", func(w http.ResponseWriter, r *http.Request) {
		viewer := deps.Viewer(r)
		if !viewer.SignedIn {
			weberror.WriteModuleError(w, r, apperrors.EK(apperrors.KindUnauthorized, "core.error.unauthorized", "sign in required"), deps)
			return
		}
		loc, lang := webi18n.ResolveLocalizer(w, r, deps.ResolveLanguage)
		err := pagerender.WriteLocalizedPage(w, r, deps, loc, lang, pagerender.ModulePage{
			TitleKey: "title.account",
			Fragment: templates.AccountPage(viewer.Account, loc),
		})
		if err != nil {
			log.Printf("render account request_id=%s err=%v", httpx.RequestIDOf(r), err)
		}
	})
	return module.Mount{Prefix: routepath.AccountPrefix, Handler: mux}, nil
}
