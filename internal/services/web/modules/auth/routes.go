package auth

import (
	"net/http"

	"github.com/santiment/sanbase/internal/services/web/platform/httpx"
	"github.com/santiment/sanbase/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.AuthPrefix+"{$}", h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.AuthWallet, h.handleForm)
	mux.HandleFunc(http.MethodPost+" "+routepath.AuthWallet, h.handleSignIn)

	mux.HandleFunc(http.MethodPost+" "+routepath.AuthLogout, h.handleLogout)
	mux.HandleFunc(http.MethodGet+" "+routepath.AuthLogout, httpx.MethodNotAllowed(http.MethodPost))
}
