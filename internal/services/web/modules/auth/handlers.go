package auth

import (
	"log"
	"net/http"
	"strings"

	"github.com/santiment/sanbase/internal/services/web/module"
	apperrors "github.com/santiment/sanbase/internal/services/web/platform/errors"
	"github.com/santiment/sanbase/internal/services/web/platform/httpx"
	"github.com/santiment/sanbase/internal/services/web/platform/pagerender"
	webi18n "github.com/santiment/sanbase/internal/services/web/platform/i18n"
	"github.com/santiment/sanbase/internal/services/web/platform/sessioncookie"
	"github.com/santiment/sanbase/internal/services/web/platform/weberror"
	"github.com/santiment/sanbase/internal/services/web/routepath"
	"github.com/santiment/sanbase/internal/services/web/templates"
	"github.com/santiment/sanbase/internal/wallet"
)

type handlers struct {
	service service
	deps    module.Dependencies
}

func newHandlers(s service, deps module.Dependencies) handlers {
	return handlers{service: s, deps: deps}
}

func (handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, routepath.AuthWallet, http.StatusFound)
}

func (h handlers) handleForm(w http.ResponseWriter, r *http.Request) {
	if h.deps.Viewer(r).SignedIn {
		httpx.WriteRedirect(w, r, routepath.AppAccount)
		return
	}
	view := templates.AuthFormView{}
	status := http.StatusOK
	if raw := strings.TrimSpace(r.URL.Query().Get("account")); raw != "" {
		account, err := h.service.normalizeAccount(raw)
		if err != nil {
			status = apperrors.HTTPStatus(err)
			view.Error = h.localize(w, r, err)
		}
		view.Account = account
	}
	h.writeForm(w, r, status, view)
}

func (h handlers) handleSignIn(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		weberror.WriteModuleError(w, r, apperrors.Wrap(apperrors.KindInvalidInput, err), h.deps)
		return
	}
	creds := wallet.Credentials{
		Account:   r.PostForm.Get("account"),
		Signature: r.PostForm.Get("signature"),
	}
	result, err := h.service.signIn(r.Context(), creds)
	if err != nil {
		status := apperrors.HTTPStatus(err)
		if status == http.StatusInternalServerError {
			weberror.WriteModuleError(w, r, err, h.deps)
			return
		}
		log.Printf("wallet sign-in refused status=%d request_id=%s err=%v", status, httpx.RequestIDOf(r), err)
		account, _ := wallet.NormalizeAccount(creds.Account)
		h.writeForm(w, r, status, templates.AuthFormView{Account: account, Error: h.localize(w, r, err)})
		return
	}
	sessioncookie.Write(w, r, result.token, result.session.ExpiresAt)
	log.Printf("wallet sign-in account=%s request_id=%s", wallet.ShortAccount(result.session.Account), httpx.RequestIDOf(r))
	httpx.WriteRedirect(w, r, routepath.AppAccount)
}

func (handlers) handleLogout(w http.ResponseWriter, r *http.Request) {
	sessioncookie.Clear(w, r)
	httpx.WriteRedirect(w, r, routepath.Root)
}

func (h handlers) localize(w http.ResponseWriter, r *http.Request, err error) string {
	loc, _ := webi18n.ResolveLocalizer(w, r, h.deps.ResolveLanguage)
	return webi18n.LocalizeError(loc, err)
}

func (h handlers) writeForm(w http.ResponseWriter, r *http.Request, status int, view templates.AuthFormView) {
	loc, lang := webi18n.ResolveLocalizer(w, r, h.deps.ResolveLanguage)
	err := pagerender.WriteLocalizedPage(w, r, h.deps, loc, lang, pagerender.ModulePage{
		TitleKey:   "title.auth",
		StatusCode: status,
		Fragment:   templates.AuthPage(view, loc),
	})
	if err != nil {
		log.Printf("render auth form request_id=%s err=%v", httpx.RequestIDOf(r), err)
	}
}
