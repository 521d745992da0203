package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/santiment/sanbase/internal/services/web/routepath"
)

// MetamaskLogoPath is the logo shown on the sign-in button.
const MetamaskLogoPath = routepath.Static + "metamask-logo.svg"

// AuthFormView is the state of the wallet sign-in form.
type AuthFormView struct {
	Account string
	Error   string
}

// AuthForm renders the wallet sign-in form. The public key line and the
// sign-in button only appear once an account is selected.
func AuthForm(view AuthFormView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		account := strings.TrimSpace(view.Account)
		var m markup
		m.raw(`<form class="ui form auth-form" method="post"`).attr("action", routepath.AuthWallet).raw(` data-wallet-auth>`)
		m.raw(`<div class="ui message"><div class="header">`).text(T(loc, "auth.header")).raw(`</div><ul class="list">`)
		m.raw(`<li>`).text(T(loc, "auth.secure")).raw(`</li>`)
		if account != "" {
			m.raw(`<li class="auth-public-key">`).text(T(loc, "auth.public_key", account)).raw(`</li>`)
		}
		m.raw(`</ul></div>`)
		if msg := strings.TrimSpace(view.Error); msg != "" {
			m.raw(`<div class="ui negative message" role="alert">`).text(msg).raw(`</div>`)
		}
		if account == "" {
			m.raw(`<p class="auth-no-account">`).text(T(loc, "auth.no_account")).raw(`</p></form>`)
			return m.flush(w)
		}
		m.raw(`<input type="hidden" name="account"`).attr("value", account).raw(`>`)
		m.raw(`<input type="hidden" name="signature" value="">`)
		m.raw(`<button type="submit" class="ui green button" style="display: flex; align-items: center; padding-top: 5px; padding-bottom: 5px">`)
		m.text(T(loc, "auth.sign_in")).raw(`&nbsp;<img`).attr("src", MetamaskLogoPath).attr("alt", T(loc, "auth.logo_alt"))
		m.raw(` width="32" height="32"></button></form>`)
		return m.flush(w)
	})
}
