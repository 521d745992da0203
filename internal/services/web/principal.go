package web

import (
	"context"
	"net/http"
	"sync"

	"github.com/santiment/sanbase/internal/services/web/module"
	"github.com/santiment/sanbase/internal/services/web/platform/httpx"
	webi18n "github.com/santiment/sanbase/internal/services/web/platform/i18n"
	"github.com/santiment/sanbase/internal/services/web/platform/sessioncookie"
	"github.com/santiment/sanbase/internal/wallet"
)

// requestPrincipalState memoizes the session lookup for one request.
type requestPrincipalState struct {
	viewerOnce sync.Once
	viewer     module.Viewer
}

type requestPrincipalStateKey struct{}

type principalResolver struct {
	sessions *wallet.Sessions
}

func newPrincipalResolver(cfg Config) principalResolver {
	return principalResolver{sessions: cfg.Sessions}
}

func withRequestPrincipalState() httpx.Middleware {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r == nil {
				next.ServeHTTP(w, r)
				return
			}
			ctx := context.WithValue(r.Context(), requestPrincipalStateKey{}, &requestPrincipalState{})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func requestPrincipalStateFromRequest(r *http.Request) *requestPrincipalState {
	if r == nil {
		return nil
	}
	state, _ := r.Context().Value(requestPrincipalStateKey{}).(*requestPrincipalState)
	return state
}

func (p principalResolver) resolveViewerUncached(r *http.Request) module.Viewer {
	if p.sessions == nil {
		return module.Viewer{}
	}
	token, ok := sessioncookie.Read(r)
	if !ok {
		return module.Viewer{}
	}
	session, err := p.sessions.Verify(token)
	if err != nil {
		return module.Viewer{}
	}
	return module.Viewer{Account: session.Account, SignedIn: true}
}

func (p principalResolver) resolveViewer(r *http.Request) module.Viewer {
	if state := requestPrincipalStateFromRequest(r); state != nil {
		state.viewerOnce.Do(func() {
			state.viewer = p.resolveViewerUncached(r)
		})
		return state.viewer
	}
	return p.resolveViewerUncached(r)
}

func (p principalResolver) authenticated(r *http.Request) bool {
	return p.resolveViewer(r).SignedIn
}

func (principalResolver) resolveLanguage(r *http.Request) string {
	return webi18n.ResolveTag(r, nil).String()
}
