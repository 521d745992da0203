// Package module defines the contract between the web composer and feature
// modules.
package module

import (
	"net/http"
	"strings"

	"github.com/santiment/sanbase/internal/backtest"
	"github.com/santiment/sanbase/internal/platform/assets/imagecdn"
	"github.com/santiment/sanbase/internal/platform/icons"
	"github.com/santiment/sanbase/internal/services/web/platform/httpx"
	"github.com/santiment/sanbase/internal/services/web/routepath"
	"github.com/santiment/sanbase/internal/wallet"
)

// Module is a mountable web feature.
type Module interface {
	ID() string
	Mount(Dependencies) (Mount, error)
}

// Mount is the prefix and handler a module serves.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Viewer describes the visitor rendering a page.
type Viewer struct {
	Account  string
	SignedIn bool
}

// Dependencies are shared by every module.
type Dependencies struct {
	// AssetBaseURL prefixes icon asset ids. Empty renders bare ids for
	// known projects and the bundled /static/ copy of the default icon.
	AssetBaseURL string
	// Authenticator verifies wallet credentials. Nil means unavailable.
	Authenticator wallet.Authenticator
	// Sessions issues and verifies session tokens. Nil disables sign-in.
	Sessions *wallet.Sessions
	// Sample is the bundled backtest shown on the demo page.
	Sample backtest.Sample
	// SearchData is the suggestion corpus. Nil uses the icon catalog names.
	SearchData []string
	// SuggestLimiter throttles the suggestion endpoint when set.
	SuggestLimiter *httpx.RateLimiter

	ResolveLanguage func(*http.Request) string
	ResolveViewer   func(*http.Request) Viewer
}

// IconCDN returns the delivery URL builder for icon assets.
func (d Dependencies) IconCDN() imagecdn.CDN {
	return imagecdn.New(d.AssetBaseURL)
}

// IconSrc returns the <img> src for icon. Without an asset base the default
// icon is served from the embedded static assets.
func (d Dependencies) IconSrc(icon icons.Icon) (string, error) {
	if strings.TrimSpace(d.AssetBaseURL) == "" && icon.Asset == icons.DefaultAsset {
		return routepath.Static + icons.DefaultAsset, nil
	}
	return d.IconCDN().URL(imagecdn.Request{
		Asset:    icon.Asset,
		Delivery: &imagecdn.Delivery{WidthPX: icon.Width, HeightPX: icon.Height},
	})
}

// WalletAuthenticator returns the configured authenticator or the
// unavailable one.
func (d Dependencies) WalletAuthenticator() wallet.Authenticator {
	if d.Authenticator == nil {
		return wallet.Unavailable
	}
	return d.Authenticator
}

// Viewer resolves the viewer for r.
func (d Dependencies) Viewer(r *http.Request) Viewer {
	if d.ResolveViewer == nil || r == nil {
		return Viewer{}
	}
	return d.ResolveViewer(r)
}
