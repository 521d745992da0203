// Package routepath stores canonical HTTP paths for web modules.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root    = "/"
	Health  = "/healthz"
	Static  = "/static/"
	Favicon = "/favicon.ico"

	IconsPrefix   = "/icons/"
	IconsResolve  = "/icons/resolve"
	IconPattern   = IconsPrefix + "{name}"
	IconsCatalog  = IconsPrefix + "{$}"
	IconsMarkdown = "/icons/catalog.md"

	BacktestPrefix = "/backtest/"
	BacktestChart  = "/backtest/chart"
	BacktestSample = "/backtest/sample"

	SearchPrefix      = "/search/"
	SearchSuggestions = "/search/suggestions"

	AuthPrefix = "/auth/"
	AuthWallet = "/auth/wallet"
	AuthLogout = "/auth/logout"

	StoriesPrefix = "/stories/"
	StoryPattern  = StoriesPrefix + "{group}/{story}"

	AppPrefix     = "/app/"
	AppAccount    = "/app/account"
	AccountPrefix = "/app/account/"
)

// Icon returns the icon fragment path for a project name.
func Icon(name string) string {
	return IconsPrefix + url.PathEscape(strings.TrimSpace(name))
}

// Story returns the path of one story.
func Story(group, story string) string {
	return StoriesPrefix + url.PathEscape(group) + "/" + url.PathEscape(story)
}

// Search returns the search page path for a query.
func Search(query string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return SearchPrefix
	}
	return SearchPrefix + "?" + url.Values{"q": {query}}.Encode()
}

// WalletAuth returns the wallet auth page path for an optional account.
func WalletAuth(account string) string {
	account = strings.TrimSpace(account)
	if account == "" {
		return AuthWallet
	}
	return AuthWallet + "?" + url.Values{"account": {account}}.Encode()
}
