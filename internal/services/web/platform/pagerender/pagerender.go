// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/santiment/sanbase/internal/services/web/module"
	"github.com/santiment/sanbase/internal/services/web/platform/httpx"
	webi18n "github.com/santiment/sanbase/internal/services/web/platform/i18n"
	"github.com/santiment/sanbase/internal/services/web/templates"
)

// ModulePage describes a module page response for both full-page and HTMX flows.
type ModulePage struct {
	// TitleKey is localized for the document title when Title is empty.
	TitleKey   string
	Title      string
	StatusCode int
	Fragment   templ.Component
}

// WriteModulePage writes a module page using the shared layout.
func WriteModulePage(w http.ResponseWriter, r *http.Request, deps module.Dependencies, page ModulePage) error {
	if w == nil {
		return nil
	}
	loc, lang := webi18n.ResolveLocalizer(w, r, deps.ResolveLanguage)
	return WriteLocalizedPage(w, r, deps, loc, lang, page)
}

// WriteLocalizedPage is WriteModulePage for handlers that already resolved
// the localizer.
func WriteLocalizedPage(w http.ResponseWriter, r *http.Request, deps module.Dependencies, loc webi18n.Localizer, lang string, page ModulePage) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	fragment := page.Fragment
	if fragment == nil {
		fragment = templ.NopComponent
	}
	ctx := templ.WithChildren(r.Context(), fragment)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if httpx.IsHTMXRequest(r) {
		w.WriteHeader(statusCode)
		return templates.MainContent().Render(ctx, w)
	}

	title := page.Title
	if title == "" && page.TitleKey != "" {
		title = templates.T(loc, page.TitleKey)
	}
	w.WriteHeader(statusCode)
	return templates.Layout(templates.PageContext{
		Title:     title,
		Lang:      lang,
		Loc:       loc,
		Viewer:    deps.Viewer(r),
		Languages: webi18n.LanguageOptions(r, lang),
	}).Render(ctx, w)
}
