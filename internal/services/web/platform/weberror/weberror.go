// Package weberror renders shared error responses for web modules.
package weberror

import (
	"log"
	"net/http"
	"strings"

	"github.com/santiment/sanbase/internal/services/web/module"
	apperrors "github.com/santiment/sanbase/internal/services/web/platform/errors"
	"github.com/santiment/sanbase/internal/services/web/platform/httpx"
	"github.com/santiment/sanbase/internal/services/web/platform/pagerender"
	webi18n "github.com/santiment/sanbase/internal/services/web/platform/i18n"
	"github.com/santiment/sanbase/internal/services/web/templates"
)

// ShouldRenderAppError reports whether status should use the error page.
func ShouldRenderAppError(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// PublicMessage resolves a user-safe localized error message.
func PublicMessage(loc webi18n.Localizer, err error) string {
	if err == nil {
		return ""
	}
	if loc != nil {
		if key := apperrors.LocalizationKey(err); key != "" {
			if localized := strings.TrimSpace(loc.Sprintf(key)); localized != "" && localized != key {
				return localized
			}
		}
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	if text := strings.TrimSpace(http.StatusText(statusCode)); text != "" {
		return text
	}
	return http.StatusText(http.StatusInternalServerError)
}

// WriteAppError writes a localized error page for full-page and HTMX requests.
func WriteAppError(w http.ResponseWriter, r *http.Request, statusCode int, deps module.Dependencies) {
	if w == nil {
		return
	}
	if !ShouldRenderAppError(statusCode) {
		statusCode = http.StatusInternalServerError
	}
	loc, lang := webi18n.ResolveLocalizer(w, r, deps.ResolveLanguage)
	err := pagerender.WriteLocalizedPage(w, r, deps, loc, lang, pagerender.ModulePage{
		Title:      templates.ErrorPageTitle(statusCode, loc),
		StatusCode: statusCode,
		Fragment:   templates.ErrorState(statusCode, loc),
	})
	if err != nil {
		log.Printf("render error page status=%d request_id=%s err=%v", statusCode, httpx.RequestIDOf(r), err)
	}
}

// WriteModuleError writes a module-safe localized error response.
func WriteModuleError(w http.ResponseWriter, r *http.Request, err error, deps module.Dependencies) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if ShouldRenderAppError(statusCode) {
		if statusCode >= http.StatusInternalServerError {
			log.Printf("module error status=%d request_id=%s err=%v", statusCode, httpx.RequestIDOf(r), err)
		}
		WriteAppError(w, r, statusCode, deps)
		return
	}
	loc, _ := webi18n.ResolveLocalizer(w, r, deps.ResolveLanguage)
	http.Error(w, PublicMessage(loc, err), statusCode)
}

// WriteJSONError writes a JSON error body. Server failures only expose
// the localized public message.
func WriteJSONError(w http.ResponseWriter, r *http.Request, err error, deps module.Dependencies) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode >= http.StatusInternalServerError {
		log.Printf("module error status=%d request_id=%s err=%v", statusCode, httpx.RequestIDOf(r), err)
	}
	message := ""
	if err != nil && statusCode < http.StatusInternalServerError {
		message = strings.TrimSpace(err.Error())
	}
	if message == "" {
		loc, _ := webi18n.ResolveLocalizer(w, r, deps.ResolveLanguage)
		message = PublicMessage(loc, err)
	}
	_ = httpx.WriteJSONError(w, statusCode, message)
}
