package templates

import (
	"context"
	"io"
	"net/http"
	"strconv"

	"github.com/a-h/templ"
	"github.com/santiment/sanbase/internal/services/web/routepath"
)

const (
	errorNotFoundKey = "core.error.not_found"
	errorInternalKey = "core.error.internal"
	errorBackHomeKey = "error.back_home"
)

// ErrorPageTitle returns the browser title for an error page.
func ErrorPageTitle(statusCode int, loc Localizer) string {
	return T(loc, errorKey(statusCode))
}

// ErrorState renders the error page body.
func ErrorState(statusCode int, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		code := normalizeErrorStatus(statusCode)
		var m markup
		m.raw(`<section id="app-error-state" class="error-state"><p class="status">`).text(strconv.Itoa(code)).raw(`</p>`)
		m.raw(`<h1>`).text(T(loc, errorKey(code))).raw(`</h1>`)
		m.raw(`<a class="ui button"`).attr("href", routepath.Root).raw(`>`).text(T(loc, errorBackHomeKey)).raw(`</a></section>`)
		return m.flush(w)
	})
}

func errorKey(statusCode int) string {
	if normalizeErrorStatus(statusCode) == http.StatusNotFound {
		return errorNotFoundKey
	}
	return errorInternalKey
}

func normalizeErrorStatus(statusCode int) int {
	if statusCode == http.StatusNotFound {
		return http.StatusNotFound
	}
	if statusCode >= http.StatusInternalServerError {
		return statusCode
	}
	return http.StatusInternalServerError
}
