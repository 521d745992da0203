// Package i18n resolves the request language and localized printers for
// web handlers and templates.
package i18n

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	platformi18n "github.com/santiment/sanbase/internal/platform/i18n"
	apperrors "github.com/santiment/sanbase/internal/services/web/platform/errors"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the visitor's language preference.
	LangCookieName = "sanbase_lang"

	langCookieMaxAge = 365 * 24 * time.Hour
)

// Localizer exposes translated formatting used by templates and handlers.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// LanguageOption is one entry of the language switcher.
type LanguageOption struct {
	Tag    string
	URL    string
	Active bool
}

// ResolveTag picks the request language. The optional resolver wins, then
// the lang query parameter, the language cookie and Accept-Language.
func ResolveTag(r *http.Request, resolveLanguage func(*http.Request) string) language.Tag {
	if r == nil {
		return platformi18n.DefaultTag
	}
	if resolveLanguage != nil {
		if tag, ok := platformi18n.ParseTag(resolveLanguage(r)); ok {
			return tag
		}
	}
	if raw := strings.TrimSpace(r.URL.Query().Get(LangParam)); raw != "" {
		if tag, ok := platformi18n.ParseTag(raw); ok {
			return tag
		}
	}
	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if tag, ok := platformi18n.ParseTag(cookie.Value); ok {
			return tag
		}
	}
	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tag, ok := platformi18n.MatchAcceptLanguage(accept); ok {
			return tag
		}
	}
	return platformi18n.DefaultTag
}

// EnsureLanguageCookie syncs the language cookie to the resolved tag.
func EnsureLanguageCookie(w http.ResponseWriter, r *http.Request, tag language.Tag) {
	if w == nil {
		return
	}
	expected := strings.TrimSpace(tag.String())
	if expected == "" {
		return
	}
	if r != nil {
		if cookie, err := r.Cookie(LangCookieName); err == nil && strings.TrimSpace(cookie.Value) == expected {
			return
		}
	}
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    expected,
		Path:     "/",
		MaxAge:   int(langCookieMaxAge.Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}

// ResolveLocalizer resolves a localized printer and language string for a request.
func ResolveLocalizer(w http.ResponseWriter, r *http.Request, resolveLanguage func(*http.Request) string) (*message.Printer, string) {
	tag := ResolveTag(r, resolveLanguage)
	EnsureLanguageCookie(w, r, tag)
	return platformi18n.Printer(tag), tag.String()
}

// T translates key, returning fallback when no catalog entry exists.
func T(loc Localizer, key string, fallback string, args ...any) string {
	if loc == nil {
		return fallbackText(fallback, args...)
	}
	if bare := strings.TrimSpace(loc.Sprintf(key)); bare == "" || bare == key {
		return fallbackText(fallback, args...)
	}
	return strings.TrimSpace(loc.Sprintf(key, args...))
}

func fallbackText(fallback string, args ...any) string {
	if len(args) == 0 {
		return fallback
	}
	return message.NewPrinter(platformi18n.DefaultTag).Sprintf(fallback, args...)
}

// LocalizeError resolves a translated error string when a mapping is available.
func LocalizeError(loc Localizer, err error) string {
	if err == nil {
		return ""
	}
	msg := strings.TrimSpace(err.Error())
	if msg == "" {
		return ""
	}
	if loc == nil {
		return msg
	}
	if key := apperrors.LocalizationKey(err); key != "" {
		return T(loc, key, msg)
	}
	return msg
}

// LanguageOptions lists the supported languages with switch URLs for the
// current request path.
func LanguageOptions(r *http.Request, active string) []LanguageOption {
	path, rawQuery := "/", ""
	if r != nil && r.URL != nil {
		path, rawQuery = r.URL.Path, r.URL.RawQuery
	}
	supported := platformi18n.SupportedTags()
	options := make([]LanguageOption, 0, len(supported))
	for _, tag := range supported {
		options = append(options, LanguageOption{
			Tag:    tag.String(),
			URL:    LanguageURL(path, rawQuery, tag.String()),
			Active: tag.String() == active,
		})
	}
	return options
}

// LanguageURL returns path with the lang parameter set to tag.
func LanguageURL(path string, rawQuery string, tag string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		path = "/"
	}
	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		query = url.Values{}
	}
	query.Set(LangParam, tag)
	return (&url.URL{Path: path, RawQuery: query.Encode()}).String()
}
