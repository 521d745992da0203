// Package httpx holds the middleware and response writers shared by web modules.
package httpx

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"runtime/debug"
	"strconv"
	"strings"
	"sync/atomic"
	"time"
)

const (
	headerHTMX       = "HX-Request"
	headerHTMXTarget = "HX-Redirect"
	headerRequestID  = "X-Request-ID"
	noRequestID      = "-"
)

var errNoWriter = errors.New("httpx: nil response writer")

// Middleware wraps an HTTP handler.
type Middleware func(http.Handler) http.Handler

// Chain wraps handler so that middleware[0] runs first. Nil entries are skipped.
func Chain(handler http.Handler, middleware ...Middleware) http.Handler {
	if handler == nil {
		handler = http.NotFoundHandler()
	}
	for i := len(middleware) - 1; i >= 0; i-- {
		if mw := middleware[i]; mw != nil {
			handler = mw(handler)
		}
	}
	return handler
}

// MethodNotAllowed answers 405 and advertises the accepted methods.
func MethodNotAllowed(allowed ...string) http.HandlerFunc {
	allow := strings.Join(allowed, ", ")
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Allow", allow)
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

var requestSeq atomic.Uint64

func newRequestID() string {
	return "san-" + strconv.FormatInt(time.Now().Unix(), 36) + "-" + strconv.FormatUint(requestSeq.Add(1), 36)
}

// RequestID keeps an incoming X-Request-ID or assigns one, and echoes it on
// the response.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := RequestIDOf(r)
			if id == noRequestID {
				id = newRequestID()
				r.Header.Set(headerRequestID, id)
			}
			w.Header().Set(headerRequestID, id)
			next.ServeHTTP(w, r)
		})
	}
}

// RequestIDOf returns the request id for log lines, or "-".
func RequestIDOf(r *http.Request) string {
	if r != nil {
		if id := strings.TrimSpace(r.Header.Get(headerRequestID)); id != "" {
			return id
		}
	}
	return noRequestID
}

// RecoverPanic logs a panicking handler with its stack and answers 500.
func RecoverPanic() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				recovered := recover()
				if recovered == nil {
					return
				}
				log.Printf("panic recovered method=%s path=%s request_id=%s panic=%v stack=%q",
					r.Method, r.URL.Path, RequestIDOf(r), recovered, debug.Stack())
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// IsHTMXRequest reports whether r was issued by htmx.
func IsHTMXRequest(r *http.Request) bool {
	return r != nil && r.Header.Get(headerHTMX) == "true"
}

// WriteJSON encodes payload as the response body.
func WriteJSON(w http.ResponseWriter, status int, payload any) error {
	if w == nil {
		return errNoWriter
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(payload)
}

// WriteJSONError writes {"error": message}.
func WriteJSONError(w http.ResponseWriter, status int, message string) error {
	return WriteJSON(w, status, struct {
		Error string `json:"error"`
	}{message})
}

// WriteRedirect sends htmx clients an HX-Redirect and everyone else a 303.
func WriteRedirect(w http.ResponseWriter, r *http.Request, location string) {
	switch {
	case IsHTMXRequest(r):
		w.Header().Set(headerHTMXTarget, location)
		w.WriteHeader(http.StatusOK)
	case r == nil:
		w.Header().Set("Location", location)
		w.WriteHeader(http.StatusFound)
	default:
		http.Redirect(w, r, location, http.StatusSeeOther)
	}
}
