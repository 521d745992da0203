// Package requestmeta derives scheme and origin facts from a request.
package requestmeta

import (
	"net/http"
	"net/url"
	"strings"
)

// SchemePolicy controls whether proxy headers are trusted.
// X-Forwarded-Proto is ignored unless TrustForwardedProto is set.
type SchemePolicy struct {
	TrustForwardedProto bool
}

type origin struct {
	scheme string
	host   string
	port   string
}

// IsHTTPS reports whether a request arrived over HTTPS.
func IsHTTPS(r *http.Request) bool {
	return SchemePolicy{}.IsHTTPS(r)
}

// HasSameOriginProof reports whether Origin, or failing that Referer,
// names the host the request was sent to.
func HasSameOriginProof(r *http.Request) bool {
	return SchemePolicy{}.HasSameOriginProof(r)
}

// IsHTTPS reports whether a request arrived over HTTPS under p.
func (p SchemePolicy) IsHTTPS(r *http.Request) bool {
	return p.scheme(r) == "https"
}

// HasSameOriginProof is HasSameOriginProof under p.
func (p SchemePolicy) HasSameOriginProof(r *http.Request) bool {
	if r == nil {
		return false
	}
	target := p.requestOrigin(r)
	if target.host == "" {
		return false
	}
	claimed := strings.TrimSpace(r.Header.Get("Origin"))
	if claimed == "" {
		claimed = strings.TrimSpace(r.Header.Get("Referer"))
	}
	if claimed == "" {
		return false
	}
	parsed, ok := parseOrigin(claimed)
	return ok && parsed == target
}

func (p SchemePolicy) scheme(r *http.Request) string {
	if r == nil {
		return ""
	}
	if p.TrustForwardedProto {
		if forwarded := strings.ToLower(strings.TrimSpace(r.Header.Get("X-Forwarded-Proto"))); forwarded == "http" || forwarded == "https" {
			return forwarded
		}
	}
	if r.URL != nil {
		if scheme := strings.ToLower(r.URL.Scheme); scheme == "http" || scheme == "https" {
			return scheme
		}
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}

func (p SchemePolicy) requestOrigin(r *http.Request) origin {
	out := origin{scheme: p.scheme(r)}
	out.host, out.port = splitHost(r.Host)
	if out.host == "" && r.URL != nil {
		out.host, out.port = splitHost(r.URL.Host)
	}
	if out.port == "" {
		out.port = defaultPort(out.scheme)
	}
	return out
}

func parseOrigin(raw string) (origin, bool) {
	parsed, err := url.Parse(raw)
	if err != nil {
		return origin{}, false
	}
	out := origin{
		scheme: strings.ToLower(parsed.Scheme),
		host:   strings.ToLower(parsed.Hostname()),
		port:   parsed.Port(),
	}
	if out.scheme == "" || out.host == "" {
		return origin{}, false
	}
	if out.port == "" {
		out.port = defaultPort(out.scheme)
	}
	return out, out.port != ""
}

func defaultPort(scheme string) string {
	switch scheme {
	case "https":
		return "443"
	case "http":
		return "80"
	default:
		return ""
	}
}

func splitHost(rawHost string) (string, string) {
	parsed, err := url.Parse("//" + strings.TrimSpace(rawHost))
	if err != nil {
		return "", ""
	}
	return strings.ToLower(parsed.Hostname()), parsed.Port()
}
