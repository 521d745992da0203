package requestmeta

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestIsHTTPS(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if IsHTTPS(req) {
		t.Fatal("expected plain http")
	}
	req.TLS = &tls.ConnectionState{}
	if !IsHTTPS(req) {
		t.Fatal("expected TLS request to be https")
	}

	forwarded := httptest.NewRequest(http.MethodGet, "/", nil)
	forwarded.Header.Set("X-Forwarded-Proto", "https")
	if IsHTTPS(forwarded) {
		t.Fatal("expected forwarded proto to be ignored by default")
	}
	if !(SchemePolicy{TrustForwardedProto: true}).IsHTTPS(forwarded) {
		t.Fatal("expected trusted forwarded proto to be honoured")
	}
}

func TestHasSameOriginProof(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		origin  string
		referer string
		want    bool
	}{
		{name: "matching origin", origin: "http://sanbase.test", want: true},
		{name: "matching origin explicit port", origin: "http://sanbase.test:80", want: true},
		{name: "matching referer", referer: "http://sanbase.test/auth/wallet", want: true},
		{name: "foreign origin", origin: "http://evil.test", want: false},
		{name: "scheme mismatch", origin: "https://sanbase.test", want: false},
		{name: "port mismatch", origin: "http://sanbase.test:8080", want: false},
		{name: "origin wins over referer", origin: "http://evil.test", referer: "http://sanbase.test/", want: false},
		{name: "no proof", want: false},
	}
	for _, tc := range tests {
		req := httptest.NewRequest(http.MethodPost, "http://sanbase.test/auth/logout", nil)
		if tc.origin != "" {
			req.Header.Set("Origin", tc.origin)
		}
		if tc.referer != "" {
			req.Header.Set("Referer", tc.referer)
		}
		if got := HasSameOriginProof(req); got != tc.want {
			t.Errorf("%s: HasSameOriginProof() = %v, want %v", tc.name, got, tc.want)
		}
	}
	if HasSameOriginProof(nil) {
		t.Fatal("expected nil request to have no proof")
	}
}
