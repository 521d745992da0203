package pagerender

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/santiment/sanbase/internal/services/web/module"
	"github.com/santiment/sanbase/internal/services/web/templates"
)

func TestWriteModulePageRendersFullLayout(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/search/?lang=ru", nil)
	rr := httptest.NewRecorder()
	err := WriteModulePage(rr, req, module.Dependencies{}, ModulePage{
		TitleKey: "title.search",
		Fragment: templates.Text("fragment-body"),
	})
	if err != nil {
		t.Fatalf("WriteModulePage() error = %v", err)
	}
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if got := rr.Header().Get("Content-Type"); got != "text/html; charset=utf-8" {
		t.Fatalf("content-type = %q", got)
	}
	body := rr.Body.String()
	for _, marker := range []string{"<!DOCTYPE html>", `lang="ru-RU"`, "<title>Поиск | Sanbase</title>", "fragment-body"} {
		if !strings.Contains(body, marker) {
			t.Fatalf("body missing %q: %s", marker, body)
		}
	}
}

func TestWriteModulePageRendersFragmentForHTMX(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/search/", nil)
	req.Header.Set("HX-Request", "true")
	rr := httptest.NewRecorder()
	err := WriteModulePage(rr, req, module.Dependencies{}, ModulePage{
		StatusCode: http.StatusAccepted,
		Fragment:   templates.Text("fragment-body"),
	})
	if err != nil {
		t.Fatalf("WriteModulePage() error = %v", err)
	}
	if rr.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusAccepted)
	}
	body := rr.Body.String()
	if strings.Contains(body, "<html") {
		t.Fatalf("HTMX response rendered full layout: %s", body)
	}
	if !strings.Contains(body, `id="main-content"`) || !strings.Contains(body, "fragment-body") {
		t.Fatalf("body = %q", body)
	}
}

func TestWriteModulePageShowsViewer(t *testing.T) {
	t.Parallel()

	deps := module.Dependencies{ResolveViewer: func(*http.Request) module.Viewer {
		return module.Viewer{Account: "0xabcdef0123456789abcdef0123456789abcdef01", SignedIn: true}
	}}
	rr := httptest.NewRecorder()
	if err := WriteModulePage(rr, httptest.NewRequest(http.MethodGet, "/", nil), deps, ModulePage{}); err != nil {
		t.Fatalf("WriteModulePage() error = %v", err)
	}
	if body := rr.Body.String(); !strings.Contains(body, "0xabcd…ef01") || !strings.Contains(body, "/auth/logout") {
		t.Fatalf("viewer chrome missing: %s", body)
	}
}
