package icons

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/santiment/sanbase/internal/platform/icons"
	"github.com/santiment/sanbase/internal/services/web/module"
	"github.com/santiment/sanbase/internal/services/web/routepath"
	"golang.org/x/net/html"
)

func mountIcons(t *testing.T, deps module.Dependencies) http.Handler {
	t.Helper()
	mount, err := New().Mount(deps)
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if mount.Prefix != routepath.IconsPrefix {
		t.Fatalf("prefix = %q", mount.Prefix)
	}
	return mount.Handler
}

func imgAttrs(t *testing.T, body string) map[string]string {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(body))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var found map[string]string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if found != nil {
			return
		}
		if n.Type == html.ElementNode && n.Data == "img" {
			found = map[string]string{}
			for _, a := range n.Attr {
				found[a.Key] = a.Val
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	if found == nil {
		t.Fatalf("no img in %q", body)
	}
	return found
}

func TestIconFragmentUsesAssetAsSource(t *testing.T) {
	t.Parallel()

	h := mountIcons(t, module.Dependencies{})
	for name, asset := range map[string]string{
		"Cofound.it": "cofound-it.png",
		"Santiment":  "santiment.png",
		"DAO.Casino": "dao-casino.png",
	} {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.Icon(name), nil))
		if rr.Code != http.StatusOK {
			t.Fatalf("%s status = %d", name, rr.Code)
		}
		if got := imgAttrs(t, rr.Body.String())["src"]; got != asset {
			t.Errorf("%s src = %q, want %q", name, got, asset)
		}
	}
}

func TestIconFragmentFallsBackToDefault(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	mountIcons(t, module.Dependencies{}).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.Icon("Any Not Available Name"), nil))
	attrs := imgAttrs(t, rr.Body.String())
	if attrs["width"] != "16" || attrs["class"] != "project-icon-default" || attrs["src"] != routepath.Static+icons.DefaultAsset {
		t.Fatalf("default icon attrs = %v", attrs)
	}
}

func TestDefaultIconUsesAssetBaseWhenConfigured(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	deps := module.Dependencies{AssetBaseURL: "https://cdn.example.com/icons"}
	mountIcons(t, deps).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.Icon("Any Not Available Name"), nil))
	if got := imgAttrs(t, rr.Body.String())["src"]; got != "https://cdn.example.com/icons/"+icons.DefaultAsset {
		t.Fatalf("src = %q", got)
	}
}

func TestIconFragmentUsesCloudinaryDelivery(t *testing.T) {
	t.Parallel()

	deps := module.Dependencies{AssetBaseURL: "https://res.cloudinary.com/santiment/image/upload"}
	rr := httptest.NewRecorder()
	mountIcons(t, deps).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.Icon("Santiment"), nil))
	want := "https://res.cloudinary.com/santiment/image/upload/f_auto,q_auto,dpr_auto,c_limit,w_16,h_16/santiment.png"
	if got := imgAttrs(t, rr.Body.String())["src"]; got != want {
		t.Fatalf("src = %q, want %q", got, want)
	}
}

func TestResolveReturnsJSON(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	deps := module.Dependencies{AssetBaseURL: "/static/icons"}
	mountIcons(t, deps).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.IconsResolve+"?name=SAN", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	var payload struct {
		Key   string `json:"key"`
		Asset string `json:"asset"`
		Known bool   `json:"known"`
		URL   string `json:"url"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !payload.Known || payload.Asset != "santiment.png" || payload.URL != "/static/icons/santiment.png" {
		t.Fatalf("payload = %+v", payload)
	}
}

func TestResolveBlankNameReturnsDefault(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	mountIcons(t, module.Dependencies{}).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.IconsResolve, nil))
	if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), `"asset":"project-icon-default.svg"`) {
		t.Fatalf("blank resolve = %d %s", rr.Code, rr.Body.String())
	}
}

func TestCatalogPageAndMarkdown(t *testing.T) {
	t.Parallel()

	h := mountIcons(t, module.Dependencies{})
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.IconsPrefix, nil))
	if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), "icons-catalog") {
		t.Fatalf("catalog = %d", rr.Code)
	}
	if got := strings.Count(rr.Body.String(), `class="project-icon"`); got != len(icons.Catalog()) {
		t.Fatalf("catalog icons = %d, want %d", got, len(icons.Catalog()))
	}

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.IconsMarkdown, nil))
	if got := rr.Header().Get("Content-Type"); !strings.HasPrefix(got, "text/markdown") {
		t.Fatalf("markdown content-type = %q", got)
	}
	if !strings.Contains(rr.Body.String(), "santiment.png") {
		t.Fatalf("markdown missing santiment")
	}
}

func TestIconRoutesRejectMutations(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	mountIcons(t, module.Dependencies{}).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, routepath.Icon("Santiment"), nil))
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusMethodNotAllowed)
	}
}
