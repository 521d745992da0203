package templates

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/a-h/templ"
	"github.com/santiment/sanbase/internal/backtest"
	"github.com/santiment/sanbase/internal/platform/branding"
	platformi18n "github.com/santiment/sanbase/internal/platform/i18n"
	"github.com/santiment/sanbase/internal/platform/icons"
	"github.com/santiment/sanbase/internal/search"
	"github.com/santiment/sanbase/internal/services/web/module"
	"golang.org/x/net/html"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const testAccount = "0xabcdef0123456789abcdef0123456789abcdef01"

func englishLoc() Localizer {
	return platformi18n.Printer(language.AmericanEnglish)
}

func renderString(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := c.Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return buf.String()
}

func parseFragment(t *testing.T, markup string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

func findAll(root *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && match(n) {
			out = append(out, n)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(root)
	return out
}

func byTag(tag string) func(*html.Node) bool {
	return func(n *html.Node) bool { return n.Data == tag }
}

func byClass(class string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		for _, field := range strings.Fields(attr(n, "class")) {
			if field == class {
				return true
			}
		}
		return false
	}
}

func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

func textOf(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return b.String()
}

func TestProjectIconRendersKnownAssets(t *testing.T) {
	t.Parallel()

	for name, asset := range map[string]string{
		"Cofound.it": "cofound-it.png",
		"Santiment":  "santiment.png",
		"DAO.Casino": "dao-casino.png",
	} {
		icon := icons.Resolve(name)
		doc := parseFragment(t, renderString(t, ProjectIcon(icon, "")))
		imgs := findAll(doc, byTag("img"))
		if len(imgs) != 1 {
			t.Fatalf("%s: imgs = %d, want 1", name, len(imgs))
		}
		if got := attr(imgs[0], "src"); got != asset {
			t.Errorf("%s: src = %q, want %q", name, got, asset)
		}
		if got := attr(imgs[0], "class"); got != icons.ClassKnown {
			t.Errorf("%s: class = %q", name, got)
		}
	}
}

func TestProjectIconRendersDefaultIcon(t *testing.T) {
	t.Parallel()

	icon := icons.Resolve("Any Not Available Name")
	doc := parseFragment(t, renderString(t, ProjectIcon(icon, "/static/icons/"+icon.Asset)))
	imgs := findAll(doc, byTag("img"))
	if len(imgs) != 1 {
		t.Fatalf("imgs = %d, want 1", len(imgs))
	}
	img := imgs[0]
	if got := attr(img, "width"); got != "16" {
		t.Fatalf("width = %q, want 16", got)
	}
	if got := attr(img, "height"); got != "16" {
		t.Fatalf("height = %q, want 16", got)
	}
	if got := attr(img, "class"); got != "project-icon-default" {
		t.Fatalf("class = %q, want project-icon-default", got)
	}
	if got := attr(img, "src"); got != "/static/icons/project-icon-default.svg" {
		t.Fatalf("src = %q", got)
	}
}

func TestIconCatalogListsEveryEntry(t *testing.T) {
	t.Parallel()

	entries := icons.Catalog()
	doc := parseFragment(t, renderString(t, IconCatalog(entries, nil, englishLoc())))
	if got := len(findAll(doc, byTag("img"))); got != len(entries) {
		t.Fatalf("icons rendered = %d, want %d", got, len(entries))
	}
}

func TestAuthFormWithoutAccount(t *testing.T) {
	t.Parallel()

	doc := parseFragment(t, renderString(t, AuthForm(AuthFormView{}, englishLoc())))
	if got := textOf(findAll(doc, byClass("header"))[0]); got != "We detect you have Metamask 🎉🎉🎉" {
		t.Fatalf("header = %q", got)
	}
	items := findAll(doc, byTag("li"))
	if len(items) != 1 || textOf(items[0]) != "We can auth you with Metamask account. It's secure and easy." {
		t.Fatalf("list items = %d", len(items))
	}
	if got := len(findAll(doc, byTag("button"))); got != 0 {
		t.Fatalf("buttons = %d, want none", got)
	}
	if got := len(findAll(doc, byTag("img"))); got != 0 {
		t.Fatalf("imgs = %d, want none", got)
	}
}

func TestAuthFormWithAccount(t *testing.T) {
	t.Parallel()

	doc := parseFragment(t, renderString(t, AuthForm(AuthFormView{Account: testAccount}, englishLoc())))
	items := findAll(doc, byTag("li"))
	if len(items) != 2 {
		t.Fatalf("list items = %d, want 2", len(items))
	}
	if got := textOf(items[1]); got != "Your selected wallet public key is "+testAccount {
		t.Fatalf("public key line = %q", got)
	}
	buttons := findAll(doc, byTag("button"))
	if len(buttons) != 1 || !byClass("green")(buttons[0]) {
		t.Fatalf("expected one green button, got %d", len(buttons))
	}
	if got := textOf(buttons[0]); !strings.HasPrefix(got, "Sign in with Metamask") {
		t.Fatalf("button text = %q", got)
	}
	imgs := findAll(buttons[0], byTag("img"))
	if len(imgs) != 1 {
		t.Fatalf("button imgs = %d, want 1", len(imgs))
	}
	if attr(imgs[0], "alt") != "metamask logo" || attr(imgs[0], "width") != "32" || attr(imgs[0], "height") != "32" {
		t.Fatalf("logo attrs = %+v", imgs[0].Attr)
	}
	var account string
	for _, input := range findAll(doc, byTag("input")) {
		if attr(input, "name") == "account" {
			account = attr(input, "value")
		}
	}
	if account != testAccount {
		t.Fatalf("hidden account = %q", account)
	}
}

func TestAuthFormEscapesError(t *testing.T) {
	t.Parallel()

	out := renderString(t, AuthForm(AuthFormView{Error: "<script>x</script>"}, nil))
	if strings.Contains(out, "<script>") {
		t.Fatalf("error not escaped: %s", out)
	}
}

func TestSearchIconPosition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		props search.Props
		class string
		first string
	}{
		{props: search.Props{DefaultValue: "Left icon"}, class: "left", first: "svg"},
		{props: search.Props{IconPosition: search.IconRight, DefaultValue: "Right icon"}, class: "", first: "input"},
	}
	for _, tc := range tests {
		doc := parseFragment(t, renderString(t, Search(tc.props, englishLoc())))
		wrappers := findAll(doc, byClass("search-input"))
		if len(wrappers) != 1 {
			t.Fatalf("wrappers = %d", len(wrappers))
		}
		wrapper := wrappers[0]
		if got := byClass("left")(wrapper); got != (tc.class == "left") {
			t.Errorf("%q left class = %v", tc.props.DefaultValue, got)
		}
		if got := wrapper.FirstChild.Data; got != tc.first {
			t.Errorf("%q first child = %q, want %q", tc.props.DefaultValue, got, tc.first)
		}
		input := findAll(wrapper, byTag("input"))[0]
		if got := attr(input, "value"); got != tc.props.DefaultValue {
			t.Errorf("value = %q", got)
		}
		if got := attr(input, "placeholder"); got != "Search for assets..." {
			t.Errorf("placeholder = %q", got)
		}
	}
}

func TestSearchWithSuggestions(t *testing.T) {
	t.Parallel()

	data := []string{"Bibox Token", "Bigbom", "Binance Coin", "BioCoin", "BitBay", "bitcoin"}
	view := SearchView{
		Props:       search.Props{DefaultValue: "bi"},
		Suggestions: search.Suggest(data, "bi", 5),
		Live:        true,
	}
	doc := parseFragment(t, renderString(t, SearchWithSuggestions(view, englishLoc())))
	items := findAll(doc, byClass("suggestion"))
	if len(items) != 5 {
		t.Fatalf("suggestions = %d, want 5", len(items))
	}
	if got := textOf(items[0]); got != "Bibox Token" {
		t.Fatalf("first suggestion = %q", got)
	}
	input := findAll(doc, byTag("input"))[0]
	if attr(input, "hx-get") == "" || attr(input, "hx-vals") != `{"max":5}` {
		t.Fatalf("live attributes = %+v", input.Attr)
	}

	empty := parseFragment(t, renderString(t, SuggestionList(nil, "zzz", englishLoc())))
	if got := findAll(empty, byClass("suggestions-empty")); len(got) != 1 || textOf(got[0]) != "No matches" {
		t.Fatal("expected empty state")
	}
	blank := parseFragment(t, renderString(t, SuggestionList(nil, "", englishLoc())))
	if got := findAll(blank, byTag("li")); len(got) != 0 {
		t.Fatalf("blank query items = %d", len(got))
	}
}

func TestColorModeComparisonRendersBothModes(t *testing.T) {
	t.Parallel()

	out := renderString(t, ColorModeComparison(Text("story-body"), englishLoc()))
	if got := strings.Count(out, "story-body"); got != 2 {
		t.Fatalf("content rendered %d times, want 2", got)
	}
	doc := parseFragment(t, out)
	if len(findAll(doc, byClass("color-mode-day"))) != 1 || len(findAll(doc, byClass("color-mode-night"))) != 1 {
		t.Fatalf("missing color mode panels: %s", out)
	}
}

func TestBacktestChartEmbedsConfig(t *testing.T) {
	t.Parallel()

	chart, err := backtest.BuildChart([]backtest.HistoryPoint{{Datetime: time.Unix(0, 0), PriceUSD: 1}}, backtest.Params{PostUpdatedAt: time.Unix(0, 0), Change: 1})
	if err != nil {
		t.Fatalf("BuildChart() error = %v", err)
	}
	doc := parseFragment(t, renderString(t, BacktestChart("chart-1", chart)))
	canvases := findAll(doc, byTag("canvas"))
	if len(canvases) != 1 {
		t.Fatalf("canvases = %d", len(canvases))
	}
	var decoded struct {
		Type    string           `json:"type"`
		Data    backtest.Data    `json:"data"`
		Options backtest.Options `json:"options"`
	}
	if err := json.Unmarshal([]byte(attr(canvases[0], "data-chart")), &decoded); err != nil {
		t.Fatalf("decode data-chart: %v", err)
	}
	if decoded.Type != "line" || len(decoded.Data.Labels) != 1 {
		t.Fatalf("decoded = %+v", decoded)
	}
	if got := decoded.Options.Annotation.Annotations[0].BorderColor; got != backtest.ColorPositive {
		t.Fatalf("annotation color = %q", got)
	}
}

func TestLayoutWrapsChildren(t *testing.T) {
	t.Parallel()

	page := PageContext{
		Title:  "Search",
		Lang:   "en-US",
		Loc:    englishLoc(),
		Viewer: module.Viewer{Account: testAccount, SignedIn: true},
	}
	ctx := templ.WithChildren(context.Background(), Text("child-body"))
	var buf bytes.Buffer
	if err := Layout(page).Render(ctx, &buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	doc := parseFragment(t, buf.String())
	if got := textOf(findAll(doc, byTag("title"))[0]); got != "Search | "+branding.AppName {
		t.Fatalf("title = %q", got)
	}
	main := findAll(doc, func(n *html.Node) bool { return attr(n, "id") == MainContentID })
	if len(main) != 1 || textOf(main[0]) != "child-body" {
		t.Fatalf("main content missing children")
	}
	if !strings.Contains(buf.String(), "0xabcd…ef01") {
		t.Fatalf("expected short viewer account")
	}
}

func TestComposePageTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: branding.AppName},
		{in: branding.AppName, want: branding.AppName},
		{in: "Search", want: "Search | " + branding.AppName},
		{in: "Search | " + branding.AppName, want: "Search | " + branding.AppName},
		{in: "Search - " + branding.AppName, want: "Search | " + branding.AppName},
	}
	for _, tc := range tests {
		if got := ComposePageTitle(tc.in); got != tc.want {
			t.Errorf("ComposePageTitle(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestErrorStateUsesLocalizedHeading(t *testing.T) {
	t.Parallel()

	doc := parseFragment(t, renderString(t, ErrorState(http.StatusNotFound, englishLoc())))
	if got := textOf(findAll(doc, byTag("h1"))[0]); got != "Not found" {
		t.Fatalf("heading = %q", got)
	}
	if got := ErrorPageTitle(http.StatusBadGateway, englishLoc()); got != "Something went wrong" {
		t.Fatalf("title = %q", got)
	}
}

func TestTFallsBackToKey(t *testing.T) {
	t.Parallel()

	if got := T(nil, "auth.public_key %s", "x"); got != "auth.public_key x" {
		t.Fatalf("T(nil) = %q", got)
	}
	if got := T(message.NewPrinter(language.AmericanEnglish), "stories.day"); got != "Day" {
		t.Fatalf("T(stories.day) = %q", got)
	}
}
