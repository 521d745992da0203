// Package catalog loads the embedded message catalogs and registers them
// with golang.org/x/text/message.
//
// Catalog files live at locales/<locale>/<namespace>.yaml and use a small
// quoted-string subset of YAML:
//
//	locale: "en-US"
//	namespace: "web"
//	messages:
//	  "search.placeholder": "Search for assets..."
package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// BaseLocale is the canonical source locale; every key must exist there.
const BaseLocale = "en-US"

type file struct {
	locale    string
	namespace string
	messages  map[string]string
}

// Bundle holds every message keyed by locale.
type Bundle struct {
	locales    map[string]map[string]string
	namespaces map[string]map[string]string
}

//go:embed locales/*/*.yaml
var embeddedFS embed.FS

var defaultBundle = mustLoadAndRegister()

// Default returns the process-wide embedded bundle, already registered.
func Default() *Bundle {
	return defaultBundle
}

// LoadEmbedded loads the catalogs compiled into the binary.
func LoadEmbedded() (*Bundle, error) {
	return LoadFromFS(embeddedFS)
}

// LoadFromFS loads catalogs from fsys.
func LoadFromFS(fsys fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(fsys, "locales/*/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files found")
	}
	sort.Strings(paths)

	bundle := &Bundle{
		locales:    map[string]map[string]string{},
		namespaces: map[string]map[string]string{},
	}
	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", p, err)
		}
		parsed, err := parse(data)
		if err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", p, err)
		}
		if err := bundle.add(p, parsed); err != nil {
			return nil, err
		}
	}

	base, ok := bundle.locales[BaseLocale]
	if !ok {
		return nil, fmt.Errorf("base locale %s is not defined in catalogs", BaseLocale)
	}
	for locale, messages := range bundle.locales {
		for key := range messages {
			if _, ok := base[key]; !ok {
				return nil, fmt.Errorf("locale %s defines %q missing from %s", locale, key, BaseLocale)
			}
		}
	}
	return bundle, nil
}

func (b *Bundle) add(p string, f file) error {
	dirLocale := path.Base(path.Dir(p))
	fileNamespace := strings.TrimSuffix(path.Base(p), path.Ext(p))
	if f.locale != dirLocale {
		return fmt.Errorf("catalog %s: locale %q must match path locale %q", p, f.locale, dirLocale)
	}
	if f.namespace != fileNamespace {
		return fmt.Errorf("catalog %s: namespace %q must match file name %q", p, f.namespace, fileNamespace)
	}

	messages, ok := b.locales[f.locale]
	if !ok {
		messages = map[string]string{}
		b.locales[f.locale] = messages
	}
	namespaceKey := f.locale + "/" + f.namespace
	if _, exists := b.namespaces[namespaceKey]; exists {
		return fmt.Errorf("catalog %s: namespace %q already defined for %s", p, f.namespace, f.locale)
	}
	b.namespaces[namespaceKey] = f.messages

	for key, value := range f.messages {
		if strings.HasPrefix(key, "core.") && f.namespace != "core" {
			return fmt.Errorf("catalog %s: key %q must be defined in core namespace", p, key)
		}
		if _, exists := messages[key]; exists {
			return fmt.Errorf("catalog %s: duplicate key %q in locale %s", p, key, f.locale)
		}
		messages[key] = value
	}
	return nil
}

// Register publishes every message to x/text/message for the locale tag and
// its base language, so "ru" requests pick up "ru-RU" strings. Keys a locale
// lacks are published with their base-locale text.
func (b *Bundle) Register() error {
	if b == nil {
		return nil
	}
	for _, locale := range b.Locales() {
		tag, err := language.Parse(locale)
		if err != nil {
			return fmt.Errorf("parse locale tag %q: %w", locale, err)
		}
		tags := []language.Tag{tag}
		if base, confidence := tag.Base(); confidence != language.No {
			if baseTag, err := language.Parse(base.String()); err == nil && baseTag != tag {
				tags = append(tags, baseTag)
			}
		}
		for _, key := range b.Keys(BaseLocale) {
			value, _ := b.Message(locale, key)
			for _, registerTag := range tags {
				if err := message.SetString(registerTag, key, value); err != nil {
					return fmt.Errorf("register %s %q: %w", locale, key, err)
				}
			}
		}
	}
	return nil
}

// HasLocale reports whether the locale exists in this bundle.
func (b *Bundle) HasLocale(locale string) bool {
	if b == nil {
		return false
	}
	_, ok := b.locales[strings.TrimSpace(locale)]
	return ok
}

// Locales returns the sorted locale identifiers.
func (b *Bundle) Locales() []string {
	if b == nil {
		return nil
	}
	out := make([]string, 0, len(b.locales))
	for locale := range b.locales {
		out = append(out, locale)
	}
	sort.Strings(out)
	return out
}

// Keys returns the sorted message keys defined for a locale.
func (b *Bundle) Keys(locale string) []string {
	if b == nil {
		return nil
	}
	messages := b.locales[strings.TrimSpace(locale)]
	out := make([]string, 0, len(messages))
	for key := range messages {
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}

// Message returns one message, falling back to the base locale.
func (b *Bundle) Message(locale string, key string) (string, bool) {
	if b == nil {
		return "", false
	}
	key = strings.TrimSpace(key)
	if value, ok := b.locales[strings.TrimSpace(locale)][key]; ok {
		return value, true
	}
	value, ok := b.locales[BaseLocale][key]
	return value, ok
}

// NamespaceMessages returns a copy of one namespace for a locale.
func (b *Bundle) NamespaceMessages(locale string, namespace string) map[string]string {
	out := map[string]string{}
	if b == nil {
		return out
	}
	for key, value := range b.namespaces[strings.TrimSpace(locale)+"/"+strings.TrimSpace(namespace)] {
		out[key] = value
	}
	return out
}

func mustLoadAndRegister() *Bundle {
	bundle, err := LoadEmbedded()
	if err != nil {
		panic(err)
	}
	if err := bundle.Register(); err != nil {
		panic(err)
	}
	return bundle
}

func parse(data []byte) (file, error) {
	out := file{messages: map[string]string{}}
	inMessages := false
	for _, raw := range strings.Split(string(data), "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		switch {
		case strings.HasPrefix(line, "locale:"):
			value, err := strconv.Unquote(strings.TrimSpace(strings.TrimPrefix(line, "locale:")))
			if err != nil {
				return file{}, fmt.Errorf("parse locale: %w", err)
			}
			out.locale = strings.TrimSpace(value)
		case strings.HasPrefix(line, "namespace:"):
			value, err := strconv.Unquote(strings.TrimSpace(strings.TrimPrefix(line, "namespace:")))
			if err != nil {
				return file{}, fmt.Errorf("parse namespace: %w", err)
			}
			out.namespace = strings.TrimSpace(value)
		case line == "messages:":
			inMessages = true
		case inMessages:
			key, value, err := parseEntry(line)
			if err != nil {
				return file{}, fmt.Errorf("parse message entry %q: %w", line, err)
			}
			out.messages[key] = value
		default:
			return file{}, fmt.Errorf("unexpected line %q", line)
		}
	}
	switch {
	case out.locale == "":
		return file{}, fmt.Errorf("missing locale")
	case out.namespace == "":
		return file{}, fmt.Errorf("missing namespace")
	case len(out.messages) == 0:
		return file{}, fmt.Errorf("missing messages")
	}
	return out, nil
}

// parseEntry splits a `"key": "value"` line.
func parseEntry(line string) (string, string, error) {
	keyToken, err := strconv.QuotedPrefix(line)
	if err != nil {
		return "", "", fmt.Errorf("expected quoted key: %w", err)
	}
	key, err := strconv.Unquote(keyToken)
	if err != nil {
		return "", "", err
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return "", "", fmt.Errorf("message key cannot be blank")
	}
	rest := strings.TrimSpace(line[len(keyToken):])
	if !strings.HasPrefix(rest, ":") {
		return "", "", fmt.Errorf("missing ':' separator")
	}
	value, err := strconv.Unquote(strings.TrimSpace(strings.TrimPrefix(rest, ":")))
	if err != nil {
		return "", "", fmt.Errorf("unquote value: %w", err)
	}
	return key, value, nil
}
