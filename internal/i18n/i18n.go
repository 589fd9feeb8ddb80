// Package i18n resolves language tags and looks up translated UI strings.
package i18n

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/palettegen/internal/harmony"
)

// Fallback is the language used when a tag cannot be matched.
const Fallback = "en"

//go:embed catalog.yaml
var catalogYAML []byte

// supported is ordered; the first entry is the matcher default.
var supported = []language.Tag{
	language.English,
	language.Spanish,
	language.French,
	language.German,
}

var matcher = language.NewMatcher(supported)

var (
	catalogOnce sync.Once
	catalog     map[string]map[string]string
	catalogErr  error
)

// Supported returns the base language codes with a catalog, in cycle order.
func Supported() []string {
	out := make([]string, len(supported))
	for i, tag := range supported {
		base, _ := tag.Base()
		out[i] = base.String()
	}
	return out
}

// Normalize maps an arbitrary BCP 47 tag to the closest supported language,
// or Fallback when nothing matches.
func Normalize(tag string) string {
	if strings.TrimSpace(tag) == "" {
		return Fallback
	}
	parsed, err := language.Parse(tag)
	if err != nil {
		return Fallback
	}
	_, idx, conf := matcher.Match(parsed)
	if conf == language.No {
		return Fallback
	}
	return Supported()[idx]
}

// Next returns the language after tag in cycle order.
func Next(tag string) string {
	langs := Supported()
	current := Normalize(tag)
	for i, l := range langs {
		if l == current {
			return langs[(i+1)%len(langs)]
		}
	}
	return Fallback
}

// Translator looks up strings for one language.
type Translator struct {
	lang    string
	entries map[string]string
	base    map[string]string
}

// New returns a translator for tag. The tag is normalized first.
func New(tag string) (Translator, error) {
	cat, err := loadCatalog()
	if err != nil {
		return Translator{}, err
	}
	lang := Normalize(tag)
	return Translator{lang: lang, entries: cat[lang], base: cat[Fallback]}, nil
}

// MustNew is New for callers that rely on the embedded catalog being valid.
func MustNew(tag string) Translator {
	t, err := New(tag)
	if err != nil {
		panic(err)
	}
	return t
}

// Lang returns the normalized language code.
func (t Translator) Lang() string {
	if t.lang == "" {
		return Fallback
	}
	return t.lang
}

// T returns the string for key, falling back to English and then to the key.
func (t Translator) T(key string) string {
	if v, ok := t.entries[key]; ok {
		return v
	}
	if v, ok := t.base[key]; ok {
		return v
	}
	return key
}

// Has reports whether key is translated for this language specifically.
func (t Translator) Has(key string) bool {
	_, ok := t.entries[key]
	return ok
}

// Mode returns the display label for a harmony mode.
func (t Translator) Mode(m harmony.Mode) string {
	key := "modes." + m.String()
	if v, ok := t.entries[key]; ok {
		return v
	}
	return cases.Title(language.Make(t.Lang())).String(m.String())
}

// Keys returns every key known for this language, sorted.
func (t Translator) Keys() []string {
	keys := make([]string, 0, len(t.entries))
	for k := range t.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func loadCatalog() (map[string]map[string]string, error) {
	catalogOnce.Do(func() {
		catalog, catalogErr = parseCatalog(catalogYAML)
	})
	return catalog, catalogErr
}

func parseCatalog(data []byte) (map[string]map[string]string, error) {
	var raw map[string]map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	out := make(map[string]map[string]string, len(raw))
	for lang, tree := range raw {
		flat := map[string]string{}
		if err := flatten("", tree, flat); err != nil {
			return nil, fmt.Errorf("catalog %s: %w", lang, err)
		}
		out[lang] = flat
	}
	if _, ok := out[Fallback]; !ok {
		return nil, fmt.Errorf("catalog has no %q entries", Fallback)
	}
	return out, nil
}

func flatten(prefix string, node map[string]any, out map[string]string) error {
	for key, value := range node {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		switch v := value.(type) {
		case string:
			out[full] = v
		case map[string]any:
			if err := flatten(full, v, out); err != nil {
				return err
			}
		default:
			return fmt.Errorf("key %s: unsupported value %T", full, value)
		}
	}
	return nil
}
