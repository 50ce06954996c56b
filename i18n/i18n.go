// Package i18n loads flat translation dictionaries and resolves the
// language a request should be served in.
package i18n

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	"github.com/jackielii/ctxkey"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var locales embed.FS

// DefaultLocale is the fallback language of the embedded dictionaries.
const DefaultLocale = "en"

type Bundle struct {
	dict     map[string]map[string]string
	fallback string
	langs    []string // sorted, fallback first
	matcher  language.Matcher
}

// Default loads the embedded dictionaries with DefaultLocale as fallback.
func Default() (*Bundle, error) {
	return DefaultWith(DefaultLocale)
}

// DefaultWith loads the embedded dictionaries with the given fallback,
// which must be one of the embedded locales.
func DefaultWith(fallback string) (*Bundle, error) {
	sub, err := fs.Sub(locales, "locales")
	if err != nil {
		return nil, err
	}
	return Load(sub, fallback)
}

// Load reads every <locale>.yaml, <locale>.yml or <locale>.json file at the
// top of fsys. The fallback locale must be present.
func Load(fsys fs.FS, fallback string) (*Bundle, error) {
	fallback = strings.ToLower(fallback)
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("read locales: %w", err)
	}
	b := &Bundle{
		dict:     map[string]map[string]string{},
		fallback: fallback,
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := path.Ext(e.Name())
		switch ext {
		case ".yaml", ".yml", ".json":
		default:
			continue
		}
		lang := strings.ToLower(strings.TrimSuffix(e.Name(), ext))
		raw, err := fs.ReadFile(fsys, e.Name())
		if err != nil {
			return nil, fmt.Errorf("load locale %s: %w", lang, err)
		}
		// JSON is valid YAML, one decoder serves both
		var m map[string]string
		if err := yaml.Unmarshal(raw, &m); err != nil {
			return nil, fmt.Errorf("unmarshal %s: %w", e.Name(), err)
		}
		if _, err := language.Parse(lang); err != nil {
			return nil, fmt.Errorf("locale %s: %w", lang, err)
		}
		b.dict[lang] = m
	}
	if _, ok := b.dict[fallback]; !ok {
		return nil, fmt.Errorf("fallback locale %s not loaded", fallback)
	}

	for lang := range b.dict {
		if lang != fallback {
			b.langs = append(b.langs, lang)
		}
	}
	slices.Sort(b.langs)
	b.langs = append([]string{fallback}, b.langs...)

	tags := make([]language.Tag, len(b.langs))
	for i, lang := range b.langs {
		tags[i] = language.MustParse(lang)
	}
	b.matcher = language.NewMatcher(tags)
	return b, nil
}

// Supported returns the loaded locales, fallback first.
func (b *Bundle) Supported() []string {
	return slices.Clone(b.langs)
}

// Fallback returns the configured fallback language.
func (b *Bundle) Fallback() string { return b.fallback }

// Has reports whether lang was loaded.
func (b *Bundle) Has(lang string) bool {
	_, ok := b.dict[strings.ToLower(lang)]
	return ok
}

// T returns translation for key in lang, falling back to default and finally key.
func (b *Bundle) T(lang, key string) string {
	if m, ok := b.dict[strings.ToLower(lang)]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	if v, ok := b.dict[b.fallback][key]; ok {
		return v
	}
	return key
}

// Resolve chooses best language from Accept-Language header.
func (b *Bundle) Resolve(acceptLang string) string {
	prefs, _, err := language.ParseAcceptLanguage(acceptLang)
	if err != nil || len(prefs) == 0 {
		return b.fallback
	}
	_, idx, conf := b.matcher.Match(prefs...)
	if conf == language.No {
		return b.fallback
	}
	return b.langs[idx]
}

// Localizer is a bundle bound to one language.
type Localizer struct {
	bundle *Bundle
	lang   string
}

func (b *Bundle) Localizer(lang string) Localizer {
	return Localizer{bundle: b, lang: strings.ToLower(lang)}
}

func (l Localizer) Lang() string { return l.lang }

func (l Localizer) T(key string) string {
	if l.bundle == nil {
		return key
	}
	return l.bundle.T(l.lang, key)
}

var localizerCtx = ctxkey.New[Localizer]("i18n.localizer", Localizer{})

// WithLocalizer makes l the ambient translator for components rendered with ctx.
func WithLocalizer(ctx context.Context, l Localizer) context.Context {
	return localizerCtx.WithValue(ctx, l)
}

// T looks key up with the localizer in ctx. Without one the key is returned.
func T(ctx context.Context, key string) string {
	return localizerCtx.Value(ctx).T(key)
}
