package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

type catalogFile struct {
	Locale   string            `yaml:"locale"`
	Messages map[string]string `yaml:"messages"`
}

// Bundle holds the messages of every supported language.
type Bundle struct {
	builder  *catalog.Builder
	messages map[string]map[string]string
}

//go:embed locales/*.yaml
var embeddedLocales embed.FS

var (
	defaultOnce   sync.Once
	defaultBundle *Bundle
)

// Default returns the bundle built from the embedded locale files.
func Default() *Bundle {
	defaultOnce.Do(func() {
		b, err := LoadFromFS(embeddedLocales)
		if err != nil {
			panic(fmt.Sprintf("load embedded locales: %v", err))
		}
		defaultBundle = b
	})
	return defaultBundle
}

// LoadFromFS loads locales/*.yaml from fsys. Every supported language must
// be present and define the same keys as the default language.
func LoadFromFS(fsys fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(fsys, "locales/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files found")
	}
	sort.Strings(paths)

	b := &Bundle{
		builder:  catalog.NewBuilder(catalog.Fallback(DefaultTag())),
		messages: map[string]map[string]string{},
	}
	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", p, err)
		}
		var file catalogFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", p, err)
		}
		if err := b.add(p, file); err != nil {
			return nil, err
		}
	}

	if err := b.checkComplete(); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Bundle) add(p string, file catalogFile) error {
	locale := strings.TrimSpace(file.Locale)
	if locale == "" {
		return fmt.Errorf("catalog %s: locale is required", p)
	}
	if want := strings.TrimSuffix(path.Base(p), path.Ext(p)); locale != want {
		return fmt.Errorf("catalog %s: locale %q must match file name %q", p, locale, want)
	}
	tag, ok := ParseTag(locale)
	if !ok || Code(tag) != locale {
		return fmt.Errorf("catalog %s: unsupported locale %q", p, locale)
	}
	if _, exists := b.messages[locale]; exists {
		return fmt.Errorf("catalog %s: locale %q already defined", p, locale)
	}
	if len(file.Messages) == 0 {
		return fmt.Errorf("catalog %s: messages map is required", p)
	}

	msgs := make(map[string]string, len(file.Messages))
	for key, value := range file.Messages {
		key = strings.TrimSpace(key)
		if key == "" {
			return fmt.Errorf("catalog %s: message key cannot be blank", p)
		}
		if err := b.builder.SetString(tag, key, value); err != nil {
			return fmt.Errorf("catalog %s: register %q: %w", p, key, err)
		}
		msgs[key] = value
	}
	b.messages[locale] = msgs
	return nil
}

func (b *Bundle) checkComplete() error {
	base, ok := b.messages[Code(DefaultTag())]
	if !ok {
		return fmt.Errorf("default locale %s is not defined in catalogs", Code(DefaultTag()))
	}
	for _, tag := range supportedTags {
		code := Code(tag)
		msgs, ok := b.messages[code]
		if !ok {
			return fmt.Errorf("locale %s is not defined in catalogs", code)
		}
		for key := range base {
			if _, ok := msgs[key]; !ok {
				return fmt.Errorf("locale %s: missing key %q", code, key)
			}
		}
	}
	return nil
}

// Localizer returns a localizer for tag, matched onto a supported language.
func (b *Bundle) Localizer(tag language.Tag) *Localizer {
	matched := MatchTags([]language.Tag{tag})
	return &Localizer{
		tag:     matched,
		printer: message.NewPrinter(matched, message.Catalog(b.builder)),
	}
}

// LocalizerFor is Localizer for a language code; unknown codes use the
// default language.
func (b *Bundle) LocalizerFor(code string) *Localizer {
	tag, _ := ParseTag(code)
	return b.Localizer(tag)
}

// Message returns the raw catalog entry for key.
func (b *Bundle) Message(tag language.Tag, key string) (string, bool) {
	msgs, ok := b.messages[Code(MatchTags([]language.Tag{tag}))]
	if !ok {
		return "", false
	}
	msg, ok := msgs[key]
	return msg, ok
}

// Keys returns the sorted message keys of the default language.
func (b *Bundle) Keys() []string {
	base := b.messages[Code(DefaultTag())]
	keys := make([]string, 0, len(base))
	for key := range base {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
