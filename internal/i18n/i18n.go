// Package i18n holds the UI message catalogs. English is the fallback;
// Hindi overlays it when selected. The chosen locale is persisted through
// the storage adapter so it survives restarts.
package i18n

import (
	"fmt"
	"strings"

	"github.com/taskpad/taskpad/internal/storage"
)

const (
	LocaleEnglish = "en"
	LocaleHindi   = "hi"
)

type Catalog struct {
	locale   string
	messages map[string]string
}

func New(locale string) *Catalog {
	locale = Normalize(locale)
	c := &Catalog{
		locale:   locale,
		messages: make(map[string]string, len(enMessages)),
	}
	for k, v := range enMessages {
		c.messages[k] = v
	}
	if locale == LocaleHindi {
		for k, v := range hiMessages {
			c.messages[k] = v
		}
	}
	return c
}

// T translates key, formatting args printf-style. Unknown keys echo back so
// a missing entry is visible instead of silent.
func (c *Catalog) T(key string, args ...any) string {
	tmpl, ok := c.messages[key]
	if !ok {
		return key
	}
	if len(args) == 0 {
		return tmpl
	}
	return fmt.Sprintf(tmpl, args...)
}

func (c *Catalog) Locale() string {
	return c.locale
}

func Normalize(locale string) string {
	locale = strings.ToLower(strings.TrimSpace(locale))
	if idx := strings.IndexByte(locale, '.'); idx >= 0 {
		locale = locale[:idx]
	}
	locale = strings.ReplaceAll(locale, "_", "-")
	switch {
	case strings.HasPrefix(locale, LocaleHindi):
		return LocaleHindi
	default:
		return LocaleEnglish
	}
}

// LoadLocale reads the persisted language preference, defaulting to English.
func LoadLocale(kv storage.Store) string {
	raw, ok, err := kv.Load(storage.LanguageKey)
	if err != nil || !ok {
		return LocaleEnglish
	}
	return Normalize(string(raw))
}

// SaveLocale persists the language preference.
func SaveLocale(kv storage.Store, locale string) error {
	return kv.Save(storage.LanguageKey, []byte(Normalize(locale)))
}
