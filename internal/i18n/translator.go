// Package i18n is the localization collaborator: a flat key-to-string
// translator loaded from YAML locale files, with a baked-in English base.
package i18n

import (
	"fmt"
	"os"
	"sync"

	"guestgate/internal/logging"

	"gopkg.in/yaml.v3"
)

// Translator resolves localization keys of the form
// "guest.feature.<name>.title" to display strings. Safe for concurrent use;
// LoadFile may be called from a watcher goroutine while the UI reads.
type Translator struct {
	mu      sync.RWMutex
	locale  string
	entries map[string]string
}

// NewTranslator returns a translator for the given locale, seeded from the
// embedded locale files. An unknown locale falls back to the embedded
// English base so every key still resolves.
func NewTranslator(locale string) (*Translator, error) {
	entries, err := loadEmbeddedLocale(locale)
	if err != nil {
		logging.Get(logging.CategoryI18n).Warn("No embedded locale %q, falling back to en: %v", locale, err)
		entries, err = loadEmbeddedLocale("en")
		if err != nil {
			return nil, fmt.Errorf("embedded base locale missing: %w", err)
		}
	}

	logging.I18nDebug("Translator ready (locale=%s, %d keys)", locale, len(entries))
	return &Translator{locale: locale, entries: entries}, nil
}

// Locale returns the locale the translator was built for.
func (t *Translator) Locale() string {
	return t.locale
}

// Translate resolves key to its localized string. Missing keys return the
// key itself, keeping untranslated text visible rather than blank.
func (t *Translator) Translate(key string) string {
	t.mu.RLock()
	v, ok := t.entries[key]
	t.mu.RUnlock()
	if ok {
		return v
	}
	logging.I18nDebug("Missing translation for %q", key)
	return key
}

// LoadFile merges a YAML locale file over the current entries. Keys in the
// file win; keys absent from the file keep their previous value.
func (t *Translator) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read locale file: %w", err)
	}

	entries, err := parseLocaleYAML(data)
	if err != nil {
		return fmt.Errorf("failed to parse locale file %s: %w", path, err)
	}

	t.mu.Lock()
	for k, v := range entries {
		t.entries[k] = v
	}
	t.mu.Unlock()
	logging.I18n("Merged %d keys from %s", len(entries), path)
	return nil
}

// parseLocaleYAML parses a locale document, flattening nested maps into
// dotted keys ("guest" > "feature" > "messaging" > "title" becomes
// "guest.feature.messaging.title").
func parseLocaleYAML(data []byte) (map[string]string, error) {
	var doc map[string]interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	entries := make(map[string]string)
	flatten("", doc, entries)
	return entries, nil
}

func flatten(prefix string, node map[string]interface{}, out map[string]string) {
	for k, v := range node {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case map[string]interface{}:
			flatten(key, val, out)
		case string:
			out[key] = val
		default:
			out[key] = fmt.Sprintf("%v", val)
		}
	}
}
