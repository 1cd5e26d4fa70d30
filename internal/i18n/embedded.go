// Embedded locale loader. go:embed bakes the shipped locale files into the
// binary so the translator works without any filesystem layout.
package i18n

import (
	"embed"
	"fmt"
)

// embeddedLocales contains the YAML locale files shipped with the binary.
//
//go:embed locales/*.yaml
var embeddedLocales embed.FS

// loadEmbeddedLocale reads and flattens the embedded locale file for the
// given locale code.
func loadEmbeddedLocale(locale string) (map[string]string, error) {
	data, err := embeddedLocales.ReadFile(fmt.Sprintf("locales/%s.yaml", locale))
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded locale %q: %w", locale, err)
	}
	return parseLocaleYAML(data)
}
