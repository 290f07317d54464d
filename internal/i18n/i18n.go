// Package i18n renders user-facing messages from per-language catalogues.
// Catalogues are embedded at build time and loaded once by Load; after that the
// table is read-only, so concurrent request handling needs no locking.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
)

//go:embed locales/*.json
var localeFS embed.FS

// DefaultLanguage is used when the client supplies no Content-Language header.
const DefaultLanguage = "en-US"

var catalogues map[string]map[string]interface{}

// Load parses every embedded locale file into the process-wide catalogue table.
// It must be called once at startup, before any request is served.
func Load() error {
	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return fmt.Errorf("failed to read embedded locales: %w", err)
	}

	loaded := make(map[string]map[string]interface{}, len(entries))
	for _, entry := range entries {
		data, err := localeFS.ReadFile("locales/" + entry.Name())
		if err != nil {
			return fmt.Errorf("failed to read locale %s: %w", entry.Name(), err)
		}
		var tree map[string]interface{}
		if err := json.Unmarshal(data, &tree); err != nil {
			return fmt.Errorf("failed to parse locale %s: %w", entry.Name(), err)
		}
		tag := strings.TrimSuffix(entry.Name(), ".json")
		loaded[tag] = tree
	}

	if _, ok := loaded[DefaultLanguage]; !ok {
		return fmt.Errorf("default locale %s missing from embedded catalogues", DefaultLanguage)
	}
	catalogues = loaded
	return nil
}

// Supported reports whether a catalogue exists for the language tag.
func Supported(lang string) bool {
	_, ok := catalogues[lang]
	return ok
}

// Lookup walks the dotted key through the language's message tree. The second
// return value is false when any path component is missing or the leaf is not
// a string.
func Lookup(lang, key string) (string, bool) {
	tree, ok := catalogues[lang]
	if !ok {
		return "", false
	}
	parts := strings.Split(key, ".")
	var node interface{} = map[string]interface{}(tree)
	for _, part := range parts {
		m, ok := node.(map[string]interface{})
		if !ok {
			return "", false
		}
		node, ok = m[part]
		if !ok {
			return "", false
		}
	}
	s, ok := node.(string)
	return s, ok
}

// T resolves key under lang and substitutes {{name}} placeholders from params.
// A missing translation falls back to the default language; when the key is
// absent there too, the key itself is returned so the failure stays visible
// without turning the response into a 500. Placeholders with no supplied value
// are left literal.
func T(lang, key string, params map[string]string) string {
	template, ok := Lookup(lang, key)
	if !ok && lang != DefaultLanguage {
		template, ok = Lookup(DefaultLanguage, key)
	}
	if !ok {
		return key
	}
	for name, value := range params {
		template = strings.ReplaceAll(template, "{{"+name+"}}", value)
	}
	return template
}
