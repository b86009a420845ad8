// Package i18n loads the per-language translation tables and resolves UI
// strings. Missing keys resolve to the key itself so untranslated text is
// visible instead of blank.
package i18n

import (
	"fmt"
	"path/filepath"

	"junglepark/internal/adapters/storage"
	"junglepark/internal/domain/catalog"
)

// Translator holds the loaded translation tables, one per supported
// language. Tables are immutable after Load.
type Translator struct {
	tables map[string]map[string]string
}

// Load reads translations/<lang>.json for every supported language.
// A missing table file yields an empty table, not an error.
func Load(dir string) (*Translator, error) {
	tables := make(map[string]map[string]string, len(catalog.SupportedLanguages))
	for _, lang := range catalog.SupportedLanguages {
		table := map[string]string{}
		if _, err := storage.ReadDocument(filepath.Join(dir, lang+".json"), &table); err != nil {
			return nil, fmt.Errorf("load translations for %s: %w", lang, err)
		}
		tables[lang] = table
	}
	return &Translator{tables: tables}, nil
}

// T returns the translation of key for lang. Unknown languages fall back to
// the default language table; a missing key returns the key unchanged.
func (tr *Translator) T(lang, key string) string {
	table, ok := tr.tables[lang]
	if !ok {
		table = tr.tables[catalog.DefaultLanguage]
	}
	if v, ok := table[key]; ok {
		return v
	}
	return key
}
