package catalog

import (
	"encoding/json"
	"errors"
	"strings"
)

// Supported site languages. Every localized field carries an entry for each.
const (
	LangRussian = "ru"
	LangKazakh  = "kk"
)

// SupportedLanguages contains all valid language codes.
var SupportedLanguages = []string{LangRussian, LangKazakh}

// DefaultLanguage is used when no preference is resolved.
const DefaultLanguage = LangRussian

// Domain errors
var (
	ErrEmptyTitle    = errors.New("title must be set for every supported language")
	ErrNegativePrice = errors.New("price cannot be negative")
)

// IsSupportedLanguage reports whether code is one of the site languages.
func IsSupportedLanguage(code string) bool {
	for _, l := range SupportedLanguages {
		if l == code {
			return true
		}
	}
	return false
}

// Localized maps a language code to text, matching the persisted wire shape
// {"ru": ..., "kk": ...}.
type Localized map[string]string

// Get returns the text for lang, falling back to Russian, then to fallback.
func (l Localized) Get(lang, fallback string) string {
	if v := l[lang]; v != "" {
		return v
	}
	if v := l[LangRussian]; v != "" {
		return v
	}
	return fallback
}

// MenuItem is a sellable café menu position.
type MenuItem struct {
	ID          string    `json:"id"`
	Title       Localized `json:"title"`
	Description Localized `json:"description"`
	Price       int       `json:"price"`
	Available   bool      `json:"available"`
}

// UnmarshalJSON defaults Available to true when the field is absent from the
// stored document.
func (m *MenuItem) UnmarshalJSON(data []byte) error {
	type alias MenuItem
	aux := struct {
		Available *bool `json:"available"`
		*alias
	}{alias: (*alias)(m)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	m.Available = aux.Available == nil || *aux.Available
	return nil
}

// Validate checks if the MenuItem has valid data.
// PRE: MenuItem struct is populated
// POST: Returns nil if valid, error otherwise
func (m *MenuItem) Validate() error {
	for _, lang := range SupportedLanguages {
		if strings.TrimSpace(m.Title[lang]) == "" {
			return ErrEmptyTitle
		}
	}
	if m.Price < 0 {
		return ErrNegativePrice
	}
	return nil
}

// Program is a bookable entertainment program.
type Program struct {
	ID          string    `json:"id"`
	Title       Localized `json:"title"`
	Description Localized `json:"description"`
	Price       int       `json:"price"`
	Available   bool      `json:"available"`
	Costumes    []string  `json:"costumes"`
}

// UnmarshalJSON defaults Available to true when the field is absent from the
// stored document.
func (p *Program) UnmarshalJSON(data []byte) error {
	type alias Program
	aux := struct {
		Available *bool `json:"available"`
		*alias
	}{alias: (*alias)(p)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	p.Available = aux.Available == nil || *aux.Available
	return nil
}

// Validate checks if the Program has valid data.
// PRE: Program struct is populated
// POST: Returns nil if valid, error otherwise
func (p *Program) Validate() error {
	for _, lang := range SupportedLanguages {
		if strings.TrimSpace(p.Title[lang]) == "" {
			return ErrEmptyTitle
		}
	}
	if p.Price < 0 {
		return ErrNegativePrice
	}
	return nil
}

// ParseCostumes splits a comma-separated costume list, trimming whitespace
// and dropping empty entries.
func ParseCostumes(raw string) []string {
	var costumes []string
	for _, c := range strings.Split(raw, ",") {
		if c = strings.TrimSpace(c); c != "" {
			costumes = append(costumes, c)
		}
	}
	return costumes
}
