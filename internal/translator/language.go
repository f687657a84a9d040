package translator

import (
	"fmt"

	"golang.org/x/text/language"
)

// Default language codes of the direction table.
const (
	DefaultPrimaryLanguage   = "en"
	DefaultSecondaryLanguage = "th"
)

// LanguageTable maps a Direction to the destination language sent upstream.
// It is the only place language codes are chosen.
type LanguageTable struct {
	tags map[Direction]language.Tag
}

// DefaultLanguageTable maps Primary to English and Secondary to Thai.
func DefaultLanguageTable() LanguageTable {
	return LanguageTable{
		tags: map[Direction]language.Tag{
			Primary:   language.English,
			Secondary: language.Thai,
		},
	}
}

// NewLanguageTable builds a table from BCP 47 codes.
func NewLanguageTable(primary, secondary string) (LanguageTable, error) {
	p, err := language.Parse(primary)
	if err != nil {
		return LanguageTable{}, fmt.Errorf("invalid primary language %q: %w", primary, err)
	}
	s, err := language.Parse(secondary)
	if err != nil {
		return LanguageTable{}, fmt.Errorf("invalid secondary language %q: %w", secondary, err)
	}
	if p == s {
		return LanguageTable{}, fmt.Errorf("primary and secondary language are both %q", p)
	}

	return LanguageTable{
		tags: map[Direction]language.Tag{
			Primary:   p,
			Secondary: s,
		},
	}, nil
}

// Resolve returns the provider language code for d.
func (t LanguageTable) Resolve(d Direction) (string, error) {
	tag, ok := t.tags[d]
	if !ok {
		return "", fmt.Errorf("no language configured for %s direction", d)
	}
	return tag.String(), nil
}

// Codes returns the configured code per direction name.
func (t LanguageTable) Codes() map[string]string {
	codes := make(map[string]string, len(t.tags))
	for d, tag := range t.tags {
		codes[d.String()] = tag.String()
	}
	return codes
}
