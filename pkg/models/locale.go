package models

import "fmt"

// Locale identifies the language variant of a knowledge base entry or a
// session preference.
type Locale string

const (
	// LocaleEnglish and LocaleUrdu are the two concrete locales entries
	// can be tagged with.
	LocaleEnglish Locale = "english"
	LocaleUrdu    Locale = "urdu"

	// LocaleAuto is a session-only setting. It is resolved to a concrete
	// locale per query and never appears on a stored entry.
	LocaleAuto Locale = "auto"
)

// ParseLocale normalizes a user-supplied locale string. Short forms
// ("en", "ur") are accepted for compatibility with web clients.
// An empty string parses as auto.
func ParseLocale(s string) (Locale, error) {
	switch s {
	case "english", "en":
		return LocaleEnglish, nil
	case "urdu", "ur":
		return LocaleUrdu, nil
	case "auto", "":
		return LocaleAuto, nil
	}
	return "", fmt.Errorf("unknown locale %q", s)
}

// IsConcrete reports whether the locale is one of the two entry locales
// (not auto).
func (l Locale) IsConcrete() bool {
	return l == LocaleEnglish || l == LocaleUrdu
}
