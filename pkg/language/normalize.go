package language

import (
	"strings"
	"unicode"

	"github.com/jinzhu/inflection"

	"github.com/softerio/chatbot-engine/pkg/models"
)

// englishStopwords are dropped from English queries before matching.
// Urdu keyword sets are curated with exact forms, so Urdu gets no
// stopword removal.
var englishStopwords = map[string]bool{
	"the": true, "is": true, "a": true, "an": true, "of": true,
	"to": true, "in": true, "on": true, "and": true, "or": true,
	"do": true, "does": true, "what": true, "who": true, "how": true,
	"are": true, "your": true, "you": true, "can": true, "me": true,
	"please": true, "tell": true, "about": true,
}

// Normalize maps raw text to the ordered token sequence the matcher
// scores against.
//
// English: lowercase, split on any non-letter/non-digit, drop tokens
// shorter than two runes and stopwords, then singularize each token so
// plural queries ("services") hit singular keywords ("service").
//
// Urdu: split on whitespace and punctuation only. The script has no
// case, and keyword sets are curated with exact forms.
func Normalize(raw string, locale models.Locale) []string {
	if locale == models.LocaleUrdu {
		return splitTokens(raw)
	}

	var out []string
	for _, tok := range splitTokens(strings.ToLower(raw)) {
		if len([]rune(tok)) < 2 || englishStopwords[tok] {
			continue
		}
		out = append(out, inflection.Singular(tok))
	}
	return out
}

// splitTokens splits on any rune that is not a letter or digit. This
// covers whitespace and both Latin and Urdu punctuation (e.g. U+061F
// arabic question mark).
func splitTokens(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
