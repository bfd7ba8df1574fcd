// Package language provides locale detection and query normalization
// for the matching pipeline. Both operations are pure functions with no
// model or network dependency.
package language

import (
	"github.com/softerio/chatbot-engine/pkg/models"
)

// urduRanges are the Unicode blocks used by Urdu script: Arabic,
// Arabic Supplement, Arabic Presentation Forms A and B.
var urduRanges = [][2]rune{
	{0x0600, 0x06FF},
	{0x0750, 0x077F},
	{0xFB50, 0xFDFF},
	{0xFE70, 0xFEFF},
}

// Detect resolves the locale for one query. An explicit session override
// (english or urdu) always wins over the script heuristic. In auto mode,
// any rune in an Urdu script block classifies the text as Urdu;
// otherwise English. Empty or whitespace-only input resolves to English.
//
// Romanized Urdu (Urdu written in Latin letters) is indistinguishable
// from English at the script level and resolves to English in auto mode;
// users can pin it with an explicit override.
func Detect(raw string, session models.Locale) models.Locale {
	if session.IsConcrete() {
		return session
	}

	for _, r := range raw {
		if isUrduRune(r) {
			return models.LocaleUrdu
		}
	}
	return models.LocaleEnglish
}

func isUrduRune(r rune) bool {
	for _, rng := range urduRanges {
		if r >= rng[0] && r <= rng[1] {
			return true
		}
	}
	return false
}
