package language

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/softerio/chatbot-engine/pkg/models"
)

func TestNormalizeEnglish(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "lowercases and splits on punctuation",
			raw:  "What Services, do you OFFER?",
			want: []string{"service", "offer"},
		},
		{
			name: "drops stopwords",
			raw:  "tell me about the company please",
			want: []string{"company"},
		},
		{
			name: "drops single rune tokens",
			raw:  "i u x contact",
			want: []string{"contact"},
		},
		{
			name: "singularizes plurals",
			raw:  "prices for websites and apps",
			want: []string{"price", "for", "website", "app"},
		},
		{
			name: "keeps digits",
			raw:  "open at 9am?",
			want: []string{"open", "at", "9am"},
		},
		{
			name: "empty input yields no tokens",
			raw:  "",
			want: nil,
		},
		{
			name: "punctuation only yields no tokens",
			raw:  "?! ... --",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ElementsMatch(t, tt.want, Normalize(tt.raw, models.LocaleEnglish))
		})
	}
}

func TestNormalizeUrdu(t *testing.T) {
	// Urdu is split only: no stopword removal, no singularization, no
	// length filter beyond what splitting produces.
	got := Normalize("آپ کی خدمات کیا ہیں؟", models.LocaleUrdu)
	assert.Equal(t, []string{"آپ", "کی", "خدمات", "کیا", "ہیں"}, got)
}

func TestNormalizeUrduSplitsOnArabicQuestionMark(t *testing.T) {
	got := Normalize("نام؟کمپنی", models.LocaleUrdu)
	assert.Equal(t, []string{"نام", "کمپنی"}, got)
}
