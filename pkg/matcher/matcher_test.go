package matcher

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/softerio/chatbot-engine/pkg/knowledge"
	"github.com/softerio/chatbot-engine/pkg/models"
)

const testDoc = `
company:
  name: "Acme Software"
services:
  - name: "Web Development"
    description: "Websites and web apps."
    keywords: ["web", "website", "development"]
    locale: "english"
  - name: "Mobile Apps"
    description: "Android and iOS apps."
    keywords: ["mobile", "app", "android"]
    locale: "english"
faqs:
  - questions: ["What is your company name?"]
    answer: "We are Acme Software."
    keywords: ["name", "company"]
    locale: "english"
  - questions: ["What services do you offer?"]
    answer: "Web and mobile development."
    keywords: ["service", "offer"]
    locale: "english"
  - questions: ["آپ کی کمپنی کا نام؟"]
    answer: "ہم ایکمی ہیں۔"
    keywords: ["کمپنی", "نام"]
    locale: "urdu"
`

func loadKB(t *testing.T) *knowledge.KnowledgeBase {
	t.Helper()
	path := filepath.Join(t.TempDir(), "knowledge.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testDoc), 0o600))
	kb, err := knowledge.Load(path)
	require.NoError(t, err)
	return kb
}

func TestMatchFullOverlap(t *testing.T) {
	kb := loadKB(t)

	cand, ok := Match([]string{"company", "name"}, models.LocaleEnglish, kb, 0.2)
	require.True(t, ok)
	assert.Equal(t, KindFaq, cand.Kind)
	assert.Equal(t, "We are Acme Software.", cand.Answer)
	assert.Equal(t, 1.0, cand.Score)
}

func TestMatchPartialOverlap(t *testing.T) {
	kb := loadKB(t)

	// One of three keywords hit: score 1/3 clears the 0.2 threshold.
	cand, ok := Match([]string{"website", "cheap"}, models.LocaleEnglish, kb, 0.2)
	require.True(t, ok)
	assert.Equal(t, KindService, cand.Kind)
	assert.Equal(t, "Web Development", cand.Name)
	assert.InDelta(t, 1.0/3.0, cand.Score, 1e-9)
}

func TestMatchBelowThreshold(t *testing.T) {
	kb := loadKB(t)

	_, ok := Match([]string{"website"}, models.LocaleEnglish, kb, 0.5)
	assert.False(t, ok)
}

func TestMatchNoOverlap(t *testing.T) {
	kb := loadKB(t)

	// Zero overlap never matches, even with threshold zero.
	_, ok := Match([]string{"asdf", "qwer"}, models.LocaleEnglish, kb, 0)
	assert.False(t, ok)
}

func TestMatchEmptyTokens(t *testing.T) {
	kb := loadKB(t)

	_, ok := Match(nil, models.LocaleEnglish, kb, 0.2)
	assert.False(t, ok)
}

func TestMatchLocaleIsolation(t *testing.T) {
	kb := loadKB(t)

	// English tokens never match Urdu entries and vice versa.
	cand, ok := Match([]string{"کمپنی", "نام"}, models.LocaleUrdu, kb, 0.2)
	require.True(t, ok)
	assert.Equal(t, "ہم ایکمی ہیں۔", cand.Answer)

	_, ok = Match([]string{"company", "name"}, models.LocaleUrdu, kb, 0.2)
	assert.False(t, ok)
}

func TestMatchFaqBeatsServiceOnTie(t *testing.T) {
	kb := loadKB(t)

	// "service" scores 1/2 on the FAQ; no service entry reaches that,
	// but construct a genuine tie with one keyword each.
	cand, ok := Match([]string{"service", "offer", "web", "website", "development"}, models.LocaleEnglish, kb, 0.2)
	require.True(t, ok)
	// FAQ scores 2/2 = 1.0, service 3/3 = 1.0: the FAQ wins the tie.
	assert.Equal(t, KindFaq, cand.Kind)
	assert.Equal(t, "Web and mobile development.", cand.Answer)
}

func TestMatchEarlierFaqWinsTie(t *testing.T) {
	// Two FAQ entries with identical keyword sets tie at every score;
	// the one defined first in the file must win.
	const doc = `
company:
  name: "Acme Software"
faqs:
  - questions: ["Where is your office?"]
    answer: "Our office is in Lahore."
    keywords: ["office", "location"]
    locale: "english"
  - questions: ["Where are you located?"]
    answer: "We are located in Lahore."
    keywords: ["office", "location"]
    locale: "english"
`
	path := filepath.Join(t.TempDir(), "knowledge.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))
	kb, err := knowledge.Load(path)
	require.NoError(t, err)

	for _, tokens := range [][]string{
		{"office"},
		{"location"},
		{"office", "location"},
	} {
		cand, ok := Match(tokens, models.LocaleEnglish, kb, 0.2)
		require.True(t, ok, "tokens %v", tokens)
		assert.Equal(t, "Our office is in Lahore.", cand.Answer, "tokens %v", tokens)
		assert.Equal(t, "Where is your office?", cand.Name, "tokens %v", tokens)
	}
}

func TestMatchDuplicateTokensCountOnce(t *testing.T) {
	kb := loadKB(t)

	cand, ok := Match([]string{"name", "name", "name"}, models.LocaleEnglish, kb, 0.2)
	require.True(t, ok)
	assert.Equal(t, 0.5, cand.Score)
}

func TestMatchDeterministic(t *testing.T) {
	kb := loadKB(t)

	first, ok := Match([]string{"app", "web"}, models.LocaleEnglish, kb, 0.2)
	require.True(t, ok)
	for i := 0; i < 20; i++ {
		again, ok := Match([]string{"app", "web"}, models.LocaleEnglish, kb, 0.2)
		require.True(t, ok)
		assert.Equal(t, first, again)
	}
}
