package knowledge

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/softerio/chatbot-engine/pkg/apperrors"
	"github.com/softerio/chatbot-engine/pkg/models"
)

const validDoc = `
company:
  name: "Acme Software"
  tagline: "We build things"
  contact:
    email: "hello@acme.test"
services:
  - name: "Web Development"
    description: "Websites and web apps."
    keywords: ["web", "website"]
    locale: "english"
  - name: "ویب ڈیولپمنٹ"
    description: "ویب سائٹس کی تیاری۔"
    keywords: ["ویب"]
    locale: "urdu"
faqs:
  - questions: ["What is your company name?"]
    answer: "We are Acme Software."
    keywords: ["name", "company"]
    locale: "english"
  - questions: ["How can I contact you?"]
    answer: "Email hello@acme.test."
    keywords: ["contact", "email"]
    locale: "english"
`

func writeDoc(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "knowledge.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	kb, err := Load(writeDoc(t, validDoc))
	require.NoError(t, err)

	assert.Equal(t, "Acme Software", kb.Company().Name)
	assert.Equal(t, "hello@acme.test", kb.Company().Contact.Email)

	english := kb.ServicesFor(models.LocaleEnglish)
	require.Len(t, english, 1)
	assert.Equal(t, "Web Development", english[0].Name)

	urdu := kb.ServicesFor(models.LocaleUrdu)
	require.Len(t, urdu, 1)

	faqs := kb.FaqsFor(models.LocaleEnglish)
	require.Len(t, faqs, 2)
	// File order is preserved.
	assert.Equal(t, "What is your company name?", faqs[0].Questions[0])
	assert.Equal(t, "How can I contact you?", faqs[1].Questions[0])

	assert.Empty(t, kb.FaqsFor(models.LocaleUrdu))
	assert.Len(t, kb.Services(), 2)
}

func TestLoadEmptyKnowledgeBase(t *testing.T) {
	// An entry-less knowledge base is legal; queries fall through to
	// the default message.
	kb, err := Load(writeDoc(t, "company:\n  name: Acme\n"))
	require.NoError(t, err)
	assert.Empty(t, kb.FaqsFor(models.LocaleEnglish))
	assert.Empty(t, kb.ServicesFor(models.LocaleEnglish))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{
			name:    "missing company name",
			doc:     "company:\n  tagline: x\nfaqs:\n  - questions: [\"q\"]\n    answer: a\n    keywords: [k]\n    locale: english\n",
			wantErr: "company.name",
		},
		{
			name:    "entry without keywords",
			doc:     "company:\n  name: Acme\nfaqs:\n  - questions: [\"q\"]\n    answer: a\n    keywords: []\n    locale: english\n",
			wantErr: "keyword set",
		},
		{
			name:    "entry with auto locale",
			doc:     "company:\n  name: Acme\nfaqs:\n  - questions: [\"q\"]\n    answer: a\n    keywords: [k]\n    locale: auto\n",
			wantErr: "locale",
		},
		{
			name:    "entry with unknown locale",
			doc:     "company:\n  name: Acme\nfaqs:\n  - questions: [\"q\"]\n    answer: a\n    keywords: [k]\n    locale: french\n",
			wantErr: "locale",
		},
		{
			name:    "faq without answer",
			doc:     "company:\n  name: Acme\nfaqs:\n  - questions: [\"q\"]\n    keywords: [k]\n    locale: english\n",
			wantErr: "answer",
		},
		{
			name:    "service without description",
			doc:     "company:\n  name: Acme\nservices:\n  - name: Web\n    keywords: [web]\n    locale: english\n",
			wantErr: "description",
		},
		{
			name:    "blank keyword",
			doc:     "company:\n  name: Acme\nfaqs:\n  - questions: [\"q\"]\n    answer: a\n    keywords: [\"  \"]\n    locale: english\n",
			wantErr: "blank",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeDoc(t, tt.doc))
			require.Error(t, err)
			assert.True(t, errors.Is(err, apperrors.ErrKnowledgeInvalid), "expected ErrKnowledgeInvalid, got %v", err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestContextPrompt(t *testing.T) {
	kb, err := Load(writeDoc(t, validDoc))
	require.NoError(t, err)

	prompt := kb.ContextPrompt(models.LocaleEnglish)
	assert.Contains(t, prompt, "Acme Software")
	assert.Contains(t, prompt, "hello@acme.test")
	assert.Contains(t, prompt, "Web Development")
	assert.Contains(t, prompt, "Q: What is your company name?")
	// Entries of the other locale stay out of the prompt.
	assert.NotContains(t, prompt, "ویب ڈیولپمنٹ")

	urduPrompt := kb.ContextPrompt(models.LocaleUrdu)
	assert.Contains(t, urduPrompt, "ویب ڈیولپمنٹ")
	assert.NotContains(t, urduPrompt, "Web Development")
}
