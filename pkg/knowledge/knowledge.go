// Package knowledge loads and serves the curated company knowledge base.
// The knowledge base is read once at startup, validated, and never
// mutated afterwards, so it is safe to share across concurrent requests
// without locking.
package knowledge

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/softerio/chatbot-engine/pkg/apperrors"
	"github.com/softerio/chatbot-engine/pkg/models"
)

// KnowledgeBase is the immutable in-memory representation of the
// knowledge file: company profile, service entries, and FAQ entries.
// Entry order is preserved from the file; the matcher relies on it for
// deterministic tie-breaks.
type KnowledgeBase struct {
	company  models.CompanyProfile
	services []models.ServiceEntry
	faqs     []models.FaqEntry
}

// document mirrors the top-level structure of knowledge.yaml.
type document struct {
	Company  models.CompanyProfile `yaml:"company"`
	Services []models.ServiceEntry `yaml:"services"`
	Faqs     []models.FaqEntry     `yaml:"faqs"`
}

// Load reads and validates the knowledge file. Validation failures are
// fatal at startup: the error names the offending field and is wrapped
// with apperrors.ErrKnowledgeInvalid. Nothing is auto-repaired.
func Load(path string) (*KnowledgeBase, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read knowledge file: %w", err)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse knowledge file %s: %w", path, err)
	}

	if err := validate(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrKnowledgeInvalid, err)
	}

	return &KnowledgeBase{
		company:  doc.Company,
		services: doc.Services,
		faqs:     doc.Faqs,
	}, nil
}

func validate(doc *document) error {
	if doc.Company.Name == "" {
		return fmt.Errorf("company.name is required")
	}
	// An entry-less knowledge base is legal: every query then falls
	// through to generation or the default message.

	for i, svc := range doc.Services {
		if svc.Name == "" {
			return fmt.Errorf("services[%d]: name is required", i)
		}
		if svc.Description == "" {
			return fmt.Errorf("services[%d] (%s): description is required", i, svc.Name)
		}
		if err := validateEntryTag(svc.Locale, svc.Keywords); err != nil {
			return fmt.Errorf("services[%d] (%s): %v", i, svc.Name, err)
		}
	}

	for i, faq := range doc.Faqs {
		if len(faq.Questions) == 0 {
			return fmt.Errorf("faqs[%d]: at least one question is required", i)
		}
		if faq.Answer == "" {
			return fmt.Errorf("faqs[%d] (%s): answer is required", i, faq.Questions[0])
		}
		if err := validateEntryTag(faq.Locale, faq.Keywords); err != nil {
			return fmt.Errorf("faqs[%d] (%s): %v", i, faq.Questions[0], err)
		}
	}

	return nil
}

// validateEntryTag enforces the two entry invariants: exactly one
// concrete locale and a non-empty keyword set.
func validateEntryTag(locale models.Locale, keywords []string) error {
	if !locale.IsConcrete() {
		return fmt.Errorf("locale must be %q or %q, got %q",
			models.LocaleEnglish, models.LocaleUrdu, locale)
	}
	if len(keywords) == 0 {
		return fmt.Errorf("keyword set must not be empty")
	}
	for j, kw := range keywords {
		if strings.TrimSpace(kw) == "" {
			return fmt.Errorf("keywords[%d] is blank", j)
		}
	}
	return nil
}

// Company returns the company profile.
func (kb *KnowledgeBase) Company() models.CompanyProfile {
	return kb.company
}

// ServicesFor returns the service entries tagged with the given locale,
// in file order. The returned slice is a copy; callers may not mutate
// the knowledge base through it.
func (kb *KnowledgeBase) ServicesFor(locale models.Locale) []models.ServiceEntry {
	var out []models.ServiceEntry
	for _, svc := range kb.services {
		if svc.Locale == locale {
			out = append(out, svc)
		}
	}
	return out
}

// FaqsFor returns the FAQ entries tagged with the given locale, in file
// order.
func (kb *KnowledgeBase) FaqsFor(locale models.Locale) []models.FaqEntry {
	var out []models.FaqEntry
	for _, faq := range kb.faqs {
		if faq.Locale == locale {
			out = append(out, faq)
		}
	}
	return out
}

// Services returns all service entries regardless of locale, in file
// order. Used by the company-info endpoint.
func (kb *KnowledgeBase) Services() []models.ServiceEntry {
	out := make([]models.ServiceEntry, len(kb.services))
	copy(out, kb.services)
	return out
}

// ContextPrompt renders the company profile, services, and FAQs of the
// given locale into the short context block used to seed generative
// fallback answers.
func (kb *KnowledgeBase) ContextPrompt(locale models.Locale) string {
	var b strings.Builder

	b.WriteString("Company Information:\n")
	fmt.Fprintf(&b, "- Name: %s\n", kb.company.Name)
	if kb.company.Tagline != "" {
		fmt.Fprintf(&b, "- Tagline: %s\n", kb.company.Tagline)
	}
	if kb.company.Description != "" {
		fmt.Fprintf(&b, "- About: %s\n", kb.company.Description)
	}
	if kb.company.Founded != "" {
		fmt.Fprintf(&b, "- Founded: %s\n", kb.company.Founded)
	}

	c := kb.company.Contact
	if c.Email != "" || c.Phone != "" || c.Address != "" || c.Website != "" {
		b.WriteString("\nContact:\n")
		if c.Email != "" {
			fmt.Fprintf(&b, "- Email: %s\n", c.Email)
		}
		if c.Phone != "" {
			fmt.Fprintf(&b, "- Phone: %s\n", c.Phone)
		}
		if c.Address != "" {
			fmt.Fprintf(&b, "- Address: %s\n", c.Address)
		}
		if c.Website != "" {
			fmt.Fprintf(&b, "- Website: %s\n", c.Website)
		}
	}

	services := kb.ServicesFor(locale)
	if len(services) > 0 {
		b.WriteString("\nServices:\n")
		for _, svc := range services {
			fmt.Fprintf(&b, "- %s: %s\n", svc.Name, svc.Description)
		}
	}

	faqs := kb.FaqsFor(locale)
	if len(faqs) > 0 {
		b.WriteString("\nFrequently Asked Questions:\n")
		for _, faq := range faqs {
			fmt.Fprintf(&b, "Q: %s\nA: %s\n", faq.Questions[0], faq.Answer)
		}
	}

	return b.String()
}
