// Package matcher scores normalized queries against knowledge base
// entries and selects the best candidate. Matching is lexical keyword
// overlap; there is no randomness anywhere in this path, so the same
// query against the same knowledge base always selects the same entry.
package matcher

import (
	"github.com/softerio/chatbot-engine/pkg/knowledge"
	"github.com/softerio/chatbot-engine/pkg/models"
)

// CandidateKind distinguishes FAQ answers from service descriptions.
type CandidateKind string

const (
	KindFaq     CandidateKind = "faq"
	KindService CandidateKind = "service"
)

// Candidate is the selected entry plus its overlap score.
type Candidate struct {
	Kind   CandidateKind
	Name   string // service name, or first canonical question for FAQs
	Answer string
	Score  float64
}

// Match scores every FAQ and service entry of the query locale and
// returns the best candidate, or false if no entry clears the
// confidence threshold.
//
// Score is the number of distinct query tokens present in the entry's
// keyword set divided by the keyword set size, in [0,1]. FAQ and
// service entries compete on the same scale. Exact score ties prefer
// FAQ entries over services (the FAQ answer is more specific), then
// the entry defined earlier in the knowledge base.
func Match(tokens []string, locale models.Locale, kb *knowledge.KnowledgeBase, threshold float64) (Candidate, bool) {
	tokenSet := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		tokenSet[t] = true
	}

	var best Candidate
	found := false

	// FAQ entries are scored first: at equal score, the earlier
	// candidate wins, which also realizes the FAQ-over-service
	// preference.
	for _, faq := range kb.FaqsFor(locale) {
		score := overlap(tokenSet, faq.Keywords)
		if score > best.Score {
			best = Candidate{Kind: KindFaq, Name: faq.Questions[0], Answer: faq.Answer, Score: score}
			found = true
		}
	}
	for _, svc := range kb.ServicesFor(locale) {
		score := overlap(tokenSet, svc.Keywords)
		if score > best.Score {
			best = Candidate{Kind: KindService, Name: svc.Name, Answer: svc.Description, Score: score}
			found = true
		}
	}

	if !found || best.Score < threshold {
		return Candidate{}, false
	}
	return best, true
}

// overlap computes the normalized keyword overlap ratio. Entries with
// no overlapping token score zero and are never selected.
func overlap(tokenSet map[string]bool, keywords []string) float64 {
	if len(keywords) == 0 {
		return 0
	}
	hits := 0
	for _, kw := range keywords {
		if tokenSet[kw] {
			hits++
		}
	}
	return float64(hits) / float64(len(keywords))
}
