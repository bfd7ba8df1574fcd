// Package chat orchestrates the answer pipeline: session commands,
// locale detection, knowledge base matching, generative fallback, and
// default responses.
package chat

import (
	"github.com/google/uuid"

	"github.com/softerio/chatbot-engine/pkg/models"
)

// Session holds the mutable per-conversation state: a stable identifier
// and the locale preference. It is the only mutable state in the
// pipeline. Access is single-writer by construction (the CLI loop is
// synchronous; the web layer serializes per session cookie), so locale
// updates are plain last-write-wins assignments.
type Session struct {
	ID     uuid.UUID
	locale models.Locale
}

// NewSession creates a session with locale auto-detection enabled.
func NewSession() *Session {
	return &Session{
		ID:     uuid.New(),
		locale: models.LocaleAuto,
	}
}

// Locale returns the current locale preference (english, urdu, or auto).
func (s *Session) Locale() models.Locale {
	return s.locale
}

// SetLocale updates the locale preference. Auto re-enables per-query
// detection.
func (s *Session) SetLocale(l models.Locale) {
	s.locale = l
}
