// Package llm provides the generative fallback capability used when no
// knowledge base entry matches a query. The capability is constructed
// once at startup and injected into the chat engine; availability is an
// explicit flag, not a caught failure.
package llm

import (
	"context"

	"github.com/softerio/chatbot-engine/pkg/apperrors"
)

// Generator is the text-generation capability. Implementations wrap a
// concrete provider; Disabled stands in when no provider is configured
// so the engine can degrade to its default responses.
type Generator interface {
	// Available reports whether generation can be attempted at all.
	Available() bool

	// Generate produces a completion for the prompt. The context bounds
	// inference latency; callers treat any error (including timeout) as
	// a recoverable generation failure.
	Generate(ctx context.Context, prompt string, systemMessage string) (string, error)

	// Model returns the configured model name, for logging.
	Model() string
}

// Disabled is the Generator used when no provider is configured. Its
// Generate is never reached by the engine (Available is checked first)
// but fails cleanly if called anyway.
type Disabled struct{}

func (Disabled) Available() bool { return false }
func (Disabled) Model() string   { return "" }

func (Disabled) Generate(context.Context, string, string) (string, error) {
	return "", apperrors.ErrGenerationDisabled
}

var _ Generator = Disabled{}
