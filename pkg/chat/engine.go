package chat

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/softerio/chatbot-engine/pkg/knowledge"
	"github.com/softerio/chatbot-engine/pkg/language"
	"github.com/softerio/chatbot-engine/pkg/llm"
	"github.com/softerio/chatbot-engine/pkg/matcher"
	"github.com/softerio/chatbot-engine/pkg/models"
)

// minGeneratedLen discards degenerate completions (single words, bare
// punctuation) so they never replace the default message.
const minGeneratedLen = 10

// Options tune the engine's decision points.
type Options struct {
	// MatchThreshold is the minimum overlap score for a direct match.
	// The default accepts a single keyword hit against a small keyword
	// set.
	MatchThreshold float64

	// GenerationTimeout bounds the generative fallback call. On
	// timeout the engine advances to the default message.
	GenerationTimeout time.Duration
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		MatchThreshold:    0.2,
		GenerationTimeout: 10 * time.Second,
	}
}

// Engine is the response selector. It owns the fallback chain: direct
// knowledge base match, then generative completion, then the default
// message. Every query terminates in an answer; per-query failures are
// absorbed here and never reach the caller.
type Engine struct {
	kb        *knowledge.KnowledgeBase
	generator llm.Generator
	recorder  ExchangeRecorder
	opts      Options
	logger    *zap.Logger
}

// NewEngine creates an engine. The recorder may be nil when transcript
// persistence is disabled.
func NewEngine(kb *knowledge.KnowledgeBase, generator llm.Generator, recorder ExchangeRecorder, opts Options, logger *zap.Logger) *Engine {
	if opts.MatchThreshold < 0 {
		opts.MatchThreshold = DefaultOptions().MatchThreshold
	}
	if opts.GenerationTimeout <= 0 {
		opts.GenerationTimeout = DefaultOptions().GenerationTimeout
	}
	return &Engine{
		kb:        kb,
		generator: generator,
		recorder:  recorder,
		opts:      opts,
		logger:    logger.Named("chat"),
	}
}

// Outcome is the result of one input line: either a control command or
// an answer, never both.
type Outcome struct {
	Command Command
	Answer  *models.AnswerResult
}

// Handle processes one raw input line for a session. Session commands
// are applied here (lang commands mutate the session) and reported as
// control outcomes; everything else runs the answer pipeline.
func (e *Engine) Handle(ctx context.Context, raw string, sess *Session) Outcome {
	switch cmd := ParseCommand(raw); cmd {
	case CommandQuit:
		return Outcome{Command: cmd}
	case CommandLangEnglish:
		sess.SetLocale(models.LocaleEnglish)
		return Outcome{Command: cmd}
	case CommandLangUrdu:
		sess.SetLocale(models.LocaleUrdu)
		return Outcome{Command: cmd}
	case CommandHelp:
		locale := language.Detect(raw, sess.Locale())
		return Outcome{
			Command: cmd,
			Answer: &models.AnswerResult{
				Text:   HelpMessage(locale),
				Locale: locale,
				Source: models.AnswerSourceDefault,
			},
		}
	}

	return Outcome{Answer: e.Respond(ctx, raw, sess)}
}

// Respond runs the fallback chain for one query and always returns an
// answer. Empty input is a normal query that matches nothing.
func (e *Engine) Respond(ctx context.Context, raw string, sess *Session) *models.AnswerResult {
	start := time.Now()

	locale := language.Detect(raw, sess.Locale())
	tokens := language.Normalize(raw, locale)

	result := e.selectAnswer(ctx, raw, locale, tokens)

	e.logger.Debug("query answered",
		zap.String("locale", string(locale)),
		zap.String("source", string(result.Source)),
		zap.Float64("score", result.Score),
		zap.Int("tokens", len(tokens)))

	e.record(sess, raw, result, time.Since(start))
	return result
}

func (e *Engine) selectAnswer(ctx context.Context, raw string, locale models.Locale, tokens []string) *models.AnswerResult {
	if cand, ok := matcher.Match(tokens, locale, e.kb, e.opts.MatchThreshold); ok {
		return &models.AnswerResult{
			Text:   cand.Answer,
			Locale: locale,
			Source: models.AnswerSourceKnowledgeBase,
			Score:  cand.Score,
		}
	}

	if e.generator.Available() {
		if text, ok := e.generate(ctx, raw, locale); ok {
			return &models.AnswerResult{
				Text:   text,
				Locale: locale,
				Source: models.AnswerSourceGenerated,
			}
		}
	}

	return &models.AnswerResult{
		Text:   DefaultMessage(locale),
		Locale: locale,
		Source: models.AnswerSourceDefault,
	}
}

// generate runs the bounded generative fallback. Failures are logged
// and swallowed; the caller advances to the default message.
func (e *Engine) generate(ctx context.Context, raw string, locale models.Locale) (string, bool) {
	genCtx, cancel := context.WithTimeout(ctx, e.opts.GenerationTimeout)
	defer cancel()

	system := "You are the customer support assistant for the company described below. " +
		"Answer briefly using only the company information provided."
	if locale == models.LocaleUrdu {
		system += " Respond in Urdu."
	} else {
		system += " Respond in English."
	}

	prompt := e.kb.ContextPrompt(locale) + "\nUser: " + raw + "\nAssistant:"

	text, err := e.generator.Generate(genCtx, prompt, system)
	if err != nil {
		e.logger.Warn("generative fallback failed, using default message", zap.Error(err))
		return "", false
	}

	cleaned := cleanCompletion(text)
	if cleaned == "" {
		e.logger.Warn("generative fallback returned unusable text, using default message")
		return "", false
	}
	return cleaned, true
}

// cleanCompletion keeps the first non-empty line of a completion and
// rejects answers too short to be useful.
func cleanCompletion(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if len(line) < minGeneratedLen {
			return ""
		}
		return line
	}
	return ""
}

func (e *Engine) record(sess *Session, question string, result *models.AnswerResult, elapsed time.Duration) {
	if e.recorder == nil {
		return
	}
	e.recorder.Record(&models.ChatExchange{
		SessionID:  sess.ID,
		Question:   question,
		Answer:     result.Text,
		Locale:     result.Locale,
		Source:     result.Source,
		Score:      result.Score,
		DurationMs: int(elapsed.Milliseconds()),
	})
}
