package models

import (
	"time"

	"github.com/google/uuid"
)

// AnswerSource identifies which stage of the fallback chain produced an
// answer.
type AnswerSource string

const (
	AnswerSourceKnowledgeBase AnswerSource = "knowledge_base"
	AnswerSourceGenerated     AnswerSource = "generated"
	AnswerSourceDefault       AnswerSource = "default"
)

// AnswerResult is the terminal output of one chat turn. Every query
// produces one; there is no error path visible to the caller.
type AnswerResult struct {
	Text   string       `json:"text"`
	Locale Locale       `json:"locale"`
	Source AnswerSource `json:"source"`

	// Score is the matcher's overlap score when Source is
	// knowledge_base, zero otherwise.
	Score float64 `json:"score,omitempty"`
}

// ChatExchange is the persisted record of one question/answer turn.
type ChatExchange struct {
	ID         uuid.UUID    `json:"id"`
	SessionID  uuid.UUID    `json:"session_id"`
	Question   string       `json:"question"`
	Answer     string       `json:"answer"`
	Locale     Locale       `json:"locale"`
	Source     AnswerSource `json:"source"`
	Score      float64      `json:"score"`
	DurationMs int          `json:"duration_ms"`
	CreatedAt  time.Time    `json:"created_at"`
}
