// Package repositories provides data access for persisted chat
// transcripts.
package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/softerio/chatbot-engine/pkg/apperrors"
	"github.com/softerio/chatbot-engine/pkg/database"
	"github.com/softerio/chatbot-engine/pkg/models"
)

// ExchangeRepository provides data access for chat exchange records.
type ExchangeRepository interface {
	Save(ctx context.Context, ex *models.ChatExchange) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.ChatExchange, error)
	RecentBySession(ctx context.Context, sessionID uuid.UUID, limit int) ([]*models.ChatExchange, error)
}

type exchangeRepository struct {
	db *database.DB
}

// NewExchangeRepository creates an ExchangeRepository backed by the
// given pool.
func NewExchangeRepository(db *database.DB) ExchangeRepository {
	return &exchangeRepository{db: db}
}

var _ ExchangeRepository = (*exchangeRepository)(nil)

func (r *exchangeRepository) Save(ctx context.Context, ex *models.ChatExchange) error {
	if ex.ID == uuid.Nil {
		ex.ID = uuid.New()
	}
	if ex.CreatedAt.IsZero() {
		ex.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO chat_exchanges (
			id, session_id, question, answer, locale, source, score,
			duration_ms, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.Exec(ctx, query,
		ex.ID, ex.SessionID, ex.Question, ex.Answer, string(ex.Locale),
		string(ex.Source), ex.Score, ex.DurationMs, ex.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert chat exchange: %w", err)
	}
	return nil
}

func (r *exchangeRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.ChatExchange, error) {
	query := `
		SELECT id, session_id, question, answer, locale, source, score,
		       duration_ms, created_at
		FROM chat_exchanges
		WHERE id = $1`

	ex, err := scanExchange(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("get chat exchange: %w", err)
	}
	return ex, nil
}

func (r *exchangeRepository) RecentBySession(ctx context.Context, sessionID uuid.UUID, limit int) ([]*models.ChatExchange, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT id, session_id, question, answer, locale, source, score,
		       duration_ms, created_at
		FROM chat_exchanges
		WHERE session_id = $1
		ORDER BY created_at DESC
		LIMIT $2`

	rows, err := r.db.Query(ctx, query, sessionID, limit)
	if err != nil {
		return nil, fmt.Errorf("query chat exchanges: %w", err)
	}
	defer rows.Close()

	var out []*models.ChatExchange
	for rows.Next() {
		ex, err := scanExchange(rows)
		if err != nil {
			return nil, fmt.Errorf("scan chat exchange: %w", err)
		}
		out = append(out, ex)
	}
	return out, rows.Err()
}

func scanExchange(row pgx.Row) (*models.ChatExchange, error) {
	var ex models.ChatExchange
	var locale, source string
	if err := row.Scan(&ex.ID, &ex.SessionID, &ex.Question, &ex.Answer,
		&locale, &source, &ex.Score, &ex.DurationMs, &ex.CreatedAt); err != nil {
		return nil, err
	}
	ex.Locale = models.Locale(locale)
	ex.Source = models.AnswerSource(source)
	return &ex, nil
}
