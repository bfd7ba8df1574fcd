//go:build integration

package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/softerio/chatbot-engine/pkg/apperrors"
	"github.com/softerio/chatbot-engine/pkg/database"
	"github.com/softerio/chatbot-engine/pkg/models"
	"github.com/softerio/chatbot-engine/pkg/testhelpers"
)

func newRepo(t *testing.T) ExchangeRepository {
	t.Helper()
	testDB := testhelpers.GetTestDB(t)
	return NewExchangeRepository(&database.DB{Pool: testDB.Pool})
}

func TestExchangeRepositorySaveAndGet(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	ex := &models.ChatExchange{
		SessionID:  uuid.New(),
		Question:   "what is your company name",
		Answer:     "We are Acme Software.",
		Locale:     models.LocaleEnglish,
		Source:     models.AnswerSourceKnowledgeBase,
		Score:      1.0,
		DurationMs: 3,
	}
	require.NoError(t, repo.Save(ctx, ex))
	require.NotEqual(t, uuid.Nil, ex.ID, "Save assigns an id")

	got, err := repo.GetByID(ctx, ex.ID)
	require.NoError(t, err)
	assert.Equal(t, ex.SessionID, got.SessionID)
	assert.Equal(t, ex.Question, got.Question)
	assert.Equal(t, ex.Answer, got.Answer)
	assert.Equal(t, models.LocaleEnglish, got.Locale)
	assert.Equal(t, models.AnswerSourceKnowledgeBase, got.Source)
	assert.Equal(t, 1.0, got.Score)
	assert.Equal(t, 3, got.DurationMs)
}

func TestExchangeRepositorySaveUrdu(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	ex := &models.ChatExchange{
		SessionID: uuid.New(),
		Question:  "آپ کی کمپنی کا نام؟",
		Answer:    "ہم ایکمی ہیں۔",
		Locale:    models.LocaleUrdu,
		Source:    models.AnswerSourceKnowledgeBase,
	}
	require.NoError(t, repo.Save(ctx, ex))

	got, err := repo.GetByID(ctx, ex.ID)
	require.NoError(t, err)
	assert.Equal(t, "آپ کی کمپنی کا نام؟", got.Question)
	assert.Equal(t, models.LocaleUrdu, got.Locale)
}

func TestExchangeRepositoryGetByIDNotFound(t *testing.T) {
	repo := newRepo(t)

	_, err := repo.GetByID(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestExchangeRepositoryRecentBySession(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	sessionID := uuid.New()
	base := time.Now().Add(-time.Minute)
	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Save(ctx, &models.ChatExchange{
			SessionID: sessionID,
			Question:  "q",
			Answer:    "a",
			Locale:    models.LocaleEnglish,
			Source:    models.AnswerSourceDefault,
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}))
	}
	// An exchange from another session must not appear.
	require.NoError(t, repo.Save(ctx, &models.ChatExchange{
		SessionID: uuid.New(),
		Question:  "other",
		Answer:    "other",
		Locale:    models.LocaleEnglish,
		Source:    models.AnswerSourceDefault,
	}))

	got, err := repo.RecentBySession(ctx, sessionID, 3)
	require.NoError(t, err)
	require.Len(t, got, 3)
	for _, ex := range got {
		assert.Equal(t, sessionID, ex.SessionID)
	}
	// Newest first.
	assert.True(t, got[0].CreatedAt.After(got[1].CreatedAt))
	assert.True(t, got[1].CreatedAt.After(got[2].CreatedAt))
}
