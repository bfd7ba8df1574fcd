package chat

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/softerio/chatbot-engine/pkg/models"
)

type fakeStore struct {
	mu    sync.Mutex
	saved []*models.ChatExchange
	err   error
}

func (s *fakeStore) Save(ctx context.Context, ex *models.ChatExchange) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.saved = append(s.saved, ex)
	return nil
}

func (s *fakeStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.saved)
}

func TestAsyncExchangeRecorderPersists(t *testing.T) {
	store := &fakeStore{}
	rec := NewAsyncExchangeRecorder(store, zap.NewNop(), 10)

	for i := 0; i < 5; i++ {
		rec.Record(&models.ChatExchange{
			SessionID: uuid.New(),
			Question:  "q",
			Answer:    "a",
		})
	}
	rec.Close()

	assert.Equal(t, 5, store.count())
}

func TestAsyncExchangeRecorderRecordAfterClose(t *testing.T) {
	store := &fakeStore{}
	rec := NewAsyncExchangeRecorder(store, zap.NewNop(), 10)

	rec.Record(&models.ChatExchange{SessionID: uuid.New(), Question: "q", Answer: "a"})
	rec.Close()

	// A late exchange must be dropped, not sent on the closed queue.
	assert.NotPanics(t, func() {
		rec.Record(&models.ChatExchange{SessionID: uuid.New(), Question: "late", Answer: "a"})
	})
	assert.NotPanics(t, rec.Close)

	assert.Equal(t, 1, store.count())
}

func TestAsyncExchangeRecorderSurvivesStoreErrors(t *testing.T) {
	store := &fakeStore{err: errors.New("db down")}
	rec := NewAsyncExchangeRecorder(store, zap.NewNop(), 10)

	rec.Record(&models.ChatExchange{SessionID: uuid.New()})
	rec.Record(&models.ChatExchange{SessionID: uuid.New()})
	// Close drains the queue; errors are logged, not propagated.
	rec.Close()

	assert.Zero(t, store.count())
}
