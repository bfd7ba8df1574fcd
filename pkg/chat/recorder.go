package chat

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/softerio/chatbot-engine/pkg/models"
)

// ExchangeRecorder receives completed chat turns for persistence.
type ExchangeRecorder interface {
	// Record queues an exchange. Must never block the reply path.
	Record(ex *models.ChatExchange)
}

// ExchangeStore is the persistence dependency of the async recorder.
// repositories.ExchangeRepository satisfies it.
type ExchangeStore interface {
	Save(ctx context.Context, ex *models.ChatExchange) error
}

// saveTimeout bounds each background insert so a stuck database cannot
// wedge the recorder goroutine.
const saveTimeout = 5 * time.Second

// AsyncExchangeRecorder persists exchanges on a background goroutine so
// database latency never delays answers. If the queue is full the
// exchange is dropped with a warning; transcripts are best-effort.
type AsyncExchangeRecorder struct {
	store  ExchangeStore
	logger *zap.Logger
	queue  chan *models.ChatExchange
	done   chan struct{}

	mu     sync.Mutex
	closed bool
}

// NewAsyncExchangeRecorder creates a recorder and starts its worker.
// queueSize <= 0 selects a default of 100.
func NewAsyncExchangeRecorder(store ExchangeStore, logger *zap.Logger, queueSize int) *AsyncExchangeRecorder {
	if queueSize <= 0 {
		queueSize = 100
	}

	r := &AsyncExchangeRecorder{
		store:  store,
		logger: logger.Named("exchange-recorder"),
		queue:  make(chan *models.ChatExchange, queueSize),
		done:   make(chan struct{}),
	}

	go r.processQueue()

	return r
}

// Record implements ExchangeRecorder. Non-blocking. Exchanges arriving
// after Close are dropped with a warning.
func (r *AsyncExchangeRecorder) Record(ex *models.ChatExchange) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		r.logger.Warn("recorder closed, dropping transcript entry",
			zap.String("session_id", ex.SessionID.String()))
		return
	}

	select {
	case r.queue <- ex:
	default:
		r.logger.Warn("exchange queue full, dropping transcript entry",
			zap.String("session_id", ex.SessionID.String()))
	}
}

// Close stops accepting exchanges and drains the queue. Safe to call
// more than once.
func (r *AsyncExchangeRecorder) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	close(r.queue)
	r.mu.Unlock()

	<-r.done
}

func (r *AsyncExchangeRecorder) processQueue() {
	defer close(r.done)

	for ex := range r.queue {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		if err := r.store.Save(ctx, ex); err != nil {
			r.logger.Warn("failed to persist exchange",
				zap.String("session_id", ex.SessionID.String()),
				zap.Error(err))
		}
		cancel()
	}
}
