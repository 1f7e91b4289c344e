package hub

import (
	"sync"

	"github.com/google/uuid"
	"github.com/kiryu-dev/heckmeck/internal/domain"
	"go.uber.org/zap"
)

const subscriberBufSize = 64

// useCase fans feed messages out to every subscriber. A subscriber that falls behind
// loses messages instead of stalling the simulation.
type useCase struct {
	subscribers map[string]chan domain.Message
	closed      bool
	mu          *sync.RWMutex
	logger      *zap.Logger
}

func New(logger *zap.Logger) *useCase {
	return &useCase{
		subscribers: make(map[string]chan domain.Message),
		mu:          &sync.RWMutex{},
		logger:      logger,
	}
}

func (u *useCase) Subscribe() (string, <-chan domain.Message) {
	u.mu.Lock()
	defer u.mu.Unlock()
	id := uuid.NewString()
	ch := make(chan domain.Message, subscriberBufSize)
	if u.closed {
		close(ch)
		return id, ch
	}
	u.subscribers[id] = ch
	u.logger.Info("feed subscriber joined", zap.String("subscriber", id), zap.Int("subscribers", len(u.subscribers)))
	return id, ch
}

func (u *useCase) Unsubscribe(id string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	ch, ok := u.subscribers[id]
	if !ok {
		return
	}
	delete(u.subscribers, id)
	if !u.closed {
		close(ch)
	}
	u.logger.Info("feed subscriber left", zap.String("subscriber", id), zap.Int("subscribers", len(u.subscribers)))
}

func (u *useCase) Publish(msg domain.Message) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	if u.closed {
		return
	}
	for id, ch := range u.subscribers {
		select {
		case ch <- msg:
		default:
			u.logger.Warn("feed subscriber is too slow, message dropped",
				zap.String("subscriber", id), zap.Stringer("type", msg.Type))
		}
	}
}

func (u *useCase) Subscribers() int {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return len(u.subscribers)
}

// Close ends the feed. Messages already queued stay readable, then every subscriber
// channel is closed. Subscribers still count until they unsubscribe.
func (u *useCase) Close() {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.closed {
		return
	}
	u.closed = true
	for _, ch := range u.subscribers {
		close(ch)
	}
}
