package world

import (
	"sync"
	"sync/atomic"

	"example.com/office/world/entities"
	"go.uber.org/zap"
)

// Bus fans simulation events out to subscriber inboxes.
type Bus struct {
	mu          sync.RWMutex
	subscribers map[chan entities.Event]struct{}
	closed      bool
	logger      *zap.Logger

	dropped atomic.Uint64
}

func NewBus(logger *zap.Logger) *Bus {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Bus{
		subscribers: make(map[chan entities.Event]struct{}),
		logger:      logger,
	}
}

// Subscribe registers an inbox. The bus closes it on Close; subscribing to a
// closed bus closes the inbox right away.
func (b *Bus) Subscribe(inbox chan entities.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		close(inbox)
		return
	}
	b.subscribers[inbox] = struct{}{}
}

// Unsubscribe detaches an inbox without closing it.
func (b *Bus) Unsubscribe(inbox chan entities.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.subscribers, inbox)
}

func (b *Bus) Publish(ev entities.Event) {
	// read lock held across the sends so Close cannot close an inbox under us
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return
	}

	for inbox := range b.subscribers {
		select {
		case inbox <- ev:
		default:
			// drop if receiver is slow
			b.logger.Warn("dropped event for slow subscriber",
				zap.String("type", ev.Type),
				zap.Uint64("dropped", b.dropped.Add(1)))
		}
	}
}

// Dropped is the number of deliveries skipped because an inbox was full.
func (b *Bus) Dropped() uint64 { return b.dropped.Load() }

func (b *Bus) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}

// Close detaches and closes every inbox. Later calls do nothing.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true

	for inbox := range b.subscribers {
		close(inbox)
	}
	clear(b.subscribers)
}
