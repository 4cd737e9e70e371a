package broadcast

import (
	"context"
	"sync"
)

// Subscriber receives values from a Broadcaster.
// Implementations must be safe for concurrent use.
type Subscriber[T any] interface {
	// Receive returns the channel values are delivered on.
	// The channel is closed after Close or when the subscription ends.
	Receive() <-chan T

	// Close releases the subscription. It is idempotent.
	Close() error
}

// Broadcaster fans values out to every active subscriber.
// Broadcast must never block on a slow subscriber.
type Broadcaster[T any] interface {
	// Subscribe registers a subscriber for the lifetime of ctx.
	Subscribe(ctx context.Context) Subscriber[T]

	// Broadcast delivers v to all active subscribers.
	Broadcast(v T)

	// Close shuts down the broadcaster and closes all subscribers.
	Close() error
}

type subscriber[T any] struct {
	ch     chan T
	closed bool
	mu     sync.Mutex
	onDone func(*subscriber[T])
}

func newSubscriber[T any](bufferSize int) *subscriber[T] {
	return &subscriber[T]{
		ch: make(chan T, bufferSize),
	}
}

func (s *subscriber[T]) Receive() <-chan T {
	return s.ch
}

func (s *subscriber[T]) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	close(s.ch)
	s.closed = true
	onDone := s.onDone
	s.mu.Unlock()

	if onDone != nil {
		onDone(s)
	}
	return nil
}

// send delivers v without blocking. When the buffer is full the oldest
// pending value is discarded so the subscriber always ends up with the latest one.
func (s *subscriber[T]) send(v T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false
	}

	for {
		select {
		case s.ch <- v:
			return true
		default:
		}
		select {
		case <-s.ch:
		default:
		}
	}
}
