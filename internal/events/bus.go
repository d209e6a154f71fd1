package events

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// defaultBufferSize is the per-listener queue length
const defaultBufferSize = 64

// Bus is an in-process EventPublisher. Every listener gets its own buffered
// channel; a slow listener drops events instead of stalling the publisher.
type Bus struct {
	mu        sync.Mutex
	listeners map[int]chan Event
	nextID    int
	sequence  int64
	buffer    int
	closed    bool
	now       func() time.Time
}

// NewBus creates a bus whose listeners buffer up to bufferSize events.
// A non-positive size uses the default.
func NewBus(bufferSize int) *Bus {
	if bufferSize <= 0 {
		bufferSize = defaultBufferSize
	}
	return &Bus{
		listeners: make(map[int]chan Event),
		buffer:    bufferSize,
		now:       time.Now,
	}
}

// Publish stamps the event with a sequence number and timestamp and hands it
// to every listener. Returns ErrListenerFull if any listener had no room.
func (b *Bus) Publish(event Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return ErrClosed
	}

	b.sequence++
	event.SequenceID = b.sequence
	if event.Timestamp.IsZero() {
		event.Timestamp = b.now()
	}

	dropped := 0
	for _, ch := range b.listeners {
		select {
		case ch <- event:
		default:
			dropped++
		}
	}

	if dropped > 0 {
		slog.Debug("event dropped by slow listeners",
			"event_type", event.Type,
			"board_id", event.BoardID,
			"dropped", dropped)
		return fmt.Errorf("%w: %d listener(s)", ErrListenerFull, dropped)
	}
	return nil
}

// Listen registers a listener. The channel is closed when ctx is done or the
// bus is closed, whichever happens first.
func (b *Bus) Listen(ctx context.Context) (<-chan Event, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil, ErrClosed
	}

	id := b.nextID
	b.nextID++
	ch := make(chan Event, b.buffer)
	b.listeners[id] = ch

	context.AfterFunc(ctx, func() {
		b.remove(id)
	})

	return ch, nil
}

// Close closes all listener channels. Further publishes return ErrClosed.
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true
	for id, ch := range b.listeners {
		close(ch)
		delete(b.listeners, id)
	}
	return nil
}

// ListenerCount returns the number of registered listeners
func (b *Bus) ListenerCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.listeners)
}

func (b *Bus) remove(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.listeners[id]; ok {
		close(ch)
		delete(b.listeners, id)
	}
}
