package events

import "context"

// EventPublisher defines the interface for sending and receiving board events.
// This interface allows for loose coupling and easier testing by depending
// on behavior rather than concrete implementation.
type EventPublisher interface {
	// Publish delivers an event to every listener without blocking
	Publish(event Event) error

	// Listen returns a channel of events that is closed when ctx ends or the publisher closes
	Listen(ctx context.Context) (<-chan Event, error)

	// Close closes every listener channel
	Close() error
}

// Compile-time verification that *Bus implements EventPublisher
var _ EventPublisher = (*Bus)(nil)
