package events

import (
	"context"
	"sync"
)

// Recorder is an EventPublisher that keeps every published event in memory.
// Used by tests that need to assert on the sequence of board events.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Publish records the event
func (r *Recorder) Publish(event Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	event.SequenceID = int64(len(r.events) + 1)
	r.events = append(r.events, event)
	return nil
}

// Listen is not supported by the recorder; it returns a closed channel
func (r *Recorder) Listen(ctx context.Context) (<-chan Event, error) {
	ch := make(chan Event)
	close(ch)
	return ch, nil
}

// Close is a no-op
func (r *Recorder) Close() error { return nil }

// Events returns a copy of the recorded events
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Types returns the recorded event types in order
func (r *Recorder) Types() []EventType {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]EventType, len(r.events))
	for i, e := range r.events {
		out[i] = e.Type
	}
	return out
}
