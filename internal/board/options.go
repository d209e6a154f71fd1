package board

import "github.com/thenoetrevino/funil/internal/events"

// Option configures a Synchronizer
type Option func(*Synchronizer)

// WithEventPublisher publishes sync events to the given publisher
func WithEventPublisher(p events.EventPublisher) Option {
	return func(s *Synchronizer) {
		s.events = p
	}
}
