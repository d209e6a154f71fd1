package events

import "errors"

var (
	// ErrClosed is returned when publishing to or listening on a closed bus
	ErrClosed = errors.New("event bus closed")

	// ErrListenerFull is returned when at least one listener dropped the event
	ErrListenerFull = errors.New("event listener queue full")
)
