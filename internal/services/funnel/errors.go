package funnel

import "errors"

// Funnel-related errors
var (
	// Validation errors
	ErrEmptyName      = errors.New("name cannot be empty")
	ErrEmptyStageName = errors.New("stage name cannot be empty")
	ErrMissingFunnel  = errors.New("funnel is required")

	// Business logic errors
	ErrNoFunnels      = errors.New("no funnels available")
	ErrFunnelNotFound = errors.New("funnel not found")
	ErrNoStages       = errors.New("funnel has no stages")
)
