package models

import "errors"

// Domain-specific validation errors
var (
	// ErrInvalidStatus indicates an unknown task status
	ErrInvalidStatus = errors.New("invalid task status")

	// ErrInvalidPriority indicates an unknown task priority
	ErrInvalidPriority = errors.New("invalid task priority")

	// ErrInvalidRole indicates an unknown member role
	ErrInvalidRole = errors.New("invalid role")

	// ErrInvalidColor indicates a color that is not #RRGGBB
	ErrInvalidColor = errors.New("invalid color")

	// ErrInvalidMemberStatus indicates a member status other than ativo or inativo
	ErrInvalidMemberStatus = errors.New("invalid member status")
)
