package team

import "errors"

// Team and member errors
var (
	// Validation errors
	ErrEmptyTeamName   = errors.New("team name cannot be empty")
	ErrTeamNameTooLong = errors.New("team name cannot exceed 100 characters")
	ErrEmptyMemberName = errors.New("member name cannot be empty")
	ErrInvalidEmail    = errors.New("invalid email address")
	ErrInvalidTeamID   = errors.New("invalid team ID")
	ErrInvalidMemberID = errors.New("invalid member ID")

	// Business logic errors
	ErrTeamNotFound      = errors.New("team not found")
	ErrMemberNotFound    = errors.New("member not found")
	ErrAmbiguousTeamID   = errors.New("team reference matches more than one team")
	ErrAmbiguousMemberID = errors.New("member reference matches more than one member")
	ErrTeamExists        = errors.New("a team with this name already exists")
	ErrEmailInUse        = errors.New("email already belongs to another member")
)
