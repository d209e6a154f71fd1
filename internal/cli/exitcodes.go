package cli

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/funil/internal/api"
	"github.com/thenoetrevino/funil/internal/board"
	"github.com/thenoetrevino/funil/internal/models"
	authservice "github.com/thenoetrevino/funil/internal/services/auth"
	funnelservice "github.com/thenoetrevino/funil/internal/services/funnel"
	taskservice "github.com/thenoetrevino/funil/internal/services/task"
	teamservice "github.com/thenoetrevino/funil/internal/services/team"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitFailure indicates a general error occurred.
	// Use for: Database errors, network errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitFailure = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, ambiguous ID prefixes.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: Task, funnel, stage, lead, team or member references that don't exist.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: Unparseable dates or backend responses that cannot be decoded.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Empty names, invalid priority or status values,
	// or any case where input fails validation rules.
	ExitValidation = 5

	// ExitAuth indicates the command needs a valid login.
	// Use for: No stored session, expired token, 401 from the backend.
	ExitAuth = 6
)

// ExitError carries the process exit code for a failed command
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string { return e.Err.Error() }

func (e *ExitError) Unwrap() error { return e.Err }

// ExitCode returns the exit code main should use for err
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	_, code := Classify(err)
	return code
}

// Classify maps an error to an error code string and exit code
func Classify(err error) (string, int) {
	switch {
	case errors.Is(err, api.ErrUnauthorized),
		errors.Is(err, authservice.ErrNotLoggedIn),
		errors.Is(err, authservice.ErrSessionExpired):
		return "AUTH_REQUIRED", ExitAuth

	case errors.Is(err, taskservice.ErrTaskNotFound),
		errors.Is(err, teamservice.ErrTeamNotFound),
		errors.Is(err, teamservice.ErrMemberNotFound),
		errors.Is(err, funnelservice.ErrFunnelNotFound),
		errors.Is(err, funnelservice.ErrNoFunnels),
		errors.Is(err, board.ErrColumnNotFound),
		errors.Is(err, board.ErrItemNotFound),
		errors.Is(err, api.ErrNotFound):
		return "NOT_FOUND", ExitNotFound

	case errors.Is(err, taskservice.ErrAmbiguousTaskID),
		errors.Is(err, teamservice.ErrAmbiguousTeamID),
		errors.Is(err, teamservice.ErrAmbiguousMemberID),
		errors.Is(err, api.ErrNoBaseURL):
		return "USAGE", ExitUsage

	case errors.Is(err, ErrInvalidDate):
		return "INVALID_DATA", ExitDataErr

	case errors.Is(err, taskservice.ErrEmptyTitle),
		errors.Is(err, taskservice.ErrTitleTooLong),
		errors.Is(err, taskservice.ErrInvalidTaskID),
		errors.Is(err, taskservice.ErrAlreadyDone),
		errors.Is(err, taskservice.ErrEmptyCommentMessage),
		errors.Is(err, taskservice.ErrCommentMessageTooLong),
		errors.Is(err, models.ErrInvalidStatus),
		errors.Is(err, models.ErrInvalidPriority),
		errors.Is(err, funnelservice.ErrEmptyName),
		errors.Is(err, funnelservice.ErrEmptyStageName),
		errors.Is(err, funnelservice.ErrMissingFunnel),
		errors.Is(err, funnelservice.ErrNoStages),
		errors.Is(err, authservice.ErrMissingCredentials),
		errors.Is(err, authservice.ErrInvalidEmail),
		errors.Is(err, teamservice.ErrEmptyTeamName),
		errors.Is(err, teamservice.ErrTeamNameTooLong),
		errors.Is(err, teamservice.ErrEmptyMemberName),
		errors.Is(err, teamservice.ErrInvalidEmail),
		errors.Is(err, teamservice.ErrInvalidTeamID),
		errors.Is(err, teamservice.ErrInvalidMemberID),
		errors.Is(err, teamservice.ErrTeamExists),
		errors.Is(err, teamservice.ErrEmailInUse),
		errors.Is(err, models.ErrInvalidRole),
		errors.Is(err, models.ErrInvalidMemberStatus),
		errors.Is(err, ErrInvalidColor):
		return "VALIDATION", ExitValidation
	}
	return "ERROR", ExitFailure
}

// suggestionFor returns a hint printed under human-readable errors
func suggestionFor(code string) string {
	switch code {
	case "AUTH_REQUIRED":
		return "Sign in with 'funil login --email <email>'"
	case "NOT_FOUND":
		return "Use 'funil funnel list' or 'funil task list' to see what exists"
	case "USAGE":
		return "Use a longer ID prefix"
	}
	return ""
}

// UsageError wraps a message as a usage failure
func UsageError(format string, args ...any) error {
	return &ExitError{Code: ExitUsage, Err: fmt.Errorf(format, args...)}
}
