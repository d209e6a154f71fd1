package task

import "errors"

// Task-related errors
var (
	// Validation errors
	ErrEmptyTitle    = errors.New("task title cannot be empty")
	ErrTitleTooLong  = errors.New("task title cannot exceed 255 characters")
	ErrInvalidTaskID = errors.New("invalid task ID")

	// Business logic errors
	ErrTaskNotFound    = errors.New("task not found")
	ErrAmbiguousTaskID = errors.New("task ID prefix matches more than one task")
	ErrAlreadyDone     = errors.New("task is already done")
	ErrColumnsFixed    = errors.New("task board columns cannot be renamed")
	ErrUnknownBoard    = errors.New("unknown task board")

	// Comment validation errors
	ErrEmptyCommentMessage   = errors.New("comment message cannot be empty")
	ErrCommentMessageTooLong = errors.New("comment message cannot exceed 1000 characters")
)
