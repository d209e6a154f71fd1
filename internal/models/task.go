package models

import "time"

// Task is a unit of work on the local task board
type Task struct {
	ID          string
	Title       string
	Description string
	Status      TaskStatus
	Priority    Priority
	Position    int
	CreatedBy   string
	AssignedTo  string
	Tags        []string
	DueDate     *time.Time
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsOverdue reports whether the task has a due date in the past and is not done
func (t *Task) IsOverdue(now time.Time) bool {
	if t.DueDate == nil || t.Status == StatusDone {
		return false
	}
	return t.DueDate.Before(now)
}

// TaskStats are the counters shown above the task board
type TaskStats struct {
	Total      int
	InProgress int
	Completed  int
	Overdue    int
}
