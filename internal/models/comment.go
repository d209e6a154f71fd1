package models

import "time"

// Comment represents a note left on a task
type Comment struct {
	ID         string
	TaskID     string
	AuthorName string
	Content    string
	CreatedAt  time.Time
}
