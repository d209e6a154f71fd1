package models

import (
	"fmt"
	"strings"
)

// TaskStatus is the column a task sits in
type TaskStatus string

const (
	StatusRequested  TaskStatus = "solicitada"
	StatusPending    TaskStatus = "pendente"
	StatusInProgress TaskStatus = "em_andamento"
	StatusDone       TaskStatus = "concluida"
)

// TaskStatuses lists the statuses in board column order
var TaskStatuses = []TaskStatus{StatusRequested, StatusPending, StatusInProgress, StatusDone}

var statusTitles = map[TaskStatus]string{
	StatusRequested:  "Solicitadas",
	StatusPending:    "Pendentes",
	StatusInProgress: "Em Andamento",
	StatusDone:       "Concluídas",
}

// Title returns the column heading for the status
func (s TaskStatus) Title() string {
	if title, ok := statusTitles[s]; ok {
		return title
	}
	return string(s)
}

// Valid reports whether s is a known status
func (s TaskStatus) Valid() bool {
	_, ok := statusTitles[s]
	return ok
}

// ParseTaskStatus accepts a status key or its column heading, case-insensitively
func ParseTaskStatus(value string) (TaskStatus, error) {
	v := strings.TrimSpace(value)
	for _, status := range TaskStatuses {
		if strings.EqualFold(v, string(status)) || strings.EqualFold(v, status.Title()) {
			return status, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, value)
}

// Priority is the urgency of a task
type Priority string

const (
	PriorityLow    Priority = "baixa"
	PriorityMedium Priority = "media"
	PriorityHigh   Priority = "alta"
	PriorityUrgent Priority = "urgente"
)

// Priorities lists priorities from lowest to highest
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}

var priorityColors = map[Priority]string{
	PriorityLow:    "#3b82f6",
	PriorityMedium: "#f59e0b",
	PriorityHigh:   "#ea580c",
	PriorityUrgent: "#ef4444",
}

// Color returns the hex color used to render the priority
func (p Priority) Color() string {
	if c, ok := priorityColors[p]; ok {
		return c
	}
	return priorityColors[DefaultPriority]
}

// Valid reports whether p is a known priority
func (p Priority) Valid() bool {
	_, ok := priorityColors[p]
	return ok
}

// ParsePriority maps a priority string to its value, case-insensitively
func ParsePriority(value string) (Priority, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	for _, p := range Priorities {
		if v == string(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q (must be: baixa, media, alta, urgente)", ErrInvalidPriority, value)
}
