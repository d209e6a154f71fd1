package task

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/thenoetrevino/funil/internal/converters"
	"github.com/thenoetrevino/funil/internal/database"
	"github.com/thenoetrevino/funil/internal/models"
)

const (
	maxTitleLength   = 255
	maxCommentLength = 1000
)

// Service defines all operations on the local task board
type Service interface {
	// Read operations
	Board(ctx context.Context) (*models.Board, error)
	GetTask(ctx context.Context, id string) (*models.Task, error)
	ListTasks(ctx context.Context, req ListTasksRequest) ([]*models.Task, error)
	GetComments(ctx context.Context, taskID string) ([]*models.Comment, error)
	Stats(ctx context.Context) (*models.TaskStats, error)

	// Write operations
	CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error)
	UpdateTask(ctx context.Context, req UpdateTaskRequest) (*models.Task, error)
	DeleteTask(ctx context.Context, id string) error
	AddComment(ctx context.Context, req AddCommentRequest) (*models.Comment, error)

	// Task movements
	MoveTask(ctx context.Context, id string, status models.TaskStatus, index int) (*models.Task, error)
	CompleteTask(ctx context.Context, id string) (*models.Task, error)
}

// CreateTaskRequest encapsulates all data needed to create a task
type CreateTaskRequest struct {
	Title       string
	Description string
	Status      models.TaskStatus // Optional: empty means DefaultTaskStatus
	Priority    models.Priority   // Optional: empty means DefaultPriority
	CreatedBy   string
	AssignedTo  string
	Tags        []string
	DueDate     *time.Time
}

// UpdateTaskRequest encapsulates all data needed to update a task
// Fields with pointers are optional - nil means don't update
type UpdateTaskRequest struct {
	TaskID       string
	Title        *string
	Description  *string
	Priority     *models.Priority
	AssignedTo   *string
	Tags         *[]string
	DueDate      *time.Time
	ClearDueDate bool
}

// ListTasksRequest filters ListTasks
type ListTasksRequest struct {
	Statuses   []models.TaskStatus
	Priorities []models.Priority
	Search     string
}

// AddCommentRequest encapsulates a new comment
type AddCommentRequest struct {
	TaskID     string
	AuthorName string
	Content    string
}

// Option configures the service
type Option func(*service)

// WithClock overrides the time source used for completion stamps and overdue checks
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		s.now = now
	}
}

// service implements Service interface
type service struct {
	repo database.TaskRepository
	now  func() time.Time
}

// NewService creates a new task service
func NewService(repo database.TaskRepository, opts ...Option) Service {
	s := &service{
		repo: repo,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Board returns the task board: one column per status, tasks in position order
func (s *service) Board(ctx context.Context) (*models.Board, error) {
	tasks, err := s.repo.ListTasks(ctx, database.TaskFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to load task board: %w", err)
	}
	return converters.TasksToBoard(tasks), nil
}

// CreateTask handles task creation with validation and defaults
func (s *service) CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error) {
	title, err := validateTitle(req.Title)
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = models.DefaultTaskStatus
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", models.ErrInvalidStatus, status)
	}

	priority := req.Priority
	if priority == "" {
		priority = models.DefaultPriority
	}
	if !priority.Valid() {
		return nil, fmt.Errorf("%w: %q", models.ErrInvalidPriority, priority)
	}

	task := &models.Task{
		ID:          uuid.NewString(),
		Title:       title,
		Description: strings.TrimSpace(req.Description),
		Status:      status,
		Priority:    priority,
		CreatedBy:   req.CreatedBy,
		AssignedTo:  strings.TrimSpace(req.AssignedTo),
		Tags:        req.Tags,
		DueDate:     req.DueDate,
	}
	if status == models.StatusDone {
		now := s.now()
		task.CompletedAt = &now
	}

	if err := s.repo.CreateTask(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return task, nil
}

// GetTask retrieves a task by ID or unique ID prefix
func (s *service) GetTask(ctx context.Context, id string) (*models.Task, error) {
	resolved, err := s.resolveID(ctx, id)
	if err != nil {
		return nil, err
	}
	task, err := s.repo.GetTask(ctx, resolved)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return task, nil
}

// ListTasks returns tasks in board order
func (s *service) ListTasks(ctx context.Context, req ListTasksRequest) ([]*models.Task, error) {
	tasks, err := s.repo.ListTasks(ctx, database.TaskFilter{
		Statuses:   req.Statuses,
		Priorities: req.Priorities,
		Search:     req.Search,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// UpdateTask applies the non-nil fields of req
func (s *service) UpdateTask(ctx context.Context, req UpdateTaskRequest) (*models.Task, error) {
	task, err := s.GetTask(ctx, req.TaskID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		title, err := validateTitle(*req.Title)
		if err != nil {
			return nil, err
		}
		task.Title = title
	}
	if req.Description != nil {
		task.Description = strings.TrimSpace(*req.Description)
	}
	if req.Priority != nil {
		if !req.Priority.Valid() {
			return nil, fmt.Errorf("%w: %q", models.ErrInvalidPriority, *req.Priority)
		}
		task.Priority = *req.Priority
	}
	if req.AssignedTo != nil {
		task.AssignedTo = strings.TrimSpace(*req.AssignedTo)
	}
	if req.Tags != nil {
		task.Tags = *req.Tags
	}
	if req.DueDate != nil {
		task.DueDate = req.DueDate
	}
	if req.ClearDueDate {
		task.DueDate = nil
	}

	if err := s.repo.UpdateTask(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", mapNotFound(err))
	}
	return task, nil
}

// DeleteTask removes a task and its comments
func (s *service) DeleteTask(ctx context.Context, id string) error {
	resolved, err := s.resolveID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteTask(ctx, resolved); err != nil {
		return fmt.Errorf("failed to delete task: %w", mapNotFound(err))
	}
	return nil
}

// MoveTask places a task in a status column at index
func (s *service) MoveTask(ctx context.Context, id string, status models.TaskStatus, index int) (*models.Task, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", models.ErrInvalidStatus, status)
	}
	resolved, err := s.resolveID(ctx, id)
	if err != nil {
		return nil, err
	}
	task, err := s.repo.MoveTask(ctx, resolved, status, index, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to move task: %w", mapNotFound(err))
	}
	return task, nil
}

// CompleteTask moves a task to the bottom of the done column
func (s *service) CompleteTask(ctx context.Context, id string) (*models.Task, error) {
	task, err := s.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}
	if task.Status == models.StatusDone {
		return task, ErrAlreadyDone
	}

	done, err := s.repo.ListTasks(ctx, database.TaskFilter{Statuses: []models.TaskStatus{models.StatusDone}})
	if err != nil {
		return nil, fmt.Errorf("failed to read done column: %w", err)
	}
	return s.MoveTask(ctx, task.ID, models.StatusDone, len(done))
}

// AddComment validates and stores a comment
func (s *service) AddComment(ctx context.Context, req AddCommentRequest) (*models.Comment, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, ErrEmptyCommentMessage
	}
	if utf8.RuneCountInString(content) > maxCommentLength {
		return nil, ErrCommentMessageTooLong
	}

	task, err := s.GetTask(ctx, req.TaskID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		ID:         uuid.NewString(),
		TaskID:     task.ID,
		AuthorName: req.AuthorName,
		Content:    content,
		CreatedAt:  s.now().UTC(),
	}
	if err := s.repo.AddComment(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to add comment: %w", err)
	}
	return comment, nil
}

// GetComments returns a task's comments, oldest first
func (s *service) GetComments(ctx context.Context, taskID string) ([]*models.Comment, error) {
	resolved, err := s.resolveID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	comments, err := s.repo.GetComments(ctx, resolved)
	if err != nil {
		return nil, fmt.Errorf("failed to get comments: %w", err)
	}
	return comments, nil
}

// Stats counts tasks for the board header
func (s *service) Stats(ctx context.Context) (*models.TaskStats, error) {
	tasks, err := s.repo.ListTasks(ctx, database.TaskFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to compute stats: %w", err)
	}

	now := s.now()
	stats := &models.TaskStats{Total: len(tasks)}
	for _, t := range tasks {
		switch t.Status {
		case models.StatusInProgress:
			stats.InProgress++
		case models.StatusDone:
			stats.Completed++
		}
		if t.IsOverdue(now) {
			stats.Overdue++
		}
	}
	return stats, nil
}

// ============================================================================
// Helpers
// ============================================================================

func validateTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		return "", ErrTitleTooLong
	}
	return title, nil
}

// resolveID accepts a full task ID or a unique prefix of one
func (s *service) resolveID(ctx context.Context, id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", ErrInvalidTaskID
	}

	if _, err := s.repo.GetTask(ctx, id); err == nil {
		return id, nil
	} else if !errors.Is(err, database.ErrNotFound) {
		return "", err
	}

	tasks, err := s.repo.ListTasks(ctx, database.TaskFilter{})
	if err != nil {
		return "", fmt.Errorf("failed to resolve task ID: %w", err)
	}
	var match string
	for _, t := range tasks {
		if strings.HasPrefix(t.ID, id) {
			if match != "" {
				return "", fmt.Errorf("%w: %s", ErrAmbiguousTaskID, id)
			}
			match = t.ID
		}
	}
	if match == "" {
		return "", fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	return match, nil
}

func mapNotFound(err error) error {
	if errors.Is(err, database.ErrNotFound) {
		return fmt.Errorf("%w: %v", ErrTaskNotFound, err)
	}
	return err
}
