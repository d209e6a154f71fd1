package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/thenoetrevino/funil/internal/converters"
	"github.com/thenoetrevino/funil/internal/models"
)

// TaskRepo handles task and comment persistence for the local task board
type TaskRepo struct {
	db *sql.DB
}

// TaskFilter narrows ListTasks. Empty fields match everything.
type TaskFilter struct {
	Statuses   []models.TaskStatus
	Priorities []models.Priority
	Search     string // case-insensitive match on title or description
}

const taskColumns = `id, title, description, status, priority, position, created_by,
	assigned_to, tags, due_date, completed_at, created_at, updated_at`

// statusOrder sorts rows in board column order
const statusOrder = `CASE status
	WHEN 'solicitada' THEN 0
	WHEN 'pendente' THEN 1
	WHEN 'em_andamento' THEN 2
	WHEN 'concluida' THEN 3
	ELSE 4 END`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*models.Task, error) {
	var (
		task                 models.Task
		status, priority     string
		tags                 string
		dueDate, completedAt sql.NullTime
	)
	if err := row.Scan(
		&task.ID, &task.Title, &task.Description, &status, &priority, &task.Position,
		&task.CreatedBy, &task.AssignedTo, &tags, &dueDate, &completedAt,
		&task.CreatedAt, &task.UpdatedAt,
	); err != nil {
		return nil, err
	}
	task.Status = models.TaskStatus(status)
	task.Priority = models.Priority(priority)
	task.Tags = converters.ParseTags(tags)
	task.DueDate = timePtr(dueDate)
	task.CompletedAt = timePtr(completedAt)
	return &task, nil
}

// ============================================================================
// Task Operations
// ============================================================================

// CreateTask inserts a task at the bottom of its status column.
// Position, CreatedAt and UpdatedAt are filled in on the given task.
func (r *TaskRepo) CreateTask(ctx context.Context, task *models.Task) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		var next int
		err := tx.QueryRowContext(ctx,
			"SELECT COALESCE(MAX(position) + 1, 0) FROM tasks WHERE status = ?",
			string(task.Status),
		).Scan(&next)
		if err != nil {
			return fmt.Errorf("failed to compute position: %w", err)
		}

		now := time.Now().UTC()
		task.Position = next
		task.CreatedAt = now
		task.UpdatedAt = now

		_, err = tx.ExecContext(ctx,
			`INSERT INTO tasks (`+taskColumns+`)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			task.ID, task.Title, task.Description, string(task.Status), string(task.Priority),
			task.Position, task.CreatedBy, task.AssignedTo, converters.JoinTags(task.Tags),
			nullTime(task.DueDate), nullTime(task.CompletedAt), task.CreatedAt, task.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert task: %w", err)
		}
		return nil
	})
}

// GetTask retrieves a task by ID
func (r *TaskRepo) GetTask(ctx context.Context, id string) (*models.Task, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)
	task, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("task %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get task %s: %w", id, err)
	}
	return task, nil
}

// ListTasks returns tasks in board order: by status column, then position
func (r *TaskRepo) ListTasks(ctx context.Context, filter TaskFilter) ([]*models.Task, error) {
	var (
		where []string
		args  []any
	)
	if len(filter.Statuses) > 0 {
		where = append(where, "status IN ("+placeholders(len(filter.Statuses))+")")
		for _, s := range filter.Statuses {
			args = append(args, string(s))
		}
	}
	if len(filter.Priorities) > 0 {
		where = append(where, "priority IN ("+placeholders(len(filter.Priorities))+")")
		for _, p := range filter.Priorities {
			args = append(args, string(p))
		}
	}
	if term := strings.TrimSpace(filter.Search); term != "" {
		where = append(where, "(LOWER(title) LIKE ? OR LOWER(description) LIKE ?)")
		like := "%" + strings.ToLower(term) + "%"
		args = append(args, like, like)
	}

	query := `SELECT ` + taskColumns + ` FROM tasks`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY " + statusOrder + ", position"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*models.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}

// UpdateTask saves a task's editable fields. Status and position change only through MoveTask.
func (r *TaskRepo) UpdateTask(ctx context.Context, task *models.Task) error {
	task.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE tasks
		 SET title = ?, description = ?, priority = ?, assigned_to = ?, tags = ?,
		     due_date = ?, updated_at = ?
		 WHERE id = ?`,
		task.Title, task.Description, string(task.Priority), task.AssignedTo,
		converters.JoinTags(task.Tags), nullTime(task.DueDate), task.UpdatedAt, task.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update task %s: %w", task.ID, err)
	}
	return requireOneRow(result, "task", task.ID)
}

// DeleteTask removes a task and closes the gap it leaves in its column
func (r *TaskRepo) DeleteTask(ctx context.Context, id string) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		var status string
		var position int
		err := tx.QueryRowContext(ctx, "SELECT status, position FROM tasks WHERE id = ?", id).
			Scan(&status, &position)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("task %s: %w", id, ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("failed to read task %s: %w", id, err)
		}

		if _, err := tx.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id); err != nil {
			return fmt.Errorf("failed to delete task %s: %w", id, err)
		}
		_, err = tx.ExecContext(ctx,
			"UPDATE tasks SET position = position - 1 WHERE status = ? AND position > ?",
			status, position,
		)
		return err
	})
}

// MoveTask places a task in a status column at index, shifting its
// neighbours. The index is clamped to the column length. Moving into the
// done column stamps completed_at; moving out clears it.
func (r *TaskRepo) MoveTask(ctx context.Context, id string, status models.TaskStatus, index int, now time.Time) (*models.Task, error) {
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		var oldStatus string
		var oldPosition int
		var completedAt sql.NullTime
		err := tx.QueryRowContext(ctx,
			"SELECT status, position, completed_at FROM tasks WHERE id = ?", id,
		).Scan(&oldStatus, &oldPosition, &completedAt)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("task %s: %w", id, ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("failed to read task %s: %w", id, err)
		}

		// Close the gap in the source column
		if _, err := tx.ExecContext(ctx,
			"UPDATE tasks SET position = position - 1 WHERE status = ? AND position > ?",
			oldStatus, oldPosition,
		); err != nil {
			return fmt.Errorf("failed to compact column %s: %w", oldStatus, err)
		}

		var count int
		if err := tx.QueryRowContext(ctx,
			"SELECT COUNT(*) FROM tasks WHERE status = ? AND id != ?", string(status), id,
		).Scan(&count); err != nil {
			return fmt.Errorf("failed to count column %s: %w", status, err)
		}
		index = min(max(index, 0), count)

		// Open a gap in the destination column
		if _, err := tx.ExecContext(ctx,
			"UPDATE tasks SET position = position + 1 WHERE status = ? AND position >= ? AND id != ?",
			string(status), index, id,
		); err != nil {
			return fmt.Errorf("failed to shift column %s: %w", status, err)
		}

		switch {
		case status == models.StatusDone && !completedAt.Valid:
			completedAt = sql.NullTime{Time: now.UTC(), Valid: true}
		case status != models.StatusDone:
			completedAt = sql.NullTime{}
		}

		_, err = tx.ExecContext(ctx,
			`UPDATE tasks
			 SET status = ?, position = ?, completed_at = ?, updated_at = ?
			 WHERE id = ?`,
			string(status), index, completedAt, now.UTC(), id,
		)
		return err
	})
	if err != nil {
		return nil, err
	}
	return r.GetTask(ctx, id)
}

// ============================================================================
// Comment Operations
// ============================================================================

// AddComment stores a comment; CreatedAt is set if zero
func (r *TaskRepo) AddComment(ctx context.Context, comment *models.Comment) error {
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO comments (id, task_id, author_name, content, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		comment.ID, comment.TaskID, comment.AuthorName, comment.Content, comment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to add comment to task %s: %w", comment.TaskID, err)
	}
	return nil
}

// GetComments returns a task's comments, oldest first
func (r *TaskRepo) GetComments(ctx context.Context, taskID string) ([]*models.Comment, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, task_id, author_name, content, created_at
		 FROM comments
		 WHERE task_id = ?
		 ORDER BY created_at, rowid`,
		taskID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get comments for task %s: %w", taskID, err)
	}
	defer rows.Close()

	var comments []*models.Comment
	for rows.Next() {
		c := &models.Comment{}
		if err := rows.Scan(&c.ID, &c.TaskID, &c.AuthorName, &c.Content, &c.CreatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return comments, nil
}

// ============================================================================
// Helpers
// ============================================================================

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

func requireOneRow(result sql.Result, kind, id string) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", kind, id, ErrNotFound)
	}
	return nil
}
