package database

import (
	"context"
	"time"

	"github.com/thenoetrevino/funil/internal/models"
)

// SessionRepository defines key/value operations for locally persisted session state
type SessionRepository interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
}

// TaskRepository defines data operations for the local task board
type TaskRepository interface {
	CreateTask(ctx context.Context, task *models.Task) error
	GetTask(ctx context.Context, id string) (*models.Task, error)
	ListTasks(ctx context.Context, filter TaskFilter) ([]*models.Task, error)
	UpdateTask(ctx context.Context, task *models.Task) error
	DeleteTask(ctx context.Context, id string) error
	MoveTask(ctx context.Context, id string, status models.TaskStatus, index int, now time.Time) (*models.Task, error)
	AddComment(ctx context.Context, comment *models.Comment) error
	GetComments(ctx context.Context, taskID string) ([]*models.Comment, error)
}

// TeamRepository defines data operations for the local teams and members screens
type TeamRepository interface {
	CreateTeam(ctx context.Context, team *models.Team) error
	GetTeam(ctx context.Context, id string) (*models.Team, error)
	ListTeams(ctx context.Context, search string) ([]*models.Team, error)
	UpdateTeam(ctx context.Context, team *models.Team) error
	DeleteTeam(ctx context.Context, id string) error

	CreateMember(ctx context.Context, member *models.Member) error
	GetMember(ctx context.Context, id string) (*models.Member, error)
	ListMembers(ctx context.Context, filter MemberFilter) ([]*models.Member, error)
	UpdateMember(ctx context.Context, member *models.Member) error
	DeleteMember(ctx context.Context, id string) error
}

// DataStore is the unified interface composed of the smaller repositories
type DataStore interface {
	SessionRepository
	TaskRepository
	TeamRepository
}

// Compile-time verification that *Repository implements DataStore
var _ DataStore = (*Repository)(nil)
