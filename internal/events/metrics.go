package events

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"
)

// Metrics counts board events for the session summary written to the log
type Metrics struct {
	BoardsLoaded   atomic.Int64
	Reloads        atomic.Int64
	MovesApplied   atomic.Int64
	MovesPersisted atomic.Int64
	MovesFailed    atomic.Int64
	Renames        atomic.Int64
	StartTime      time.Time
}

// NewMetrics creates a new Metrics instance
func NewMetrics() *Metrics {
	return &Metrics{
		StartTime: time.Now(),
	}
}

// Observe counts one event
func (m *Metrics) Observe(e Event) {
	switch e.Type {
	case EventBoardLoaded:
		m.BoardsLoaded.Add(1)
	case EventBoardReloaded:
		m.Reloads.Add(1)
	case EventMoveApplied:
		m.MovesApplied.Add(1)
	case EventMovePersisted:
		m.MovesPersisted.Add(1)
	case EventMoveFailed:
		m.MovesFailed.Add(1)
	case EventColumnRenamed:
		m.Renames.Add(1)
	}
}

// Track counts every event pub delivers until ctx ends or pub closes.
// The returned channel is closed once counting stopped.
func (m *Metrics) Track(ctx context.Context, pub EventPublisher) (<-chan struct{}, error) {
	ch, err := pub.Listen(ctx)
	if err != nil {
		return nil, err
	}
	done := make(chan struct{})
	go func() {
		defer close(done)
		for e := range ch {
			m.Observe(e)
		}
	}()
	return done, nil
}

// MetricsSnapshot represents a point-in-time snapshot of metrics
type MetricsSnapshot struct {
	BoardsLoaded   int64     `json:"boards_loaded"`
	Reloads        int64     `json:"reloads"`
	MovesApplied   int64     `json:"moves_applied"`
	MovesPersisted int64     `json:"moves_persisted"`
	MovesFailed    int64     `json:"moves_failed"`
	Renames        int64     `json:"renames"`
	StartTime      time.Time `json:"start_time"`
	Uptime         string    `json:"uptime"`
}

// GetSnapshot returns a snapshot of current metrics
func (m *Metrics) GetSnapshot() MetricsSnapshot {
	return MetricsSnapshot{
		BoardsLoaded:   m.BoardsLoaded.Load(),
		Reloads:        m.Reloads.Load(),
		MovesApplied:   m.MovesApplied.Load(),
		MovesPersisted: m.MovesPersisted.Load(),
		MovesFailed:    m.MovesFailed.Load(),
		Renames:        m.Renames.Load(),
		StartTime:      m.StartTime,
		Uptime:         time.Since(m.StartTime).Round(time.Second).String(),
	}
}

// LogValue lets the metrics be logged as one slog group
func (m *Metrics) LogValue() slog.Value {
	s := m.GetSnapshot()
	return slog.GroupValue(
		slog.Int64("boards_loaded", s.BoardsLoaded),
		slog.Int64("reloads", s.Reloads),
		slog.Int64("moves_applied", s.MovesApplied),
		slog.Int64("moves_persisted", s.MovesPersisted),
		slog.Int64("moves_failed", s.MovesFailed),
		slog.Int64("renames", s.Renames),
		slog.String("uptime", s.Uptime),
	)
}
