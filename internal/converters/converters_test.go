package converters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/funil/internal/models"
)

// ============================================================================
// TEST CASES - FunnelToBoard
// ============================================================================

func TestFunnelToBoard(t *testing.T) {
	f := &models.Funnel{
		ID:    "f1",
		Name:  "Vendas",
		Icon:  "💰",
		Color: "#EAB308",
		Stages: []*models.Stage{
			{ID: "s1", Name: "Prospecção", Leads: []*models.Lead{
				{ID: "l1", Name: "Maria", Email: "maria@example.com", SourceChannel: "Indicação",
					Responsible: &models.User{ID: "u1", Name: "Carlos Lima"}},
				{ID: "l2", Name: "João"},
			}},
			{ID: "s2", Name: "Proposta"},
		},
	}

	b := FunnelToBoard(f)

	require.NotNil(t, b)
	assert.Equal(t, "f1", b.ID)
	assert.Equal(t, "Vendas", b.Name)
	assert.Equal(t, "💰", b.Icon)
	require.Len(t, b.Columns, 2)
	assert.Equal(t, "s1", b.Columns[0].ID)
	assert.Equal(t, "Prospecção", b.Columns[0].Name)
	assert.Empty(t, b.Columns[1].Items)

	first := b.Columns[0].Items[0]
	assert.Equal(t, &models.Item{
		ID:       "l1",
		Title:    "Maria",
		Subtitle: "maria@example.com",
		Tag:      "Indicação",
		Owner:    "Carlos Lima",
	}, first)

	second := b.Columns[0].Items[1]
	assert.Equal(t, "l2", second.ID)
	assert.Equal(t, models.DefaultSourceChannel, second.Tag)
	assert.Empty(t, second.Owner)
}

func TestFunnelToBoard_Nil(t *testing.T) {
	assert.Nil(t, FunnelToBoard(nil))
}

// ============================================================================
// TEST CASES - TasksToBoard
// ============================================================================

func TestTasksToBoard(t *testing.T) {
	tasks := []*models.Task{
		{ID: "t3", Title: "Third", Status: models.StatusPending, Position: 2, Priority: models.PriorityHigh},
		{ID: "t1", Title: "First", Status: models.StatusPending, Position: 0, AssignedTo: "Ana"},
		{ID: "t2", Title: "Second", Status: models.StatusPending, Position: 1},
		{ID: "t4", Title: "Done", Status: models.StatusDone},
		{ID: "t5", Title: "Bogus", Status: "archived"},
	}

	b := TasksToBoard(tasks)

	assert.Equal(t, models.TaskBoardID, b.ID)
	require.Len(t, b.Columns, len(models.TaskStatuses))
	for i, status := range models.TaskStatuses {
		assert.Equal(t, string(status), b.Columns[i].ID)
		assert.Equal(t, status.Title(), b.Columns[i].Name)
	}

	pending := b.Column(string(models.StatusPending))
	require.Len(t, pending.Items, 3)
	assert.Equal(t, "t1", pending.Items[0].ID)
	assert.Equal(t, "Ana", pending.Items[0].Subtitle)
	assert.Equal(t, "t2", pending.Items[1].ID)
	assert.Equal(t, "t3", pending.Items[2].ID)
	assert.Equal(t, "alta", pending.Items[2].Tag)

	assert.Len(t, b.Column(string(models.StatusDone)).Items, 1)
	assert.Equal(t, 4, b.ItemCount(), "unknown statuses are dropped")
}

func TestTasksToBoard_Empty(t *testing.T) {
	b := TasksToBoard(nil)
	require.Len(t, b.Columns, 4)
	assert.Zero(t, b.ItemCount())
}

// ============================================================================
// TEST CASES - Tags
// ============================================================================

func TestJoinAndParseTags(t *testing.T) {
	tests := []struct {
		name   string
		tags   []string
		stored string
		parsed []string
	}{
		{"empty", nil, "", nil},
		{"single", []string{"crm"}, "crm", []string{"crm"}},
		{"trims and skips blanks", []string{" crm ", "", "follow-up"}, "crm,follow-up", []string{"crm", "follow-up"}},
		{"drops duplicates", []string{"a", "b", "a"}, "a,b", []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stored := JoinTags(tt.tags)
			assert.Equal(t, tt.stored, stored)
			assert.Equal(t, tt.parsed, ParseTags(stored))
		})
	}
}
