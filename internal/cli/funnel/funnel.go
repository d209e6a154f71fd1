// Package funnel holds the funil funnel subcommands
package funnel

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/funil/internal/board"
	"github.com/thenoetrevino/funil/internal/models"
)

// FunnelCmd returns the funnel parent command
func FunnelCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "funnel",
		Aliases: []string{"funnels"},
		Short:   "Manage sales funnels",
	}

	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(RenameStageCmd())
	cmd.AddCommand(MoveLeadCmd())

	return cmd
}

// findColumn resolves a stage by ID or case-insensitive name
func findColumn(b *models.Board, ref string) (*models.Column, error) {
	ref = strings.TrimSpace(ref)
	if col := b.Column(ref); col != nil {
		return col, nil
	}
	for _, col := range b.Columns {
		if strings.EqualFold(col.Name, ref) {
			return col, nil
		}
	}
	return nil, &stageNotFoundError{ref: ref}
}

type stageNotFoundError struct{ ref string }

func (e *stageNotFoundError) Error() string { return "stage not found: " + e.ref }

func (e *stageNotFoundError) Unwrap() error { return board.ErrColumnNotFound }

func funnelJSON(f *models.Funnel, active bool) map[string]any {
	out := map[string]any{
		"id":          f.ID,
		"name":        f.Name,
		"description": f.Description,
		"icon":        f.Icon,
		"color":       f.Color,
		"active":      active,
	}
	if f.Stages != nil {
		stages := make([]map[string]any, 0, len(f.Stages))
		for _, st := range f.Stages {
			leads := make([]map[string]any, 0, len(st.Leads))
			for _, l := range st.Leads {
				leads = append(leads, leadJSON(l))
			}
			stages = append(stages, map[string]any{"id": st.ID, "name": st.Name, "leads": leads})
		}
		out["stages"] = stages
	}
	return out
}

func leadJSON(l *models.Lead) map[string]any {
	out := map[string]any{
		"id":             l.ID,
		"name":           l.Name,
		"email":          l.Email,
		"phone":          l.Phone,
		"source_channel": l.SourceChannel,
		"stage_id":       l.StageID,
	}
	if l.Responsible != nil {
		out["responsible"] = l.Responsible.Name
	}
	return out
}
