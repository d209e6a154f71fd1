// Package lead holds the funil lead subcommands
package lead

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/funil/internal/models"
)

// LeadCmd returns the lead parent command
func LeadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "lead",
		Aliases: []string{"leads"},
		Short:   "List and create leads",
	}

	cmd.AddCommand(ListCmd())
	cmd.AddCommand(CreateCmd())

	return cmd
}

func leadJSON(l *models.Lead) map[string]any {
	out := map[string]any{
		"id":             l.ID,
		"name":           l.Name,
		"email":          l.Email,
		"phone":          l.Phone,
		"source_channel": l.SourceChannel,
		"stage_id":       l.StageID,
		"funnel_id":      l.FunnelID,
	}
	if l.Responsible != nil {
		out["responsible"] = l.Responsible.Name
	}
	return out
}
