// Package dashboard holds the funil dashboard command
package dashboard

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/funil/internal/cli"
	"github.com/thenoetrevino/funil/internal/cli/handler"
	"github.com/thenoetrevino/funil/internal/cli/styles"
)

// barWidth is the width of a 100% bar in the per-stage chart
const barWidth = 30

// DashboardCmd returns the dashboard command
func DashboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show the CRM summary",
		Long: `Show total leads, pending tasks, team size and how leads are
distributed across stages.`,
		Args: cobra.NoArgs,
		RunE: handler.Command(runDashboard),
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func runDashboard(ctx context.Context, c *cli.CLI, _ *handler.Arguments) (*cli.Result, error) {
	summary, err := c.App.FunnelService.Summary(ctx)
	if err != nil {
		return nil, err
	}

	stages := make([]map[string]any, 0, len(summary.LeadsPerStage))
	for _, sc := range summary.LeadsPerStage {
		stages = append(stages, map[string]any{
			"stage":   sc.Stage,
			"count":   sc.Count,
			"percent": summary.Share(sc),
		})
	}

	return &cli.Result{
		Data: map[string]any{
			"total_leads":     summary.TotalLeads,
			"pending_tasks":   summary.PendingTasks,
			"total_employees": summary.TotalEmployees,
			"leads_per_stage": stages,
		},
		Human: func(w io.Writer) {
			fmt.Fprintln(w, styles.TitleStyle.Render("Dashboard"))
			fmt.Fprintln(w, styles.Field("Total leads", fmt.Sprint(summary.TotalLeads)))
			fmt.Fprintln(w, styles.Field("Pending tasks", fmt.Sprint(summary.PendingTasks)))
			fmt.Fprintln(w, styles.Field("Team", fmt.Sprint(summary.TotalEmployees)))
			if len(summary.LeadsPerStage) == 0 {
				return
			}
			fmt.Fprintln(w, styles.SectionStyle.Render("Leads per stage"))
			for _, sc := range summary.LeadsPerStage {
				pct := summary.Share(sc)
				bar := strings.Repeat("█", pct*barWidth/100)
				fmt.Fprintf(w, "  %-16s %4d %3d%% %s\n", sc.Stage, sc.Count, pct, bar)
			}
		},
	}, nil
}
