package task

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/funil/internal/cli"
	"github.com/thenoetrevino/funil/internal/cli/handler"
	"github.com/thenoetrevino/funil/internal/cli/styles"
	"github.com/thenoetrevino/funil/internal/models"
	taskservice "github.com/thenoetrevino/funil/internal/services/task"
)

// ListCmd returns the task list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks by status column",
		Long: `List tasks grouped by status, with board counters.

Examples:
  funil task list
  funil task list --status=pendente --priority=urgente
  funil task list --search=proposta --json
`,
		Args: cobra.NoArgs,
		RunE: handler.Command(runList),
	}

	cmd.Flags().StringSlice("status", nil, "Only these statuses (repeatable)")
	cmd.Flags().StringSlice("priority", nil, "Only these priorities (repeatable)")
	cmd.Flags().String("search", "", "Search title and description")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(ctx context.Context, c *cli.CLI, args *handler.Arguments) (*cli.Result, error) {
	var req taskservice.ListTasksRequest

	statuses, err := args.ParseStringSlice("status")
	if err != nil {
		return nil, err
	}
	for _, s := range statuses {
		status, err := models.ParseTaskStatus(s)
		if err != nil {
			return nil, err
		}
		req.Statuses = append(req.Statuses, status)
	}
	priorities, err := args.ParseStringSlice("priority")
	if err != nil {
		return nil, err
	}
	for _, p := range priorities {
		priority, err := models.ParsePriority(p)
		if err != nil {
			return nil, err
		}
		req.Priorities = append(req.Priorities, priority)
	}
	if req.Search, err = args.ParseStringOptional("search"); err != nil {
		return nil, err
	}

	tasks, err := c.App.TaskService.ListTasks(ctx, req)
	if err != nil {
		return nil, err
	}
	stats, err := c.App.TaskService.Stats(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	data := make([]map[string]any, 0, len(tasks))
	ids := make([]string, 0, len(tasks))
	byStatus := make(map[models.TaskStatus][]*models.Task)
	for _, t := range tasks {
		data = append(data, taskJSON(t, now))
		ids = append(ids, t.ID)
		byStatus[t.Status] = append(byStatus[t.Status], t)
	}

	return &cli.Result{
		Data: map[string]any{
			"tasks": data,
			"stats": map[string]any{
				"total":       stats.Total,
				"in_progress": stats.InProgress,
				"completed":   stats.Completed,
				"overdue":     stats.Overdue,
			},
		},
		IDs: ids,
		Human: func(w io.Writer) {
			fmt.Fprintf(w, "Total %d · Em andamento %d · Concluídas %d · Atrasadas %d\n",
				stats.Total, stats.InProgress, stats.Completed, stats.Overdue)
			for _, status := range models.TaskStatuses {
				col := byStatus[status]
				if len(col) == 0 {
					continue
				}
				fmt.Fprintln(w, styles.SectionStyle.Render(fmt.Sprintf("%s (%d)", status.Title(), len(col))))
				for _, t := range col {
					printTaskLine(w, t, now)
				}
			}
			if len(tasks) == 0 {
				fmt.Fprintln(w, "No tasks found")
			}
		},
	}, nil
}
