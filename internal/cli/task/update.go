package task

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/funil/internal/cli"
	"github.com/thenoetrevino/funil/internal/cli/handler"
	taskservice "github.com/thenoetrevino/funil/internal/services/task"
)

// UpdateCmd returns the task update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <task-id>",
		Short: "Update a task's fields",
		Long: `Update a task. Only the flags given are changed; use "task move" to
change the status.

Examples:
  funil task update 3f2a --priority=urgente
  funil task update 3f2a --title="Nova proposta" --due=2026-06-01
  funil task update 3f2a --clear-due
`,
		Args: cobra.ExactArgs(1),
		RunE: handler.Command(runUpdate),
	}
	cmd.Flags().String("title", "", "New title")
	cmd.Flags().String("description", "", "New description (use - for stdin)")
	cmd.Flags().String("priority", "", "New priority")
	cmd.Flags().String("assignee", "", "New assignee")
	cmd.Flags().StringSlice("tag", nil, "Replace tags (repeatable)")
	cmd.Flags().String("due", "", "New due date (YYYY-MM-DD)")
	cmd.Flags().Bool("clear-due", false, "Remove the due date")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runUpdate(ctx context.Context, c *cli.CLI, args *handler.Arguments) (*cli.Result, error) {
	req := taskservice.UpdateTaskRequest{TaskID: args.Arg(0)}
	changed := false

	if args.Has("title") {
		title, err := args.ParseStringOptional("title")
		if err != nil {
			return nil, err
		}
		req.Title = &title
		changed = true
	}
	if args.Has("description") {
		description, err := readDescription(args)
		if err != nil {
			return nil, err
		}
		req.Description = &description
		changed = true
	}
	if args.Has("priority") {
		priority, err := args.ParsePriority("priority")
		if err != nil {
			return nil, err
		}
		req.Priority = &priority
		changed = true
	}
	if args.Has("assignee") {
		assignee, err := args.ParseStringOptional("assignee")
		if err != nil {
			return nil, err
		}
		req.AssignedTo = &assignee
		changed = true
	}
	if args.Has("tag") {
		tags, err := args.ParseStringSlice("tag")
		if err != nil {
			return nil, err
		}
		req.Tags = &tags
		changed = true
	}
	if args.Has("due") {
		due, err := args.ParseDueDate("due")
		if err != nil {
			return nil, err
		}
		req.DueDate = due
		changed = true
	}
	clearDue, err := args.ParseBool("clear-due")
	if err != nil {
		return nil, err
	}
	if clearDue {
		if req.DueDate != nil {
			return nil, cli.UsageError("--due and --clear-due cannot be combined")
		}
		req.ClearDueDate = true
		changed = true
	}
	if !changed {
		return nil, cli.UsageError("nothing to update: pass at least one field flag")
	}

	task, err := c.App.TaskService.UpdateTask(ctx, req)
	if err != nil {
		return nil, err
	}

	return &cli.Result{
		Data: taskJSON(task, time.Now()),
		IDs:  []string{task.ID},
		Human: func(w io.Writer) {
			fmt.Fprintf(w, "Task '%s' updated\n", task.Title)
		},
	}, nil
}
