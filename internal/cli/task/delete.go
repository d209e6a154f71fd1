package task

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/funil/internal/cli"
	"github.com/thenoetrevino/funil/internal/cli/handler"
)

// DeleteCmd returns the task delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <task-id>",
		Short: "Delete a task and its comments",
		Long: `Delete a task and its comments.

Asks for confirmation unless --force, --json or --quiet is given.`,
		Args: cobra.ExactArgs(1),
		RunE: handler.Command(runDelete),
	}
	cmd.Flags().Bool("force", false, "Skip confirmation")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runDelete(ctx context.Context, c *cli.CLI, args *handler.Arguments) (*cli.Result, error) {
	force, err := args.ParseBool("force")
	if err != nil {
		return nil, err
	}
	jsonOutput, quietMode, err := args.OutputFormats()
	if err != nil {
		return nil, err
	}

	task, err := c.App.TaskService.GetTask(ctx, args.Arg(0))
	if err != nil {
		return nil, err
	}

	if !force && !jsonOutput && !quietMode {
		prompt := fmt.Sprintf("Delete task '%s' (ID: %s)?", task.Title, cli.ShortID(task.ID))
		if !cli.Confirm(args.GetCmd(), prompt) {
			return &cli.Result{
				Data:  map[string]any{"deleted": false, "task_id": task.ID},
				Human: func(w io.Writer) { fmt.Fprintln(w, "Cancelled") },
			}, nil
		}
	}

	if err := c.App.TaskService.DeleteTask(ctx, task.ID); err != nil {
		return nil, err
	}
	return &cli.Result{
		Data: map[string]any{"deleted": true, "task_id": task.ID},
		IDs:  []string{task.ID},
		Human: func(w io.Writer) {
			fmt.Fprintf(w, "Task '%s' deleted\n", task.Title)
		},
	}, nil
}
