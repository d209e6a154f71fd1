package task

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/funil/internal/cli"
	"github.com/thenoetrevino/funil/internal/cli/handler"
)

// DoneCmd returns the task done subcommand
func DoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <task-id>",
		Short: "Mark a task as done",
		Args:  cobra.ExactArgs(1),
		RunE:  handler.Command(runDone),
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func runDone(ctx context.Context, c *cli.CLI, args *handler.Arguments) (*cli.Result, error) {
	task, err := c.App.TaskService.CompleteTask(ctx, args.Arg(0))
	if err != nil {
		return nil, err
	}
	return &cli.Result{
		Data: taskJSON(task, time.Now()),
		IDs:  []string{task.ID},
		Human: func(w io.Writer) {
			fmt.Fprintf(w, "Task '%s' done\n", task.Title)
		},
	}, nil
}
