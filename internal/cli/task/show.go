package task

import (
	"context"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/funil/internal/cli"
	"github.com/thenoetrevino/funil/internal/cli/handler"
)

// ShowCmd returns the task show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <task-id>",
		Short: "Show a task with its comments",
		Args:  cobra.ExactArgs(1),
		RunE:  handler.Command(runShow),
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func runShow(ctx context.Context, c *cli.CLI, args *handler.Arguments) (*cli.Result, error) {
	task, err := c.App.TaskService.GetTask(ctx, args.Arg(0))
	if err != nil {
		return nil, err
	}
	comments, err := c.App.TaskService.GetComments(ctx, task.ID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	data := taskJSON(task, now)
	commentData := make([]map[string]any, 0, len(comments))
	for _, cm := range comments {
		commentData = append(commentData, commentJSON(cm))
	}
	data["comments"] = commentData

	return &cli.Result{
		Data:  data,
		IDs:   []string{task.ID},
		Human: func(w io.Writer) { printTask(w, task, comments, now) },
	}, nil
}
