package task

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/funil/internal/board"
	"github.com/thenoetrevino/funil/internal/cli"
	"github.com/thenoetrevino/funil/internal/cli/handler"
	"github.com/thenoetrevino/funil/internal/models"
)

// MoveCmd returns the task move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <task-id>",
		Short: "Move a task to another status column",
		Long: `Move a task to another status column, optionally at a given position.

Examples:
  funil task move 3f2a --status=em_andamento
  funil task move 3f2a --status=pendente --index=0
`,
		Args: cobra.ExactArgs(1),
		RunE: handler.Command(runMove),
	}
	cmd.Flags().String("status", "", "Destination status (required)")
	cmd.Flags().Int("index", -1, "Position in the destination column (default: last)")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runMove(ctx context.Context, c *cli.CLI, args *handler.Arguments) (*cli.Result, error) {
	if _, err := args.ParseString("status"); err != nil {
		return nil, err
	}
	status, err := args.ParseStatus("status")
	if err != nil {
		return nil, err
	}
	index, err := args.ParseIntOptional("index")
	if err != nil {
		return nil, err
	}

	task, err := c.App.TaskService.GetTask(ctx, args.Arg(0))
	if err != nil {
		return nil, err
	}

	sync := c.App.TaskBoard()
	if err := sync.Load(ctx, models.TaskBoardID); err != nil {
		return nil, err
	}
	mv, err := board.MoveTo(sync.Snapshot(), task.ID, string(status), index)
	if err != nil {
		return nil, err
	}

	pending, err := sync.Move(mv)
	if err != nil {
		return nil, err
	}
	if res := pending.Persist(ctx); res.Err != nil {
		return nil, res.Err
	}

	moved := pending != nil
	from := task.Status
	return &cli.Result{
		Data: map[string]any{
			"task_id": task.ID,
			"from":    string(from),
			"to":      string(status),
			"index":   mv.DestIndex,
			"moved":   moved,
		},
		IDs: []string{task.ID},
		Human: func(w io.Writer) {
			if !moved {
				fmt.Fprintf(w, "Task '%s' already there\n", task.Title)
				return
			}
			fmt.Fprintf(w, "Task '%s' moved from %s to %s\n", task.Title, from.Title(), status.Title())
		},
	}, nil
}
