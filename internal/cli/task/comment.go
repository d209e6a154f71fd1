package task

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/funil/internal/cli"
	"github.com/thenoetrevino/funil/internal/cli/handler"
	taskservice "github.com/thenoetrevino/funil/internal/services/task"
)

// CommentCmd returns the task comment subcommand
func CommentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "comment <task-id>",
		Short: "Add a comment to a task",
		Long: `Add a comment to a task. The author is the signed-in user, or the
local username when signed out.

Examples:
  funil task comment 3f2a --message="Cliente pediu retorno amanhã"
`,
		Args: cobra.ExactArgs(1),
		RunE: handler.Command(runComment),
	}
	cmd.Flags().String("message", "", "Comment text (required)")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runComment(ctx context.Context, c *cli.CLI, args *handler.Arguments) (*cli.Result, error) {
	message, err := args.ParseString("message")
	if err != nil {
		return nil, err
	}

	comment, err := c.App.TaskService.AddComment(ctx, taskservice.AddCommentRequest{
		TaskID:     args.Arg(0),
		AuthorName: c.App.Author(ctx),
		Content:    message,
	})
	if err != nil {
		return nil, err
	}

	return &cli.Result{
		Data: commentJSON(comment),
		IDs:  []string{comment.ID},
		Human: func(w io.Writer) {
			fmt.Fprintf(w, "Comment added to task %s by %s\n", cli.ShortID(comment.TaskID), comment.AuthorName)
		},
	}, nil
}
