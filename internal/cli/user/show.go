package user

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/funil/internal/cli"
	"github.com/thenoetrevino/funil/internal/cli/handler"
)

// ShowCmd returns the user show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <user>",
		Short: "Show a team member",
		Args:  cobra.ExactArgs(1),
		RunE:  handler.Command(runShow),
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func runShow(ctx context.Context, c *cli.CLI, args *handler.Arguments) (*cli.Result, error) {
	member, err := c.App.TeamService.GetMember(ctx, args.Arg(0))
	if err != nil {
		return nil, err
	}
	return &cli.Result{
		Data:  memberJSON(member),
		IDs:   []string{member.ID},
		Human: func(w io.Writer) { printMember(w, member) },
	}, nil
}
