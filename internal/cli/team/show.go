package team

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/funil/internal/cli"
	"github.com/thenoetrevino/funil/internal/cli/handler"
)

// ShowCmd returns the team show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <team>",
		Short: "Show a team and its members",
		Args:  cobra.ExactArgs(1),
		RunE:  handler.Command(runShow),
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func runShow(ctx context.Context, c *cli.CLI, args *handler.Arguments) (*cli.Result, error) {
	team, err := c.App.TeamService.GetTeam(ctx, args.Arg(0))
	if err != nil {
		return nil, err
	}
	return &cli.Result{
		Data:  teamJSON(team),
		IDs:   []string{team.ID},
		Human: func(w io.Writer) { printTeam(w, team) },
	}, nil
}
