package team

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/funil/internal/cli"
	"github.com/thenoetrevino/funil/internal/cli/handler"
	teamservice "github.com/thenoetrevino/funil/internal/services/team"
)

// UpdateCmd returns the team update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <team>",
		Short: "Rename a team or change its description or color",
		Long: `Update a team. Only the flags given are changed.

Examples:
  funil team update Vendas --name="Vendas Sul"
  funil team update 3f2a --color="#10B981" --description=""
`,
		Args: cobra.ExactArgs(1),
		RunE: handler.Command(runUpdate),
	}
	cmd.Flags().String("name", "", "New name")
	cmd.Flags().String("description", "", "New description")
	cmd.Flags().String("color", "", "New color in hex format")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runUpdate(ctx context.Context, c *cli.CLI, args *handler.Arguments) (*cli.Result, error) {
	req := teamservice.UpdateTeamRequest{Team: args.Arg(0)}

	if args.Has("name") {
		name, err := args.ParseStringOptional("name")
		if err != nil {
			return nil, err
		}
		req.Name = &name
	}
	if args.Has("description") {
		description, err := args.ParseStringOptional("description")
		if err != nil {
			return nil, err
		}
		req.Description = &description
	}
	if args.Has("color") {
		color, err := args.ParseColor("color")
		if err != nil {
			return nil, err
		}
		req.Color = &color
	}
	if req.Name == nil && req.Description == nil && req.Color == nil {
		return nil, cli.UsageError("nothing to update: pass --name, --description or --color")
	}

	team, err := c.App.TeamService.UpdateTeam(ctx, req)
	if err != nil {
		return nil, err
	}
	return &cli.Result{
		Data: teamJSON(team),
		IDs:  []string{team.ID},
		Human: func(w io.Writer) {
			fmt.Fprintf(w, "Team '%s' updated\n", team.Name)
		},
	}, nil
}
