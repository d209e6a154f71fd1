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

// CreateCmd returns the team create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a team",
		Long: `Create a team. Team names are unique, ignoring case.

Examples:
  funil team create --name="Vendas"
  funil team create --name="Atendimento" --description="Suporte ao cliente" --color="#3B82F6"
  TEAM_ID=$(funil team create --name="Gestão" --quiet)
`,
		Args: cobra.NoArgs,
		RunE: handler.Command(runCreate),
	}

	cmd.Flags().String("name", "", "Team name (required)")
	cmd.Flags().String("description", "", "What the team does")
	cmd.Flags().String("color", "", "Team color in hex format (default #EAB308)")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runCreate(ctx context.Context, c *cli.CLI, args *handler.Arguments) (*cli.Result, error) {
	name, err := args.ParseString("name")
	if err != nil {
		return nil, err
	}
	description, err := args.ParseStringOptional("description")
	if err != nil {
		return nil, err
	}
	color, err := args.ParseColor("color")
	if err != nil {
		return nil, err
	}

	team, err := c.App.TeamService.CreateTeam(ctx, teamservice.CreateTeamRequest{
		Name:        name,
		Description: description,
		Color:       color,
	})
	if err != nil {
		return nil, err
	}

	return &cli.Result{
		Data: teamJSON(team),
		IDs:  []string{team.ID},
		Human: func(w io.Writer) {
			fmt.Fprintf(w, "Team '%s' created (ID: %s)\n", team.Name, cli.ShortID(team.ID))
			fmt.Fprintf(w, "  Color: %s\n", colorName(team.Color))
		},
	}, nil
}
