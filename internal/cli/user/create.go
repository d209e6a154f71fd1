package user

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/funil/internal/cli"
	"github.com/thenoetrevino/funil/internal/cli/handler"
	teamservice "github.com/thenoetrevino/funil/internal/services/team"
)

// CreateCmd returns the user create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add a team member",
		Long: `Add a team member. Emails are unique, ignoring case.

Examples:
  funil user create --name="Ana Oliveira" --email=ana@golden.com
  funil user create --name="Pedro Guedes" --email=pedro@golden.com --role=gestor --team=Gestão
  USER_ID=$(funil user create --name="Carla" --email=carla@golden.com --quiet)
`,
		Args: cobra.NoArgs,
		RunE: handler.Command(runCreate),
	}

	cmd.Flags().String("name", "", "Full name (required)")
	cmd.Flags().String("email", "", "Email address (required)")
	cmd.Flags().String("role", "", "Role: gestor, consultor, suporte (default consultor)")
	cmd.Flags().String("status", "", "Status: ativo, inativo (default ativo)")
	cmd.Flags().String("team", "", "Team ID or name")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runCreate(ctx context.Context, c *cli.CLI, args *handler.Arguments) (*cli.Result, error) {
	name, err := args.ParseString("name")
	if err != nil {
		return nil, err
	}
	email, err := args.ParseString("email")
	if err != nil {
		return nil, err
	}
	role, err := args.ParseRole("role")
	if err != nil {
		return nil, err
	}
	status, err := args.ParseMemberStatus("status")
	if err != nil {
		return nil, err
	}
	team, err := args.ParseStringOptional("team")
	if err != nil {
		return nil, err
	}

	member, err := c.App.TeamService.CreateMember(ctx, teamservice.CreateMemberRequest{
		Name:   name,
		Email:  email,
		Role:   role,
		Status: status,
		Team:   team,
	})
	if err != nil {
		return nil, err
	}

	return &cli.Result{
		Data: memberJSON(member),
		IDs:  []string{member.ID},
		Human: func(w io.Writer) {
			fmt.Fprintf(w, "User '%s' created (ID: %s)\n", member.Name, cli.ShortID(member.ID))
			fmt.Fprintf(w, "  Role: %s\n", member.Role.Title())
			fmt.Fprintf(w, "  Team: %s\n", teamLabel(member))
		},
	}, nil
}
