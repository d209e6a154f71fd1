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

// UpdateCmd returns the user update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <user>",
		Short: "Update a team member",
		Long: `Update a team member. Only the flags given are changed.

Examples:
  funil user update ana@golden.com --role=gestor
  funil user update 3f2a --team=Atendimento
  funil user update 3f2a --no-team --status=inativo
`,
		Args: cobra.ExactArgs(1),
		RunE: handler.Command(runUpdate),
	}
	cmd.Flags().String("name", "", "New name")
	cmd.Flags().String("email", "", "New email")
	cmd.Flags().String("role", "", "New role: gestor, consultor, suporte")
	cmd.Flags().String("status", "", "New status: ativo, inativo")
	cmd.Flags().String("team", "", "Move to this team")
	cmd.Flags().Bool("no-team", false, "Take the member off their team")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runUpdate(ctx context.Context, c *cli.CLI, args *handler.Arguments) (*cli.Result, error) {
	req := teamservice.UpdateMemberRequest{Member: args.Arg(0)}
	changed := false

	if args.Has("name") {
		name, err := args.ParseStringOptional("name")
		if err != nil {
			return nil, err
		}
		req.Name = &name
		changed = true
	}
	if args.Has("email") {
		email, err := args.ParseStringOptional("email")
		if err != nil {
			return nil, err
		}
		req.Email = &email
		changed = true
	}
	if args.Has("role") {
		role, err := args.ParseRole("role")
		if err != nil {
			return nil, err
		}
		req.Role = &role
		changed = true
	}
	if args.Has("status") {
		status, err := args.ParseMemberStatus("status")
		if err != nil {
			return nil, err
		}
		req.Status = &status
		changed = true
	}
	if args.Has("team") {
		team, err := args.ParseString("team")
		if err != nil {
			return nil, err
		}
		req.Team = &team
		changed = true
	}
	noTeam, err := args.ParseBool("no-team")
	if err != nil {
		return nil, err
	}
	if noTeam {
		if req.Team != nil {
			return nil, cli.UsageError("--team and --no-team cannot be combined")
		}
		none := ""
		req.Team = &none
		changed = true
	}
	if !changed {
		return nil, cli.UsageError("nothing to update: pass at least one field flag")
	}

	member, err := c.App.TeamService.UpdateMember(ctx, req)
	if err != nil {
		return nil, err
	}
	return &cli.Result{
		Data: memberJSON(member),
		IDs:  []string{member.ID},
		Human: func(w io.Writer) {
			fmt.Fprintf(w, "User '%s' updated\n", member.Name)
		},
	}, nil
}
