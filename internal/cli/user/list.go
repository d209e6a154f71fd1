package user

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/funil/internal/cli"
	"github.com/thenoetrevino/funil/internal/cli/handler"
	"github.com/thenoetrevino/funil/internal/models"
	teamservice "github.com/thenoetrevino/funil/internal/services/team"
)

// ListCmd returns the user list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List team members",
		Long: `List team members sorted by name.

Examples:
  funil user list
  funil user list --team=Vendas --status=ativo
  funil user list --role=gestor --role=suporte --json
  funil user list --no-team
`,
		Args: cobra.NoArgs,
		RunE: handler.Command(runList),
	}

	cmd.Flags().String("search", "", "Search name and email")
	cmd.Flags().StringSlice("role", nil, "Only these roles (repeatable)")
	cmd.Flags().StringSlice("status", nil, "Only these statuses (repeatable)")
	cmd.Flags().String("team", "", "Only members of this team")
	cmd.Flags().Bool("no-team", false, "Only members without a team")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(ctx context.Context, c *cli.CLI, args *handler.Arguments) (*cli.Result, error) {
	var req teamservice.ListMembersRequest
	var err error

	if req.Search, err = args.ParseStringOptional("search"); err != nil {
		return nil, err
	}
	roles, err := args.ParseStringSlice("role")
	if err != nil {
		return nil, err
	}
	for _, r := range roles {
		role, err := models.ParseRole(r)
		if err != nil {
			return nil, err
		}
		req.Roles = append(req.Roles, role)
	}
	statuses, err := args.ParseStringSlice("status")
	if err != nil {
		return nil, err
	}
	for _, s := range statuses {
		status, err := models.ParseMemberStatus(s)
		if err != nil {
			return nil, err
		}
		req.Statuses = append(req.Statuses, status)
	}
	if req.Team, err = args.ParseStringOptional("team"); err != nil {
		return nil, err
	}
	if req.NoTeam, err = args.ParseBool("no-team"); err != nil {
		return nil, err
	}
	if req.NoTeam && req.Team != "" {
		return nil, cli.UsageError("--team and --no-team cannot be combined")
	}

	members, err := c.App.TeamService.ListMembers(ctx, req)
	if err != nil {
		return nil, err
	}

	data := make([]map[string]any, 0, len(members))
	ids := make([]string, 0, len(members))
	active := 0
	for _, m := range members {
		data = append(data, memberJSON(m))
		ids = append(ids, m.ID)
		if m.Active() {
			active++
		}
	}

	return &cli.Result{
		Data: map[string]any{
			"users": data,
			"stats": map[string]any{
				"total":    len(members),
				"active":   active,
				"inactive": len(members) - active,
			},
		},
		IDs: ids,
		Human: func(w io.Writer) {
			if len(members) == 0 {
				fmt.Fprintln(w, "No users found")
				return
			}
			fmt.Fprintf(w, "Total %d · Ativos %d · Inativos %d\n", len(members), active, len(members)-active)
			for _, m := range members {
				printMemberLine(w, m)
			}
		},
	}, nil
}
