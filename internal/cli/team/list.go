package team

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/funil/internal/cli"
	"github.com/thenoetrevino/funil/internal/cli/handler"
)

// ListCmd returns the team list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List teams with their member counts",
		Long: `List teams in creation order.

Examples:
  funil team list
  funil team list --search=suporte --json
`,
		Args: cobra.NoArgs,
		RunE: handler.Command(runList),
	}
	cmd.Flags().String("search", "", "Search name and description")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runList(ctx context.Context, c *cli.CLI, args *handler.Arguments) (*cli.Result, error) {
	search, err := args.ParseStringOptional("search")
	if err != nil {
		return nil, err
	}
	teams, err := c.App.TeamService.ListTeams(ctx, search)
	if err != nil {
		return nil, err
	}

	data := make([]map[string]any, 0, len(teams))
	ids := make([]string, 0, len(teams))
	members := 0
	for _, t := range teams {
		data = append(data, teamJSON(t))
		ids = append(ids, t.ID)
		members += len(t.Members)
	}

	return &cli.Result{
		Data: map[string]any{"teams": data},
		IDs:  ids,
		Human: func(w io.Writer) {
			if len(teams) == 0 {
				fmt.Fprintln(w, "No teams found")
				return
			}
			fmt.Fprintf(w, "%d teams · %s\n", len(teams), memberCount(members))
			for _, t := range teams {
				printTeamLine(w, t)
			}
		},
	}, nil
}
