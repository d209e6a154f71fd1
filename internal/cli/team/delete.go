package team

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/funil/internal/cli"
	"github.com/thenoetrevino/funil/internal/cli/handler"
)

// DeleteCmd returns the team delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <team>",
		Short: "Delete a team",
		Long: `Delete a team. Its members are kept and left without a team.

Asks for confirmation unless --force, --json or --quiet is given.`,
		Args: cobra.ExactArgs(1),
		RunE: handler.Command(runDelete),
	}
	cmd.Flags().Bool("force", false, "Skip confirmation")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runDelete(ctx context.Context, c *cli.CLI, args *handler.Arguments) (*cli.Result, error) {
	force, err := args.ParseBool("force")
	if err != nil {
		return nil, err
	}
	jsonOutput, quietMode, err := args.OutputFormats()
	if err != nil {
		return nil, err
	}

	team, err := c.App.TeamService.GetTeam(ctx, args.Arg(0))
	if err != nil {
		return nil, err
	}

	if !force && !jsonOutput && !quietMode {
		prompt := fmt.Sprintf("Delete team '%s' (%s)?", team.Name, memberCount(len(team.Members)))
		if !cli.Confirm(args.GetCmd(), prompt) {
			return &cli.Result{
				Data:  map[string]any{"deleted": false, "team_id": team.ID},
				Human: func(w io.Writer) { fmt.Fprintln(w, "Cancelled") },
			}, nil
		}
	}

	deleted, err := c.App.TeamService.DeleteTeam(ctx, team.ID)
	if err != nil {
		return nil, err
	}
	return &cli.Result{
		Data: map[string]any{
			"deleted":          true,
			"team_id":          deleted.ID,
			"members_unlinked": len(deleted.Members),
		},
		IDs: []string{deleted.ID},
		Human: func(w io.Writer) {
			fmt.Fprintf(w, "Team '%s' deleted\n", deleted.Name)
			if n := len(deleted.Members); n > 0 {
				fmt.Fprintf(w, "  %s left without a team\n", memberCount(n))
			}
		},
	}, nil
}
