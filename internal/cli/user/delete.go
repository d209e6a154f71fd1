package user

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/funil/internal/cli"
	"github.com/thenoetrevino/funil/internal/cli/handler"
)

// DeleteCmd returns the user delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <user>",
		Short: "Remove a team member",
		Long: `Remove a team member.

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

	member, err := c.App.TeamService.GetMember(ctx, args.Arg(0))
	if err != nil {
		return nil, err
	}

	if !force && !jsonOutput && !quietMode {
		prompt := fmt.Sprintf("Remove user '%s' <%s>?", member.Name, member.Email)
		if !cli.Confirm(args.GetCmd(), prompt) {
			return &cli.Result{
				Data:  map[string]any{"deleted": false, "user_id": member.ID},
				Human: func(w io.Writer) { fmt.Fprintln(w, "Cancelled") },
			}, nil
		}
	}

	if _, err := c.App.TeamService.DeleteMember(ctx, member.ID); err != nil {
		return nil, err
	}
	return &cli.Result{
		Data: map[string]any{"deleted": true, "user_id": member.ID},
		IDs:  []string{member.ID},
		Human: func(w io.Writer) {
			fmt.Fprintf(w, "User '%s' removed\n", member.Name)
		},
	}, nil
}
