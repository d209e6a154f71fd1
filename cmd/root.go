package cmd

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/funil/internal/cli/auth"
	"github.com/thenoetrevino/funil/internal/cli/dashboard"
	"github.com/thenoetrevino/funil/internal/cli/funnel"
	"github.com/thenoetrevino/funil/internal/cli/lead"
	"github.com/thenoetrevino/funil/internal/cli/task"
	"github.com/thenoetrevino/funil/internal/cli/team"
	"github.com/thenoetrevino/funil/internal/cli/user"
	"github.com/thenoetrevino/funil/internal/launcher"
)

// NewRootCmd builds the funil command tree. Without a subcommand it opens the board.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "funil",
		Short: "funil - a terminal client for your sales CRM",
		Long: `funil shows your CRM funnels as kanban boards in the terminal.
Run it without arguments to open the board, or use the subcommands for scripting.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return launcher.Launch()
		},
	}

	rootCmd.AddCommand(auth.Commands()...)
	rootCmd.AddCommand(dashboard.DashboardCmd())
	rootCmd.AddCommand(funnel.FunnelCmd())
	rootCmd.AddCommand(lead.LeadCmd())
	rootCmd.AddCommand(task.TaskCmd())
	rootCmd.AddCommand(team.TeamCmd())
	rootCmd.AddCommand(user.UserCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
