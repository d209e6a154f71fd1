// Package auth holds the session commands: funil login, logout and whoami
package auth

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/funil/internal/cli"
	"github.com/thenoetrevino/funil/internal/cli/handler"
)

// Commands returns the top-level session commands
func Commands() []*cobra.Command {
	return []*cobra.Command{LoginCmd(), LogoutCmd(), WhoamiCmd()}
}

// LogoutCmd returns the logout command
func LogoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		Long: `Forget the stored token and user. The last viewed funnel is kept so
it opens again after the next login.`,
		Args: cobra.NoArgs,
		RunE: handler.Command(runLogout),
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

// WhoamiCmd returns the whoami command
func WhoamiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		Args:  cobra.NoArgs,
		RunE:  handler.Command(runWhoami),
	}
	cli.AddOutputFlags(cmd)
	return cmd
}
