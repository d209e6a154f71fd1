package auth

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/funil/internal/cli"
	"github.com/thenoetrevino/funil/internal/cli/handler"
	"github.com/thenoetrevino/funil/internal/models"
)

// LoginCmd returns the login command
func LoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to the CRM backend",
		Long: `Sign in with email and password and store the session locally.

Examples:
  # Password prompt on stdin
  funil login --email=ana@empresa.com

  # Non-interactive
  echo "$PASSWORD" | funil login --email=ana@empresa.com --quiet
`,
		Args: cobra.NoArgs,
		RunE: handler.Command(runLogin),
	}

	cmd.Flags().String("email", "", "Account email (required)")
	cmd.Flags().String("password", "", "Account password (read from stdin when omitted)")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runLogin(ctx context.Context, c *cli.CLI, args *handler.Arguments) (*cli.Result, error) {
	email, err := args.ParseString("email")
	if err != nil {
		return nil, err
	}
	password, err := args.ParseStringOptional("password")
	if err != nil {
		return nil, err
	}
	if password == "" {
		password, err = readPassword(args.GetCmd())
		if err != nil {
			return nil, err
		}
	}

	sess, err := c.App.AuthService.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	return &cli.Result{
		Data: userJSON(sess.User),
		IDs:  userIDs(sess.User),
		Human: func(w io.Writer) {
			fmt.Fprintf(w, "Logged in as %s\n", displayName(sess.User))
		},
	}, nil
}

// readPassword reads one line from the command's input
func readPassword(cmd *cobra.Command) (string, error) {
	if _, err := fmt.Fprint(cmd.ErrOrStderr(), "Password: "); err != nil {
		return "", err
	}
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func runLogout(ctx context.Context, c *cli.CLI, _ *handler.Arguments) (*cli.Result, error) {
	if err := c.App.AuthService.Logout(ctx); err != nil {
		return nil, err
	}
	return &cli.Result{
		Data:  map[string]any{"logged_out": true},
		Human: func(w io.Writer) { fmt.Fprintln(w, "Signed out") },
	}, nil
}

func runWhoami(ctx context.Context, c *cli.CLI, _ *handler.Arguments) (*cli.Result, error) {
	sess, err := c.App.AuthService.Current(ctx)
	if err != nil {
		return nil, err
	}
	return &cli.Result{
		Data: userJSON(sess.User),
		IDs:  userIDs(sess.User),
		Human: func(w io.Writer) {
			fmt.Fprintln(w, displayName(sess.User))
			if sess.User != nil && sess.User.Role != "" {
				fmt.Fprintf(w, "  Role: %s\n", sess.User.Role)
			}
		},
	}, nil
}

func userJSON(u *models.User) map[string]any {
	if u == nil {
		return map[string]any{}
	}
	return map[string]any{
		"id":    u.ID,
		"name":  u.Name,
		"email": u.Email,
		"role":  u.Role,
	}
}

func userIDs(u *models.User) []string {
	if u == nil {
		return nil
	}
	return []string{u.ID}
}

func displayName(u *models.User) string {
	if u == nil {
		return "unknown user"
	}
	if u.Email != "" {
		return fmt.Sprintf("%s <%s>", u.Name, u.Email)
	}
	return u.Name
}
