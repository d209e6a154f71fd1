// Package user holds the funil user subcommands for team members
package user

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/funil/internal/cli"
	"github.com/thenoetrevino/funil/internal/cli/styles"
	"github.com/thenoetrevino/funil/internal/models"
)

// UserCmd returns the user parent command
func UserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "user",
		Aliases: []string{"users", "usuario"},
		Short:   "Manage team members",
		Long: `Manage the people on your teams. A user may be named by ID, any
unique ID prefix, or email. Teams may be named by ID or name.`,
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}

func memberJSON(m *models.Member) map[string]any {
	var team any
	if m.TeamID != "" {
		team = map[string]any{"id": m.TeamID, "name": m.TeamName}
	}
	return map[string]any{
		"id":        m.ID,
		"name":      m.Name,
		"email":     m.Email,
		"initials":  m.Initials(),
		"role":      string(m.Role),
		"status":    string(m.Status),
		"team":      team,
		"joined_at": m.JoinedAt.UTC().Format(time.RFC3339),
	}
}

func teamLabel(m *models.Member) string {
	if m.TeamName == "" {
		return "no team"
	}
	return m.TeamName
}

// printMemberLine renders one member as a listing row
func printMemberLine(w io.Writer, m *models.Member) {
	line := fmt.Sprintf("%s  %-2s %s <%s>  %s · %s",
		cli.ShortID(m.ID), m.Initials(), m.Name, m.Email, m.Role.Title(), teamLabel(m))
	if !m.Active() {
		line += "  " + styles.SubtitleStyle.Render(m.Status.Title())
	}
	fmt.Fprintln(w, line)
}

// printMember renders a member's details
func printMember(w io.Writer, m *models.Member) {
	var b strings.Builder
	fmt.Fprintln(&b, styles.TitleStyle.Render(m.Name))
	fmt.Fprintln(&b, styles.SubtitleStyle.Render(m.ID))
	fmt.Fprintln(&b, styles.Field("Email", m.Email))
	fmt.Fprintln(&b, styles.Field("Role", m.Role.Title()))
	fmt.Fprintln(&b, styles.Field("Team", teamLabel(m)))
	fmt.Fprintln(&b, styles.Field("Status", m.Status.Title()))
	fmt.Fprintln(&b, styles.Field("Joined", cli.FormatDate(&m.JoinedAt)))
	fmt.Fprintln(w, styles.RenderCard(strings.TrimRight(b.String(), "\n")))
}
