// Package team holds the funil team subcommands
package team

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

// TeamCmd returns the team parent command
func TeamCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "team",
		Aliases: []string{"teams", "equipe"},
		Short:   "Manage teams",
		Long: `Manage the teams members belong to. A team may be named by its ID,
any unique ID prefix, or its name.`,
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}

func teamJSON(t *models.Team) map[string]any {
	members := make([]map[string]any, 0, len(t.Members))
	for _, m := range t.Members {
		members = append(members, map[string]any{
			"id":     m.ID,
			"name":   m.Name,
			"email":  m.Email,
			"role":   string(m.Role),
			"status": string(m.Status),
		})
	}
	return map[string]any{
		"id":           t.ID,
		"name":         t.Name,
		"description":  t.Description,
		"color":        t.Color,
		"member_count": len(t.Members),
		"members":      members,
		"created_at":   t.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// colorName returns the palette name for hex, or hex itself
func colorName(hex string) string {
	for _, c := range models.TeamColors {
		if strings.EqualFold(c.Hex, hex) {
			return c.Name
		}
	}
	return hex
}

func memberCount(n int) string {
	if n == 1 {
		return "1 member"
	}
	return fmt.Sprintf("%d members", n)
}

// printTeamLine renders one team as a listing row
func printTeamLine(w io.Writer, t *models.Team) {
	fmt.Fprintf(w, "%s  %s %s  %s\n",
		cli.ShortID(t.ID), styles.ColoredText("●", t.Color), t.Name, memberCount(len(t.Members)))
	if t.Description != "" {
		fmt.Fprintf(w, "          %s\n", t.Description)
	}
}

// printTeam renders a team's details with its members
func printTeam(w io.Writer, t *models.Team) {
	var b strings.Builder
	fmt.Fprintln(&b, styles.ColoredText("●", t.Color)+" "+styles.TitleStyle.Render(t.Name))
	fmt.Fprintln(&b, styles.SubtitleStyle.Render(t.ID))
	if t.Description != "" {
		fmt.Fprintln(&b, t.Description)
	}
	fmt.Fprintln(&b, styles.Field("Color", colorName(t.Color)))
	fmt.Fprintln(&b, styles.SectionStyle.Render(fmt.Sprintf("Members (%d)", len(t.Members))))
	if len(t.Members) == 0 {
		fmt.Fprintln(&b, "No members")
	}
	for _, m := range t.Members {
		fmt.Fprintf(&b, "%s  %s  %s · %s\n", m.Initials(), m.Name, m.Role.Title(), m.Email)
	}
	fmt.Fprintln(w, styles.RenderCard(strings.TrimRight(b.String(), "\n")))
}
