// Package task holds the funil task subcommands for the local task board
package task

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

// TaskCmd returns the task parent command
func TaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "task",
		Aliases: []string{"tasks"},
		Short:   "Manage the local task board",
		Long: `Manage tasks on the local board. Task IDs may be shortened to any
unique prefix.`,
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(MoveCmd())
	cmd.AddCommand(DoneCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(CommentCmd())

	return cmd
}

func timeJSON(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC().Format(time.RFC3339)
}

func taskJSON(t *models.Task, now time.Time) map[string]any {
	tags := t.Tags
	if tags == nil {
		tags = []string{}
	}
	return map[string]any{
		"id":           t.ID,
		"title":        t.Title,
		"description":  t.Description,
		"status":       string(t.Status),
		"priority":     string(t.Priority),
		"position":     t.Position,
		"created_by":   t.CreatedBy,
		"assigned_to":  t.AssignedTo,
		"tags":         tags,
		"due_date":     timeJSON(t.DueDate),
		"completed_at": timeJSON(t.CompletedAt),
		"created_at":   t.CreatedAt.UTC().Format(time.RFC3339),
		"overdue":      t.IsOverdue(now),
	}
}

func commentJSON(c *models.Comment) map[string]any {
	return map[string]any{
		"id":         c.ID,
		"task_id":    c.TaskID,
		"author":     c.AuthorName,
		"content":    c.Content,
		"created_at": c.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// printTaskLine renders one task as a listing row
func printTaskLine(w io.Writer, t *models.Task, now time.Time) {
	line := fmt.Sprintf("%s  %s %s", cli.ShortID(t.ID), styles.RenderPriorityChip(t.Priority), t.Title)
	if t.DueDate != nil {
		line += "  due " + cli.FormatDate(t.DueDate)
	}
	if t.IsOverdue(now) {
		line += "  " + styles.ErrorStyle.Render("overdue")
	}
	fmt.Fprintln(w, line)
}

// printTask renders a task's details
func printTask(w io.Writer, t *models.Task, comments []*models.Comment, now time.Time) {
	var b strings.Builder
	fmt.Fprintln(&b, styles.TitleStyle.Render(t.Title))
	fmt.Fprintln(&b, styles.SubtitleStyle.Render(t.ID))
	fmt.Fprintln(&b, styles.Field("Status", t.Status.Title()))
	fmt.Fprintln(&b, styles.Field("Priority", string(t.Priority)))
	if t.AssignedTo != "" {
		fmt.Fprintln(&b, styles.Field("Assigned to", t.AssignedTo))
	}
	if t.CreatedBy != "" {
		fmt.Fprintln(&b, styles.Field("Created by", t.CreatedBy))
	}
	fmt.Fprintln(&b, styles.Field("Due", cli.FormatDate(t.DueDate)))
	if t.IsOverdue(now) {
		fmt.Fprintln(&b, styles.ErrorStyle.Render("overdue"))
	}
	if len(t.Tags) > 0 {
		fmt.Fprintln(&b, styles.Field("Tags", strings.Join(t.Tags, ", ")))
	}
	if t.Description != "" {
		fmt.Fprintln(&b, styles.SectionStyle.Render("Description"))
		fmt.Fprintln(&b, t.Description)
	}
	if len(comments) > 0 {
		fmt.Fprintln(&b, styles.SectionStyle.Render(fmt.Sprintf("Comments (%d)", len(comments))))
		for _, c := range comments {
			fmt.Fprintf(&b, "%s, %s\n  %s\n", c.AuthorName, c.CreatedAt.Local().Format("02/01/2006 15:04"), c.Content)
		}
	}
	fmt.Fprintln(w, styles.RenderCard(strings.TrimRight(b.String(), "\n")))
}
