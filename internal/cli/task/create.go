package task

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/funil/internal/cli"
	"github.com/thenoetrevino/funil/internal/cli/handler"
	taskservice "github.com/thenoetrevino/funil/internal/services/task"
)

// CreateCmd returns the task create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new task",
		Long: `Create a new task with specified attributes.

Examples:
  # Simple task (human-readable output)
  funil task create --title="Ligar para Maria"

  # JSON output
  funil task create --title="Ligar para Maria" --json

  # Quiet mode for bash capture
  TASK_ID=$(funil task create --title="Enviar proposta" --quiet)

  # Full example with all options
  funil task create \
    --title="Enviar proposta" \
    --description="Proposta comercial para a Acme" \
    --priority=alta \
    --status=em_andamento \
    --assignee="Ana" \
    --due=2026-05-10 \
    --tag=acme --tag=proposta
`,
		Args: cobra.NoArgs,
		RunE: handler.Command(runCreate),
	}

	cmd.Flags().String("title", "", "Task title (required)")
	cmd.Flags().String("description", "", "Task description (use - for stdin)")
	cmd.Flags().String("priority", "", "Priority: baixa, media, alta, urgente (default media)")
	cmd.Flags().String("status", "", "Status: solicitada, pendente, em_andamento, concluida (default pendente)")
	cmd.Flags().String("assignee", "", "Who the task is assigned to")
	cmd.Flags().String("due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringSlice("tag", nil, "Tag (repeatable)")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runCreate(ctx context.Context, c *cli.CLI, args *handler.Arguments) (*cli.Result, error) {
	title, err := args.ParseString("title")
	if err != nil {
		return nil, err
	}
	description, err := readDescription(args)
	if err != nil {
		return nil, err
	}
	priority, err := args.ParsePriority("priority")
	if err != nil {
		return nil, err
	}
	status, err := args.ParseStatus("status")
	if err != nil {
		return nil, err
	}
	assignee, err := args.ParseStringOptional("assignee")
	if err != nil {
		return nil, err
	}
	due, err := args.ParseDueDate("due")
	if err != nil {
		return nil, err
	}
	tags, err := args.ParseStringSlice("tag")
	if err != nil {
		return nil, err
	}

	task, err := c.App.TaskService.CreateTask(ctx, taskservice.CreateTaskRequest{
		Title:       title,
		Description: description,
		Status:      status,
		Priority:    priority,
		CreatedBy:   c.App.Author(ctx),
		AssignedTo:  assignee,
		Tags:        tags,
		DueDate:     due,
	})
	if err != nil {
		return nil, err
	}

	return &cli.Result{
		Data: taskJSON(task, time.Now()),
		IDs:  []string{task.ID},
		Human: func(w io.Writer) {
			fmt.Fprintf(w, "Task '%s' created (ID: %s)\n", task.Title, cli.ShortID(task.ID))
			fmt.Fprintf(w, "  Status: %s\n", task.Status.Title())
			fmt.Fprintf(w, "  Priority: %s\n", task.Priority)
		},
	}, nil
}

// readDescription returns --description, reading stdin when it is "-"
func readDescription(args *handler.Arguments) (string, error) {
	description, err := args.ParseStringOptional("description")
	if err != nil {
		return "", err
	}
	if description != "-" {
		return description, nil
	}
	data, err := io.ReadAll(args.GetCmd().InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read description from stdin: %w", err)
	}
	return string(data), nil
}
