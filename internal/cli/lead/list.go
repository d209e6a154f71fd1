package lead

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/funil/internal/api"
	"github.com/thenoetrevino/funil/internal/cli"
	"github.com/thenoetrevino/funil/internal/cli/handler"
	"github.com/thenoetrevino/funil/internal/models"
)

// ListCmd returns the lead list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List leads",
		Long: `List one page of leads, optionally filtered.

Examples:
  funil lead list
  funil lead list --name=maria --channel=Instagram
  funil lead list --page=2 --limit=50 --json
`,
		Args: cobra.NoArgs,
		RunE: handler.Command(runList),
	}

	cmd.Flags().Int("page", 1, "Page number")
	cmd.Flags().Int("limit", models.DefaultLeadPageSize, "Leads per page")
	cmd.Flags().String("name", "", "Filter by name (substring)")
	cmd.Flags().String("stage", "", "Filter by stage ID")
	cmd.Flags().String("channel", "", "Filter by source channel")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(ctx context.Context, c *cli.CLI, args *handler.Arguments) (*cli.Result, error) {
	var q api.LeadQuery
	var err error
	if q.Page, err = args.ParseIntOptional("page"); err != nil {
		return nil, err
	}
	if q.Limit, err = args.ParseIntOptional("limit"); err != nil {
		return nil, err
	}
	if q.Name, err = args.ParseStringOptional("name"); err != nil {
		return nil, err
	}
	if q.StageID, err = args.ParseStringOptional("stage"); err != nil {
		return nil, err
	}
	if q.SourceChannel, err = args.ParseStringOptional("channel"); err != nil {
		return nil, err
	}

	leads, err := c.App.FunnelService.Leads(ctx, q)
	if err != nil {
		return nil, err
	}

	data := make([]map[string]any, 0, len(leads))
	ids := make([]string, 0, len(leads))
	for _, l := range leads {
		data = append(data, leadJSON(l))
		ids = append(ids, l.ID)
	}

	return &cli.Result{
		Data: data,
		IDs:  ids,
		Human: func(w io.Writer) {
			if len(leads) == 0 {
				fmt.Fprintln(w, "No leads found")
				return
			}
			for _, l := range leads {
				channel := l.SourceChannel
				if channel == "" {
					channel = models.DefaultSourceChannel
				}
				fmt.Fprintf(w, "%-24s %-28s %-12s %s\n", l.Name, l.Email, channel, l.ID)
			}
		},
	}, nil
}
