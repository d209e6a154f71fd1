package funnel

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/funil/internal/cli"
	"github.com/thenoetrevino/funil/internal/cli/handler"
	funnelservice "github.com/thenoetrevino/funil/internal/services/funnel"
)

// ListCmd returns the funnel list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List funnels",
		Long: `List funnels. The one the board opens on is marked with *.

Examples:
  funil funnel list
  funil funnel list --json
  funil funnel list --counts
`,
		Args: cobra.NoArgs,
		RunE: handler.Command(runList),
	}
	cmd.Flags().Bool("counts", false, "Fetch every funnel and show its lead count")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runList(ctx context.Context, c *cli.CLI, args *handler.Arguments) (*cli.Result, error) {
	withCounts, err := args.ParseBool("counts")
	if err != nil {
		return nil, err
	}

	funnels, err := c.App.FunnelService.List(ctx)
	if err != nil {
		return nil, err
	}

	var activeID string
	active, err := c.App.FunnelService.SelectActive(ctx, funnels)
	switch {
	case err == nil:
		activeID = active.ID
	case !errors.Is(err, funnelservice.ErrNoFunnels):
		return nil, err
	}

	ids := make([]string, 0, len(funnels))
	for _, f := range funnels {
		ids = append(ids, f.ID)
	}

	// The list endpoint returns summaries only; stages and leads need one fetch per funnel.
	if withCounts && len(ids) > 0 {
		if funnels, err = c.App.FunnelService.Details(ctx, ids); err != nil {
			return nil, err
		}
	}

	data := make([]map[string]any, 0, len(funnels))
	for _, f := range funnels {
		entry := funnelJSON(f, f.ID == activeID)
		if withCounts {
			entry["lead_count"] = f.LeadCount()
		}
		data = append(data, entry)
	}

	return &cli.Result{
		Data: data,
		IDs:  ids,
		Human: func(w io.Writer) {
			if len(funnels) == 0 {
				fmt.Fprintln(w, "No funnels yet. Create one with 'funil funnel create --name <name>'")
				return
			}
			for _, f := range funnels {
				marker := " "
				if f.ID == activeID {
					marker = "*"
				}
				if withCounts {
					fmt.Fprintf(w, "%s %s %s  (%s)  %d leads\n", marker, f.Icon, f.Name, f.ID, f.LeadCount())
					continue
				}
				fmt.Fprintf(w, "%s %s %s  (%s)\n", marker, f.Icon, f.Name, f.ID)
			}
		},
	}, nil
}
