package funnel

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/funil/internal/cli"
	"github.com/thenoetrevino/funil/internal/cli/handler"
	"github.com/thenoetrevino/funil/internal/cli/styles"
	"github.com/thenoetrevino/funil/internal/models"
)

// ShowCmd returns the funnel show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <funnel-id-or-name>",
		Short: "Show a funnel's stages and leads",
		Args:  cobra.ExactArgs(1),
		RunE:  handler.Command(runShow),
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func runShow(ctx context.Context, c *cli.CLI, args *handler.Arguments) (*cli.Result, error) {
	f, err := c.App.FunnelService.Find(ctx, args.Arg(0))
	if err != nil {
		return nil, err
	}

	return &cli.Result{
		Data:  funnelJSON(f, false),
		IDs:   []string{f.ID},
		Human: func(w io.Writer) { printFunnel(w, f) },
	}, nil
}

func printFunnel(w io.Writer, f *models.Funnel) {
	fmt.Fprintln(w, styles.TitleStyle.Render(f.Icon+" "+f.Name))
	if f.Description != "" {
		fmt.Fprintln(w, styles.SubtitleStyle.Render(f.Description))
	}
	fmt.Fprintln(w, styles.Field("Leads", fmt.Sprint(f.LeadCount())))
	for _, st := range f.Stages {
		fmt.Fprintln(w, styles.SectionStyle.Render(fmt.Sprintf("%s (%d)  %s", st.Name, len(st.Leads), st.ID)))
		for _, l := range st.Leads {
			channel := l.SourceChannel
			if channel == "" {
				channel = models.DefaultSourceChannel
			}
			fmt.Fprintf(w, "  - %s  %s  [%s]  (%s)\n", l.Name, l.Email, channel, l.ID)
		}
	}
}
