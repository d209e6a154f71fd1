package funnel

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/funil/internal/cli"
	"github.com/thenoetrevino/funil/internal/cli/handler"
)

// RenameStageCmd returns the funnel rename-stage subcommand
func RenameStageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename-stage <funnel-id-or-name> <stage-id-or-name>",
		Short: "Rename a funnel stage",
		Long: `Rename a stage. A blank or unchanged name does nothing.

Examples:
  funil funnel rename-stage Vendas Proposta --name="Proposta enviada"
`,
		Args: cobra.ExactArgs(2),
		RunE: handler.Command(runRenameStage),
	}
	cmd.Flags().String("name", "", "New stage name")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runRenameStage(ctx context.Context, c *cli.CLI, args *handler.Arguments) (*cli.Result, error) {
	name, err := args.ParseStringOptional("name")
	if err != nil {
		return nil, err
	}

	f, err := c.App.FunnelService.Find(ctx, args.Arg(0))
	if err != nil {
		return nil, err
	}

	sync := c.App.FunnelBoard()
	if err := sync.Load(ctx, f.ID); err != nil {
		return nil, err
	}
	col, err := findColumn(sync.Snapshot(), args.Arg(1))
	if err != nil {
		return nil, err
	}
	oldName := col.Name

	if err := sync.RenameColumn(ctx, col.ID, name); err != nil {
		return nil, err
	}
	renamed := sync.Snapshot().Column(col.ID)

	return &cli.Result{
		Data: map[string]any{"id": renamed.ID, "name": renamed.Name, "funnel_id": f.ID},
		IDs:  []string{renamed.ID},
		Human: func(w io.Writer) {
			if renamed.Name == oldName {
				fmt.Fprintf(w, "Stage '%s' unchanged\n", oldName)
				return
			}
			fmt.Fprintf(w, "Stage '%s' renamed to '%s'\n", oldName, renamed.Name)
		},
	}, nil
}
