package funnel

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/funil/internal/board"
	"github.com/thenoetrevino/funil/internal/cli"
	"github.com/thenoetrevino/funil/internal/cli/handler"
)

// MoveLeadCmd returns the funnel move-lead subcommand
func MoveLeadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move-lead <funnel-id-or-name> <lead-id>",
		Short: "Move a lead to another stage",
		Long: `Move a lead to another stage of its funnel. When the backend rejects
the move, the funnel is reloaded and the command fails. Naming the lead's
current stage does nothing.

Examples:
  funil funnel move-lead Vendas lead-42 --stage=Negociação
  funil funnel move-lead Vendas lead-42 --stage=Negociação --index=0
`,
		Args: cobra.ExactArgs(2),
		RunE: handler.Command(runMoveLead),
	}
	cmd.Flags().String("stage", "", "Destination stage ID or name (required)")
	cmd.Flags().Int("index", -1, "Position in the destination stage (default: last)")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runMoveLead(ctx context.Context, c *cli.CLI, args *handler.Arguments) (*cli.Result, error) {
	stageRef, err := args.ParseString("stage")
	if err != nil {
		return nil, err
	}
	index, err := args.ParseIntOptional("index")
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
	b := sync.Snapshot()

	leadID := args.Arg(1)
	dst, err := findColumn(b, stageRef)
	if err != nil {
		return nil, err
	}
	mv, err := board.MoveTo(b, leadID, dst.ID, index)
	if err != nil {
		return nil, err
	}
	from := b.Column(mv.SourceColumnID)

	// The backend stores only a lead's stage, so a reorder inside the
	// current stage would not survive a reload.
	moved := mv.SourceColumnID != mv.DestColumnID
	if moved {
		pending, err := sync.Move(mv)
		if err != nil {
			return nil, err
		}
		if res := pending.Persist(ctx); res.Err != nil {
			return nil, res.Err
		}
	}
	return &cli.Result{
		Data: map[string]any{
			"lead_id":   leadID,
			"funnel_id": f.ID,
			"from":      from.Name,
			"to":        dst.Name,
			"moved":     moved,
		},
		IDs: []string{leadID},
		Human: func(w io.Writer) {
			if !moved {
				fmt.Fprintf(w, "Lead already in '%s'\n", dst.Name)
				return
			}
			fmt.Fprintf(w, "Lead moved from '%s' to '%s'\n", from.Name, dst.Name)
		},
	}, nil
}
