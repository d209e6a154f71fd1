package funnel

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/funil/internal/cli"
	"github.com/thenoetrevino/funil/internal/cli/handler"
	funnelservice "github.com/thenoetrevino/funil/internal/services/funnel"
)

// CreateCmd returns the funnel create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new funnel",
		Long: `Create a funnel. Without --stage the funnel gets the default stages:
Prospecção, Qualificação, Proposta, Negociação, Fechamento.

Examples:
  funil funnel create --name="Parcerias"

  FUNNEL_ID=$(funil funnel create --name="Eventos" --stage=Contato --stage=Fechado --quiet)

  funil funnel create --name="Vendas B2B" --icon="🏢" --color="#3B82F6" --json
`,
		Args: cobra.NoArgs,
		RunE: handler.Command(runCreate),
	}

	cmd.Flags().String("name", "", "Funnel name (required)")
	cmd.Flags().String("description", "", "Funnel description")
	cmd.Flags().String("icon", "", "Icon shown next to the name")
	cmd.Flags().String("color", "", "Color in #RRGGBB format")
	cmd.Flags().StringSlice("stage", nil, "Stage name, in order (repeatable)")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runCreate(ctx context.Context, c *cli.CLI, args *handler.Arguments) (*cli.Result, error) {
	name, err := args.ParseString("name")
	if err != nil {
		return nil, err
	}
	description, err := args.ParseStringOptional("description")
	if err != nil {
		return nil, err
	}
	icon, err := args.ParseStringOptional("icon")
	if err != nil {
		return nil, err
	}
	color, err := args.ParseColor("color")
	if err != nil {
		return nil, err
	}
	stages, err := args.ParseStringSlice("stage")
	if err != nil {
		return nil, err
	}

	f, err := c.App.FunnelService.Create(ctx, funnelservice.CreateFunnelRequest{
		Name:        name,
		Description: description,
		Icon:        icon,
		Color:       color,
		Stages:      stages,
	})
	if err != nil {
		return nil, err
	}

	return &cli.Result{
		Data: funnelJSON(f, false),
		IDs:  []string{f.ID},
		Human: func(w io.Writer) {
			fmt.Fprintf(w, "Funnel '%s' created (ID: %s)\n", f.Name, f.ID)
			for i, st := range f.Stages {
				fmt.Fprintf(w, "  %d. %s\n", i+1, st.Name)
			}
		},
	}, nil
}
