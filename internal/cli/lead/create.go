package lead

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/funil/internal/board"
	"github.com/thenoetrevino/funil/internal/cli"
	"github.com/thenoetrevino/funil/internal/cli/handler"
	funnelservice "github.com/thenoetrevino/funil/internal/services/funnel"
)

// CreateCmd returns the lead create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new lead",
		Long: `Create a lead in a funnel. Without --stage the lead lands in the
funnel's first stage.

Examples:
  funil lead create --name="Maria Souza" --funnel=Vendas

  funil lead create --name="João" --email=joao@x.com --phone="+55 11 99999-0000" \
    --channel=Indicação --funnel=Vendas --stage=Proposta
`,
		Args: cobra.NoArgs,
		RunE: handler.Command(runCreate),
	}

	cmd.Flags().String("name", "", "Lead name (required)")
	cmd.Flags().String("email", "", "Email")
	cmd.Flags().String("phone", "", "Phone")
	cmd.Flags().String("channel", "", "Source channel (default Orgânico)")
	cmd.Flags().String("funnel", "", "Funnel ID or name (required)")
	cmd.Flags().String("stage", "", "Stage ID or name (default: first stage)")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runCreate(ctx context.Context, c *cli.CLI, args *handler.Arguments) (*cli.Result, error) {
	name, err := args.ParseString("name")
	if err != nil {
		return nil, err
	}
	funnelRef, err := args.ParseString("funnel")
	if err != nil {
		return nil, err
	}
	req := funnelservice.CreateLeadRequest{Name: name}
	if req.Email, err = args.ParseStringOptional("email"); err != nil {
		return nil, err
	}
	if req.Phone, err = args.ParseStringOptional("phone"); err != nil {
		return nil, err
	}
	if req.SourceChannel, err = args.ParseStringOptional("channel"); err != nil {
		return nil, err
	}
	stageRef, err := args.ParseStringOptional("stage")
	if err != nil {
		return nil, err
	}

	f, err := c.App.FunnelService.Find(ctx, funnelRef)
	if err != nil {
		return nil, err
	}
	req.FunnelID = f.ID

	stageName := ""
	if stageRef = strings.TrimSpace(stageRef); stageRef != "" {
		for _, st := range f.Stages {
			if st.ID == stageRef || strings.EqualFold(st.Name, stageRef) {
				req.StageID, stageName = st.ID, st.Name
				break
			}
		}
		if req.StageID == "" {
			return nil, fmt.Errorf("%w: stage %s in funnel %s", board.ErrColumnNotFound, stageRef, f.Name)
		}
	} else if len(f.Stages) > 0 {
		stageName = f.Stages[0].Name
	}

	lead, err := c.App.FunnelService.CreateLead(ctx, req)
	if err != nil {
		return nil, err
	}

	return &cli.Result{
		Data: leadJSON(lead),
		IDs:  []string{lead.ID},
		Human: func(w io.Writer) {
			fmt.Fprintf(w, "Lead '%s' created (ID: %s)\n", lead.Name, lead.ID)
			fmt.Fprintf(w, "  Funnel: %s\n", f.Name)
			if stageName != "" {
				fmt.Fprintf(w, "  Stage: %s\n", stageName)
			}
		},
	}, nil
}
