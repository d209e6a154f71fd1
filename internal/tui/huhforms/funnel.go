package huhforms

import (
	"errors"
	"strings"

	"charm.land/huh/v2"

	"github.com/thenoetrevino/funil/internal/models"
)

// CreateFunnelForm creates a huh form for adding a new funnel.
// Stages are entered comma separated; empty means the default stages.
func CreateFunnelForm(
	name *string,
	description *string,
	stages *string,
	confirm *bool,
) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Key("name").
			Title("Funnel Name").
			Placeholder("Enter funnel name...").
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return errors.New("name is required")
				}
				return nil
			}).
			Value(name),

		huh.NewText().
			Key("description").
			Title("Description (optional)").
			Placeholder("What is this funnel for?").
			CharLimit(500).
			Lines(3).
			Value(description),

		huh.NewInput().
			Key("stages").
			Title("Stages").
			Description("Comma separated, in order").
			Placeholder(strings.Join(models.DefaultStageNames, ", ")).
			Value(stages),

		huh.NewConfirm().
			Key("confirm").
			Title("Create this funnel?").
			Affirmative("Yes").
			Negative("No").
			Value(confirm),
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	return form.WithKeyMap(FormKeyMap())
}

// SplitStages turns "a, b,,c" into [a b c]
func SplitStages(s string) []string {
	var stages []string
	for part := range strings.SplitSeq(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			stages = append(stages, part)
		}
	}
	return stages
}
