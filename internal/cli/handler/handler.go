// Package handler provides command execution abstraction to reduce boilerplate
package handler

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/funil/internal/cli"
)

// Func runs a command against the application container
type Func func(ctx context.Context, c *cli.CLI, args *Arguments) (*cli.Result, error)

// Arguments captures positional arguments and gives typed access to flags
type Arguments struct {
	*FlagParser
	Args []string
}

// Arg returns the i-th positional argument or an empty string
func (a *Arguments) Arg(i int) string {
	if i < 0 || i >= len(a.Args) {
		return ""
	}
	return a.Args[i]
}

// Command wraps common command execution logic.
// Returns a cobra RunE compatible function.
func Command(fn Func) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		formatter := cli.NewFormatter(cmd)

		cliInstance, err := cli.GetCLIFromContext(ctx)
		if err != nil {
			return formatter.Fail(err)
		}
		defer func() {
			if err := cliInstance.Close(); err != nil {
				slog.Error("error closing CLI", "error", err)
			}
		}()

		arguments := &Arguments{
			FlagParser: NewFlagParser(cmd),
			Args:       args,
		}

		result, err := fn(ctx, cliInstance, arguments)
		if err != nil {
			return formatter.Fail(err)
		}

		return formatter.Success(result)
	}
}
