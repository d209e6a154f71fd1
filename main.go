package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/thenoetrevino/funil/cmd"
	"github.com/thenoetrevino/funil/internal/cli"
)

func main() {
	if err := cmd.Execute(); err != nil {
		// command errors were already printed by the output formatter
		var exitErr *cli.ExitError
		if !errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(cli.ExitCode(err))
	}
}
