package testutil

import (
	"bytes"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"
)

// ExecuteCommand runs a cobra command and returns what it wrote to its output
func ExecuteCommand(t *testing.T, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	SetupCobraCommand(cmd, args)
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)

	err := cmd.Execute()
	return buf.String(), err
}

// ParseJSON parses JSON object output from CLI commands
func ParseJSON(t *testing.T, output string) map[string]any {
	t.Helper()

	var result map[string]any
	if err := sonic.UnmarshalString(output, &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, output)
	}

	return result
}

// ParseJSONArray parses JSON array output from CLI commands
func ParseJSONArray(t *testing.T, output string) []any {
	t.Helper()

	var result []any
	if err := sonic.UnmarshalString(output, &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, output)
	}

	return result
}

// SetupCobraCommand sets up a cobra command with args for testing
func SetupCobraCommand(cmd *cobra.Command, args []string) {
	cmd.SetArgs(args)
	// Disable usage output on error for cleaner test output
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
}
