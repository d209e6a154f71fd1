package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"
)

// Result is what a command produced: the JSON payload, the IDs printed in
// quiet mode and the human-readable rendering.
type Result struct {
	Data  any
	IDs   []string
	Human func(w io.Writer)
}

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool
	Out   io.Writer
	Err   io.Writer
}

// NewFormatter builds a formatter from the --json and --quiet flags,
// writing to the command's configured streams.
func NewFormatter(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{
		JSON:  jsonOutput,
		Quiet: quietMode,
		Out:   cmd.OutOrStdout(),
		Err:   cmd.ErrOrStderr(),
	}
}

// AddOutputFlags registers --json and --quiet
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")
}

// Success outputs successful operation result
func (f *OutputFormatter) Success(r *Result) error {
	if r == nil {
		r = &Result{}
	}

	if f.Quiet {
		for _, id := range r.IDs {
			fmt.Fprintln(f.Out, id)
		}
		return nil
	}

	if f.JSON {
		return f.encode(map[string]any{
			"success": true,
			"data":    r.Data,
		})
	}

	if r.Human != nil {
		r.Human(f.Out)
		return nil
	}
	fmt.Fprintf(f.Out, "%+v\n", r.Data)
	return nil
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]any{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return f.encode(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	fmt.Fprintf(f.Err, "Error: %s\n", message)
	if suggestion != "" {
		fmt.Fprintf(f.Err, "Suggestion: %s\n", suggestion)
	}
	return nil
}

// Fail reports err and returns it wrapped with its exit code
func (f *OutputFormatter) Fail(err error) error {
	code, exit := Classify(err)
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		exit = exitErr.Code
	}
	if fmtErr := f.ErrorWithSuggestion(code, err.Error(), suggestionFor(code)); fmtErr != nil {
		return fmtErr
	}
	return &ExitError{Code: exit, Err: err}
}

func (f *OutputFormatter) encode(v any) error {
	data, err := sonic.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	_, err = fmt.Fprintln(f.Out, string(data))
	return err
}
