package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	taskservice "github.com/thenoetrevino/funil/internal/services/task"
)

func newTestFormatter(jsonOutput, quiet bool) (*OutputFormatter, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return &OutputFormatter{JSON: jsonOutput, Quiet: quiet, Out: &out, Err: &errOut}, &out, &errOut
}

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var v map[string]any
	require.NoError(t, sonic.Unmarshal(buf.Bytes(), &v), "output: %s", buf.String())
	return v
}

// ============================================================================
// Success
// ============================================================================

func TestOutputFormatter_Success_JSON(t *testing.T) {
	f, out, _ := newTestFormatter(true, false)

	err := f.Success(&Result{
		Data: map[string]any{"id": "f1", "name": "Vendas"},
		IDs:  []string{"f1"},
	})
	require.NoError(t, err)

	got := decode(t, out)
	assert.Equal(t, true, got["success"])
	data := got["data"].(map[string]any)
	assert.Equal(t, "Vendas", data["name"])
}

func TestOutputFormatter_Success_Quiet(t *testing.T) {
	f, out, _ := newTestFormatter(true, true)

	require.NoError(t, f.Success(&Result{IDs: []string{"a", "b"}, Data: "ignored"}))
	assert.Equal(t, "a\nb\n", out.String(), "quiet wins over json")
}

func TestOutputFormatter_Success_HumanReadable(t *testing.T) {
	f, out, _ := newTestFormatter(false, false)

	require.NoError(t, f.Success(&Result{
		Data:  "raw",
		Human: func(w io.Writer) { fmt.Fprintln(w, "Funnel created") },
	}))
	assert.Equal(t, "Funnel created\n", out.String())
}

func TestOutputFormatter_Success_HumanFallback(t *testing.T) {
	f, out, _ := newTestFormatter(false, false)
	require.NoError(t, f.Success(&Result{Data: struct{ Name string }{"x"}}))
	assert.Equal(t, "{Name:x}\n", out.String())
}

func TestOutputFormatter_NilResult(t *testing.T) {
	f, out, _ := newTestFormatter(true, false)
	require.NoError(t, f.Success(nil))
	got := decode(t, out)
	assert.Equal(t, true, got["success"])
	assert.Nil(t, got["data"])
}

// ============================================================================
// Errors
// ============================================================================

func TestOutputFormatter_Error_JSON(t *testing.T) {
	f, out, errOut := newTestFormatter(true, false)

	require.NoError(t, f.ErrorWithSuggestion("NOT_FOUND", "task not found", "list tasks"))

	got := decode(t, out)
	assert.Equal(t, false, got["success"])
	errData := got["error"].(map[string]any)
	assert.Equal(t, "NOT_FOUND", errData["code"])
	assert.Equal(t, "task not found", errData["message"])
	assert.Equal(t, "list tasks", errData["suggestion"])
	assert.Empty(t, errOut.String())
}

func TestOutputFormatter_Error_HumanReadable(t *testing.T) {
	f, out, errOut := newTestFormatter(false, false)

	require.NoError(t, f.Error("ERROR", "boom"))
	assert.Empty(t, out.String())
	assert.Equal(t, "Error: boom\n", errOut.String())
}

func TestOutputFormatter_Fail(t *testing.T) {
	f, out, _ := newTestFormatter(true, false)

	err := f.Fail(fmt.Errorf("lookup: %w", taskservice.ErrTaskNotFound))

	assert.Equal(t, ExitNotFound, ExitCode(err))
	assert.ErrorIs(t, err, taskservice.ErrTaskNotFound)
	got := decode(t, out)
	assert.Equal(t, "NOT_FOUND", got["error"].(map[string]any)["code"])
}

func TestOutputFormatter_FailKeepsExplicitCode(t *testing.T) {
	f, _, errOut := newTestFormatter(false, false)

	err := f.Fail(UsageError("--name is required"))
	assert.Equal(t, ExitUsage, ExitCode(err))
	assert.Contains(t, errOut.String(), "--name is required")
}

func TestExitCode_Plain(t *testing.T) {
	assert.Equal(t, ExitSuccess, ExitCode(nil))
	assert.Equal(t, ExitFailure, ExitCode(errors.New("disk full")))
}
