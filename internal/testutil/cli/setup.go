// Package cli wires CLI commands to a test App for integration tests
package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/funil/internal/app"
	"github.com/thenoetrevino/funil/internal/cli"
	"github.com/thenoetrevino/funil/internal/config"
	"github.com/thenoetrevino/funil/internal/testutil"
	"github.com/thenoetrevino/funil/internal/testutil/crm"
)

// SetupCLITest returns an App over an in-memory database talking to a fake
// CRM backend. Both are torn down when the test ends.
func SetupCLITest(t *testing.T, opts ...app.Option) (*app.App, *crm.Server) {
	t.Helper()

	srv := crm.NewServer(t)
	cfg := config.Default()
	cfg.APIURL = srv.URL

	opts = append([]app.Option{app.WithHTTPClient(srv.Client())}, opts...)
	testApp := app.New(testutil.SetupTestDB(t), cfg, opts...)
	t.Cleanup(func() { _ = testApp.Close() })
	return testApp, srv
}

// ExecuteCLICommand runs cmd with args against testApp and returns everything
// it wrote to stdout and stderr
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()
	return ExecuteCLICommandWithInput(t, testApp, cmd, args, "")
}

// ExecuteCLICommandWithInput is ExecuteCLICommand with input on stdin
func ExecuteCLICommandWithInput(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string, input string) (string, error) {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	var buf bytes.Buffer
	testutil.SetupCobraCommand(cmd, args)
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetIn(strings.NewReader(input))

	err := cmd.ExecuteContext(cli.WithApp(context.Background(), testApp))
	return buf.String(), err
}
