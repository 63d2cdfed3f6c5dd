package cli_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/docforge/internal/cli"
	"github.com/yaklabco/docforge/pkg/builder"
	"github.com/yaklabco/docforge/pkg/markdown"
)

func runCommand(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	cmd := cli.NewRootCommand(cli.BuildInfo{Version: "test", Commit: "none", Date: "today"})
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestCompileCommandJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.md")
	require.NoError(t, os.WriteFile(path, []byte("# Heading\n\n- a\n- b\n"), 0o644))

	stdout, _, err := runCommand(t, "", "compile", path)
	require.NoError(t, err)

	var batch builder.Batch
	require.NoError(t, json.Unmarshal([]byte(stdout), &batch))
	require.NotEmpty(t, batch.Requests)

	first := batch.Requests[0].InsertText
	require.NotNil(t, first)
	assert.Equal(t, "Heading\n", first.Text)
}

func TestCompileCommandStdin(t *testing.T) {
	stdout, _, err := runCommand(t, "plain paragraph\n", "compile")
	require.NoError(t, err)

	var batch builder.Batch
	require.NoError(t, json.Unmarshal([]byte(stdout), &batch))
	require.Len(t, batch.Requests, 1)
}

func TestCompileCommandTableFormat(t *testing.T) {
	stdout, _, err := runCommand(t, "# T\n", "compile", "--format", "table", "--color", "never")
	require.NoError(t, err)
	assert.Contains(t, stdout, "insertText")
	assert.Contains(t, stdout, "updateParagraphStyle")
	assert.Contains(t, stdout, "operations")
}

func TestCompileCommandSummaryFormat(t *testing.T) {
	stdout, _, err := runCommand(t, "hello\n", "compile", "--format", "summary", "--color", "never")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Summary")
	assert.Contains(t, stdout, "Batch ready")
}

func TestCompileCommandStartIndex(t *testing.T) {
	stdout, _, err := runCommand(t, "hello\n", "compile", "--start-index", "50")
	require.NoError(t, err)

	var batch builder.Batch
	require.NoError(t, json.Unmarshal([]byte(stdout), &batch))
	require.NotNil(t, batch.Requests[0].InsertText)
	assert.Equal(t, int64(50), batch.Requests[0].InsertText.Location.Index)
}

func TestCompileCommandOutputFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "batch.json")

	_, _, err := runCommand(t, "hello\n", "compile", "-o", out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var batch builder.Batch
	require.NoError(t, json.Unmarshal(data, &batch))
	assert.Len(t, batch.Requests, 1)
}

func TestCompileCommandMalformedTable(t *testing.T) {
	_, _, err := runCommand(t, "| A |\n|---|\n|  |\n", "compile")
	require.Error(t, err)

	var parseErr *markdown.ParseError
	assert.ErrorAs(t, err, &parseErr)
	assert.Equal(t, cli.ExitParseError, cli.ExitCodeFromError(err))
}

func TestCompileCommandInvalidStyleFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "style.yml")
	require.NoError(t, os.WriteFile(path, []byte("code_background: purple\n"), 0o644))

	_, _, err := runCommand(t, "hello\n", "--style", path, "compile")
	require.Error(t, err)
	assert.Equal(t, cli.ExitConfigError, cli.ExitCodeFromError(err))
}

func TestCompileCommandInvalidFormat(t *testing.T) {
	_, _, err := runCommand(t, "hello\n", "compile", "--format", "xml")
	require.Error(t, err)
}

func TestPreviewCommand(t *testing.T) {
	stdout, _, err := runCommand(t, "# Hi\n\nsome *text*\n", "preview")
	require.NoError(t, err)
	assert.Contains(t, stdout, "<h1")
	assert.Contains(t, stdout, "<em>text</em>")
}

func TestPreviewCommandStandalone(t *testing.T) {
	stdout, _, err := runCommand(t, "---\ntitle: My Page\n---\nbody\n", "preview", "--standalone")
	require.NoError(t, err)
	assert.Contains(t, stdout, "<!DOCTYPE html>")
	assert.Contains(t, stdout, "<title>My Page</title>")
	assert.Contains(t, stdout, "</html>")
}

func TestInitCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "style.yml")

	_, _, err := runCommand(t, "", "init", "--output", out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "mono_font:")

	// Refuses to clobber without --force.
	_, _, err = runCommand(t, "", "init", "--output", out)
	require.Error(t, err)

	_, _, err = runCommand(t, "", "init", "--output", out, "--force")
	require.NoError(t, err)
}

func TestExitCodeFromError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, cli.ExitSuccess, cli.ExitCodeFromError(nil))
	assert.Equal(t, cli.ExitParseError, cli.ExitCodeFromError(&markdown.ParseError{Line: 1, Msg: "bad"}))
	assert.Equal(t, cli.ExitCompileError, cli.ExitCodeFromError(&builder.CompileError{Msg: "bad"}))
	assert.Equal(t, cli.ExitInternalError, cli.ExitCodeFromError(errors.New("other")))
}
