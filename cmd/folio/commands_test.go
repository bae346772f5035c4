package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	folioerrors "github.com/alexisbeaulieu97/folio/pkg/errors"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestRenderCommandWritesStaticDocument(t *testing.T) {
	out, err := execute(t, "render", "--color", "none", "--width", "120")
	require.NoError(t, err)

	assert.NotContains(t, out, "\x1b[")
	assert.Contains(t, out, "Alexandria Roberts")
	assert.Contains(t, out, "hello@alexandriaroberts.dev")
	assert.NotContains(t, out, "░")
}

func TestRenderCommandMounted(t *testing.T) {
	out, err := execute(t, "render", "--color", "none", "--mounted")
	require.NoError(t, err)
	assert.Contains(t, out, "░")
}

func TestRenderCommandThemes(t *testing.T) {
	dark, err := execute(t, "render", "--color", "none", "--theme", "dark")
	require.NoError(t, err)
	assert.Contains(t, dark, "☀")

	light, err := execute(t, "render", "--color", "none", "--theme", "light")
	require.NoError(t, err)
	assert.Contains(t, light, "☾")
}

func TestRenderCommandRejectsBadFlags(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		field string
	}{
		{name: "theme", args: []string{"render", "--theme", "sepia"}, field: "theme"},
		{name: "width", args: []string{"render", "--width", "0"}, field: "width"},
		{name: "color", args: []string{"render", "--color", "neon"}, field: "color"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)

			var validationErr *folioerrors.ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, tt.field, validationErr.Field)
		})
	}
}

func TestMarkdownCommandRaw(t *testing.T) {
	out, err := execute(t, "markdown", "--raw")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "# Alexandria Roberts"))
}

func TestMarkdownCommandStyled(t *testing.T) {
	out, err := execute(t, "markdown", "--style", "notty")
	require.NoError(t, err)
	assert.Contains(t, out, "Alexandria Roberts")
}

func TestRunFallsBackWithoutTerminal(t *testing.T) {
	original := stdoutIsTerminal
	t.Cleanup(func() { stdoutIsTerminal = original })
	stdoutIsTerminal = func() bool { return false }

	out, err := execute(t, "run")
	require.NoError(t, err)
	assert.Contains(t, out, "Alexandria Roberts")
}

func TestRunRejectsUnknownSection(t *testing.T) {
	_, err := execute(t, "run", "--section", "blog")

	var validationErr *folioerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "section", validationErr.Field)
}

func TestContentOverride(t *testing.T) {
	path := writeFile(t, "content.yaml", `
owner:
  name: Sam Example
  initials: SE
`)
	out, err := execute(t, "--content", path, "markdown", "--raw")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "# Sam Example"))
}

func TestContentRejectsUnknownIcon(t *testing.T) {
	path := writeFile(t, "content.yaml", `
experience:
  - title: Pilot
    icon: rocket
`)
	_, err := execute(t, "--content", path, "markdown", "--raw")
	require.Error(t, err)

	var validationErr *folioerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
}

func TestConfigParseErrorReportsLine(t *testing.T) {
	path := writeFile(t, "folio.yaml", "theme: dark\ndecorations: [\n")
	_, err := execute(t, "--config", path, "render")
	require.Error(t, err)

	var parseErr *folioerrors.ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, path, parseErr.Path)
}

func TestLogFileReceivesEntries(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "folio.log")
	_, err := execute(t, "--log-level", "debug", "--log-file", logPath, "render", "--color", "none")
	require.NoError(t, err)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "static render")
}

func TestRunWatchNeedsContentFile(t *testing.T) {
	_, err := execute(t, "run", "--watch")

	var validationErr *folioerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "watch", validationErr.Field)
}
