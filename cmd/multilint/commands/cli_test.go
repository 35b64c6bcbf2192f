package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gkze/multilint/cmd/multilint/internal/clierr"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestToolsCommand(t *testing.T) {
	out, err := execute(t, "tools")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, []string{
		"pyupgrade",
		"autoflake",
		"isort",
		"black",
		"mypy",
		"pylint",
		"pydocstyle",
	}, lines)
}

func TestToolsCommandJSON(t *testing.T) {
	out, err := execute(t, "tools", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"tools"`)
	assert.Contains(t, out, `"pyupgrade"`)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "multilint version")
}

func TestRun_NoConfigIsConfigError(t *testing.T) {
	_, err := execute(t, "--config-dir", t.TempDir())
	require.Error(t, err)
	assert.Equal(t, exitConfigError, clierr.ExitCodeOf(err))
}

func TestReport_NoConfigIsConfigError(t *testing.T) {
	_, err := execute(t, "report", "--config-dir", t.TempDir())
	require.Error(t, err)
	assert.Equal(t, exitConfigError, clierr.ExitCodeOf(err))
}
