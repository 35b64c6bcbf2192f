package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gkze/multilint/internal/tool"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFind_WalksAncestors(t *testing.T) {
	root := t.TempDir()
	want := writeConfig(t, root, "tool: {}\n")

	nested := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	got, err := Find(nested)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFind_PrefersNearest(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "tool: {}\n")

	nested := filepath.Join(root, "sub")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	want := writeConfig(t, nested, "tool: {}\n")

	got, err := Find(nested)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFind_NotFound(t *testing.T) {
	_, err := Find(t.TempDir())
	require.ErrorIs(t, err, ErrNotFound)
}

func TestLoad_ParsesSections(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, `
tool:
  multilint:
    src_paths:
      - src
      - "*.py"
    tool_order:
      - black
      - mypy
  pyupgrade:
    min_version: "3.8"
    keep_mock: true
`)

	f, err := Load(root)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, FileName), f.Path())

	ml := f.Tool(tool.Multilint)
	assert.Equal(t, []string{"src", "*.py"}, ml.Strings("src_paths"))
	assert.Equal(t, []string{"black", "mypy"}, ml.Strings("tool_order"))

	pu := f.Tool(tool.Pyupgrade)
	v, ok := pu.String("min_version")
	assert.True(t, ok)
	assert.Equal(t, "3.8", v)
	b, ok := pu.Bool("keep_mock")
	assert.True(t, ok)
	assert.True(t, b)
}

func TestLoad_AbsentSectionIsEmpty(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "tool:\n  multilint: {}\n")

	f, err := Load(root)
	require.NoError(t, err)

	cfg := f.Tool(tool.Black)
	assert.NotNil(t, cfg)
	assert.Empty(t, cfg)
}

func TestLoad_Malformed(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "tool: [not: a: mapping\n")

	_, err := Load(root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing")
}

func TestLoad_Absent(t *testing.T) {
	_, err := Load(t.TempDir())
	require.ErrorIs(t, err, ErrNotFound)
}
