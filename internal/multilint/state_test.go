package multilint

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gkze/multilint/internal/tool"
)

func TestReportStore_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	store := NewReportStore(dir)

	report := NewReport()
	report.add(tool.Pyupgrade, tool.Success)
	report.add(tool.ISort, tool.PartialSuccess)
	report.add(tool.Black, tool.Failure)

	require.NoError(t, store.WriteReport(report))

	last, err := store.ReadLastRun()
	require.NoError(t, err)
	require.NotNil(t, last)

	assert.Equal(t, "failure", last.Overall)
	assert.Equal(t, []string{"pyupgrade", "isort", "black"}, last.Tools)
	assert.Equal(t, []string{"isort", "black"}, last.Failed)

	// Per-tool records exist on disk.
	_, err = os.Stat(filepath.Join(dir, "tools", "isort.json"))
	require.NoError(t, err)
}

func TestReportStore_SuccessfulRun(t *testing.T) {
	store := NewReportStore(t.TempDir())

	report := NewReport()
	report.add(tool.Black, tool.Success)

	require.NoError(t, store.WriteReport(report))

	last, err := store.ReadLastRun()
	require.NoError(t, err)
	assert.Equal(t, "success", last.Overall)
	assert.Empty(t, last.Failed)
}

func TestReportStore_MissingIsCleanState(t *testing.T) {
	store := NewReportStore(filepath.Join(t.TempDir(), "nope"))

	last, err := store.ReadLastRun()
	require.NoError(t, err)
	assert.Nil(t, last)
}

func TestReportStore_Reset(t *testing.T) {
	dir := t.TempDir()
	store := NewReportStore(dir)

	report := NewReport()
	report.add(tool.Black, tool.Success)
	require.NoError(t, store.WriteReport(report))

	require.NoError(t, store.Reset())

	last, err := store.ReadLastRun()
	require.NoError(t, err)
	assert.Nil(t, last)
}

func TestReport_EmptyIsSuccess(t *testing.T) {
	assert.True(t, NewReport().Success())
}
