package domain

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/watchman/internal/adapter"
	"github.com/mouse-blink/watchman/internal/controller"
	m "github.com/mouse-blink/watchman/internal/model"
)

func newLocalWorkflow(t *testing.T) (Workflow, *bytes.Buffer) {
	t.Helper()

	var out bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	cfg, err := adapter.LoadConfig("../../examples/watchman.yaml")
	require.NoError(t, err)

	wf := NewWorkflow(
		adapter.NewLocalLineSetAdapter(),
		adapter.NewReportStore(nil),
		controller.NewSimpleUI(cmd),
		adapter.NewMetrics(),
		adapter.NewFileWatcher(0, nil),
		adapter.NewPlotter(cfg.Plot),
		nil,
	)

	return wf, &out
}

func TestRun_ExampleFiles(t *testing.T) {
	wf, out := newLocalWorkflow(t)
	reports := m.Path(t.TempDir())

	files, err := filepath.Glob("../../examples/*.yaml")
	require.NoError(t, err)

	var sets []m.Path

	for _, f := range files {
		if filepath.Base(f) != "watchman.yaml" {
			sets = append(sets, m.Path(f))
		}
	}

	require.Len(t, sets, 4)
	require.NoError(t, wf.Run(RunArgs{Files: sets, Threads: 2, Reports: reports, Plot: true}))

	output := out.String()
	for _, want := range []string{
		VerdictFourLinks,
		VerdictTwoLinks,
		VerdictNoRoute,
		BudgetVerdict(2),
		"watchman route (4 links)",
	} {
		assert.Contains(t, output, want)
	}

	stored, err := adapter.NewReportStore(nil).LoadReports(reports)
	require.NoError(t, err)
	assert.Len(t, stored, 4)
	assert.FileExists(t, filepath.Join(string(reports), "_index.yaml"))

	require.NoError(t, wf.View(ViewArgs{Reports: reports}))
	assert.Contains(t, out.String(), "TOTAL 4")

	require.NoError(t, wf.View(ViewArgs{Reports: reports, Clean: true}))

	stored, err = adapter.NewReportStore(nil).LoadReports(reports)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestListPresets_Local(t *testing.T) {
	wf, out := newLocalWorkflow(t)

	require.NoError(t, wf.ListPresets())

	output := out.String()
	for _, name := range PresetNames() {
		assert.Contains(t, output, name)
	}

	assert.Equal(t, 1, strings.Count(output, "TOTAL 7"))
}
