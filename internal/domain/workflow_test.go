package domain

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/watchman/internal/adapter"
	adaptermocks "github.com/mouse-blink/watchman/internal/adapter/mocks"
	controllermocks "github.com/mouse-blink/watchman/internal/controller/mocks"
	m "github.com/mouse-blink/watchman/internal/model"
)

type workflowMocks struct {
	lineSets *adaptermocks.MockLineSetAdapter
	store    *adaptermocks.MockReportStore
	ui       *controllermocks.MockUI
	watcher  *adaptermocks.MockFileWatcher
	plotter  *adaptermocks.MockPlotter
	metrics  *adapter.Registry
}

func newTestWorkflow(t *testing.T) (Workflow, workflowMocks) {
	t.Helper()

	mocks := workflowMocks{
		lineSets: adaptermocks.NewMockLineSetAdapter(t),
		store:    adaptermocks.NewMockReportStore(t),
		ui:       controllermocks.NewMockUI(t),
		watcher:  adaptermocks.NewMockFileWatcher(t),
		plotter:  adaptermocks.NewMockPlotter(t),
		metrics:  adapter.NewMetrics(),
	}

	wf := NewWorkflow(mocks.lineSets, mocks.store, mocks.ui, mocks.metrics, mocks.watcher, mocks.plotter, nil)

	return wf, mocks
}

func expectLifecycle(ui *controllermocks.MockUI) {
	ui.On("Start", mock.Anything).Return(nil).Once()
	ui.On("Wait").Return().Once()
	ui.On("Close").Return().Once()
}

func gridSet(t *testing.T) m.LineSetFile {
	t.Helper()

	set, err := Preset("grid")
	require.NoError(t, err)

	return set
}

func reportNamed(name string, outcome m.Outcome) interface{} {
	return mock.MatchedBy(func(r m.Report) bool {
		return r.Name == name && r.Result.Outcome == outcome
	})
}

func TestWorkflow_Analyze(t *testing.T) {
	t.Run("displays every set in order", func(t *testing.T) {
		wf, mocks := newTestWorkflow(t)

		parallel, err := Preset("parallel")
		require.NoError(t, err)

		expectLifecycle(mocks.ui)
		mocks.ui.On("DisplayAnalysis", reportNamed("grid", m.OutcomeRoute), "").Return(nil).Once()
		mocks.ui.On("DisplayAnalysis", reportNamed("parallel", m.OutcomeNoRoute), "").Return(nil).Once()

		err = wf.Analyze(AnalyzeArgs{Sets: []m.LineSetFile{gridSet(t), parallel}})
		require.NoError(t, err)
	})

	t.Run("uses the set budget", func(t *testing.T) {
		wf, mocks := newTestWorkflow(t)

		set := gridSet(t)
		budget := 3
		set.Budget = &budget

		expectLifecycle(mocks.ui)
		mocks.ui.On("DisplayAnalysis", mock.MatchedBy(func(r m.Report) bool {
			return r.Result.Outcome == m.OutcomeBudgetExceeded && r.Budget != nil && *r.Budget == 3
		}), "").Return(nil).Once()

		require.NoError(t, wf.Analyze(AnalyzeArgs{Sets: []m.LineSetFile{set}}))
	})

	t.Run("plots when asked", func(t *testing.T) {
		wf, mocks := newTestWorkflow(t)

		set := gridSet(t)

		expectLifecycle(mocks.ui)
		mocks.plotter.On("Plot", set.Lines, mock.AnythingOfType("*model.Route")).Return("PLOT").Once()
		mocks.ui.On("DisplayAnalysis", mock.Anything, "PLOT").Return(nil).Once()

		require.NoError(t, wf.Analyze(AnalyzeArgs{Sets: []m.LineSetFile{set}, Plot: true}))
	})

	t.Run("saves reports and rebuilds the index", func(t *testing.T) {
		wf, mocks := newTestWorkflow(t)

		expectLifecycle(mocks.ui)
		mocks.ui.On("DisplayAnalysis", mock.Anything, "").Return(nil).Once()
		mocks.store.On("SaveReports", m.Path("out"), mock.MatchedBy(func(rs []m.Report) bool {
			return len(rs) == 1 && rs[0].Name == "grid"
		})).Return(nil).Once()
		mocks.store.On("RegenerateIndex", m.Path("out")).Return(nil).Once()

		require.NoError(t, wf.Analyze(AnalyzeArgs{Sets: []m.LineSetFile{gridSet(t)}, Save: true, Reports: "out"}))
	})

	t.Run("invalid set is reported and the rest still run", func(t *testing.T) {
		wf, mocks := newTestWorkflow(t)

		bad := m.LineSetFile{Name: "bad"}

		expectLifecycle(mocks.ui)
		mocks.ui.On("DisplayError", "bad", mock.Anything).Return().Once()
		mocks.ui.On("DisplayAnalysis", reportNamed("grid", m.OutcomeRoute), "").Return(nil).Once()

		err := wf.Analyze(AnalyzeArgs{Sets: []m.LineSetFile{bad, gridSet(t)}})
		require.ErrorIs(t, err, m.ErrInvalidInput)
		assert.Contains(t, err.Error(), "bad:")
	})

	t.Run("start failure", func(t *testing.T) {
		wf, mocks := newTestWorkflow(t)

		mocks.ui.On("Start", mock.Anything).Return(errors.New("no tty")).Once()

		err := wf.Analyze(AnalyzeArgs{Sets: []m.LineSetFile{gridSet(t)}})
		assert.EqualError(t, err, "no tty")
	})
}

func TestWorkflow_Run(t *testing.T) {
	t.Run("analyses files and keeps going past failures", func(t *testing.T) {
		wf, mocks := newTestWorkflow(t)

		loadErr := errors.New("missing file")

		mocks.lineSets.On("Load", m.Path("grid.yaml")).Return(gridSet(t), nil).Once()
		mocks.lineSets.On("Load", m.Path("gone.yaml")).Return(m.LineSetFile{}, loadErr).Once()

		expectLifecycle(mocks.ui)
		mocks.ui.On("DisplayAnalysis", reportNamed("grid", m.OutcomeBudgetExceeded), "").Return(nil).Once()
		mocks.ui.On("DisplayError", "gone.yaml", loadErr).Return().Once()
		mocks.store.On("SaveReports", m.Path("reports"), mock.MatchedBy(func(rs []m.Report) bool {
			return len(rs) == 1
		})).Return(nil).Once()
		mocks.store.On("RegenerateIndex", m.Path("reports")).Return(nil).Once()

		budget := 2
		err := wf.Run(RunArgs{
			Files:   []m.Path{"grid.yaml", "gone.yaml"},
			Budget:  &budget,
			Threads: 2,
			Reports: "reports",
		})

		require.ErrorIs(t, err, loadErr)
	})

	t.Run("results keep file order", func(t *testing.T) {
		wf, mocks := newTestWorkflow(t)

		names := []string{"grid-fan", "grid", "mixed-5", "parallel"}
		files := make([]m.Path, 0, len(names))

		var (
			mu    sync.Mutex
			shown []string
		)

		for _, name := range names {
			set, err := Preset(name)
			require.NoError(t, err)

			path := m.Path(name + ".yaml")
			files = append(files, path)
			mocks.lineSets.On("Load", path).Return(set, nil).Once()
		}

		expectLifecycle(mocks.ui)
		mocks.ui.On("DisplayAnalysis", mock.Anything, "").Run(func(args mock.Arguments) {
			mu.Lock()
			defer mu.Unlock()

			shown = append(shown, args.Get(0).(m.Report).Name)
		}).Return(nil).Times(len(names))
		mocks.store.On("SaveReports", m.Path("r"), mock.Anything).Return(nil).Once()
		mocks.store.On("RegenerateIndex", m.Path("r")).Return(nil).Once()

		require.NoError(t, wf.Run(RunArgs{Files: files, Threads: 3, Reports: "r"}))
		assert.Equal(t, names, shown)
	})

	t.Run("save failure is returned", func(t *testing.T) {
		wf, mocks := newTestWorkflow(t)

		mocks.lineSets.On("Load", m.Path("grid.yaml")).Return(gridSet(t), nil).Once()
		expectLifecycle(mocks.ui)
		mocks.ui.On("DisplayAnalysis", mock.Anything, "").Return(nil).Once()
		mocks.store.On("SaveReports", m.Path("r"), mock.Anything).Return(errors.New("disk full")).Once()

		err := wf.Run(RunArgs{Files: []m.Path{"grid.yaml"}, Reports: "r"})
		assert.ErrorContains(t, err, "save reports: disk full")
	})
}

func TestWorkflow_ListPresets(t *testing.T) {
	wf, mocks := newTestWorkflow(t)

	expectLifecycle(mocks.ui)
	mocks.ui.On("DisplayReports", mock.MatchedBy(func(rs []m.Report) bool {
		return len(rs) == len(PresetNames()) && rs[0].Name == "grid"
	})).Return(nil).Once()

	require.NoError(t, wf.ListPresets())
}

func TestWorkflow_View(t *testing.T) {
	t.Run("shows stored reports", func(t *testing.T) {
		wf, mocks := newTestWorkflow(t)

		stored := []m.Report{{Name: "grid"}}

		mocks.store.On("LoadReports", m.Path("r")).Return(stored, nil).Once()
		expectLifecycle(mocks.ui)
		mocks.ui.On("DisplayReports", stored).Return(nil).Once()

		require.NoError(t, wf.View(ViewArgs{Reports: "r"}))
	})

	t.Run("load failure", func(t *testing.T) {
		wf, mocks := newTestWorkflow(t)

		mocks.store.On("LoadReports", m.Path("r")).Return(nil, errors.New("corrupt")).Once()

		assert.ErrorContains(t, wf.View(ViewArgs{Reports: "r"}), "load reports: corrupt")
	})

	t.Run("clean", func(t *testing.T) {
		wf, mocks := newTestWorkflow(t)

		mocks.store.On("CleanReports", m.Path("r")).Return(nil).Once()

		require.NoError(t, wf.View(ViewArgs{Reports: "r", Clean: true}))
	})
}

func TestWorkflow_Watch(t *testing.T) {
	t.Run("analyses on start and on every change", func(t *testing.T) {
		wf, mocks := newTestWorkflow(t)

		mocks.ui.On("Start", mock.Anything).Return(nil).Once()
		mocks.ui.On("Close").Return().Once()
		mocks.ui.On("Done").Return(nil).Maybe()
		mocks.lineSets.On("Load", m.Path("grid.yaml")).Return(gridSet(t), nil).Twice()
		mocks.ui.On("DisplayAnalysis", reportNamed("grid", m.OutcomeRoute), "").Return(nil).Twice()
		mocks.watcher.On("Watch", mock.Anything, m.Path("grid.yaml"), mock.Anything).
			Run(func(args mock.Arguments) {
				args.Get(2).(func())()
			}).
			Return(nil).Once()

		require.NoError(t, wf.Watch(context.Background(), WatchArgs{File: "grid.yaml"}))
	})

	t.Run("load errors are shown and watching continues", func(t *testing.T) {
		wf, mocks := newTestWorkflow(t)

		loadErr := errors.New("yaml: line 3")

		mocks.ui.On("Start", mock.Anything).Return(nil).Once()
		mocks.ui.On("Close").Return().Once()
		mocks.ui.On("Done").Return(nil).Maybe()
		mocks.lineSets.On("Load", m.Path("grid.yaml")).Return(m.LineSetFile{}, loadErr).Once()
		mocks.ui.On("DisplayError", "grid.yaml", loadErr).Return().Once()
		mocks.watcher.On("Watch", mock.Anything, m.Path("grid.yaml"), mock.Anything).Return(nil).Once()

		require.NoError(t, wf.Watch(context.Background(), WatchArgs{File: "grid.yaml"}))
	})
}

func TestWorkflow_Witness(t *testing.T) {
	t.Run("triangle", func(t *testing.T) {
		wf, mocks := newTestWorkflow(t)

		expectLifecycle(mocks.ui)
		mocks.ui.On("DisplayWitness", "tri", mock.MatchedBy(func(w m.Witness) bool {
			return w.Shape == m.ShapeTriangle && w.Area == 1
		}), "").Return(nil).Once()

		require.NoError(t, wf.Witness(WitnessArgs{Name: "tri", Lines: lines(0, 0, 1, 0, -1, 2), Shape: WitnessTriangle}))
	})

	t.Run("grid search on a non grid", func(t *testing.T) {
		wf, mocks := newTestWorkflow(t)

		expectLifecycle(mocks.ui)
		mocks.ui.On("DisplayWitness", "x", m.Witness{}, WitnessVerdict(m.ShapeQuadrilateral, ErrNotGrid)).Return(nil).Once()

		require.NoError(t, wf.Witness(WitnessArgs{Name: "x", Lines: lines(1, 0, 2, 0, 3, 0), Shape: WitnessGrid}))
	})

	t.Run("quadrilateral with too few lines", func(t *testing.T) {
		wf, mocks := newTestWorkflow(t)

		expectLifecycle(mocks.ui)
		mocks.ui.On("DisplayWitness", "x", m.Witness{}, VerdictNoShape).Return(nil).Once()

		require.NoError(t, wf.Witness(WitnessArgs{Name: "x", Lines: lines(1, 0, 2, 0), Shape: WitnessQuadrilateral}))
	})

	t.Run("unknown shape", func(t *testing.T) {
		wf, _ := newTestWorkflow(t)

		err := wf.Witness(WitnessArgs{Lines: lines(1, 0), Shape: "hexagon"})
		assert.ErrorIs(t, err, m.ErrInvalidInput)
	})

	t.Run("invalid lines", func(t *testing.T) {
		wf, _ := newTestWorkflow(t)

		err := wf.Witness(WitnessArgs{Shape: WitnessTriangle})
		assert.ErrorIs(t, err, m.ErrInvalidInput)
	})
}
