package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/watchman/internal/adapter"
	"github.com/mouse-blink/watchman/internal/controller"
	m "github.com/mouse-blink/watchman/internal/model"
)

// WitnessShape selects a standalone witness search.
type WitnessShape string

// Available witness searches.
const (
	WitnessTriangle      WitnessShape = "triangle"
	WitnessQuadrilateral WitnessShape = "quad"
	WitnessGrid          WitnessShape = "grid"
)

// AnalyzeArgs holds the line sets to analyse in one go.
type AnalyzeArgs struct {
	Sets    []m.LineSetFile
	Plot    bool
	Save    bool
	Reports m.Path
}

// RunArgs describes a batch run over line-set files.
type RunArgs struct {
	Files []m.Path
	// Budget, when set, replaces the budget stored in each file.
	Budget  *int
	Threads int
	Reports m.Path
	Plot    bool
}

// ViewArgs points at a reports directory.
type ViewArgs struct {
	Reports m.Path
	Clean   bool
}

// WatchArgs describes a line-set file to re-analyse on change.
type WatchArgs struct {
	File   m.Path
	Budget *int
	Plot   bool
}

// WitnessArgs runs a single witness search.
type WitnessArgs struct {
	Name  string
	Lines m.LineSet
	Shape WitnessShape
}

// Workflow defines the operations behind the CLI commands.
type Workflow interface {
	Analyze(args AnalyzeArgs) error
	Run(args RunArgs) error
	ListPresets() error
	View(args ViewArgs) error
	Watch(ctx context.Context, args WatchArgs) error
	Witness(args WitnessArgs) error
}

type workflow struct {
	lineSets adapter.LineSetAdapter
	store    adapter.ReportStore
	ui       controller.UI
	metrics  adapter.Metrics
	watcher  adapter.FileWatcher
	plotter  adapter.Plotter
	logger   *slog.Logger
	now      func() time.Time
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(
	lineSets adapter.LineSetAdapter,
	store adapter.ReportStore,
	ui controller.UI,
	metrics adapter.Metrics,
	watcher adapter.FileWatcher,
	plotter adapter.Plotter,
	logger *slog.Logger,
) Workflow {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &workflow{
		lineSets: lineSets,
		store:    store,
		ui:       ui,
		metrics:  metrics,
		watcher:  watcher,
		plotter:  plotter,
		logger:   logger,
		now:      time.Now,
	}
}

// Analyze runs the kernel on every set and displays the results in order.
func (w *workflow) Analyze(args AnalyzeArgs) error {
	if err := w.ui.Start(controller.WithAnalyzeMode()); err != nil {
		return err
	}

	var (
		reports []m.Report
		errs    []error
	)

	for _, set := range args.Sets {
		report, err := w.analyzeSet(set, nil)
		if err != nil {
			w.ui.DisplayError(set.Name, err)
			errs = append(errs, fmt.Errorf("%s: %w", set.Name, err))

			continue
		}

		if err := w.ui.DisplayAnalysis(report, w.plot(args.Plot, report)); err != nil {
			errs = append(errs, err)
		}

		reports = append(reports, report)
	}

	if args.Save {
		errs = append(errs, w.save(args.Reports, reports))
	}

	w.ui.Wait()
	w.ui.Close()

	return errors.Join(errs...)
}

// Run loads and analyses files concurrently, at most args.Threads at a time.
// A file that fails to load or analyse is reported and does not stop the others.
func (w *workflow) Run(args RunArgs) error {
	threads := args.Threads
	if threads <= 0 {
		threads = 1
	}

	type outcome struct {
		name   string
		report m.Report
		err    error
	}

	results := make([]outcome, len(args.Files))

	var g errgroup.Group

	g.SetLimit(threads)

	for i, file := range args.Files {
		g.Go(func() error {
			set, err := w.lineSets.Load(file)
			if err != nil {
				w.metrics.RecordFailure("load")
				results[i] = outcome{name: string(file), err: err}

				return nil
			}

			report, err := w.analyzeSet(set, args.Budget)
			results[i] = outcome{name: set.Name, report: report, err: err}

			return nil
		})
	}

	_ = g.Wait()

	w.logger.Info("batch analysed", slog.Int("files", len(args.Files)), slog.Int("threads", threads))

	if err := w.ui.Start(controller.WithAnalyzeMode()); err != nil {
		return err
	}

	var (
		reports []m.Report
		errs    []error
	)

	for _, res := range results {
		if res.err != nil {
			w.ui.DisplayError(res.name, res.err)
			errs = append(errs, fmt.Errorf("%s: %w", res.name, res.err))

			continue
		}

		if err := w.ui.DisplayAnalysis(res.report, w.plot(args.Plot, res.report)); err != nil {
			errs = append(errs, err)
		}

		reports = append(reports, res.report)
	}

	errs = append(errs, w.save(args.Reports, reports))

	w.ui.Wait()
	w.ui.Close()

	return errors.Join(errs...)
}

// ListPresets analyses every built-in line set and shows the summary.
func (w *workflow) ListPresets() error {
	reports := make([]m.Report, 0, len(presets))

	for _, name := range PresetNames() {
		set, err := Preset(name)
		if err != nil {
			return err
		}

		report, err := w.analyzeSet(set, nil)
		if err != nil {
			return fmt.Errorf("preset %s: %w", name, err)
		}

		reports = append(reports, report)
	}

	return w.browse(reports)
}

// View shows stored reports, or deletes them when args.Clean is set.
func (w *workflow) View(args ViewArgs) error {
	if args.Clean {
		if err := w.store.CleanReports(args.Reports); err != nil {
			return fmt.Errorf("clean reports: %w", err)
		}

		w.logger.Info("reports removed", slog.String("dir", string(args.Reports)))

		return nil
	}

	reports, err := w.store.LoadReports(args.Reports)
	if err != nil {
		return fmt.Errorf("load reports: %w", err)
	}

	return w.browse(reports)
}

// Watch analyses args.File once, then again after every change, until ctx
// is done or the user closes the UI.
func (w *workflow) Watch(ctx context.Context, args WatchArgs) error {
	if err := w.ui.Start(controller.WithWatchMode()); err != nil {
		return err
	}
	defer w.ui.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		select {
		case <-w.ui.Done():
			cancel()
		case <-ctx.Done():
		}
	}()

	var mu sync.Mutex

	refresh := func() {
		mu.Lock()
		defer mu.Unlock()

		set, err := w.lineSets.Load(args.File)
		if err != nil {
			w.metrics.RecordFailure("load")
			w.ui.DisplayError(string(args.File), err)

			return
		}

		report, err := w.analyzeSet(set, args.Budget)
		if err != nil {
			w.ui.DisplayError(set.Name, err)
			return
		}

		if err := w.ui.DisplayAnalysis(report, w.plot(args.Plot, report)); err != nil {
			w.logger.Warn("display failed", slog.Any("error", err))
		}
	}

	refresh()

	w.logger.Info("watching line set", slog.String("path", string(args.File)))

	return w.watcher.Watch(ctx, args.File, refresh)
}

// Witness runs one witness search and displays its polygon.
func (w *workflow) Witness(args WitnessArgs) error {
	if err := args.Lines.Validate(); err != nil {
		return err
	}

	var (
		witness m.Witness
		err     error
		shape   m.Shape
	)

	switch args.Shape {
	case WitnessTriangle:
		shape = m.ShapeTriangle
		witness, err = MaxAreaTriangle(args.Lines)
	case WitnessQuadrilateral:
		shape = m.ShapeQuadrilateral
		witness, err = MaxAreaQuadrilateral(args.Lines)
	case WitnessGrid:
		shape = m.ShapeQuadrilateral
		witness, err = GridQuadrilateral(args.Lines)
	default:
		return fmt.Errorf("%w: unknown witness shape %q", m.ErrInvalidInput, args.Shape)
	}

	w.logger.Debug("witness search", slog.String("shape", string(args.Shape)), slog.Int("lines", len(args.Lines)), slog.Any("error", err))

	if err := w.ui.Start(controller.WithAnalyzeMode()); err != nil {
		return err
	}

	displayErr := w.ui.DisplayWitness(args.Name, witness, WitnessVerdict(shape, err))

	w.ui.Wait()
	w.ui.Close()

	return displayErr
}

func (w *workflow) browse(reports []m.Report) error {
	if err := w.ui.Start(controller.WithBrowseMode()); err != nil {
		return err
	}

	err := w.ui.DisplayReports(reports)

	w.ui.Wait()
	w.ui.Close()

	return err
}

// analyzeSet runs the kernel on one set; budget, when set, overrides the set's own.
func (w *workflow) analyzeSet(set m.LineSetFile, budget *int) (m.Report, error) {
	if budget == nil {
		budget = set.Budget
	}

	start := w.now()

	result, err := Analyze(set.Lines, budget)
	if err != nil {
		w.metrics.RecordFailure("analyze")
		return m.Report{}, err
	}

	w.metrics.RecordAnalysis(result, len(set.Lines), w.now().Sub(start))

	w.logger.Debug("line set analysed",
		slog.String("name", set.Name),
		slog.Int("lines", len(set.Lines)),
		slog.String("kind", string(result.Classification.Kind())),
		slog.String("outcome", string(result.Outcome)),
	)

	return m.Report{
		Name:      set.Name,
		Origin:    set.Origin,
		Lines:     set.Lines,
		Budget:    budget,
		Result:    result,
		CreatedAt: start,
	}, nil
}

func (w *workflow) plot(enabled bool, report m.Report) string {
	if !enabled || w.plotter == nil {
		return ""
	}

	return w.plotter.Plot(report.Lines, report.Result.Route)
}

func (w *workflow) save(dir m.Path, reports []m.Report) error {
	if len(reports) == 0 {
		return nil
	}

	if err := w.store.SaveReports(dir, reports); err != nil {
		return fmt.Errorf("save reports: %w", err)
	}

	if err := w.store.RegenerateIndex(dir); err != nil {
		return fmt.Errorf("regenerate index: %w", err)
	}

	w.logger.Info("reports saved", slog.String("dir", string(dir)), slog.Int("count", len(reports)))

	return nil
}
