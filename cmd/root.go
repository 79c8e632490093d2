// Package cmd provides the root command and CLI setup for watchman.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/watchman/internal/adapter"
	"github.com/mouse-blink/watchman/internal/controller"
	"github.com/mouse-blink/watchman/internal/domain"
	m "github.com/mouse-blink/watchman/internal/model"
)

var lineSetAdapter = adapter.NewLocalLineSetAdapter()
var metrics adapter.Metrics
var config adapter.Config
var workflow domain.Workflow

// newWorkflow wires the production adapters; tests replace it with a mock factory.
var newWorkflow = func(cmd *cobra.Command, cfg adapter.Config, logger *slog.Logger) domain.Workflow {
	return domain.NewWorkflow(
		lineSetAdapter,
		adapter.NewReportStore(logger),
		controller.NewUI(cmd, controller.IsTTY(cmd.OutOrStdout())),
		metrics,
		adapter.NewFileWatcher(adapter.DefaultDebounce, logger),
		adapter.NewPlotter(cfg.Plot),
		logger,
	)
}

var configFlag string
var verboseFlag bool
var metricsFileFlag string
var reportsOutputDirFlag string

var budgetFlag int
var presetFlags []string
var plotFlag bool
var saveFlag bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watchman [slope,intercept ...]",
		Short: "b-link watchman routes for lines in the plane",
		Long: `Watchman finds a route with few links (straight segments) from which
every given line y = slope*x + intercept is visited.

Lines are given as slope,intercept pairs. Put -- before the first pair if
it starts with a minus sign:

  watchman 1,1 2,3 -- -1,2
  watchman --preset grid --budget 3
  watchman --preset triangle --plot`,
		SilenceUsage:       true,
		PersistentPreRunE:  setup,
		PersistentPostRunE: flushMetrics,
		RunE: func(cmd *cobra.Command, args []string) error {
			sets, err := collectLineSets(args, presetFlags)
			if err != nil {
				return err
			}

			budget := budgetFromFlag(cmd, "budget", budgetFlag)
			for i := range sets {
				if budget != nil {
					sets[i].Budget = budget
				}
			}

			return workflow.Analyze(domain.AnalyzeArgs{
				Sets:    sets,
				Plot:    plotFlag,
				Save:    saveFlag,
				Reports: reportsDir(),
			})
		},
	}
	cmd.PersistentFlags().StringVarP(&configFlag, "config", "c", ".watchman.yaml", "config file")
	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&metricsFileFlag, "metrics-file", "", "write Prometheus metrics to this file on exit")
	cmd.PersistentFlags().StringVarP(&reportsOutputDirFlag, "reports", "r", "", "reports directory (default from config)")

	cmd.Flags().IntVarP(&budgetFlag, "budget", "b", 0, "maximum number of links the route may use")
	cmd.Flags().StringArrayVarP(&presetFlags, "preset", "P", nil, "analyse a built-in line set (can be repeated)")
	cmd.Flags().BoolVar(&plotFlag, "plot", false, "draw lines and route")
	cmd.Flags().BoolVar(&saveFlag, "save", false, "store the report in the reports directory")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		stop()
		os.Exit(1)
	}
}

func setup(cmd *cobra.Command, _ []string) error {
	level := slog.LevelInfo
	if verboseFlag {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	cfg, err := adapter.LoadConfig(m.Path(configFlag))
	if err != nil {
		return err
	}

	config = cfg
	metrics = adapter.NewMetrics()
	workflow = newWorkflow(cmd, cfg, logger)

	logger.Debug("configured", slog.String("config", configFlag), slog.String("reports", string(reportsDir())))

	return nil
}

func flushMetrics(_ *cobra.Command, _ []string) error {
	if metrics == nil {
		return nil
	}

	return metrics.WriteTextfile(m.Path(metricsFileFlag))
}

func reportsDir() m.Path {
	if reportsOutputDirFlag != "" {
		return m.Path(reportsOutputDirFlag)
	}

	if config.Reports != "" {
		return m.Path(config.Reports)
	}

	return adapter.DefaultReportsDir
}

// budgetFromFlag returns the flag's value only when the user set it.
func budgetFromFlag(cmd *cobra.Command, name string, value int) *int {
	if !cmd.Flags().Changed(name) {
		return nil
	}

	b := value

	return &b
}

// collectLineSets builds one set from the pair arguments, if any, plus one per preset.
func collectLineSets(args []string, presetNames []string) ([]m.LineSetFile, error) {
	var sets []m.LineSetFile

	if len(args) > 0 {
		lines, err := lineSetAdapter.ParsePairs(args)
		if err != nil {
			return nil, err
		}

		sets = append(sets, m.LineSetFile{Name: "input", Lines: lines})
	}

	for _, name := range presetNames {
		set, err := domain.Preset(name)
		if err != nil {
			return nil, err
		}

		sets = append(sets, set)
	}

	if len(sets) == 0 {
		return nil, fmt.Errorf("%w: give slope,intercept pairs or --preset", m.ErrInvalidInput)
	}

	return sets, nil
}
