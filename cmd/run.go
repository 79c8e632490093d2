package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/watchman/internal/domain"
	m "github.com/mouse-blink/watchman/internal/model"
)

var runParallelFlag int
var runBudgetFlag int
var runPlotFlag bool

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run FILE...",
		Short: "Analyse line-set files and store reports",
		Long: `Analyse YAML line-set files concurrently and store one report per file.

A line-set file looks like:

  name: grid
  budget: 4
  lines:
    - {slope: 1, intercept: 4}
    - {slope: 5, intercept: 1}`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			threads := runParallelFlag
			if !cmd.Flags().Changed("parallel") && config.Parallel > 0 {
				threads = config.Parallel
			}

			return workflow.Run(domain.RunArgs{
				Files:   parsePaths(args),
				Budget:  budgetFromFlag(cmd, "budget", runBudgetFlag),
				Threads: threads,
				Reports: reportsDir(),
				Plot:    runPlotFlag,
			})
		},
	}
	cmd.Flags().IntVarP(&runParallelFlag, "parallel", "p", 1, "number of files analysed in parallel")
	cmd.Flags().IntVarP(&runBudgetFlag, "budget", "b", 0, "override the link budget of every file")
	cmd.Flags().BoolVar(&runPlotFlag, "plot", false, "draw lines and route")

	return cmd
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

func init() {
	rootCmd.AddCommand(runCmd)
}
