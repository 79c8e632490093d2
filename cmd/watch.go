package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/watchman/internal/domain"
	m "github.com/mouse-blink/watchman/internal/model"
)

var watchBudgetFlag int
var watchPlotFlag bool

// watchCmd represents the watch command.
var watchCmd = newWatchCmd()

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch FILE",
		Short: "Re-analyse a line-set file whenever it changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Watch(cmd.Context(), domain.WatchArgs{
				File:   m.Path(args[0]),
				Budget: budgetFromFlag(cmd, "budget", watchBudgetFlag),
				Plot:   watchPlotFlag,
			})
		},
	}
	cmd.Flags().IntVarP(&watchBudgetFlag, "budget", "b", 0, "override the link budget of the file")
	cmd.Flags().BoolVar(&watchPlotFlag, "plot", true, "draw lines and route")

	return cmd
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
