package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/watchman/internal/domain"
)

var viewCleanFlag bool

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View previously stored reports",
		Long:  "View previously stored analysis reports from a reports directory.",
		Args:  cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.View(domain.ViewArgs{Reports: reportsDir(), Clean: viewCleanFlag})
		},
	}
	cmd.Flags().BoolVar(&viewCleanFlag, "clean", false, "delete all stored reports instead of showing them")

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
