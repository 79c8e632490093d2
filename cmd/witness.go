package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/watchman/internal/domain"
	m "github.com/mouse-blink/watchman/internal/model"
)

var witnessShapeFlag string
var witnessPresetFlag string

// witnessCmd represents the witness command.
var witnessCmd = newWitnessCmd()

func newWitnessCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "witness [slope,intercept ...]",
		Short: "Run a single max-area witness search",
		Long: `Run one witness search directly:

  triangle  max-area triangle over all line triples
  quad      max-area quadrilateral over all line quadruples
  grid      outer boundary of a two-slope grid`,
		RunE: func(_ *cobra.Command, args []string) error {
			set, err := witnessInput(args, witnessPresetFlag)
			if err != nil {
				return err
			}

			return workflow.Witness(domain.WitnessArgs{
				Name:  set.Name,
				Lines: set.Lines,
				Shape: domain.WitnessShape(witnessShapeFlag),
			})
		},
	}
	cmd.Flags().StringVarP(&witnessShapeFlag, "shape", "s", string(domain.WitnessTriangle), "triangle, quad or grid")
	cmd.Flags().StringVarP(&witnessPresetFlag, "preset", "P", "", "use a built-in line set")

	return cmd
}

func witnessInput(args []string, preset string) (m.LineSetFile, error) {
	switch {
	case preset != "" && len(args) > 0:
		return m.LineSetFile{}, fmt.Errorf("%w: give either pairs or --preset, not both", m.ErrInvalidInput)
	case preset != "":
		return domain.Preset(preset)
	}

	sets, err := collectLineSets(args, nil)
	if err != nil {
		return m.LineSetFile{}, err
	}

	return sets[0], nil
}

func init() {
	rootCmd.AddCommand(witnessCmd)
}
