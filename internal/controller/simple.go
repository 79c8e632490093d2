package controller

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/watchman/internal/model"
)

// SimpleUI implements UI by writing tables to the command's output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(_ ...StartOption) error {
	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {}

// Wait returns immediately; there is nothing to close interactively.
func (s *SimpleUI) Wait() {}

// Done returns nil, which never fires in a select.
func (s *SimpleUI) Done() <-chan struct{} {
	return nil
}

// DisplayAnalysis prints the verdict, the route table, diagnostics and the plot.
func (s *SimpleUI) DisplayAnalysis(report m.Report, plot string) error {
	res := report.Result

	s.printf("%s\n", report.Name)
	s.printf("  classification: %s\n", formatClassification(res.Classification))
	s.printf("  budget:         %s\n", formatBudget(report.Budget))
	s.printf("  verdict:        %s\n", res.Verdict)

	if res.Route != nil {
		table, buf := newTable([]string{"#", "X", "Y"})
		for i, p := range res.Route.Points {
			table.Append([]string{strconv.Itoa(i + 1), formatFloat(p.X), formatFloat(p.Y)})
		}

		table.SetFooter([]string{"Links", strconv.Itoa(res.Route.Links), ""})
		table.Render()
		s.printf("\n%s", buf.String())
	}

	if len(res.Diagnostics) > 0 {
		table, buf := newTable([]string{"Also", "Links", "Area", "Verdict"})
		for _, c := range res.Diagnostics {
			table.Append([]string{string(c.Shape), strconv.Itoa(c.Shape.Links()), formatFloat(c.Area), c.Verdict})
		}

		table.Render()
		s.printf("\n%s", buf.String())
	}

	if plot != "" {
		s.printf("\n%s", plot)
	}

	return nil
}

// DisplayReports prints one row per report.
func (s *SimpleUI) DisplayReports(reports []m.Report) error {
	if len(reports) == 0 {
		s.printf("No reports found\n")
		return nil
	}

	table, buf := newTable([]string{"Name", "Lines", "Kind", "Budget", "Links", "Verdict"})

	routes := 0

	for _, r := range reports {
		if r.Result.Route != nil {
			routes++
		}

		table.Append([]string{
			r.Name,
			strconv.Itoa(len(r.Lines)),
			string(r.Result.Classification.Kind()),
			formatBudget(r.Budget),
			routeLinks(r.Result),
			r.Result.Verdict,
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total %d", len(reports)),
		"", "", "",
		fmt.Sprintf("Routes %d", routes),
		"",
	})
	table.Render()
	s.printf("\n%s", buf.String())

	return nil
}

// DisplayWitness prints the witness vertices and area, or the verdict when none was found.
func (s *SimpleUI) DisplayWitness(name string, witness m.Witness, verdict string) error {
	s.printf("%s\n", name)

	if verdict != "" {
		s.printf("  verdict: %s\n", verdict)
		return nil
	}

	table, buf := newTable([]string{"#", "X", "Y"})
	for i, p := range witness.Vertices {
		table.Append([]string{strconv.Itoa(i + 1), formatFloat(p.X), formatFloat(p.Y)})
	}

	table.SetFooter([]string{"Area", formatFloat(witness.Area), ""})
	table.Render()
	s.printf("  %s from lines %v\n\n%s", witness.Shape, oneBased(witness.Lines), buf.String())

	return nil
}

// DisplayError prints an analysis failure.
func (s *SimpleUI) DisplayError(name string, err error) {
	_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), "%s: error: %v\n", name, err)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func newTable(header []string) (*tablewriter.Table, *bytes.Buffer) {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	return table, &buf
}

func oneBased(idx []int) []int {
	out := make([]int, len(idx))
	for i, v := range idx {
		out[i] = v + 1
	}

	return out
}
