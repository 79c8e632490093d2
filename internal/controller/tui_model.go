package controller

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/watchman/internal/model"
)

type tickMsg time.Time

// entryDelegate renders one analysed line set per row.
type entryDelegate struct {
	offset int
}

func (d entryDelegate) Height() int  { return 1 }
func (d entryDelegate) Spacing() int { return 0 }
func (d entryDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d entryDelegate) Render(w io.Writer, lm list.Model, index int, item list.Item) {
	entry, ok := item.(entryItem)
	if !ok {
		return
	}

	isSelected := index == lm.Index()
	text := entry.title
	if entry.verdict != "" {
		text += " · " + entry.verdict
	}

	var titleStyle, linksStyle lipgloss.Style

	var title string

	width := lm.Width() - 8 // links column (6) + spacing (2)

	if isSelected {
		titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
		linksStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true).
			Width(6).
			Align(lipgloss.Right)

		title = animateScroll(text, width, d.offset)
	} else {
		titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
		if entry.failed {
			titleStyle = titleStyle.Foreground(lipgloss.Color("9"))
		}

		linksStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Bold(true).
			Width(6).
			Align(lipgloss.Right)

		title = truncateToWidth(text, width)
	}

	_, _ = fmt.Fprintf(w, "%s  %s", linksStyle.Render(entry.links), titleStyle.Render(title))
}

func animateScroll(text string, width int, offset int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	gap := "   "

	// ticks to hold still before scrolling
	pause := 5

	if offset < pause {
		return truncateToWidth(text, width)
	}

	runes := []rune(text + gap)
	n := len(runes)
	start := (offset - pause) % n

	res := make([]rune, 0, width)
	for i := range width {
		res = append(res, runes[(start+i)%n])
	}

	return string(res)
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	if width <= 1 {
		return ellipsis
	}

	maxWidth := width - lipgloss.Width(ellipsis)
	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

// resultModel lists analysed line sets and shows the selected one in detail.
type resultModel struct {
	mode         StartMode
	width        int
	height       int
	entries      list.Model
	delegate     entryDelegate
	showPlot     bool
	rendered     bool
	animOffset   int
	lastSelected int
}

func newResultModel(mode StartMode) resultModel {
	delegate := entryDelegate{}
	entries := list.New([]list.Item{}, delegate, 80, 10)
	entries.SetShowPagination(false)
	entries.SetShowFilter(true)
	entries.SetShowHelp(false)
	entries.SetShowTitle(false)
	entries.SetShowStatusBar(false)
	entries.FilterInput.Placeholder = "Filter by name…"

	return resultModel{
		mode:         mode,
		entries:      entries,
		delegate:     delegate,
		showPlot:     true,
		lastSelected: -1,
	}
}

func (rm resultModel) Init() tea.Cmd {
	return tea.Tick(time.Second/2, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (rm resultModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		rm.width = msg.Width
		rm.height = msg.Height
		rm.entries.SetWidth(rm.width)

	case tickMsg:
		if rm.entries.FilterState() != list.Filtering && rm.rendered {
			rm.animOffset++
			rm.delegate.offset = rm.animOffset
			rm.entries.SetDelegate(rm.delegate)
		}

		return rm, tea.Tick(time.Millisecond*150, func(t time.Time) tea.Msg {
			return tickMsg(t)
		})

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return rm, tea.Quit
		case "p":
			if rm.entries.FilterState() != list.Filtering {
				rm.showPlot = !rm.showPlot
				return rm, nil
			}
		}

		rm.entries, cmd = rm.entries.Update(msg)

		if rm.entries.Index() != rm.lastSelected {
			rm.lastSelected = rm.entries.Index()
			rm.animOffset = 0
			rm.delegate.offset = 0
			rm.entries.SetDelegate(rm.delegate)
		}

		return rm, cmd

	case analysisMsg:
		rm = rm.addEntries(analysisEntry(msg.report, msg.plot))

	case reportsMsg:
		items := make([]entryItem, 0, len(msg.reports))
		for _, r := range msg.reports {
			items = append(items, analysisEntry(r, ""))
		}

		rm = rm.addEntries(items...)

	case witnessMsg:
		rm = rm.addEntries(witnessEntry(msg))

	case errorMsg:
		rm = rm.addEntries(entryItem{
			title:   msg.name,
			links:   "!",
			verdict: msg.err.Error(),
			detail:  "error: " + msg.err.Error(),
			failed:  true,
		})
	}

	return rm, cmd
}

// addEntries appends items, or replaces everything in watch mode.
func (rm resultModel) addEntries(items ...entryItem) resultModel {
	var all []list.Item
	if rm.mode != ModeWatch {
		all = rm.entries.Items()
	}

	for _, it := range items {
		all = append(all, it)
	}

	rm.entries.SetItems(all)
	rm.rendered = true

	if len(all) > 0 && rm.lastSelected == -1 {
		rm.lastSelected = 0
	}

	return rm
}

func analysisEntry(r m.Report, plot string) entryItem {
	res := r.Result

	var b strings.Builder

	fmt.Fprintf(&b, "Classification: %s\n", formatClassification(res.Classification))
	fmt.Fprintf(&b, "Budget:         %s\n", formatBudget(r.Budget))
	fmt.Fprintf(&b, "Verdict:        %s\n", res.Verdict)

	if res.Route != nil {
		b.WriteString("Route:\n")

		for i, p := range res.Route.Points {
			fmt.Fprintf(&b, "  %2d  %s\n", i+1, formatPoint(p))
		}
	}

	for _, c := range res.Diagnostics {
		fmt.Fprintf(&b, "Also: %s (%d links, area %s): %s\n", c.Shape, c.Shape.Links(), formatFloat(c.Area), c.Verdict)
	}

	return entryItem{
		title:   r.Name,
		links:   routeLinks(res),
		verdict: res.Verdict,
		detail:  b.String(),
		plot:    plot,
	}
}

func witnessEntry(msg witnessMsg) entryItem {
	if msg.verdict != "" {
		return entryItem{title: msg.name, links: "-", verdict: msg.verdict, detail: "Verdict: " + msg.verdict + "\n"}
	}

	var b strings.Builder

	fmt.Fprintf(&b, "Witness %s from lines %v, area %s\n", msg.witness.Shape, oneBased(msg.witness.Lines), formatFloat(msg.witness.Area))

	for i, p := range msg.witness.Vertices {
		fmt.Fprintf(&b, "  %2d  %s\n", i+1, formatPoint(p))
	}

	return entryItem{
		title:  msg.name,
		links:  fmt.Sprintf("%d", msg.witness.Shape.Links()),
		detail: b.String(),
	}
}

func (rm resultModel) View() string {
	if !rm.rendered {
		if rm.mode == ModeWatch {
			return "Waiting for changes…\n"
		}

		return "Analysing…\n"
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	title := titleStyle.Render("Watchman Routes")

	summary := summaryStyle.Render(fmt.Sprintf(
		"Line sets: %s",
		accentStyle.Render(fmt.Sprintf("%d", len(rm.entries.Items()))),
	))

	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(rm.width)

	footer := footerStyle.Render("↑/k up • ↓/j down • / filter • p plot • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		rm.renderTable(),
		rm.renderDetail(),
		footer,
	)
}

func (rm resultModel) renderTable() string {
	listHeight := len(rm.entries.Items())
	if listHeight > 8 {
		listHeight = 8
	}

	if listHeight < 1 {
		listHeight = 1
	}

	listWidth := rm.width - 6
	if listWidth < 20 {
		listWidth = 20
	}

	rm.entries.SetHeight(listHeight)
	rm.entries.SetWidth(listWidth)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth)

	headers := headerStyle.Render(fmt.Sprintf("%6s  %s", "Links", "Line set"))

	tableContainer := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1)

	return tableContainer.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			headers,
			rm.entries.View(),
		),
	)
}

func (rm resultModel) renderDetail() string {
	selected, ok := rm.entries.SelectedItem().(entryItem)
	if !ok {
		return ""
	}

	detailStyle := lipgloss.NewStyle().Padding(1, 2)
	if selected.failed {
		detailStyle = detailStyle.Foreground(lipgloss.Color("9"))
	}

	body := selected.detail
	if rm.showPlot && selected.plot != "" {
		plotStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, "   ", plotStyle.Render(selected.plot))
	}

	return detailStyle.Render(body)
}
