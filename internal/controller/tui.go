package controller

import (
	"errors"
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	m "github.com/mouse-blink/watchman/internal/model"
)

var errTUINotStarted = errors.New("tui: not started")

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	input  io.Reader
	output io.Writer

	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
	err     error
}

// NewTUI creates a new TUI.
func NewTUI(input io.Reader, output io.Writer) *TUI {
	return &TUI{input: input, output: output}
}

// Start launches the Bubble Tea program in the background.
func (t *TUI) Start(options ...StartOption) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.program != nil {
		return nil
	}

	cfg := newStartConfig(options...)

	t.program = tea.NewProgram(
		newResultModel(cfg.mode),
		tea.WithInput(t.input),
		tea.WithOutput(t.output),
		tea.WithAltScreen(),
	)
	t.done = make(chan struct{})

	go func(p *tea.Program, done chan struct{}) {
		_, err := p.Run()

		t.mu.Lock()
		t.err = err
		t.mu.Unlock()

		close(done)
	}(t.program, t.done)

	return nil
}

// Close stops the program and waits for it to exit.
func (t *TUI) Close() {
	p, done := t.handles()
	if p == nil {
		return
	}

	p.Quit()
	<-done
}

// Wait blocks until the user quits.
func (t *TUI) Wait() {
	if _, done := t.handles(); done != nil {
		<-done
	}
}

// Done is closed once the program exits.
func (t *TUI) Done() <-chan struct{} {
	_, done := t.handles()

	return done
}

// Err returns the error the program exited with, if any.
func (t *TUI) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.err
}

// DisplayAnalysis sends the analysis to the running program.
func (t *TUI) DisplayAnalysis(report m.Report, plot string) error {
	return t.send(analysisMsg{report: report, plot: plot})
}

// DisplayReports sends the stored reports to the running program.
func (t *TUI) DisplayReports(reports []m.Report) error {
	return t.send(reportsMsg{reports: reports})
}

// DisplayWitness sends a witness search result to the running program.
func (t *TUI) DisplayWitness(name string, witness m.Witness, verdict string) error {
	return t.send(witnessMsg{name: name, witness: witness, verdict: verdict})
}

// DisplayError sends a failure to the running program.
func (t *TUI) DisplayError(name string, err error) {
	_ = t.send(errorMsg{name: name, err: err})
}

func (t *TUI) send(msg tea.Msg) error {
	p, _ := t.handles()
	if p == nil {
		return errTUINotStarted
	}

	p.Send(msg)

	return nil
}

func (t *TUI) handles() (*tea.Program, chan struct{}) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.program, t.done
}
