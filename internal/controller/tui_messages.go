package controller

import (
	m "github.com/mouse-blink/watchman/internal/model"
)

// Message types.
type analysisMsg struct {
	report m.Report
	plot   string
}

type reportsMsg struct {
	reports []m.Report
}

type witnessMsg struct {
	name    string
	witness m.Witness
	verdict string
}

type errorMsg struct {
	name string
	err  error
}

// List item types.
type entryItem struct {
	title   string
	links   string
	verdict string
	detail  string
	plot    string
	failed  bool
}

func (e entryItem) FilterValue() string {
	return e.title
}
