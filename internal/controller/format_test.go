package controller

import (
	"testing"

	m "github.com/mouse-blink/watchman/internal/model"
)

func TestFormatClassification(t *testing.T) {
	tests := []struct {
		c    m.Classification
		want string
	}{
		{m.Classification{AllParallel: true, Transversal: -1, DistinctSlopes: 1}, "all-parallel (distinct slopes: 1)"},
		{m.Classification{Transversal: 2, DistinctSlopes: 3}, "has-transversal (distinct slopes: 3, transversal: line 3)"},
		{m.Classification{Transversal: 0, Grid: true, DistinctSlopes: 2}, "has-transversal (distinct slopes: 2, transversal: line 1, grid)"},
		{m.Classification{Transversal: -1, Grid: true, DistinctSlopes: 2}, "grid-formation (distinct slopes: 2)"},
	}

	for _, tt := range tests {
		if got := formatClassification(tt.c); got != tt.want {
			t.Errorf("formatClassification(%+v) = %q, want %q", tt.c, got, tt.want)
		}
	}
}

func TestFormatHelpers(t *testing.T) {
	if got := formatPoint(m.Point{X: 1.5, Y: -2}); got != "(1.5, -2)" {
		t.Errorf("formatPoint = %q", got)
	}

	if got := formatFloat(1.0 / 3); got != "0.333333" {
		t.Errorf("formatFloat = %q", got)
	}

	if got := formatBudget(nil); got != "-" {
		t.Errorf("formatBudget(nil) = %q", got)
	}

	three := 3
	if got := formatBudget(&three); got != "3" {
		t.Errorf("formatBudget(3) = %q", got)
	}

	if got := routeLinks(m.AnalysisResult{Route: &m.Route{Links: 2}}); got != "2" {
		t.Errorf("routeLinks = %q", got)
	}

	if got := routeLinks(m.AnalysisResult{}); got != "-" {
		t.Errorf("routeLinks(no route) = %q", got)
	}
}

func TestStartOptions(t *testing.T) {
	if got := newStartConfig().mode; got != ModeAnalyze {
		t.Errorf("default mode = %v, want ModeAnalyze", got)
	}

	if got := newStartConfig(WithBrowseMode()).mode; got != ModeBrowse {
		t.Errorf("browse mode = %v", got)
	}

	if got := newStartConfig(WithAnalyzeMode(), WithWatchMode()).mode; got != ModeWatch {
		t.Errorf("last option should win, got %v", got)
	}
}
