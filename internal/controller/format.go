package controller

import (
	"fmt"
	"strconv"

	m "github.com/mouse-blink/watchman/internal/model"
)

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

func formatPoint(p m.Point) string {
	return fmt.Sprintf("(%s, %s)", formatFloat(p.X), formatFloat(p.Y))
}

func formatClassification(c m.Classification) string {
	s := fmt.Sprintf("%s (distinct slopes: %d", c.Kind(), c.DistinctSlopes)
	if c.HasTransversal() {
		s += fmt.Sprintf(", transversal: line %d", c.Transversal+1)
	}

	if c.Grid && c.HasTransversal() {
		s += ", grid"
	}

	return s + ")"
}

func formatBudget(b *int) string {
	if b == nil {
		return "-"
	}

	return strconv.Itoa(*b)
}

func routeLinks(r m.AnalysisResult) string {
	if r.Route == nil {
		return "-"
	}

	return strconv.Itoa(r.Route.Links)
}
