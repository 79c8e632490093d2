package domain

import (
	"github.com/mouse-blink/watchman/internal/domain/geometry"
	m "github.com/mouse-blink/watchman/internal/model"
)

// Classify evaluates the structural flags of lines. Each flag is computed
// independently; a set can have a transversal and be a grid at the same time.
// Runs in O(n²).
func Classify(lines m.LineSet) m.Classification {
	slopes := distinctSlopes(lines)

	return m.Classification{
		AllParallel:    allParallel(lines),
		Transversal:    findTransversal(lines),
		Grid:           slopes == 2,
		DistinctSlopes: slopes,
	}
}

func allParallel(lines m.LineSet) bool {
	for i := range lines {
		for j := i + 1; j < len(lines); j++ {
			if !geometry.AreParallel(lines[i], lines[j]) {
				return false
			}
		}
	}

	return true
}

// findTransversal returns the index of the first line, in input order, that
// is non-parallel to every other line, or -1. A lone line crosses nothing.
func findTransversal(lines m.LineSet) int {
	if len(lines) < 2 {
		return -1
	}

	for i := range lines {
		crossesAll := true

		for j := range lines {
			if i != j && geometry.AreParallel(lines[i], lines[j]) {
				crossesAll = false
				break
			}
		}

		if crossesAll {
			return i
		}
	}

	return -1
}

func distinctSlopes(lines m.LineSet) int {
	seen := make(map[float64]struct{}, len(lines))
	for _, l := range lines {
		seen[l.Slope] = struct{}{}
	}

	return len(seen)
}
