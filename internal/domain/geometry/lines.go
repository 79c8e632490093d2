package geometry

import (
	m "github.com/mouse-blink/watchman/internal/model"
)

// AreParallel reports whether a and b have exactly equal slopes.
// Coincident lines are parallel too.
func AreParallel(a, b m.Line) bool {
	return a.Slope == b.Slope
}

// Intersect returns the crossing point of a and b, or false when they are parallel.
//
// The pair is put in a canonical order before solving, so Intersect(a, b) and
// Intersect(b, a) return bit-identical points.
func Intersect(a, b m.Line) (m.Point, bool) {
	if AreParallel(a, b) {
		return m.Point{}, false
	}

	if b.Slope < a.Slope {
		a, b = b, a
	}

	x := (b.Intercept - a.Intercept) / (a.Slope - b.Slope)

	return m.Point{X: x, Y: a.At(x)}, true
}
