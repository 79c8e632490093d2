// Package model defines the value types shared by the watchman kernel and its collaborators.
package model

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput marks malformed line input: an empty set, or a slope or
// intercept that is not a finite number.
var ErrInvalidInput = errors.New("model: invalid input")

// Line is the non-vertical line y = Slope*x + Intercept.
type Line struct {
	Slope     float64 `yaml:"slope"`
	Intercept float64 `yaml:"intercept"`
}

// String renders the line the way the plot legend labels it.
func (l Line) String() string {
	return fmt.Sprintf("y = %.2fx + %.2f", l.Slope, l.Intercept)
}

// At evaluates the line at x.
func (l Line) At(x float64) float64 {
	return l.Slope*x + l.Intercept
}

// Point is a position in the plane.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// LineSet is an ordered sequence of lines. Duplicates are kept; the order is
// used for index-based enumeration and first-match tie breaks.
type LineSet []Line

// Validate reports ErrInvalidInput when the set is empty or holds a
// non-finite coefficient.
func (ls LineSet) Validate() error {
	if len(ls) == 0 {
		return fmt.Errorf("%w: at least one line is required", ErrInvalidInput)
	}

	for i, l := range ls {
		if !finite(l.Slope) || !finite(l.Intercept) {
			return fmt.Errorf("%w: line %d has non-finite coefficients (%v, %v)", ErrInvalidInput, i+1, l.Slope, l.Intercept)
		}
	}

	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
