// Package domain contains the watchman route kernel and the workflows built on it.
package domain

import (
	m "github.com/mouse-blink/watchman/internal/model"
)

// Analyze classifies lines, builds every applicable route construction,
// applies the optional link budget and reports the lowest-link feasible
// route. The remaining constructions are returned as diagnostics.
//
// Geometrically degenerate input is never an error; it ends in a verdict.
// Only malformed input (empty set, non-finite coefficients) returns an error
// wrapping model.ErrInvalidInput.
func Analyze(lines m.LineSet, budget *int) (m.AnalysisResult, error) {
	if err := lines.Validate(); err != nil {
		return m.AnalysisResult{}, err
	}

	result := m.AnalysisResult{Classification: Classify(lines)}

	if result.Classification.AllParallel {
		result.Outcome = m.OutcomeNoRoute
		result.Verdict = VerdictNoRoute

		return result, nil
	}

	candidates := Synthesize(lines, result.Classification)
	for i := range candidates {
		candidates[i] = CheckBudget(candidates[i], budget)
	}

	chosen := pick(candidates)
	if chosen < 0 {
		result.Outcome = m.OutcomeNoShape
		result.Verdict = VerdictNoShape
		result.Diagnostics = candidates

		return result, nil
	}

	c := candidates[chosen]
	result.Chosen = &c
	result.Verdict = c.Verdict
	result.Diagnostics = append(append([]m.Construction(nil), candidates[:chosen]...), candidates[chosen+1:]...)

	switch {
	case c.Feasible:
		result.Outcome = m.OutcomeRoute
		result.Route = c.Route
	case c.Vetoed:
		result.Outcome = m.OutcomeBudgetExceeded
	default:
		result.Outcome = m.OutcomeNoShape
	}

	return result, nil
}

// pick returns the index of the construction the verdict is taken from:
// the first feasible one, else the first budget-vetoed one, else the first
// with a specific degenerate verdict, else -1. Candidates arrive ranked by
// link count.
func pick(candidates []m.Construction) int {
	vetoed, degenerate := -1, -1

	for i, c := range candidates {
		switch {
		case c.Feasible:
			return i
		case c.Vetoed && vetoed < 0:
			vetoed = i
		case c.Verdict != VerdictNoShape && degenerate < 0:
			degenerate = i
		}
	}

	if vetoed >= 0 {
		return vetoed
	}

	return degenerate
}
