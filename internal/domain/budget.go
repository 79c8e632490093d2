package domain

import (
	"fmt"

	m "github.com/mouse-blink/watchman/internal/model"
)

// CheckBudget vetoes c when budget is set and c's route needs more links than
// it allows. The route is withheld and the verdict replaced; no alternative
// route is searched for. Non-positive budgets are compared as given.
func CheckBudget(c m.Construction, budget *int) m.Construction {
	if budget == nil || c.Route == nil {
		return c
	}

	if c.Route.Links <= *budget {
		return c
	}

	c.Route = nil
	c.Feasible = false
	c.Vetoed = true
	c.Verdict = BudgetVerdict(*budget)

	return c
}

// BudgetVerdict is the verdict for a route that does not fit budget links.
func BudgetVerdict(budget int) string {
	return fmt.Sprintf("a route with %d link(s) is not possible for this configuration", budget)
}
