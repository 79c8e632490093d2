package model

// Kind is the structural case of a line arrangement.
type Kind string

const (
	// KindAllParallel means every pair of lines shares a slope.
	KindAllParallel Kind = "all-parallel"
	// KindHasTransversal means some line crosses every other line.
	KindHasTransversal Kind = "has-transversal"
	// KindGridFormation means the set has exactly two distinct slopes.
	KindGridFormation Kind = "grid-formation"
	// KindIndeterminate means none of the above applies.
	KindIndeterminate Kind = "indeterminate"
)

// Classification holds the independently evaluated structural flags of a line set.
// Transversal and Grid may both be set for the same input.
type Classification struct {
	AllParallel bool `yaml:"all_parallel"`
	// Transversal is the index of the first line non-parallel to all others, or -1.
	Transversal    int  `yaml:"transversal"`
	Grid           bool `yaml:"grid"`
	DistinctSlopes int  `yaml:"distinct_slopes"`
}

// HasTransversal reports whether a universal transversal was found.
func (c Classification) HasTransversal() bool {
	return c.Transversal >= 0
}

// Kind collapses the flags into a single tag. AllParallel takes precedence
// over HasTransversal, which takes precedence over GridFormation.
func (c Classification) Kind() Kind {
	switch {
	case c.AllParallel:
		return KindAllParallel
	case c.HasTransversal():
		return KindHasTransversal
	case c.Grid:
		return KindGridFormation
	default:
		return KindIndeterminate
	}
}

// Outcome tells the caller how an analysis ended.
type Outcome string

const (
	// OutcomeRoute means a route was found and fits the budget.
	OutcomeRoute Outcome = "route"
	// OutcomeNoRoute means every line is parallel so no finite route exists.
	OutcomeNoRoute Outcome = "no-route"
	// OutcomeNoShape means no witness polygon could be built.
	OutcomeNoShape Outcome = "no-shape"
	// OutcomeBudgetExceeded means a route exists but needs more links than allowed.
	OutcomeBudgetExceeded Outcome = "budget-exceeded"
)

// AnalysisResult is what the kernel hands back to its caller.
type AnalysisResult struct {
	Classification Classification `yaml:"classification"`
	Outcome        Outcome        `yaml:"outcome"`
	Verdict        string         `yaml:"verdict"`
	// Route is nil unless Outcome is OutcomeRoute.
	Route *Route `yaml:"route,omitempty"`
	// Chosen is the construction the verdict was derived from, if any.
	Chosen *Construction `yaml:"chosen,omitempty"`
	// Diagnostics holds the other applicable constructions, ranked by link count.
	Diagnostics []Construction `yaml:"diagnostics,omitempty"`
}
