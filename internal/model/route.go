package model

// Shape names the witness construction a route was derived from.
type Shape string

const (
	// ShapeTwoLink is the back-and-forth walk along a universal transversal.
	ShapeTwoLink Shape = "two-link"
	// ShapeTriangle is the closed walk around a max-area witness triangle.
	ShapeTriangle Shape = "triangle"
	// ShapeQuadrilateral is the closed walk around the grid's outer boundary.
	ShapeQuadrilateral Shape = "quadrilateral"
)

// Links returns the number of straight segments a route of this shape uses.
func (s Shape) Links() int {
	switch s {
	case ShapeTwoLink:
		return 2
	case ShapeTriangle:
		return 3
	case ShapeQuadrilateral:
		return 4
	default:
		return 0
	}
}

// Route is the ordered sequence of turn points a watchman walks.
type Route struct {
	Points []Point `yaml:"points"`
	Links  int     `yaml:"links"`
	// Closed is true when the last point repeats the first one.
	Closed bool `yaml:"closed"`
}

// Construction is one candidate route together with its own verdict.
type Construction struct {
	Shape    Shape   `yaml:"shape"`
	Route    *Route  `yaml:"route,omitempty"`
	Area     float64 `yaml:"area"`
	Verdict  string  `yaml:"verdict"`
	Feasible bool    `yaml:"feasible"`
	// Vetoed is set when a route existed but exceeded the link budget.
	Vetoed bool `yaml:"vetoed,omitempty"`
}

// Witness is a polygon whose vertices are pairwise line intersections.
type Witness struct {
	Shape Shape `yaml:"shape"`
	// Lines holds the indices of the lines that produced the vertices.
	Lines    []int   `yaml:"lines"`
	Vertices []Point `yaml:"vertices"`
	Area     float64 `yaml:"area"`
}
