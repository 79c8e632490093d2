package domain

import (
	"errors"
	"fmt"
	"sort"

	"github.com/mouse-blink/watchman/internal/domain/geometry"
	m "github.com/mouse-blink/watchman/internal/model"
)

// Verdict texts reported to the caller.
const (
	VerdictNoRoute          = "no watchman route exists"
	VerdictTwoLinks         = "watchman route with two links exists"
	VerdictThreeLinks       = "route with at most three links"
	VerdictFourLinks        = "route with at most four links"
	VerdictLowArea          = "quadrilateral found with very low area"
	VerdictSelfIntersecting = "quadrilateral outline is self-intersecting"
	VerdictNoShape          = "no suitable shape found"
	VerdictNoTriangle       = "no suitable triangle"
)

// Synthesize builds every construction that applies to lines under c, ranked
// by link count. An AllParallel classification yields none.
//
// The transversal yields the two-link walk, a grid yields the boundary
// quadrilateral, and the triangle search runs only when neither applies.
func Synthesize(lines m.LineSet, c m.Classification) []m.Construction {
	if c.AllParallel {
		return nil
	}

	var out []m.Construction

	if c.HasTransversal() {
		out = append(out, TwoLinkRoute(lines, c.Transversal))
	}

	if c.Grid {
		out = append(out, quadrilateralConstruction(lines))
	}

	if !c.HasTransversal() && !c.Grid {
		out = append(out, triangleConstruction(lines))
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Shape.Links() < out[j].Shape.Links()
	})

	return out
}

// TwoLinkRoute walks along lines[t] from its first crossing to its last and
// back. Crossings are ordered by x, which is monotone along a non-vertical
// line; the route is [first, last, ..., first].
func TwoLinkRoute(lines m.LineSet, t int) m.Construction {
	crossings := make([]m.Point, 0, len(lines)-1)

	for i, l := range lines {
		if i == t {
			continue
		}

		if p, ok := geometry.Intersect(lines[t], l); ok {
			crossings = append(crossings, p)
		}
	}

	if len(crossings) == 0 {
		return m.Construction{Shape: m.ShapeTwoLink, Verdict: VerdictNoShape}
	}

	sort.SliceStable(crossings, func(i, j int) bool { return crossings[i].X < crossings[j].X })

	points := make([]m.Point, 0, len(crossings)+1)
	points = append(points, crossings[0])

	for i := len(crossings) - 1; i >= 0; i-- {
		points = append(points, crossings[i])
	}

	return m.Construction{
		Shape:    m.ShapeTwoLink,
		Route:    &m.Route{Points: points, Links: m.ShapeTwoLink.Links()},
		Verdict:  VerdictTwoLinks,
		Feasible: true,
	}
}

func triangleConstruction(lines m.LineSet) m.Construction {
	w, err := MaxAreaTriangle(lines)
	if err != nil {
		return m.Construction{Shape: m.ShapeTriangle, Verdict: VerdictNoShape}
	}

	return m.Construction{
		Shape:    m.ShapeTriangle,
		Route:    closedRoute(w.Vertices, m.ShapeTriangle),
		Area:     w.Area,
		Verdict:  VerdictThreeLinks,
		Feasible: true,
	}
}

func quadrilateralConstruction(lines m.LineSet) m.Construction {
	w, err := GridQuadrilateral(lines)
	if err != nil {
		return m.Construction{Shape: m.ShapeQuadrilateral, Verdict: VerdictNoShape}
	}

	v := w.Vertices
	if !geometry.IsSimpleQuad(v[0], v[1], v[2], v[3]) {
		v = geometry.OrderByAngle(v)
		if !geometry.IsSimpleQuad(v[0], v[1], v[2], v[3]) {
			return m.Construction{Shape: m.ShapeQuadrilateral, Area: w.Area, Verdict: VerdictSelfIntersecting}
		}
	}

	area := geometry.QuadArea(v[0], v[1], v[2], v[3])

	verdict := VerdictFourLinks
	if area == 0 {
		verdict = VerdictLowArea
	}

	return m.Construction{
		Shape:    m.ShapeQuadrilateral,
		Route:    closedRoute(v, m.ShapeQuadrilateral),
		Area:     area,
		Verdict:  verdict,
		Feasible: true,
	}
}

func closedRoute(vertices []m.Point, shape m.Shape) *m.Route {
	points := make([]m.Point, 0, len(vertices)+1)
	points = append(points, vertices...)
	points = append(points, vertices[0])

	return &m.Route{Points: points, Links: shape.Links(), Closed: true}
}

// WitnessVerdict maps a standalone witness search error for shape to its verdict text.
func WitnessVerdict(shape m.Shape, err error) string {
	switch {
	case err == nil:
		return ""
	case shape == m.ShapeTriangle && (errors.Is(err, ErrTooFewLines) || errors.Is(err, ErrNoWitness)):
		return VerdictNoTriangle
	case errors.Is(err, ErrNotGrid):
		return fmt.Sprintf("%s: lines do not form a two-slope grid", VerdictNoShape)
	default:
		return VerdictNoShape
	}
}
