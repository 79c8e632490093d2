package domain

import (
	"fmt"
	"sort"

	"github.com/mouse-blink/watchman/internal/domain/geometry"
	m "github.com/mouse-blink/watchman/internal/model"
)

// MaxAreaTriangle searches every triple i<j<k for the triangle with vertices
// i∩j, j∩k, k∩i and returns the one with the strictly largest area; ties keep
// the first triple found. Triples containing a parallel pair are skipped.
// Runs in O(n³).
func MaxAreaTriangle(lines m.LineSet) (m.Witness, error) {
	n := len(lines)
	if n < 3 {
		return m.Witness{}, fmt.Errorf("%w: triangle needs 3, got %d", ErrTooFewLines, n)
	}

	var (
		best  m.Witness
		found bool
	)

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			p1, ok := geometry.Intersect(lines[i], lines[j])
			if !ok {
				continue
			}

			for k := j + 1; k < n; k++ {
				p2, ok2 := geometry.Intersect(lines[j], lines[k])
				p3, ok3 := geometry.Intersect(lines[k], lines[i])

				if !ok2 || !ok3 {
					continue
				}

				area := geometry.TriangleArea(p1, p2, p3)
				if area > best.Area {
					best = m.Witness{Shape: m.ShapeTriangle, Lines: []int{i, j, k}, Vertices: []m.Point{p1, p2, p3}, Area: area}
					found = true
				}
			}
		}
	}

	if !found {
		return m.Witness{}, ErrNoWitness
	}

	return best, nil
}

// MaxAreaQuadrilateral searches every quadruple i<j<k<l for the outline
// i∩j, j∩k, k∩l, l∩i with the strictly largest Shoelace area. The outline is
// taken as enumerated, so self-intersecting candidates compete with their
// (smaller) Shoelace area. Runs in O(n⁴).
func MaxAreaQuadrilateral(lines m.LineSet) (m.Witness, error) {
	n := len(lines)
	if n < 4 {
		return m.Witness{}, fmt.Errorf("%w: quadrilateral needs 4, got %d", ErrTooFewLines, n)
	}

	var (
		best  m.Witness
		found bool
	)

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			p1, ok := geometry.Intersect(lines[i], lines[j])
			if !ok {
				continue
			}

			for k := j + 1; k < n; k++ {
				p2, ok := geometry.Intersect(lines[j], lines[k])
				if !ok {
					continue
				}

				for l := k + 1; l < n; l++ {
					p3, ok3 := geometry.Intersect(lines[k], lines[l])
					p4, ok4 := geometry.Intersect(lines[l], lines[i])

					if !ok3 || !ok4 {
						continue
					}

					area := geometry.QuadArea(p1, p2, p3, p4)
					if area > best.Area {
						best = m.Witness{Shape: m.ShapeQuadrilateral, Lines: []int{i, j, k, l}, Vertices: []m.Point{p1, p2, p3, p4}, Area: area}
						found = true
					}
				}
			}
		}
	}

	if !found {
		return m.Witness{}, ErrNoWitness
	}

	return best, nil
}

// GridQuadrilateral builds the outer boundary of a two-slope grid. Lines
// sharing the first line's slope form group A, the rest group B. Each group
// is sorted by intercept, descending; its first and last lines are the outer
// pair. The corners are o1∩o3, o1∩o4, o2∩o4, o2∩o3, in that cyclic order, and
// Vertices keeps that order. Area may be zero when a group has a single
// distinct intercept. Runs in O(n log n).
func GridQuadrilateral(lines m.LineSet) (m.Witness, error) {
	if len(lines) < 2 {
		return m.Witness{}, fmt.Errorf("%w: grid needs 2, got %d", ErrTooFewLines, len(lines))
	}

	groupA, groupB := splitBySlope(lines)
	if len(groupB) == 0 || distinctSlopes(groupB.lines(lines)) != 1 {
		return m.Witness{}, ErrNotGrid
	}

	o1, o2 := outerPair(lines, groupA)
	o3, o4 := outerPair(lines, groupB)

	corners := [4][2]int{{o1, o3}, {o1, o4}, {o2, o4}, {o2, o3}}

	w := m.Witness{Shape: m.ShapeQuadrilateral, Lines: []int{o1, o2, o3, o4}, Vertices: make([]m.Point, 0, 4)}

	for _, c := range corners {
		p, ok := geometry.Intersect(lines[c[0]], lines[c[1]])
		if !ok {
			return m.Witness{}, ErrNotGrid
		}

		w.Vertices = append(w.Vertices, p)
	}

	w.Area = geometry.QuadArea(w.Vertices[0], w.Vertices[1], w.Vertices[2], w.Vertices[3])

	return w, nil
}

// indexGroup is a list of indices into a LineSet.
type indexGroup []int

func (g indexGroup) lines(all m.LineSet) m.LineSet {
	out := make(m.LineSet, len(g))
	for i, idx := range g {
		out[i] = all[idx]
	}

	return out
}

func splitBySlope(lines m.LineSet) (indexGroup, indexGroup) {
	var a, b indexGroup

	for i, l := range lines {
		if geometry.AreParallel(l, lines[0]) {
			a = append(a, i)
		} else {
			b = append(b, i)
		}
	}

	return a, b
}

// outerPair returns the indices of the max- and min-intercept lines of g.
// Equal intercepts keep input order.
func outerPair(lines m.LineSet, g indexGroup) (int, int) {
	sorted := append(indexGroup(nil), g...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return lines[sorted[i]].Intercept > lines[sorted[j]].Intercept
	})

	return sorted[0], sorted[len(sorted)-1]
}
