package geometry

import (
	"math"
	"sort"

	m "github.com/mouse-blink/watchman/internal/model"
)

// TriangleArea returns the unsigned area of the triangle p1 p2 p3.
func TriangleArea(p1, p2, p3 m.Point) float64 {
	return 0.5 * math.Abs(p1.X*(p2.Y-p3.Y)+p2.X*(p3.Y-p1.Y)+p3.X*(p1.Y-p2.Y))
}

// QuadArea returns the unsigned Shoelace area of p1 p2 p3 p4 taken in the
// supplied order. A non-cyclic order yields the area of a self-intersecting
// outline without complaint; see IsSimpleQuad.
func QuadArea(p1, p2, p3, p4 m.Point) float64 {
	return 0.5 * math.Abs(
		p1.X*p2.Y+p2.X*p3.Y+p3.X*p4.Y+p4.X*p1.Y-
			p1.Y*p2.X-p2.Y*p3.X-p3.Y*p4.X-p4.Y*p1.X,
	)
}

// Centroid returns the mean of pts. The zero point is returned for an empty slice.
func Centroid(pts []m.Point) m.Point {
	if len(pts) == 0 {
		return m.Point{}
	}

	var c m.Point
	for _, p := range pts {
		c.X += p.X
		c.Y += p.Y
	}

	n := float64(len(pts))

	return m.Point{X: c.X / n, Y: c.Y / n}
}

// OrderByAngle returns pts sorted counter-clockwise by angle around their
// centroid, rotated so the first input point stays first. The input is not modified.
func OrderByAngle(pts []m.Point) []m.Point {
	if len(pts) < 3 {
		return append([]m.Point(nil), pts...)
	}

	c := Centroid(pts)

	type polar struct {
		p     m.Point
		angle float64
		first bool
	}

	ps := make([]polar, len(pts))
	for i, p := range pts {
		ps[i] = polar{p: p, angle: math.Atan2(p.Y-c.Y, p.X-c.X), first: i == 0}
	}

	sort.SliceStable(ps, func(i, j int) bool { return ps[i].angle < ps[j].angle })

	start := 0

	for i := range ps {
		if ps[i].first {
			start = i
			break
		}
	}

	out := make([]m.Point, 0, len(ps))
	for i := range ps {
		out = append(out, ps[(start+i)%len(ps)].p)
	}

	return out
}

// IsSimpleQuad reports whether the closed outline p1 p2 p3 p4 has no properly
// crossing opposite edges.
func IsSimpleQuad(p1, p2, p3, p4 m.Point) bool {
	return !segmentsCross(p1, p2, p3, p4) && !segmentsCross(p2, p3, p4, p1)
}

// segmentsCross reports a proper crossing of segments ab and cd. Touching
// endpoints and collinear overlaps do not count.
func segmentsCross(a, b, c, d m.Point) bool {
	d1 := orient(c, d, a)
	d2 := orient(c, d, b)
	d3 := orient(a, b, c)
	d4 := orient(a, b, d)

	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}

// orient is the z-component of (b-a) x (c-a).
func orient(a, b, c m.Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}
