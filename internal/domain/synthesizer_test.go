package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/watchman/internal/model"
)

func TestSynthesize(t *testing.T) {
	t.Run("all parallel yields nothing", func(t *testing.T) {
		ls := lines(1, 1, 1, 5, 1, 3)
		assert.Empty(t, Synthesize(ls, Classify(ls)))
	})

	t.Run("transversal walk", func(t *testing.T) {
		ls := lines(1, 1, 2, 3, -1, 2)

		got := Synthesize(ls, Classify(ls))
		require.Len(t, got, 1)

		c := got[0]
		assert.Equal(t, m.ShapeTwoLink, c.Shape)
		assert.True(t, c.Feasible)
		assert.Equal(t, VerdictTwoLinks, c.Verdict)
		require.NotNil(t, c.Route)
		assert.Equal(t, 2, c.Route.Links)
		assert.False(t, c.Route.Closed)
		require.Len(t, c.Route.Points, 3)
		assertPoint(t, m.Point{X: -2, Y: -1}, c.Route.Points[0])
		assertPoint(t, m.Point{X: 0.5, Y: 1.5}, c.Route.Points[1])
		assertPoint(t, m.Point{X: -2, Y: -1}, c.Route.Points[2])
	})

	t.Run("transversal and grid are both built, walk first", func(t *testing.T) {
		ls := lines(1, 0, 2, 0, 2, 5)

		got := Synthesize(ls, Classify(ls))
		require.Len(t, got, 2)

		assert.Equal(t, m.ShapeTwoLink, got[0].Shape)
		assert.Equal(t, m.ShapeQuadrilateral, got[1].Shape)
		assert.Equal(t, VerdictLowArea, got[1].Verdict)
		assert.True(t, got[1].Feasible)
		assert.Zero(t, got[1].Area)
	})

	t.Run("grid quadrilateral", func(t *testing.T) {
		ls := lines(1, 4, 1, 3, 1, 6, 1, 7, 5, 1, 5, 7)

		got := Synthesize(ls, Classify(ls))
		require.Len(t, got, 1)

		c := got[0]
		assert.Equal(t, VerdictFourLinks, c.Verdict)
		assert.InDelta(t, 6.0, c.Area, 1e-12)
		require.NotNil(t, c.Route)
		assert.True(t, c.Route.Closed)
		require.Len(t, c.Route.Points, 5)
		assert.Equal(t, c.Route.Points[0], c.Route.Points[4])
	})

	t.Run("triangle when nothing else applies", func(t *testing.T) {
		set, err := Preset("triangle")
		require.NoError(t, err)

		got := Synthesize(set.Lines, Classify(set.Lines))
		require.Len(t, got, 1)

		c := got[0]
		assert.Equal(t, m.ShapeTriangle, c.Shape)
		assert.Equal(t, VerdictThreeLinks, c.Verdict)
		assert.Positive(t, c.Area)
		require.NotNil(t, c.Route)
		assert.Equal(t, 3, c.Route.Links)
		require.Len(t, c.Route.Points, 4)
		assert.Equal(t, c.Route.Points[0], c.Route.Points[3])
	})

	t.Run("concurrent families have no triangle", func(t *testing.T) {
		ls := lines(1, 0, 1, 0, -1, 0, -1, 0, 2, 0, 2, 0)

		got := Synthesize(ls, Classify(ls))
		require.Len(t, got, 1)

		assert.False(t, got[0].Feasible)
		assert.Nil(t, got[0].Route)
		assert.Equal(t, VerdictNoShape, got[0].Verdict)
	})
}

func TestTwoLinkRoute(t *testing.T) {
	t.Run("two lines meet once", func(t *testing.T) {
		c := TwoLinkRoute(lines(1, 0, -1, 2), 0)

		require.NotNil(t, c.Route)
		require.Len(t, c.Route.Points, 2)
		assertPoint(t, m.Point{X: 1, Y: 1}, c.Route.Points[0])
		assertPoint(t, m.Point{X: 1, Y: 1}, c.Route.Points[1])
	})

	t.Run("every line is visited", func(t *testing.T) {
		ls := lines(0.5, 0, 3, 1, -2, 4, 1, -3, -0.25, 2)

		c := TwoLinkRoute(ls, 0)
		require.NotNil(t, c.Route)
		require.Len(t, c.Route.Points, len(ls))

		pts := c.Route.Points
		assert.Equal(t, pts[0], pts[len(pts)-1])

		for i := 2; i < len(pts); i++ {
			assert.LessOrEqual(t, pts[i].X, pts[i-1].X, "return leg runs right to left")
		}
	})

	t.Run("no crossings", func(t *testing.T) {
		c := TwoLinkRoute(lines(1, 0), 0)

		assert.False(t, c.Feasible)
		assert.Equal(t, VerdictNoShape, c.Verdict)
	})
}

func TestWitnessVerdict(t *testing.T) {
	assert.Empty(t, WitnessVerdict(m.ShapeTriangle, nil))
	assert.Equal(t, VerdictNoTriangle, WitnessVerdict(m.ShapeTriangle, ErrNoWitness))
	assert.Equal(t, VerdictNoTriangle, WitnessVerdict(m.ShapeTriangle, ErrTooFewLines))
	assert.Equal(t, VerdictNoShape, WitnessVerdict(m.ShapeQuadrilateral, ErrNoWitness))
	assert.Contains(t, WitnessVerdict(m.ShapeQuadrilateral, ErrNotGrid), "two-slope grid")
	assert.Equal(t, VerdictNoShape, WitnessVerdict(m.ShapeQuadrilateral, errors.New("boom")))
}
