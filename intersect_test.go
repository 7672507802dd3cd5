package geom

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestIntersectLines(t *testing.T) {
	a := Line{Point{0, 0}, Point{2, 2}}
	b := Line{Point{0, 2}, Point{2, 0}}
	xs := IntersectMonotone(a, Interval{0, 1}, b, Interval{0, 1})
	test.T(t, len(xs), 1)
	test.Float(t, xs[0].TA, 0.5)
	test.Float(t, xs[0].TB, 0.5)

	// restricting either side maps the crossing into its interval
	xs = IntersectMonotone(a, Interval{0.5, 1}, b, Interval{0.5, 1})
	test.T(t, len(xs), 1)
	test.Float(t, xs[0].TA, 0.5)
	test.Float(t, xs[0].TB, 0.5)

	// crossing outside the restricted range
	xs = IntersectMonotone(a, Interval{0, 0.4}, b, Interval{0, 1})
	test.T(t, len(xs), 0)

	// parallels never cross
	xs = IntersectMonotone(Line{Point{0, 0}, Point{4, 0}}, Interval{0, 1},
		Line{Point{0, 1}, Point{4, 1}}, Interval{0, 1})
	test.T(t, len(xs), 0)

	// a shared endpoint is a crossing at the parameter ends
	xs = IntersectMonotone(Line{Point{0, 0}, Point{2, 0}}, Interval{0, 1},
		Line{Point{2, 0}, Point{2, 2}}, Interval{0, 1})
	test.T(t, len(xs), 1)
	test.Float(t, xs[0].TA, 1.0)
	test.Float(t, xs[0].TB, 0.0)
}

func TestIntersectLineQuad(t *testing.T) {
	l := Line{Point{0, 1}, Point{4, 1}}
	q := Quad{Point{0, 0}, Point{2, 4}, Point{4, 0}}

	xs := IntersectMonotone(l, Interval{0, 1}, q, Interval{0, 0.5})
	test.T(t, len(xs), 1)
	test.Float(t, xs[0].TB, (2.0-math.Sqrt2)/4.0)
	test.Float(t, xs[0].TA, (2.0-math.Sqrt2)/4.0)

	xs = IntersectMonotone(q, Interval{0.5, 1}, l, Interval{0, 1})
	test.T(t, len(xs), 1)
	test.Float(t, xs[0].TA, (2.0+math.Sqrt2)/4.0)
	test.Float(t, xs[0].TB, (2.0+math.Sqrt2)/4.0)

	// the line passes above the quad
	xs = IntersectMonotone(Line{Point{0, 3}, Point{4, 3}}, Interval{0, 1}, q, Interval{0, 0.5})
	test.T(t, len(xs), 0)
}

func TestIntersectLineCube(t *testing.T) {
	l := Line{Point{0, 0}, Point{3, 0}}
	c := Cube{Point{0, 0}, Point{1, 3}, Point{2, -3}, Point{3, 0}}

	xs := IntersectMonotone(l, Interval{0, 1}, c, Interval{0, 1})
	test.T(t, len(xs), 3)
	test.Float(t, xs[0].TA, 0.0)
	test.Float(t, xs[1].TA, 0.5)
	test.Float(t, xs[2].TA, 1.0)
	test.Float(t, xs[1].TB, 0.5)
}

func TestIntersectQuads(t *testing.T) {
	a := Quad{Point{0, 0}, Point{2, 4}, Point{4, 0}}
	b := Quad{Point{0, 2}, Point{2, -2}, Point{4, 2}}

	xs := IntersectMonotone(a, Interval{0, 0.5}, b, Interval{0, 0.5})
	test.T(t, len(xs), 1)
	want := (2.0 - math.Sqrt2) / 4.0
	test.That(t, math.Abs(xs[0].TA-want) < 1e-6, "ta", xs[0].TA)
	test.That(t, math.Abs(xs[0].TB-want) < 1e-6, "tb", xs[0].TB)

	// chained segments only touch at their shared endpoint
	xs = IntersectMonotone(Quad{Point{0, 0}, Point{1, 2}, Point{2, 2}}, Interval{0, 1},
		Quad{Point{2, 2}, Point{3, 2}, Point{4, 0}}, Interval{0, 1})
	test.T(t, len(xs), 0)
}

func TestDedupCrossings(t *testing.T) {
	xs := dedupCrossings([]Crossing{{0.1, 0.2}, {0.1 + 1e-9, 0.2 + 1e-9}, {0.5, 0.5}})
	test.T(t, len(xs), 2)
	test.Float(t, xs[0].TA, 0.1)
	test.Float(t, xs[1].TA, 0.5)
	test.T(t, len(dedupCrossings(nil)), 0)
}
