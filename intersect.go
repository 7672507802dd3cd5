package geom

import (
	"math"
	"sort"
)

// Crossing is a pair of curve parameters at which two curves meet: TA on the
// first curve and TB on the second.
type Crossing struct {
	TA, TB float64
}

// intersection bisection bounds
const (
	xsLeafExtent = 1e-7
	xsMaxDepth   = 48
	xsBudget     = 1 << 16
)

// IntersectMonotone returns the crossings of a over the parameter interval ai
// with b over bi, in ascending TA order. Both curves must be monotonic in both
// coordinates over the supplied intervals; this makes the endpoint rectangle a
// valid bounding box, which drives the subdivision. Line pairs and line-curve
// pairs are solved analytically, curve-curve pairs by recursive subdivision
// with a chord approximation at the leaves.
func IntersectMonotone(a Curve, ai Interval, b Curve, bi Interval) []Crossing {
	var xs []Crossing
	la, aIsLine := a.(Line)
	lb, bIsLine := b.(Line)
	switch {
	case aIsLine && bIsLine:
		a0, a1 := a.Pos(ai.Min), a.Pos(ai.Max)
		b0, b1 := b.Pos(bi.Min), b.Pos(bi.Max)
		if s, u, ok := linearIntersect(a0, a1, b0, b1); ok {
			xs = append(xs, Crossing{
				ai.Min + s*ai.Extent(),
				bi.Min + u*bi.Extent(),
			})
		}
	case aIsLine:
		for _, tb := range lineCurveRoots(la, b) {
			if !bi.Contains(tb) {
				continue
			}
			ta, ok := lineParam(la, b.Pos(tb))
			if ok && ai.Contains(ta) {
				xs = append(xs, Crossing{ta, tb})
			}
		}
	case bIsLine:
		for _, ta := range lineCurveRoots(lb, a) {
			if !ai.Contains(ta) {
				continue
			}
			tb, ok := lineParam(lb, a.Pos(ta))
			if ok && bi.Contains(tb) {
				xs = append(xs, Crossing{ta, tb})
			}
		}
	default:
		budget := xsBudget
		intersectMonoRec(a, ai.Min, ai.Max, b, bi.Min, bi.Max, 0, &budget, &xs)
	}

	sort.Slice(xs, func(i, j int) bool {
		return xs[i].TA < xs[j].TA
	})
	return dedupCrossings(xs)
}

// linearIntersect finds the crossing of segments p0-p1 and q0-q1 and returns
// the normalized parameters on either segment. Parallel segments yield no
// crossing, including collinear overlaps.
func linearIntersect(p0, p1, q0, q1 Point) (float64, float64, bool) {
	dp := p1.Sub(p0)
	dq := q1.Sub(q0)
	denom := dp.PerpDot(dq)
	if denom == 0.0 {
		return 0.0, 0.0, false
	}
	w := q0.Sub(p0)
	s := w.PerpDot(dq) / denom
	u := w.PerpDot(dp) / denom
	if s < -Epsilon || 1.0+Epsilon < s || u < -Epsilon || 1.0+Epsilon < u {
		return 0.0, 0.0, false
	}
	return math.Min(1.0, math.Max(0.0, s)), math.Min(1.0, math.Max(0.0, u)), true
}

// lineCurveRoots returns the parameters on c at which it meets the infinite
// line through l, by solving the curve against the line's normal form.
func lineCurveRoots(l Line, c Curve) []float64 {
	n := l.P1.Sub(l.P0).Rot90CW()
	switch c := c.(type) {
	case Line:
		q0 := c.P0.Sub(l.P0).Dot(n)
		q1 := c.P1.Sub(l.P0).Dot(n)
		if q0 == q1 {
			return nil
		}
		return collectRoots(q0 / (q0 - q1))
	case Quad:
		q0 := c.P0.Sub(l.P0).Dot(n)
		q1 := c.P1.Sub(l.P0).Dot(n)
		q2 := c.P2.Sub(l.P0).Dot(n)
		x1, x2 := solveQuadraticFormula(q0-2.0*q1+q2, 2.0*(q1-q0), q0)
		return collectRoots(x1, x2)
	case Cube:
		q0 := c.P0.Sub(l.P0).Dot(n)
		q1 := c.P1.Sub(l.P0).Dot(n)
		q2 := c.P2.Sub(l.P0).Dot(n)
		q3 := c.P3.Sub(l.P0).Dot(n)
		x1, x2, x3 := solveCubicFormula(-q0+3.0*q1-3.0*q2+q3, 3.0*q0-6.0*q1+3.0*q2, -3.0*q0+3.0*q1, q0)
		return collectRoots(x1, x2, x3)
	}
	return nil
}

// lineParam projects p onto the line and returns its parameter.
func lineParam(l Line, p Point) (float64, bool) {
	d := l.P1.Sub(l.P0)
	dd := d.Dot(d)
	if dd == 0.0 {
		return 0.0, false
	}
	t, ok := clampRoot(p.Sub(l.P0).Dot(d) / dd)
	return t, ok
}

// intersectMonoRec subdivides both monotone pieces until their boxes separate
// or become small enough for a chord approximation. Exactly chained endpoints
// (a ends where b starts, or vice versa) are not reported as crossings.
func intersectMonoRec(a Curve, al, ah float64, b Curve, bl, bh float64, depth int, budget *int, xs *[]Crossing) {
	if *budget <= 0 {
		return
	}
	*budget--

	a0, a1 := a.Pos(al), a.Pos(ah)
	b0, b1 := b.Pos(bl), b.Pos(bh)
	ra := a0.RectTo(a1)
	rb := b0.RectTo(b1)
	if !ra.Touches(rb) || a0 == b1 || a1 == b0 {
		return
	}

	if xsMaxDepth < depth || ra.MaxExtent() < xsLeafExtent && rb.MaxExtent() < xsLeafExtent {
		if s, u, ok := linearIntersect(a0, a1, b0, b1); ok {
			*xs = append(*xs, Crossing{al + s*(ah-al), bl + u*(bh-bl)})
		}
		return
	}

	am := (al + ah) / 2.0
	bm := (bl + bh) / 2.0
	intersectMonoRec(a, al, am, b, bl, bm, depth+1, budget, xs)
	intersectMonoRec(a, al, am, b, bm, bh, depth+1, budget, xs)
	intersectMonoRec(a, am, ah, b, bl, bm, depth+1, budget, xs)
	intersectMonoRec(a, am, ah, b, bm, bh, depth+1, budget, xs)
}

// dedupCrossings merges crossings reported twice by adjacent subdivision
// cells; xs must be sorted by TA.
func dedupCrossings(xs []Crossing) []Crossing {
	if len(xs) < 2 {
		return xs
	}
	kept := xs[:1]
	for _, x := range xs[1:] {
		last := kept[len(kept)-1]
		if math.Abs(x.TA-last.TA) < 1e-6 && math.Abs(x.TB-last.TB) < 1e-6 {
			continue
		}
		kept = append(kept, x)
	}
	return kept
}
