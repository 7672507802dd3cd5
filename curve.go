package geom

import "math"

// Curve is a parametric curve segment over t in [0,1]. All segments used by
// the sweep satisfy this contract; evaluation outside [0,1] extrapolates.
type Curve interface {
	// Pos returns the coordinate at parameter t.
	Pos(t float64) Point

	// Start returns the coordinate at t=0.
	Start() Point

	// End returns the coordinate at t=1.
	End() Point

	// Deriv returns the derivative curve d/dt.
	Deriv() Curve

	// UnitTangent returns the normalized tangent direction at t.
	UnitTangent(t float64) Point

	// Portion returns the sub-curve over [t0,t1], reversed when t1 < t0.
	Portion(t0, t1 float64) Curve

	// Roots returns the parameters in [0,1], ascending, at which the
	// coordinate along axis d equals v.
	Roots(v float64, d Axis) []float64
}

// unitTangentAt returns the normalized tangent of c at t, falling back on
// successive derivatives when the lower ones vanish (cusps), and finally on
// the chord direction.
func unitTangentAt(c Curve, t float64) Point {
	d := c.Deriv()
	for i := 0; i < 3; i++ {
		if v := d.Pos(t); !v.IsZero() {
			return v.Div(v.Length())
		}
		d = d.Deriv()
	}
	if v := c.End().Sub(c.Start()); !v.IsZero() {
		return v.Div(v.Length())
	}
	return Point{}
}

// clampRoot clamps t onto [0,1] when it is within Epsilon outside of it, and
// reports whether t belongs to the curve's domain at all.
func clampRoot(t float64) (float64, bool) {
	if t < 0.0 {
		return 0.0, -Epsilon < t
	} else if 1.0 < t {
		return 1.0, t < 1.0+Epsilon
	}
	return t, true
}

// collectRoots filters the solver results down to ascending parameters in [0,1].
func collectRoots(ts ...float64) []float64 {
	var roots []float64
	for _, t := range ts {
		if math.IsNaN(t) {
			continue
		}
		if t, ok := clampRoot(t); ok {
			if 0 < len(roots) && Equal(roots[len(roots)-1], t) {
				continue
			}
			roots = append(roots, t)
		}
	}
	return roots
}

////////////////////////////////////////////////////////////////

// Line is a straight segment from P0 to P1. A line with P0 == P1 is the
// constant curve, which is how derivatives of lines are represented.
type Line struct {
	P0, P1 Point
}

func (c Line) Pos(t float64) Point {
	return c.P0.Interpolate(c.P1, t)
}

func (c Line) Start() Point {
	return c.P0
}

func (c Line) End() Point {
	return c.P1
}

func (c Line) Deriv() Curve {
	d := c.P1.Sub(c.P0)
	return Line{d, d}
}

func (c Line) UnitTangent(t float64) Point {
	return unitTangentAt(c, t)
}

func (c Line) Portion(t0, t1 float64) Curve {
	return Line{c.Pos(t0), c.Pos(t1)}
}

func (c Line) Roots(v float64, d Axis) []float64 {
	a, b := c.P0.Coord(d), c.P1.Coord(d)
	if a == b {
		// constant along d, no isolated crossings
		return nil
	}
	return collectRoots((v - a) / (b - a))
}

////////////////////////////////////////////////////////////////

// Quad is a quadratic Bézier segment with control point P1.
type Quad struct {
	P0, P1, P2 Point
}

func (c Quad) Pos(t float64) Point {
	p0 := c.P0.Mul((1 - t) * (1 - t))
	p1 := c.P1.Mul(2 * t * (1 - t))
	p2 := c.P2.Mul(t * t)
	return p0.Add(p1).Add(p2)
}

func (c Quad) Start() Point {
	return c.P0
}

func (c Quad) End() Point {
	return c.P2
}

func (c Quad) Deriv() Curve {
	return Line{c.P1.Sub(c.P0).Mul(2.0), c.P2.Sub(c.P1).Mul(2.0)}
}

func (c Quad) UnitTangent(t float64) Point {
	return unitTangentAt(c, t)
}

func (c Quad) Portion(t0, t1 float64) Curve {
	p0 := c.Pos(t0)
	p2 := c.Pos(t1)
	p1 := p0.Add(c.Deriv().Pos(t0).Mul((t1 - t0) / 2.0))
	return Quad{p0, p1, p2}
}

func (c Quad) Roots(v float64, d Axis) []float64 {
	p0, p1, p2 := c.P0.Coord(d), c.P1.Coord(d), c.P2.Coord(d)
	a := p0 - 2.0*p1 + p2
	b := 2.0 * (p1 - p0)
	x1, x2 := solveQuadraticFormula(a, b, p0-v)
	return collectRoots(x1, x2)
}

////////////////////////////////////////////////////////////////

// Cube is a cubic Bézier segment with control points P1 and P2.
type Cube struct {
	P0, P1, P2, P3 Point
}

func (c Cube) Pos(t float64) Point {
	p0 := c.P0.Mul((1 - t) * (1 - t) * (1 - t))
	p1 := c.P1.Mul(3 * t * (1 - t) * (1 - t))
	p2 := c.P2.Mul(3 * t * t * (1 - t))
	p3 := c.P3.Mul(t * t * t)
	return p0.Add(p1).Add(p2).Add(p3)
}

func (c Cube) Start() Point {
	return c.P0
}

func (c Cube) End() Point {
	return c.P3
}

func (c Cube) Deriv() Curve {
	return Quad{c.P1.Sub(c.P0).Mul(3.0), c.P2.Sub(c.P1).Mul(3.0), c.P3.Sub(c.P2).Mul(3.0)}
}

func (c Cube) UnitTangent(t float64) Point {
	return unitTangentAt(c, t)
}

func (c Cube) Portion(t0, t1 float64) Curve {
	p0 := c.Pos(t0)
	p3 := c.Pos(t1)
	deriv := c.Deriv()
	scale := (t1 - t0) / 3.0
	p1 := p0.Add(deriv.Pos(t0).Mul(scale))
	p2 := p3.Sub(deriv.Pos(t1).Mul(scale))
	return Cube{p0, p1, p2, p3}
}

func (c Cube) Roots(v float64, d Axis) []float64 {
	p0, p1, p2, p3 := c.P0.Coord(d), c.P1.Coord(d), c.P2.Coord(d), c.P3.Coord(d)
	a := -p0 + 3.0*p1 - 3.0*p2 + p3
	b := 3.0*p0 - 6.0*p1 + 3.0*p2
	cc := -3.0*p0 + 3.0*p1
	x1, x2, x3 := solveCubicFormula(a, b, cc, p0-v)
	return collectRoots(x1, x2, x3)
}
