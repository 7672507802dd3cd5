package geom

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestEqual(t *testing.T) {
	test.That(t, Equal(1.0, 1.0))
	test.That(t, Equal(1.0, 1.0+1e-11))
	test.That(t, !Equal(1.0, 1.0+1e-9))
	test.That(t, !Equal(0.0, 1.0))
}

func TestAxis(t *testing.T) {
	test.T(t, X.Other(), Y)
	test.T(t, Y.Other(), X)
	test.String(t, X.String(), "x")
	test.String(t, Y.String(), "y")
}

func TestPoint(t *testing.T) {
	p := Point{3, 4}
	test.T(t, p.Neg(), Point{-3, -4})
	test.T(t, p.Add(Point{1, 1}), Point{4, 5})
	test.T(t, p.Sub(Point{1, 1}), Point{2, 3})
	test.T(t, p.Mul(2.0), Point{6, 8})
	test.T(t, p.Div(2.0), Point{1.5, 2})
	test.T(t, p.Rot90CW(), Point{4, -3})
	test.T(t, p.Rot90CCW(), Point{-4, 3})
	test.Float(t, p.Dot(Point{3, 0}), 9.0)
	test.Float(t, p.PerpDot(Point{3, 0}), p.Rot90CCW().Dot(Point{3, 0}))
	test.Float(t, p.Length(), 5.0)
	test.T(t, p.Norm(10.0), Point{6, 8})
	test.T(t, Point{}.Norm(1.0), Point{0.0, 0.0})
	test.T(t, Point{}.Interpolate(p, 0.5), Point{1.5, 2.0})
	test.Float(t, p.Coord(X), 3.0)
	test.Float(t, p.Coord(Y), 4.0)
	test.That(t, Point{}.IsZero())
	test.That(t, !p.IsZero())
	test.That(t, p.Equals(Point{3, 4}))
	test.That(t, !p.Equals(Point{3, 5}))
	test.That(t, p.IsFinite())
	test.That(t, !Point{math.NaN(), 0.0}.IsFinite())
	test.That(t, !Point{0.0, math.Inf(1)}.IsFinite())
	test.String(t, p.String(), "[3; 4]")
	test.String(t, Point{0.5, -2}.String(), "[0.5; -2]")
}

func TestInterval(t *testing.T) {
	test.T(t, NewInterval(1.0, 0.0), Interval{0.0, 1.0})
	test.T(t, NewInterval(0.0, 1.0), Interval{0.0, 1.0})

	i := Interval{0.0, 1.0}
	test.That(t, i.Contains(0.0))
	test.That(t, i.Contains(1.0))
	test.That(t, i.Contains(0.5))
	test.That(t, !i.Contains(-0.1))
	test.That(t, !i.Contains(1.1))

	test.That(t, i.Intersects(Interval{0.5, 2.0}))
	test.That(t, i.Intersects(Interval{1.0, 2.0}))
	test.That(t, !i.Intersects(Interval{1.5, 2.0}))
	test.Float(t, Interval{2.0, 5.0}.Extent(), 3.0)
}

func TestRect(t *testing.T) {
	r := Point{4, 0}.RectTo(Point{0, 3})
	test.T(t, r, Rect{0, 0, 4, 3})
	test.T(t, r.Interval(X), Interval{0.0, 4.0})
	test.T(t, r.Interval(Y), Interval{0.0, 3.0})

	test.That(t, r.Touches(Rect{4, 3, 5, 5}))
	test.That(t, r.Touches(Rect{1, 1, 2, 2}))
	test.That(t, !r.Touches(Rect{5, 0, 6, 3}))

	test.T(t, r.Union(Rect{-1, 1, 2, 5}), Rect{-1, 0, 4, 5})
	test.Float(t, r.MaxExtent(), 4.0)
	test.Float(t, Rect{0, 0, 1, 3}.MaxExtent(), 3.0)
	test.String(t, r.String(), "[0; 0]--[4; 3]")
}

func TestSolveQuadraticFormula(t *testing.T) {
	x1, x2 := solveQuadraticFormula(0.0, 0.0, 0.0)
	test.Float(t, x1, 0.0)
	test.Float(t, x2, math.NaN())

	x1, x2 = solveQuadraticFormula(0.0, 0.0, 1.0)
	test.Float(t, x1, math.NaN())
	test.Float(t, x2, math.NaN())

	x1, x2 = solveQuadraticFormula(0.0, 1.0, 1.0)
	test.Float(t, x1, -1.0)
	test.Float(t, x2, math.NaN())

	x1, x2 = solveQuadraticFormula(1.0, 1.0, 0.0)
	test.Float(t, x1, 0.0)
	test.Float(t, x2, -1.0)

	x1, x2 = solveQuadraticFormula(1.0, 1.0, 1.0) // discriminant negative
	test.Float(t, x1, math.NaN())
	test.Float(t, x2, math.NaN())

	x1, x2 = solveQuadraticFormula(1.0, -2.0, 1.0) // discriminant zero
	test.Float(t, x1, 1.0)
	test.Float(t, x2, math.NaN())

	x1, x2 = solveQuadraticFormula(1.0, -3.0, 2.0) // x^2 - 3x + 2 = (x-1)(x-2)
	test.Float(t, x1, 1.0)
	test.Float(t, x2, 2.0)
}

func TestSolveCubicFormula(t *testing.T) {
	x1, x2, x3 := solveCubicFormula(0.0, 1.0, -3.0, 2.0) // fallback to quadratic
	test.Float(t, x1, 1.0)
	test.Float(t, x2, 2.0)
	test.Float(t, x3, math.NaN())

	x1, x2, x3 = solveCubicFormula(2.0, -3.0, 1.0, 0.0) // t(2t-1)(t-1)
	test.Float(t, x1, 0.0)
	test.Float(t, x2, 0.5)
	test.Float(t, x3, 1.0)

	x1, x2, x3 = solveCubicFormula(1.0, -3.0, 3.0, -1.0) // (t-1)^3
	test.Float(t, x1, 1.0)
	test.Float(t, x2, math.NaN())
	test.Float(t, x3, math.NaN())
}

func TestNumFormat(t *testing.T) {
	test.String(t, num(0.0).String(), "0")
	test.String(t, num(1.0).String(), "1")
	test.String(t, num(0.5).String(), ".5")
	test.String(t, num(-0.5).String(), "-.5")
	test.String(t, num(1.5).String(), "1.5")
	test.String(t, num(100.0).String(), "100")
	test.String(t, num(0.123456789).String(), ".12345679")
}

func TestDecFormat(t *testing.T) {
	test.String(t, dec(0.0).String(), "0")
	test.String(t, dec(22.0).String(), "22")
	test.String(t, dec(-10.0).String(), "-10")
	test.String(t, dec(2.5).String(), "2.5")
}
