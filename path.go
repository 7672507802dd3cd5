package geom

import (
	"fmt"
	"math"
	"strings"
)

// Path is a single continuous subpath: a sequence of curve segments in which
// every segment starts where the previous one ends. Closed paths carry an
// explicit closing segment back to the starting point.
type Path struct {
	segs   []Curve
	start  Point
	closed bool
}

// MoveTo sets the starting point and may only be called on an empty path.
func (p *Path) MoveTo(x, y float64) *Path {
	if 0 < len(p.segs) {
		panic("geom: MoveTo on non-empty path")
	}
	p.start = Point{x, y}
	return p
}

// LineTo adds a straight segment to (x,y).
func (p *Path) LineTo(x, y float64) *Path {
	p.append(Line{p.End(), Point{x, y}})
	return p
}

// QuadTo adds a quadratic Bézier segment with control point (cpx,cpy) to (x,y).
func (p *Path) QuadTo(cpx, cpy, x, y float64) *Path {
	p.append(Quad{p.End(), Point{cpx, cpy}, Point{x, y}})
	return p
}

// CubeTo adds a cubic Bézier segment with control points (cpx1,cpy1) and
// (cpx2,cpy2) to (x,y).
func (p *Path) CubeTo(cpx1, cpy1, cpx2, cpy2, x, y float64) *Path {
	p.append(Cube{p.End(), Point{cpx1, cpy1}, Point{cpx2, cpy2}, Point{x, y}})
	return p
}

// ArcTo adds an elliptical arc with radii rx and ry, rotated by rot degrees,
// to (x,y), approximated by cubic Bézier segments of at most a quarter turn
// each. large and sweep select among the four candidate arcs as in SVG.
func (p *Path) ArcTo(rx, ry, rot float64, large, sweep bool, x, y float64) *Path {
	start := p.End()
	if start.X == x && start.Y == y {
		return p
	}
	if rx == 0.0 || ry == 0.0 {
		return p.LineTo(x, y)
	}
	rx, ry = math.Abs(rx), math.Abs(ry)
	for _, c := range ellipseToCubes(start, rx, ry, rot, large, sweep, Point{x, y}) {
		p.append(c)
	}
	return p
}

// Close marks the path as closed, adding the closing segment back to the
// starting point when the path does not already end there.
func (p *Path) Close() *Path {
	if p.closed {
		return p
	}
	if end := p.End(); !end.Equals(p.start) {
		p.append(Line{end, p.start})
	}
	p.closed = true
	return p
}

func (p *Path) append(c Curve) {
	if p.closed {
		panic("geom: segment after Close")
	}
	p.segs = append(p.segs, c)
}

// Len returns the number of segments.
func (p *Path) Len() int {
	return len(p.segs)
}

// At returns the i-th segment.
func (p *Path) At(i int) Curve {
	return p.segs[i]
}

// Empty returns true if the path has no segments.
func (p *Path) Empty() bool {
	return len(p.segs) == 0
}

// Closed returns true if the path is closed.
func (p *Path) Closed() bool {
	return p.closed
}

// Start returns the starting point.
func (p *Path) Start() Point {
	return p.start
}

// End returns the current end point, the starting point when empty.
func (p *Path) End() Point {
	if len(p.segs) == 0 {
		return p.start
	}
	return p.segs[len(p.segs)-1].End()
}

// curveBounds returns the tight bounding box of a segment using its
// derivative roots.
func curveBounds(c Curve) Rect {
	r := c.Start().RectTo(c.End())
	d := c.Deriv()
	for _, axis := range []Axis{X, Y} {
		for _, t := range d.Roots(0.0, axis) {
			p := c.Pos(t)
			r = r.Union(p.RectTo(p))
		}
	}
	return r
}

// Bounds returns the tight bounding box of the path.
func (p *Path) Bounds() Rect {
	if len(p.segs) == 0 {
		return Rect{}
	}
	r := curveBounds(p.segs[0])
	for _, c := range p.segs[1:] {
		r = r.Union(curveBounds(c))
	}
	return r
}

// ToSVG returns the path as SVG path data.
func (p *Path) ToSVG() string {
	sb := strings.Builder{}
	fmt.Fprintf(&sb, "M%v %v", num(p.start.X), num(p.start.Y))
	segs := p.segs
	if p.closed && 0 < len(segs) {
		if l, ok := segs[len(segs)-1].(Line); ok && l.P1 == p.start {
			segs = segs[:len(segs)-1]
		}
	}
	for _, c := range segs {
		switch c := c.(type) {
		case Line:
			fmt.Fprintf(&sb, "L%v %v", num(c.P1.X), num(c.P1.Y))
		case Quad:
			fmt.Fprintf(&sb, "Q%v %v %v %v", num(c.P1.X), num(c.P1.Y), num(c.P2.X), num(c.P2.Y))
		case Cube:
			fmt.Fprintf(&sb, "C%v %v %v %v %v %v", num(c.P1.X), num(c.P1.Y), num(c.P2.X), num(c.P2.Y), num(c.P3.X), num(c.P3.Y))
		default:
			panic("bug: unknown segment type")
		}
	}
	if p.closed {
		sb.WriteString("z")
	}
	return sb.String()
}

////////////////////////////////////////////////////////////////

// arcToCenter changes between the SVG arc format to the center and angles format
// see https://www.w3.org/TR/SVG/implnote.html#ArcImplementationNotes
// and http://commons.oreilly.com/wiki/index.php/SVG_Essentials/Paths#Technique:_Converting_from_Other_Arc_Formats
func arcToCenter(x1, y1, rx, ry, rot float64, large, sweep bool, x2, y2 float64) (float64, float64, float64, float64) {
	if x1 == x2 && y1 == y2 {
		return x1, y1, 0.0, 0.0
	}

	rot *= math.Pi / 180.0
	x1p := math.Cos(rot)*(x1-x2)/2.0 + math.Sin(rot)*(y1-y2)/2.0
	y1p := -math.Sin(rot)*(x1-x2)/2.0 + math.Cos(rot)*(y1-y2)/2.0

	// reduce rounding errors
	radiiCheck := x1p*x1p/rx/rx + y1p*y1p/ry/ry
	if radiiCheck > 1.0 {
		rx *= math.Sqrt(radiiCheck)
		ry *= math.Sqrt(radiiCheck)
	}

	sq := (rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p) / (rx*rx*y1p*y1p + ry*ry*x1p*x1p)
	if sq < 0.0 {
		sq = 0.0
	}
	coef := math.Sqrt(sq)
	if large == sweep {
		coef = -coef
	}
	cxp := coef * rx * y1p / ry
	cyp := coef * -ry * x1p / rx
	cx := math.Cos(rot)*cxp - math.Sin(rot)*cyp + (x1+x2)/2.0
	cy := math.Sin(rot)*cxp + math.Cos(rot)*cyp + (y1+y2)/2.0

	// specify U and V vectors; theta = arccos(U*V / sqrt(U*U + V*V))
	ux := (x1p - cxp) / rx
	uy := (y1p - cyp) / ry
	vx := -(x1p + cxp) / rx
	vy := -(y1p + cyp) / ry

	theta := math.Acos(ux / math.Sqrt(ux*ux+uy*uy))
	if uy < 0.0 {
		theta = -theta
	}

	delta := math.Acos((ux*vx + uy*vy) / math.Sqrt((ux*ux+uy*uy)*(vx*vx+vy*vy)))
	if ux*vy-uy*vx < 0.0 {
		delta = -delta
	}
	if !sweep && delta > 0.0 {
		delta -= 2.0 * math.Pi
	} else if sweep && delta < 0.0 {
		delta += 2.0 * math.Pi
	}
	return cx, cy, theta, theta + delta
}

// ellipseToCubes approximates the elliptical arc from start to end by cubic
// Bézier segments, splitting the angular sweep into parts of at most a
// quarter turn.
func ellipseToCubes(start Point, rx, ry, rot float64, large, sweep bool, end Point) []Cube {
	phi := rot * math.Pi / 180.0
	sinphi, cosphi := math.Sincos(phi)

	// scale the radii up when they cannot span the endpoints
	x1p := cosphi*(start.X-end.X)/2.0 + sinphi*(start.Y-end.Y)/2.0
	y1p := -sinphi*(start.X-end.X)/2.0 + cosphi*(start.Y-end.Y)/2.0
	lambda := x1p*x1p/(rx*rx) + y1p*y1p/(ry*ry)
	if 1.0 < lambda {
		rx *= math.Sqrt(lambda)
		ry *= math.Sqrt(lambda)
	}

	cx, cy, theta0, theta1 := arcToCenter(start.X, start.Y, rx, ry, rot, large, sweep, end.X, end.Y)
	center := Point{cx, cy}

	pos := func(theta float64) Point {
		sintheta, costheta := math.Sincos(theta)
		x := rx * costheta
		y := ry * sintheta
		return center.Add(Point{cosphi*x - sinphi*y, sinphi*x + cosphi*y})
	}
	deriv := func(theta float64) Point {
		sintheta, costheta := math.Sincos(theta)
		x := -rx * sintheta
		y := ry * costheta
		return Point{cosphi*x - sinphi*y, sinphi*x + cosphi*y}
	}

	n := int(math.Ceil(math.Abs(theta1-theta0) / (math.Pi / 2.0)))
	if n == 0 {
		n = 1
	}
	dtheta := (theta1 - theta0) / float64(n)
	k := 4.0 / 3.0 * math.Tan(dtheta/4.0)

	cubes := make([]Cube, 0, n)
	p0 := start
	for i := 0; i < n; i++ {
		ta := theta0 + float64(i)*dtheta
		tb := ta + dtheta
		p3 := pos(tb)
		if i == n-1 {
			p3 = end
		}
		cubes = append(cubes, Cube{
			p0,
			p0.Add(deriv(ta).Mul(k)),
			p3.Sub(deriv(tb).Mul(k)),
			p3,
		})
		p0 = p3
	}
	return cubes
}
