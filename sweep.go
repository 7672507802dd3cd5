package geom

import (
	"container/heap"
	"errors"
	"fmt"
	"math"
	"sort"
)

var (
	// ErrInvalidGeometry is returned when an input path contains NaN or
	// infinite coordinates.
	ErrInvalidGeometry = errors.New("invalid geometry")

	// ErrOrderingViolation is returned when the sweep cannot maintain a
	// consistent ordering of its active sections, usually caused by
	// intersections that the given tolerance cannot separate.
	ErrOrderingViolation = errors.New("sweep ordering violation")
)

// defaultTol is the merge distance used when SweepGraph is given a zero or
// negative tolerance.
const defaultTol = 1e-5

func near(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func nearPoint(a, b Point, tol float64) bool {
	return near(a.X, b.X, tol) && near(a.Y, b.Y, tol)
}

// lexoPoint reports whether a precedes b in sweep order: first along axis d,
// ties broken along the other axis.
func lexoPoint(a, b Point, d Axis) bool {
	if a.Coord(d) < b.Coord(d) {
		return true
	}
	return a.Coord(d) == b.Coord(d) && a.Coord(d.Other()) < b.Coord(d.Other())
}

// CurveIx identifies a segment of a path list: the Ix-th segment of the
// Path-th path.
type CurveIx struct {
	Path, Ix int
}

// Get returns the identified segment.
func (ci CurveIx) Get(ps []*Path) Curve {
	return ps[ci.Path].At(ci.Ix)
}

// Section is a piece of one segment, monotonic on both axes, directed so
// that its leading endpoint FP does not come after its trailing endpoint TP
// in sweep order. F and T are the segment parameters of the two endpoints
// and may run backwards, in which case F > T.
//
// Windings is filled in when the section is emitted into a graph: per input
// path, the signed number of sections that passed below this one.
type Section struct {
	Curve    CurveIx
	F, T     float64
	FP, TP   Point
	Windings []int
}

func newSection(ps []*Path, d Axis, ci CurveIx, f, t float64) *Section {
	c := ci.Get(ps)
	fp, tp := c.Pos(f), c.Pos(t)
	if lexoPoint(tp, fp, d) {
		f, t = t, f
		fp, tp = tp, fp
	}
	return &Section{Curve: ci, F: f, T: t, FP: fp, TP: tp}
}

// setTo moves the trailing end of the section to parameter t.
func (s *Section) setTo(c Curve, d Axis, t float64) error {
	s.T = t
	s.TP = c.Pos(t)
	if s.TP.Coord(d) < s.FP.Coord(d) {
		return fmt.Errorf("%w: section trailing end moved before its leading end", ErrOrderingViolation)
	}
	return nil
}

// Bounds returns the box spanned by the section's endpoints, which contains
// the whole section since it is monotonic on both axes.
func (s *Section) Bounds() Rect {
	return s.FP.RectTo(s.TP)
}

// processSplits adds f and t to the parameter list, sorts it from f to t,
// merges parameters within tol, and drops any that fall outside f and t.
// The result always starts at exactly f and ends at exactly t.
func processSplits(splits []float64, f, t, tol float64) []float64 {
	splits = append(splits, f, t)
	sort.Float64s(splits)
	uniq := splits[:1]
	for _, s := range splits[1:] {
		if !near(s, uniq[len(uniq)-1], tol) {
			uniq = append(uniq, s)
		}
	}
	splits = uniq
	if t < f {
		for i, j := 0, len(splits)-1; i < j; i, j = i+1, j-1 {
			splits[i], splits[j] = splits[j], splits[i]
		}
	}
	for 0 < len(splits) && !near(splits[0], f, tol) {
		splits = splits[1:]
	}
	for 0 < len(splits) && !near(splits[len(splits)-1], t, tol) {
		splits = splits[:len(splits)-1]
	}
	if 0 < len(splits) {
		splits[0] = f
		splits[len(splits)-1] = t
	}
	return splits
}

// monoSplits returns the sorted parameters that cut c into pieces monotonic
// on both axes, always including 0 and 1.
func monoSplits(c Curve, tol float64) []float64 {
	deriv := c.Deriv()
	splits := append(deriv.Roots(0.0, X), deriv.Roots(0.0, Y)...)
	return processSplits(splits, 0.0, 1.0, tol)
}

// MonoSections cuts every segment of ps at its X and Y extrema and returns
// the resulting sections, each monotonic on both axes and directed along
// sweep axis d.
func MonoSections(ps []*Path, d Axis) []*Section {
	return monoSections(ps, d, defaultTol)
}

func monoSections(ps []*Path, d Axis, tol float64) []*Section {
	var monos []*Section
	for i, p := range ps {
		for j := 0; j < p.Len(); j++ {
			splits := monoSplits(p.At(j), tol)
			for k := 1; k < len(splits); k++ {
				monos = append(monos, newSection(ps, d, CurveIx{i, j}, splits[k-1], splits[k]))
			}
		}
	}
	return monos
}

// splitSection cuts a section at the given segment parameters, truncating s
// to the first piece and returning the remaining pieces.
func splitSection(s *Section, ps []*Path, d Axis, cuts []float64, tol float64) ([]*Section, error) {
	cuts = processSplits(cuts, s.F, s.T, tol)
	if len(cuts) < 3 {
		return nil, nil
	}
	c := s.Curve.Get(ps)
	if err := s.setTo(c, d, cuts[1]); err != nil {
		return nil, err
	}
	pieces := make([]*Section, 0, len(cuts)-2)
	for i := 2; i < len(cuts); i++ {
		pieces = append(pieces, newSection(ps, d, s.Curve, cuts[i-1], cuts[i]))
	}
	return pieces, nil
}

////////////////////////////////////////////////////////////////

// sectionHeap holds the sections waiting to enter the sweep, leading
// endpoints first.
type sectionHeap struct {
	d Axis
	s []*Section
}

func (h *sectionHeap) Len() int {
	return len(h.s)
}

func (h *sectionHeap) Less(i, j int) bool {
	return lexoPoint(h.s[i].FP, h.s[j].FP, h.d)
}

func (h *sectionHeap) Swap(i, j int) {
	h.s[i], h.s[j] = h.s[j], h.s[i]
}

func (h *sectionHeap) Push(x interface{}) {
	h.s = append(h.s, x.(*Section))
}

func (h *sectionHeap) Pop() interface{} {
	s := h.s[len(h.s)-1]
	h.s = h.s[:len(h.s)-1]
	return s
}

// sectionRoot returns the first parameter within the section's range at
// which its coordinate on axis d equals v, or -1 if there is none.
func sectionRoot(s *Section, ps []*Path, v float64, d Axis) float64 {
	ti := NewInterval(s.F, s.T)
	for _, r := range s.Curve.Get(ps).Roots(v, d) {
		if ti.Contains(r) {
			return r
		}
	}
	return -1.0
}

// sectionSorter orders the active sections of the sweep along dim, the axis
// perpendicular to the sweep.
type sectionSorter struct {
	ps  []*Path
	dim Axis
	tol float64
}

func (z sectionSorter) less(a, b *Section) bool {
	if a == b {
		return false
	}
	ra, rb := a.Bounds(), b.Bounds()
	if ra.Interval(z.dim).Max <= rb.Interval(z.dim).Min {
		return true
	}
	if rb.Interval(z.dim).Max <= ra.Interval(z.dim).Min {
		return false
	}
	// the boxes overlap on dim
	sweep := z.dim.Other()
	if ra.Interval(sweep).Intersects(rb.Interval(sweep)) {
		if near(a.FP.Coord(sweep), b.FP.Coord(sweep), z.tol) {
			at := a.F + 0.01
			if a.F > a.T {
				at = a.F - 0.01
			}
			bt := b.F + 0.01
			if b.F > b.T {
				bt = b.F - 0.01
			}
			return z.sectionOrder(a, at, b, bt)
		} else if a.FP.Coord(sweep) < b.FP.Coord(sweep) {
			// b starts within a's sweep span
			ta := sectionRoot(a, z.ps, b.FP.Coord(sweep), sweep)
			if ta == -1.0 {
				ta = (a.T + a.F) / 2.0
			}
			return z.sectionOrder(a, ta, b, b.F)
		} else {
			// a starts within b's sweep span
			tb := sectionRoot(b, z.ps, a.FP.Coord(sweep), sweep)
			if tb == -1.0 {
				tb = (b.T + b.F) / 2.0
			}
			return z.sectionOrder(a, a.F, b, tb)
		}
	}
	return lexoPoint(a.FP, b.FP, z.dim)
}

// sectionOrder compares two sections at the given parameters, which are
// expected to be at a common position along the sweep axis.
func (z sectionSorter) sectionOrder(a *Section, at float64, b *Section, bt float64) bool {
	ap := a.Curve.Get(z.ps).Pos(at)
	bp := b.Curve.Get(z.ps).Pos(bt)
	if near(ap.Coord(z.dim), bp.Coord(z.dim), z.tol) {
		// since the sections are monotonic, if their ends are on opposite
		// sides of this coincidence the order is determined
		if a.TP.Coord(z.dim) < ap.Coord(z.dim) && b.TP.Coord(z.dim) > ap.Coord(z.dim) {
			return true
		}
		if a.TP.Coord(z.dim) > ap.Coord(z.dim) && b.TP.Coord(z.dim) < ap.Coord(z.dim) {
			return false
		}
		ad := a.Curve.Get(z.ps).UnitTangent(a.F)
		bd := b.Curve.Get(z.ps).UnitTangent(b.F)
		// tangents can point backwards along the sweep
		if ad.Coord(z.dim.Other()) < 0.0 {
			ad = ad.Neg()
		}
		if bd.Coord(z.dim.Other()) < 0.0 {
			bd = bd.Neg()
		}
		return ad.Coord(z.dim) < bd.Coord(z.dim)
	}
	return ap.Coord(z.dim) < bp.Coord(z.dim)
}

// findVertex returns the index of the vertex within tol of p, appending a
// new vertex when there is none.
func findVertex(vertices []*Vertex, p Point, tol float64) ([]*Vertex, int) {
	for i, v := range vertices {
		if nearPoint(v.Pos, p, tol) {
			return vertices, i
		}
	}
	return append(vertices, &Vertex{Pos: p}), len(vertices)
}

func validGeometry(ps []*Path) error {
	for i, p := range ps {
		for j := 0; j < p.Len(); j++ {
			c := p.At(j)
			for _, t := range [3]float64{0.0, 0.5, 1.0} {
				if !c.Pos(t).IsFinite() {
					return fmt.Errorf("%w: non-finite point on path %d segment %d", ErrInvalidGeometry, i, j)
				}
			}
		}
	}
	return nil
}

// SweepGraph sweeps the paths along axis d and builds the planar graph of
// their sections: every pairwise intersection becomes a vertex, and the
// returned sections touch other sections at vertices only. tol is the
// distance within which points merge; zero or negative selects a default
// of 1e-5.
func SweepGraph(ps []*Path, d Axis, tol float64) (*Graph, error) {
	if tol <= 0.0 {
		tol = defaultTol
	}
	if err := validGeometry(ps); err != nil {
		return nil, err
	}

	monos := monoSections(ps, d, tol)
	h := &sectionHeap{d: d, s: monos}
	heap.Init(h)

	sorter := sectionSorter{ps: ps, dim: d.Other(), tol: tol}

	var context []*Section
	var vix []int // index of the leading vertex of each context member
	var vertices []*Vertex
	var sections []*Section

	maxIter := 1000 + 100*len(monos)
	for iter := 0; ; iter++ {
		if maxIter < iter {
			return nil, fmt.Errorf("%w: sweep did not terminate", ErrOrderingViolation)
		}

		var s *Section
		var lim float64
		drain := h.Len() == 0
		if !drain {
			s = heap.Pop(h).(*Section)
			lim = s.FP.Coord(d)
		}

		// emit the sections that end before the new section begins
		for i := len(context) - 1; 0 <= i; i-- {
			r := context[i]
			if !drain && !(r.TP.Coord(d) < lim || near(r.TP.Coord(d), lim, tol)) {
				continue
			}

			windings := make([]int, len(ps))
			for j := 0; j < i; j++ {
				c := context[j]
				if c.FP.Coord(d) == c.TP.Coord(d) {
					continue
				}
				if c.F < c.T {
					windings[c.Curve.Path]++
				} else if c.F > c.T {
					windings[c.Curve.Path]--
				}
			}

			var vert int
			vertices, vert = findVertex(vertices, r.TP, tol)
			lead := vix[i]
			context = append(context[:i], context[i+1:]...)
			vix = append(vix[:i], vix[i+1:]...)
			if vert == lead {
				// the section leads back to its own vertex, drop it
				continue
			}

			r.Windings = windings
			sections = append(sections, r)
			vertices[lead].Exits = append(vertices[lead].Exits, Edge{len(sections) - 1, vert})
			vertices[vert].Enters = append(vertices[vert].Enters, Edge{len(sections) - 1, lead})
		}

		if drain {
			break
		}

		// insert the new section at its place in the context
		ix := sort.Search(len(context), func(i int) bool {
			return !sorter.less(context[i], s)
		})
		context = append(context, nil)
		copy(context[ix+1:], context[ix:])
		context[ix] = s
		var vert int
		vertices, vert = findVertex(vertices, s.FP, tol)
		vix = append(vix, 0)
		copy(vix[ix+1:], vix[ix:])
		vix[ix] = vert

		// intersect against every active section it overlaps, cutting both
		// so that crossings always happen at section ends
		si := NewInterval(s.FP.Coord(d.Other()), s.TP.Coord(d.Other()))
		var thisSplits []float64
		for i := 0; i < len(context); i++ {
			if i == ix {
				continue
			}
			o := context[i]
			if !si.Intersects(NewInterval(o.FP.Coord(d.Other()), o.TP.Coord(d.Other()))) {
				continue
			}

			var otherSplits []float64
			xs := IntersectMonotone(s.Curve.Get(ps), NewInterval(s.F, s.T),
				o.Curve.Get(ps), NewInterval(o.F, o.T))
			for _, x := range xs {
				thisSplits = append(thisSplits, x.TA)
				otherSplits = append(otherSplits, x.TB)
			}

			pieces, err := splitSection(o, ps, d, otherSplits, tol)
			if err != nil {
				return nil, err
			}
			for _, piece := range pieces {
				heap.Push(h, piece)
			}
		}
		pieces, err := splitSection(s, ps, d, thisSplits, tol)
		if err != nil {
			return nil, err
		}
		for _, piece := range pieces {
			heap.Push(h, piece)
		}
	}

	return &Graph{Vertices: vertices, Sections: sections}, nil
}
