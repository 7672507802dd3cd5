package geom

import (
	"bytes"
	"testing"

	"github.com/tdewolff/test"
)

func TestGraphString(t *testing.T) {
	g := &Graph{
		Vertices: []*Vertex{
			{Pos: Point{0, 0}, Exits: []Edge{{0, 1}}},
			{Pos: Point{2, 1}, Enters: []Edge{{0, 0}}},
		},
		Sections: []*Section{
			{Curve: CurveIx{0, 0}, F: 0.0, T: 1.0, FP: Point{0, 0}, TP: Point{2, 1}, Windings: []int{0}},
		},
	}
	test.String(t, g.String(), "0 [0; 0] [1, ]\n1 [2; 1] [0, ]\n0 0.0 [0, 1] [0; 0] -> [2; 1] [0]\n")
}

func TestSectionsToPath(t *testing.T) {
	ps, err := ParseSVGD([]byte("M0 0C1 0 2 1 3 1"))
	test.Error(t, err)
	g, err := SweepGraph(ps, X, 0.0)
	test.Error(t, err)
	test.T(t, len(g.Sections), 1)
	test.T(t, len(g.Vertices), 2)

	p := SectionsToPath(ps, g.Sections)
	test.String(t, p.ToSVG(), "M0 0C1 0 2 1 3 1")
}

func TestSectionsToPathReversed(t *testing.T) {
	// reversed sections keep their curve's own direction
	ps, err := ParseSVGD([]byte("M4 2L0 0"))
	test.Error(t, err)
	g, err := SweepGraph(ps, X, 0.0)
	test.Error(t, err)
	test.T(t, len(g.Sections), 1)
	p := SectionsToPath(ps, g.Sections)
	test.String(t, p.ToSVG(), "M4 2L0 0")
}

func TestSectionsToPathSplit(t *testing.T) {
	// the dome's quad is cut at its apex, the pieces chain back into its image
	ps, err := ParseSVGD([]byte("M0 0Q2 4 4 0z"))
	test.Error(t, err)
	g, err := SweepGraph(ps, X, 0.0)
	test.Error(t, err)
	var quads []*Section
	for _, s := range g.Sections {
		if s.Curve.Ix == 0 {
			quads = append(quads, s)
		}
	}
	test.T(t, len(quads), 2)
	test.String(t, SectionsToPath(ps, quads).ToSVG(), "M0 0Q1 2 2 2Q3 2 4 0")

	// a line cut by two crossings reassembles into its original span
	ps, err = ParseSVGD([]byte("M0 0Q2 4 4 0M0 1L4 1"))
	test.Error(t, err)
	g, err = SweepGraph(ps, X, 0.0)
	test.Error(t, err)
	var lines []*Section
	for _, s := range g.Sections {
		if s.Curve.Path == 1 {
			lines = append(lines, s)
		}
	}
	test.T(t, len(lines), 3)
	p := SectionsToPath(ps, lines)
	test.T(t, p.Start(), Point{0, 1})
	test.T(t, p.End(), Point{4, 1})
	for i := 1; i < p.Len(); i++ {
		test.T(t, p.At(i).Start(), p.At(i-1).End())
	}
}

func TestSectionRects(t *testing.T) {
	ps, err := ParseSVGD([]byte("M0 0L4 0L4 4L0 4z"))
	test.Error(t, err)
	g, err := SweepGraph(ps, X, 0.0)
	test.Error(t, err)
	rects := SectionRects(g.Sections)
	test.T(t, len(rects), 4)
	test.T(t, rects[0], Rect{0, 0, 0, 4})
	test.T(t, rects[2], Rect{0, 0, 4, 0})
}

func TestWriteSVG(t *testing.T) {
	ps, err := ParseSVGD([]byte("M0 0L2 0L1 2z"))
	test.Error(t, err)
	g, err := SweepGraph(ps, X, 0.0)
	test.Error(t, err)

	buf := &bytes.Buffer{}
	test.Error(t, g.WriteSVG(buf, ps))
	test.String(t, buf.String(), `<svg xmlns="http://www.w3.org/2000/svg" viewBox="-10 -10 22 22">
<path d="M1 2L0 0" fill="none" stroke="hsl(0,100%,45%)"/>
<path d="M2 0L1 2" fill="none" stroke="hsl(0,100%,45%)"/>
<path d="M0 0L2 0" fill="none" stroke="hsl(0,100%,45%)"/>
<circle cx="0" cy="0" r="2"/>
<circle cx="1" cy="2" r="2"/>
<circle cx="2" cy="0" r="2"/>
</svg>
`)
}
