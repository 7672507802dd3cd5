package geom

import (
	"fmt"
	"io"
	"strings"
)

// Edge connects a vertex to one end of a section. Section indexes
// Graph.Sections, Other is the vertex at the section's far end.
type Edge struct {
	Section, Other int
}

// Vertex is a point where sections of the graph meet. Enters holds the
// sections arriving at the vertex, Exits those leaving it.
type Vertex struct {
	Pos    Point
	Enters []Edge
	Exits  []Edge
}

// Graph is a planar arrangement of sections that touch each other at
// vertices only. Every section ends on two vertices and appears as an edge
// in the lists of both.
type Graph struct {
	Vertices []*Vertex
	Sections []*Section
}

// String returns a plain-text dump of the graph, one line per vertex
// followed by one line per section. The output is deterministic for a given
// input.
func (g *Graph) String() string {
	sb := strings.Builder{}
	for i, v := range g.Vertices {
		fmt.Fprintf(&sb, "%d %v [", i, v.Pos)
		for _, e := range v.Enters {
			fmt.Fprintf(&sb, "%d, ", e.Other)
		}
		for _, e := range v.Exits {
			fmt.Fprintf(&sb, "%d, ", e.Other)
		}
		sb.WriteString("]\n")
	}
	for i, s := range g.Sections {
		fmt.Fprintf(&sb, "%d %d.%d [%v, %v] %v -> %v %v\n",
			i, s.Curve.Path, s.Curve.Ix, num(s.F), num(s.T), s.FP, s.TP, s.Windings)
	}
	return sb.String()
}

// SectionsToPath concatenates the sections' curve portions into a single
// path. Consecutive sections are assumed to chain head to tail, as the
// sections around a face of the graph do.
func SectionsToPath(ps []*Path, sections []*Section) *Path {
	p := &Path{}
	for i, s := range sections {
		ti := NewInterval(s.F, s.T)
		c := s.Curve.Get(ps).Portion(ti.Min, ti.Max)
		if i == 0 {
			p.start = c.Start()
		}
		p.segs = append(p.segs, c)
	}
	return p
}

// SectionRects returns the bounding box of every section.
func SectionRects(sections []*Section) []Rect {
	rects := make([]Rect, len(sections))
	for i, s := range sections {
		rects[i] = s.Bounds()
	}
	return rects
}

// WriteSVG writes the graph as a standalone SVG image: every section is
// stroked in a colour derived from its originating path, and every vertex
// is marked by a dot.
func (g *Graph) WriteSVG(w io.Writer, ps []*Path) error {
	r := Rect{}
	for i, s := range g.Sections {
		if i == 0 {
			r = s.Bounds()
		} else {
			r = r.Union(s.Bounds())
		}
	}
	const pad = 10.0
	fmt.Fprintf(w, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%v %v %v %v">`+"\n",
		dec(r.X0-pad), dec(r.Y0-pad), dec(r.X1-r.X0+2.0*pad), dec(r.Y1-r.Y0+2.0*pad))
	for _, s := range g.Sections {
		ti := NewInterval(s.F, s.T)
		c := s.Curve.Get(ps).Portion(ti.Min, ti.Max)
		p := &Path{start: c.Start(), segs: []Curve{c}}
		hue := s.Curve.Path * 135 % 360
		fmt.Fprintf(w, `<path d="%s" fill="none" stroke="hsl(%d,100%%,45%%)"/>`+"\n", p.ToSVG(), hue)
	}
	for _, v := range g.Vertices {
		fmt.Fprintf(w, `<circle cx="%v" cy="%v" r="2"/>`+"\n", num(v.Pos.X), num(v.Pos.Y))
	}
	_, err := fmt.Fprint(w, "</svg>\n")
	return err
}
