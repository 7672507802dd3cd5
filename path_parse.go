package geom

import (
	"fmt"
	"math"
	"os"

	"github.com/tdewolff/parse/v2/strconv"
)

func skipCommaWhitespace(path []byte) int {
	i := 0
	for i < len(path) && (path[i] == ' ' || path[i] == ',' || path[i] == '\n' || path[i] == '\r' || path[i] == '\t') {
		i++
	}
	return i
}

// parseNums reads len(nums) numbers, each preceded by optional commas and
// whitespace. It returns the number of bytes read and whether all numbers
// were present.
func parseNums(path []byte, nums []float64) (int, bool) {
	i := 0
	for j := range nums {
		i += skipCommaWhitespace(path[i:])
		f, n := strconv.ParseFloat(path[i:])
		if n == 0 {
			return i, false
		}
		nums[j] = f
		i += n
	}
	return i, true
}

// ParseSVGD parses SVG path data into its subpaths, one Path per moveto.
// Relative commands, horizontal and vertical linetos, smooth Béziers, and
// elliptical arcs are resolved during parsing, so the returned paths consist
// of lines and quadratic and cubic Béziers only.
func ParseSVGD(data []byte) ([]*Path, error) {
	var ps []*Path
	var p *Path

	var prevCmd byte
	cpx, cpy := 0.0, 0.0 // previous control point for smooth commands

	var nums [7]float64
	i := 0
	for i < len(data) {
		i += skipCommaWhitespace(data[i:])
		if i == len(data) {
			break
		}
		pos := i
		cmd := prevCmd
		if 'A' <= data[i] {
			cmd = data[i]
			i++
		} else if cmd == 0 || cmd == 'Z' || cmd == 'z' {
			return nil, fmt.Errorf("bad path: expected command at position %d", pos)
		}

		if p == nil && cmd != 'M' && cmd != 'm' {
			return nil, fmt.Errorf("bad path: expected moveto at position %d", pos)
		} else if p != nil && p.closed && cmd != 'M' && cmd != 'm' && cmd != 'Z' && cmd != 'z' {
			// a segment directly after closepath starts a new subpath at the
			// closed subpath's initial point
			q := &Path{}
			q.MoveTo(p.start.X, p.start.Y)
			ps = append(ps, q)
			p = q
		}

		var x, y float64
		if p != nil {
			end := p.End()
			x, y = end.X, end.Y
		}
		switch cmd {
		case 'M', 'm':
			n, ok := parseNums(data[i:], nums[:2])
			if !ok {
				return nil, fmt.Errorf("bad path: expected number at position %d", i+n)
			}
			i += n
			if cmd == 'm' {
				nums[0] += x
				nums[1] += y
			}
			p = &Path{}
			p.MoveTo(nums[0], nums[1])
			ps = append(ps, p)
		case 'Z', 'z':
			p.Close()
		case 'L', 'l':
			n, ok := parseNums(data[i:], nums[:2])
			if !ok {
				return nil, fmt.Errorf("bad path: expected number at position %d", i+n)
			}
			i += n
			if cmd == 'l' {
				nums[0] += x
				nums[1] += y
			}
			p.LineTo(nums[0], nums[1])
		case 'H', 'h':
			n, ok := parseNums(data[i:], nums[:1])
			if !ok {
				return nil, fmt.Errorf("bad path: expected number at position %d", i+n)
			}
			i += n
			if cmd == 'h' {
				nums[0] += x
			}
			p.LineTo(nums[0], y)
		case 'V', 'v':
			n, ok := parseNums(data[i:], nums[:1])
			if !ok {
				return nil, fmt.Errorf("bad path: expected number at position %d", i+n)
			}
			i += n
			if cmd == 'v' {
				nums[0] += y
			}
			p.LineTo(x, nums[0])
		case 'C', 'c':
			n, ok := parseNums(data[i:], nums[:6])
			if !ok {
				return nil, fmt.Errorf("bad path: expected number at position %d", i+n)
			}
			i += n
			if cmd == 'c' {
				nums[0] += x
				nums[1] += y
				nums[2] += x
				nums[3] += y
				nums[4] += x
				nums[5] += y
			}
			p.CubeTo(nums[0], nums[1], nums[2], nums[3], nums[4], nums[5])
			cpx, cpy = nums[2], nums[3]
		case 'S', 's':
			n, ok := parseNums(data[i:], nums[:4])
			if !ok {
				return nil, fmt.Errorf("bad path: expected number at position %d", i+n)
			}
			i += n
			if cmd == 's' {
				nums[0] += x
				nums[1] += y
				nums[2] += x
				nums[3] += y
			}
			a, b := x, y
			if prevCmd == 'C' || prevCmd == 'c' || prevCmd == 'S' || prevCmd == 's' {
				a, b = 2.0*x-cpx, 2.0*y-cpy
			}
			p.CubeTo(a, b, nums[0], nums[1], nums[2], nums[3])
			cpx, cpy = nums[0], nums[1]
		case 'Q', 'q':
			n, ok := parseNums(data[i:], nums[:4])
			if !ok {
				return nil, fmt.Errorf("bad path: expected number at position %d", i+n)
			}
			i += n
			if cmd == 'q' {
				nums[0] += x
				nums[1] += y
				nums[2] += x
				nums[3] += y
			}
			p.QuadTo(nums[0], nums[1], nums[2], nums[3])
			cpx, cpy = nums[0], nums[1]
		case 'T', 't':
			n, ok := parseNums(data[i:], nums[:2])
			if !ok {
				return nil, fmt.Errorf("bad path: expected number at position %d", i+n)
			}
			i += n
			if cmd == 't' {
				nums[0] += x
				nums[1] += y
			}
			a, b := x, y
			if prevCmd == 'Q' || prevCmd == 'q' || prevCmd == 'T' || prevCmd == 't' {
				a, b = 2.0*x-cpx, 2.0*y-cpy
			}
			p.QuadTo(a, b, nums[0], nums[1])
			cpx, cpy = a, b
		case 'A', 'a':
			n, ok := parseNums(data[i:], nums[:7])
			if !ok {
				return nil, fmt.Errorf("bad path: expected number at position %d", i+n)
			}
			i += n
			if cmd == 'a' {
				nums[5] += x
				nums[6] += y
			}
			large := math.Abs(nums[3]-1.0) < 1e-10
			sweep := math.Abs(nums[4]-1.0) < 1e-10
			p.ArcTo(nums[0], nums[1], nums[2], large, sweep, nums[5], nums[6])
		default:
			return nil, fmt.Errorf("bad path: unknown command '%c' at position %d", cmd, pos)
		}
		prevCmd = cmd
		if cmd == 'M' {
			prevCmd = 'L'
		} else if cmd == 'm' {
			prevCmd = 'l'
		}
	}
	return ps, nil
}

// ReadSVGD reads a file containing raw SVG path data.
func ReadSVGD(filename string) ([]*Path, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	ps, err := ParseSVGD(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return ps, nil
}
