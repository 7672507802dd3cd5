package main

import (
	"fmt"
	"os"

	"github.com/tdewolff/argp"
	"github.com/tdewolff/geom"
)

type Sweep struct {
	Data   string  `short:"d" default:"" desc:"Inline SVG path data instead of an input file"`
	Axis   string  `default:"x" desc:"Sweep axis (x or y)"`
	Tol    float64 `default:"0" desc:"Merge tolerance, 0 selects the default"`
	Output string  `short:"o" default:"" desc:"Write an SVG rendering of the graph to this file"`
	Input  string  `index:"0" desc:"Input file with SVG path data"`
}

func main() {
	root := argp.NewCmd(&Sweep{}, "Sweep SVG path data into a planar graph of intersection-free sections")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Sweep) Run() error {
	var ps []*geom.Path
	var err error
	if cmd.Data != "" {
		ps, err = geom.ParseSVGD([]byte(cmd.Data))
	} else if cmd.Input != "" {
		ps, err = geom.ReadSVGD(cmd.Input)
	} else {
		return argp.ShowUsage
	}
	if err != nil {
		return err
	}

	var d geom.Axis
	switch cmd.Axis {
	case "", "x", "X":
		d = geom.X
	case "y", "Y":
		d = geom.Y
	default:
		fmt.Println("ERROR: axis must be x or y")
		return argp.ShowUsage
	}

	g, err := geom.SweepGraph(ps, d, cmd.Tol)
	if err != nil {
		return err
	}
	fmt.Print(g)

	if cmd.Output != "" {
		f, err := os.Create(cmd.Output)
		if err != nil {
			return err
		}
		if err := g.WriteSVG(f, ps); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}
	return nil
}
