// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package plotcmd implements a command to draw
// the annual values of an output file.
package plotcmd

import (
	"context"
	"fmt"
	"slices"

	"github.com/hie-dave/lpjg-gui-sub000/logging"
	"github.com/hie-dave/lpjg-gui-sub000/project"
	"github.com/hie-dave/lpjg-gui-sub000/quantity"
	"github.com/js-arias/blind"
	"github.com/js-arias/command"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var Command = &command.Command{
	Usage: `plot [--layer <name>] [-o|--output <file>]
	<project-file> <file-type>`,
	Short: "draw the annual values of an output file",
	Long: `
Command plot reads an output file of a project, and draws the annual mean of
each data layer as a line chart. Values of all locations, stands, patches, and
individuals of a year are averaged.

The first argument of the command is the name of the project file. The second
argument is the output file type to be drawn.

By default, all layers will be drawn. Use the flag --layer to draw a single
layer.

By default, the chart will be saved as a PNG file with the name of the output
file type. Use the flag --output, or -o, to define a different file name. The
extension of the file defines its format; valid extensions are ".png",
".svg", ".pdf", and ".jpg".
	`,
	SetFlags: setFlags,
	Run:      run,
}

var layerFlag string
var outFile string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&layerFlag, "layer", "", "")
	c.Flags().StringVar(&outFile, "output", "", "")
	c.Flags().StringVar(&outFile, "o", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	if len(args) < 2 {
		return c.UsageError("expecting output file type")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}

	logger := logging.Must(logging.FromEnv())
	defer logger.Sync()

	prs, err := p.Parser(logger)
	if err != nil {
		return err
	}
	q, err := p.Quantity(context.Background(), prs, args[1])
	if err != nil {
		return err
	}

	layers := q.Layers
	if layerFlag != "" {
		l, ok := q.Layer(layerFlag)
		if !ok {
			return fmt.Errorf("output %q: layer %q not found", args[1], layerFlag)
		}
		layers = []quantity.Layer{*l}
	}

	name := outFile
	if name == "" {
		name = args[1] + ".png"
	}
	if err := makePlot(q, layers, name); err != nil {
		return err
	}
	return nil
}

func makePlot(q *quantity.Quantity, layers []quantity.Layer, name string) error {
	p := plot.New()
	p.Title.Text = q.Name
	p.X.Label.Text = "year"
	if len(layers) > 0 {
		p.Y.Label.Text = layers[0].Units.String()
	}

	for i := range layers {
		l := &layers[i]
		a := l.Annual()
		years := make([]int, 0, len(a))
		for y := range a {
			years = append(years, y)
		}
		slices.Sort(years)

		xys := make(plotter.XYs, len(years))
		for j, y := range years {
			xys[j].X = float64(y)
			xys[j].Y = a[y]
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return fmt.Errorf("layer %q: while building chart: %v", l.Name, err)
		}

		v := 0.0
		if len(layers) > 1 {
			v = float64(i) / float64(len(layers)-1)
		}
		line.Color = blind.Sequential(blind.Iridescent, v)
		line.Width = vg.Points(1.5)

		p.Add(line)
		p.Legend.Add(l.Name, line)
	}
	p.Legend.Top = true

	if err := p.Save(6*vg.Inch, 4*vg.Inch, name); err != nil {
		return err
	}
	return nil
}
