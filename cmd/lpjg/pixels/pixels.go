// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package pixels implements a command to print
// the mean values of an output file
// in the pixels of an equal-area pixelation.
package pixels

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/hie-dave/lpjg-gui-sub000/logging"
	"github.com/hie-dave/lpjg-gui-sub000/project"
	"github.com/hie-dave/lpjg-gui-sub000/quantity"
	"github.com/js-arias/blind"
	"github.com/js-arias/command"
	"github.com/js-arias/earth"
)

var Command = &command.Command{
	Usage: `pixels [--equator <number>] --layer <name>
	[--map <image-file>] [--cols <number>]
	<project-file> <file-type>`,
	Short: "print layer values by pixel",
	Long: `
Command pixels reads an output file of a project, and prints the mean value of
a data layer in each pixel of an equal-area pixelation. Values of all dates,
stands, patches, and individuals in a pixel are averaged.

The first argument of the command is the name of the project file. The second
argument is the output file type.

The flag --layer is required and sets the data layer to be used.

By default, a pixelation with 360 pixels at the equator is used. Use the flag
--equator to define a different pixelation.

The output is a tab-delimited table with the columns equator, pixel, lat, lon,
n, and mean, printed in the standard output.

If the flag --map is defined, an equirectangular image map with the mean
values will be saved with the indicated name, using a color gradient. The flag
--cols defines the number of columns of the image (by default 3600).
	`,
	SetFlags: setFlags,
	Run:      run,
}

var equator int
var colsFlag int
var layerFlag string
var mapFile string

func setFlags(c *command.Command) {
	c.Flags().IntVar(&equator, "equator", 360, "")
	c.Flags().IntVar(&colsFlag, "cols", 3600, "")
	c.Flags().StringVar(&layerFlag, "layer", "", "")
	c.Flags().StringVar(&mapFile, "map", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	if len(args) < 2 {
		return c.UsageError("expecting output file type")
	}
	if layerFlag == "" {
		return c.UsageError("flag --layer undefined")
	}
	if equator < 2 {
		return c.UsageError(fmt.Sprintf("flag --equator: invalid value %d", equator))
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
	l, ok := q.Layer(layerFlag)
	if !ok {
		return fmt.Errorf("output %q: layer %q not found", args[1], layerFlag)
	}

	pix := earth.NewPixelation(equator)
	gc := l.Gridcells(pix)

	fmt.Fprintf(c.Stdout(), "equator\tpixel\tlat\tlon\tn\tmean\n")
	for _, g := range gc {
		fmt.Fprintf(c.Stdout(), "%d\t%d\t%.6f\t%.6f\t%d\t%.6f\n", equator, g.Pixel, g.Lat, g.Lon, g.N, g.Mean)
	}

	if mapFile == "" {
		return nil
	}
	if err := writeImage(mapFile, newMeanMap(pix, gc)); err != nil {
		return err
	}
	return nil
}

// A meanMap is an image of the pixel means.
type meanMap struct {
	step     float64
	min, max float64
	pix      *earth.Pixelation
	vals     map[int]float64
}

func newMeanMap(pix *earth.Pixelation, gc []quantity.Gridcell) meanMap {
	m := meanMap{
		step: 360 / float64(colsFlag),
		pix:  pix,
		vals: make(map[int]float64, len(gc)),
	}
	for i, g := range gc {
		if i == 0 || g.Mean < m.min {
			m.min = g.Mean
		}
		if i == 0 || g.Mean > m.max {
			m.max = g.Mean
		}
		m.vals[g.Pixel] = g.Mean
	}
	return m
}

func (m meanMap) ColorModel() color.Model { return color.RGBAModel }
func (m meanMap) Bounds() image.Rectangle { return image.Rect(0, 0, colsFlag, colsFlag/2) }
func (m meanMap) At(x, y int) color.Color {
	lat := 90 - float64(y)*m.step
	lon := float64(x)*m.step - 180

	px := m.pix.Pixel(lat, lon).ID()
	v, ok := m.vals[px]
	if !ok {
		return color.RGBA{211, 211, 211, 255}
	}
	if m.max == m.min {
		return blind.Gradient(1)
	}
	return blind.Gradient((v - m.min) / (m.max - m.min))
}

func writeImage(name string, img image.Image) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("when encoding image file %q: %v", name, err)
	}
	return nil
}
