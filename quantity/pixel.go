// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package quantity

import (
	"slices"

	"github.com/js-arias/earth"
)

// A Gridcell is the aggregation of the points of a layer
// that fall in a pixel of an equal area pixelation.
type Gridcell struct {
	Pixel int

	// Center of the pixel.
	Lat float64
	Lon float64

	N    int
	Mean float64
}

// Gridcells returns the mean value
// of the layer data points
// in each pixel of the pixelation,
// sorted by pixel ID.
//
// LPJ-GUESS longitudes in the [180, 360] range
// are taken as western longitudes.
func (l *Layer) Gridcells(pix *earth.Pixelation) []Gridcell {
	sum := make(map[int]float64)
	n := make(map[int]int)
	for _, d := range l.Data {
		lon := d.Lon
		if lon > 180 {
			lon -= 360
		}
		id := pix.Pixel(d.Lat, lon).ID()
		sum[id] += d.Value
		n[id]++
	}

	ids := make([]int, 0, len(sum))
	for id := range sum {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	gc := make([]Gridcell, 0, len(ids))
	for _, id := range ids {
		pt := pix.ID(id).Point()
		gc = append(gc, Gridcell{
			Pixel: id,
			Lat:   pt.Latitude(),
			Lon:   pt.Longitude(),
			N:     n[id],
			Mean:  sum[id] / float64(n[id]),
		})
	}
	return gc
}
