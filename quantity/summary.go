// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package quantity

import (
	"math"
	"slices"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary is a descriptive summary of a layer.
type Summary struct {
	N      int
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
	Median float64

	// Time span of the data.
	First time.Time
	Last  time.Time
}

// Summary returns the summary of the layer values.
// Values of an empty layer are NaN.
func (l *Layer) Summary() Summary {
	s := Summary{
		N:      len(l.Data),
		Min:    math.NaN(),
		Max:    math.NaN(),
		Mean:   math.NaN(),
		StdDev: math.NaN(),
		Median: math.NaN(),
	}
	if len(l.Data) == 0 {
		return s
	}

	v := make([]float64, 0, len(l.Data))
	s.First = l.Data[0].Time
	s.Last = l.Data[0].Time
	for _, d := range l.Data {
		v = append(v, d.Value)
		if d.Time.Before(s.First) {
			s.First = d.Time
		}
		if d.Time.After(s.Last) {
			s.Last = d.Time
		}
	}

	s.Min = floats.Min(v)
	s.Max = floats.Max(v)
	s.Mean = stat.Mean(v, nil)
	if len(v) > 1 {
		s.StdDev = stat.StdDev(v, nil)
	}
	slices.Sort(v)
	s.Median = stat.Quantile(0.5, stat.Empirical, v, nil)
	return s
}

// Annual returns the mean value of the layer
// for each year.
func (l *Layer) Annual() map[int]float64 {
	sum := make(map[int]float64)
	n := make(map[int]float64)
	for _, d := range l.Data {
		y := d.Time.Year()
		sum[y] += d.Value
		n[y]++
	}
	for y := range sum {
		sum[y] /= n[y]
	}
	return sum
}
