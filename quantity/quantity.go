// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package quantity implements the data model
// of a parsed output file:
// a quantity is a named collection of layers,
// and each layer is a time series of data points.
package quantity

import (
	"time"

	"github.com/hie-dave/lpjg-gui-sub000/output"
)

// A DataPoint is a value
// at a given time and location.
//
// Stand is valid only if Level is output.Stand or finer,
// Patch is valid only if Level is output.Patch or finer,
// and Individual is valid only if Level is output.Individual.
type DataPoint struct {
	Time  time.Time
	Lon   float64
	Lat   float64
	Value float64

	Stand      int
	Patch      int
	Individual int

	// Level is the aggregation level of the point.
	Level output.Level
}

// HasStand returns true if the point has a stand ID.
func (d DataPoint) HasStand() bool {
	return d.Level >= output.Stand
}

// HasPatch returns true if the point has a patch ID.
func (d DataPoint) HasPatch() bool {
	return d.Level >= output.Patch
}

// HasIndividual returns true if the point has an individual ID.
func (d DataPoint) HasIndividual() bool {
	return d.Level == output.Individual
}

// A Layer is a named data series.
type Layer struct {
	Name  string
	Units output.Unit
	Data  []DataPoint
}

// LayerMetadata is the name and unit of a layer,
// without the data.
type LayerMetadata struct {
	Name  string
	Units output.Unit
}

// A Quantity is the content of an output file.
type Quantity struct {
	Name        string
	Description string
	Layers      []Layer
	Level       output.Level
	Resolution  output.Resolution

	// IndividualPfts maps an individual ID
	// to its PFT.
	// It is nil unless Level is output.Individual.
	IndividualPfts map[int]string
}

// Layer returns a layer by its name.
func (q *Quantity) Layer(name string) (*Layer, bool) {
	for i := range q.Layers {
		if q.Layers[i].Name == name {
			return &q.Layers[i], true
		}
	}
	return nil, false
}

// LayerNames returns the names of the layers,
// in file order.
func (q *Quantity) LayerNames() []string {
	names := make([]string, 0, len(q.Layers))
	for _, l := range q.Layers {
		names = append(names, l.Name)
	}
	return names
}

// Len returns the number of data points
// in all the layers.
func (q *Quantity) Len() int {
	var n int
	for _, l := range q.Layers {
		n += len(l.Data)
	}
	return n
}
