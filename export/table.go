// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package export converts parsed output files
// into tabular formats.
//
// A Table is the wide form of a quantity:
// one row per location and time step,
// with one value column per layer.
// Records is the long form:
// one record per data point.
package export

import (
	"math"
	"time"

	"github.com/hie-dave/lpjg-gui-sub000/output"
	"github.com/hie-dave/lpjg-gui-sub000/quantity"
)

// Column names of the structural columns
// of a table.
const (
	LonColumn   = "Longitude"
	LatColumn   = "Latitude"
	DateColumn  = "Date"
	YearColumn  = "Year"
	StandColumn = "Stand"
	PatchColumn = "Patch"
	IndivColumn = "Individual"
	PFTColumn   = "PFT"
)

// DateFormat is the layout used for dates
// in text outputs.
const DateFormat = "2006-01-02"

// A Row is a row of a table.
type Row struct {
	Time       time.Time
	Lon, Lat   float64
	Stand      int
	Patch      int
	Individual int
	PFT        string

	// Values in layer order.
	// Missing values are NaN.
	Values []float64
}

// A Table is the wide form of a quantity.
type Table struct {
	Name       string
	Level      output.Level
	Resolution output.Resolution

	Layers []quantity.LayerMetadata
	Rows   []Row
}

type rowKey struct {
	t          int64
	lon, lat   float64
	stand      int
	patch      int
	individual int
}

// NewTable returns the wide form of a quantity.
//
// Rows are in order of first appearance
// across the layers.
// In monthly quantities all months of a year
// are merged in a single row
// and the row time is January 1 of the year.
func NewTable(q *quantity.Quantity) *Table {
	t := &Table{
		Name:       q.Name,
		Level:      q.Level,
		Resolution: q.Resolution,
		Layers:     make([]quantity.LayerMetadata, 0, len(q.Layers)),
	}
	for _, l := range q.Layers {
		t.Layers = append(t.Layers, quantity.LayerMetadata{Name: l.Name, Units: l.Units})
	}

	idx := make(map[rowKey]int)
	for li, l := range q.Layers {
		for _, d := range l.Data {
			tm := d.Time
			if q.Resolution == output.Monthly {
				tm = time.Date(tm.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
			}
			k := rowKey{
				t:          tm.Unix(),
				lon:        d.Lon,
				lat:        d.Lat,
				stand:      d.Stand,
				patch:      d.Patch,
				individual: d.Individual,
			}
			i, ok := idx[k]
			if !ok {
				i = len(t.Rows)
				idx[k] = i
				t.Rows = append(t.Rows, newRow(q, d, tm, len(q.Layers)))
			}
			t.Rows[i].Values[li] = d.Value
		}
	}
	return t
}

func newRow(q *quantity.Quantity, d quantity.DataPoint, tm time.Time, layers int) Row {
	r := Row{
		Time:       tm,
		Lon:        d.Lon,
		Lat:        d.Lat,
		Stand:      d.Stand,
		Patch:      d.Patch,
		Individual: d.Individual,
		Values:     make([]float64, layers),
	}
	if d.HasIndividual() && q.IndividualPfts != nil {
		r.PFT = q.IndividualPfts[d.Individual]
	}
	for i := range r.Values {
		r.Values[i] = math.NaN()
	}
	return r
}

// Columns returns the names of the columns
// of the table.
func (t *Table) Columns() []string {
	cols := []string{LonColumn, LatColumn}
	if t.Resolution == output.Monthly {
		cols = append(cols, YearColumn)
	} else {
		cols = append(cols, DateColumn)
	}
	if t.Level >= output.Stand {
		cols = append(cols, StandColumn)
	}
	if t.Level >= output.Patch {
		cols = append(cols, PatchColumn)
	}
	if t.Level == output.Individual {
		cols = append(cols, IndivColumn, PFTColumn)
	}
	for _, l := range t.Layers {
		cols = append(cols, l.Name)
	}
	return cols
}
