// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package export

import (
	"fmt"
	"io"
	"strconv"

	"github.com/gocarina/gocsv"
	"github.com/hie-dave/lpjg-gui-sub000/quantity"
)

// A Record is a single data point
// in long form.
//
// Identifiers absent at the level
// of the quantity are empty.
type Record struct {
	Layer      string  `csv:"layer"`
	Units      string  `csv:"units"`
	Date       string  `csv:"date"`
	Lon        float64 `csv:"lon"`
	Lat        float64 `csv:"lat"`
	Stand      string  `csv:"stand"`
	Patch      string  `csv:"patch"`
	Individual string  `csv:"individual"`
	PFT        string  `csv:"pft"`
	Value      float64 `csv:"value"`
}

// Records returns the data points of a quantity
// in long form,
// layer by layer.
func Records(q *quantity.Quantity) []*Record {
	recs := make([]*Record, 0, q.Len())
	for _, l := range q.Layers {
		for _, d := range l.Data {
			r := &Record{
				Layer: l.Name,
				Units: l.Units.String(),
				Date:  d.Time.Format(DateFormat),
				Lon:   d.Lon,
				Lat:   d.Lat,
				Value: d.Value,
			}
			if d.HasStand() {
				r.Stand = strconv.Itoa(d.Stand)
			}
			if d.HasPatch() {
				r.Patch = strconv.Itoa(d.Patch)
			}
			if d.HasIndividual() {
				r.Individual = strconv.Itoa(d.Individual)
				r.PFT = q.IndividualPfts[d.Individual]
			}
			recs = append(recs, r)
		}
	}
	return recs
}

// WriteRecords writes a quantity
// as a comma separated file in long form.
func WriteRecords(w io.Writer, q *quantity.Quantity) error {
	if err := gocsv.Marshal(Records(q), w); err != nil {
		return fmt.Errorf("quantity %q: %v", q.Name, err)
	}
	return nil
}

// ReadRecords reads a comma separated file
// written by WriteRecords.
func ReadRecords(r io.Reader) ([]*Record, error) {
	var recs []*Record
	if err := gocsv.Unmarshal(r, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}
