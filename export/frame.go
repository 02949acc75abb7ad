// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package export

import (
	"io"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/hie-dave/lpjg-gui-sub000/output"
)

// DataFrame returns the table as a dataframe.
// Columns are the ones returned by Columns.
func (t *Table) DataFrame() dataframe.DataFrame {
	n := len(t.Rows)
	lon := make([]float64, n)
	lat := make([]float64, n)
	for i, r := range t.Rows {
		lon[i] = r.Lon
		lat[i] = r.Lat
	}
	cols := []series.Series{
		series.New(lon, series.Float, LonColumn),
		series.New(lat, series.Float, LatColumn),
	}

	if t.Resolution == output.Monthly {
		years := make([]int, n)
		for i, r := range t.Rows {
			years[i] = r.Time.Year()
		}
		cols = append(cols, series.New(years, series.Int, YearColumn))
	} else {
		dates := make([]string, n)
		for i, r := range t.Rows {
			dates[i] = r.Time.Format(DateFormat)
		}
		cols = append(cols, series.New(dates, series.String, DateColumn))
	}

	if t.Level >= output.Stand {
		cols = append(cols, t.intSeries(StandColumn, func(r Row) int { return r.Stand }))
	}
	if t.Level >= output.Patch {
		cols = append(cols, t.intSeries(PatchColumn, func(r Row) int { return r.Patch }))
	}
	if t.Level == output.Individual {
		cols = append(cols, t.intSeries(IndivColumn, func(r Row) int { return r.Individual }))
		pfts := make([]string, n)
		for i, r := range t.Rows {
			pfts[i] = r.PFT
		}
		cols = append(cols, series.New(pfts, series.String, PFTColumn))
	}

	for j, l := range t.Layers {
		v := make([]float64, n)
		for i, r := range t.Rows {
			v[i] = r.Values[j]
		}
		cols = append(cols, series.New(v, series.Float, l.Name))
	}
	return dataframe.New(cols...)
}

func (t *Table) intSeries(name string, val func(Row) int) series.Series {
	v := make([]int, len(t.Rows))
	for i, r := range t.Rows {
		v[i] = val(r)
	}
	return series.New(v, series.Int, name)
}

// WriteTable writes the table
// as a comma separated file with a header.
func (t *Table) WriteTable(w io.Writer) error {
	df := t.DataFrame()
	if df.Err != nil {
		return df.Err
	}
	return df.WriteCSV(w)
}
