// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package export_test

import (
	"bytes"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/apache/arrow/go/v18/arrow/array"
	"github.com/apache/arrow/go/v18/arrow/ipc"
	"github.com/google/go-cmp/cmp"
	"github.com/hie-dave/lpjg-gui-sub000/export"
	"github.com/hie-dave/lpjg-gui-sub000/output"
	"github.com/hie-dave/lpjg-gui-sub000/quantity"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// patchLAI is a patch level quantity
// with a missing value for TeNE.
func patchLAI() *quantity.Quantity {
	p := func(day, patch int, v float64) quantity.DataPoint {
		return quantity.DataPoint{
			Time:  date(2000, time.January, day),
			Lon:   150.25,
			Lat:   -33.75,
			Value: v,
			Patch: patch,
			Level: output.Patch,
		}
	}
	return &quantity.Quantity{
		Name:       "LAI",
		Level:      output.Patch,
		Resolution: output.Daily,
		Layers: []quantity.Layer{
			{Name: "TeBE", Units: "m2/m2", Data: []quantity.DataPoint{p(1, 0, 0.5), p(1, 1, 0.6), p(2, 0, 0.7)}},
			{Name: "TeNE", Units: "m2/m2", Data: []quantity.DataPoint{p(1, 0, 1.5), p(2, 0, 1.7)}},
		},
	}
}

func TestTable(t *testing.T) {
	tab := export.NewTable(patchLAI())

	cols := []string{"Longitude", "Latitude", "Date", "Stand", "Patch", "TeBE", "TeNE"}
	if c := tab.Columns(); !cmp.Equal(c, cols) {
		t.Errorf("columns: got %v, want %v", c, cols)
	}
	if len(tab.Rows) != 3 {
		t.Fatalf("rows: got %d, want %d", len(tab.Rows), 3)
	}

	r := tab.Rows[1]
	if r.Patch != 1 || r.Values[0] != 0.6 || !math.IsNaN(r.Values[1]) {
		t.Errorf("row 1: got %+v", r)
	}
	r = tab.Rows[2]
	if !r.Time.Equal(date(2000, time.January, 2)) || r.Values[0] != 0.7 || r.Values[1] != 1.7 {
		t.Errorf("row 2: got %+v", r)
	}
}

func TestMonthlyTable(t *testing.T) {
	layer := func(name string, month time.Month, v float64) quantity.Layer {
		return quantity.Layer{
			Name:  name,
			Units: "mm",
			Data: []quantity.DataPoint{
				{Time: date(2000, month+1, 0), Lon: 10, Lat: 20, Value: v},
				{Time: date(2001, month+1, 0), Lon: 10, Lat: 20, Value: v * 2},
			},
		}
	}
	q := &quantity.Quantity{
		Name:       "Runoff",
		Level:      output.Gridcell,
		Resolution: output.Monthly,
		Layers: []quantity.Layer{
			layer("Jan", time.January, 1),
			layer("Feb", time.February, 2),
		},
	}
	tab := export.NewTable(q)

	cols := []string{"Longitude", "Latitude", "Year", "Jan", "Feb"}
	if c := tab.Columns(); !cmp.Equal(c, cols) {
		t.Errorf("columns: got %v, want %v", c, cols)
	}
	if len(tab.Rows) != 2 {
		t.Fatalf("rows: got %d, want %d", len(tab.Rows), 2)
	}
	if r := tab.Rows[1]; r.Time.Year() != 2001 || r.Values[0] != 2 || r.Values[1] != 4 {
		t.Errorf("row 1: got %+v", r)
	}
}

func TestDataFrame(t *testing.T) {
	tab := export.NewTable(patchLAI())
	df := tab.DataFrame()
	if df.Err != nil {
		t.Fatalf("unexpected error: %v", df.Err)
	}
	if df.Nrow() != 3 || df.Ncol() != 7 {
		t.Errorf("dimensions: got %dx%d, want 3x7", df.Nrow(), df.Ncol())
	}
	if names := df.Names(); !cmp.Equal(names, tab.Columns()) {
		t.Errorf("names: got %v, want %v", names, tab.Columns())
	}

	tene := df.Col("TeNE").Float()
	if tene[0] != 1.5 || !math.IsNaN(tene[1]) || tene[2] != 1.7 {
		t.Errorf("TeNE: got %v", tene)
	}
	dates := df.Col("Date").Records()
	if dates[2] != "2000-01-02" {
		t.Errorf("date: got %q, want %q", dates[2], "2000-01-02")
	}

	var buf bytes.Buffer
	if err := tab.WriteTable(&buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	header, _, _ := strings.Cut(buf.String(), "\n")
	if want := strings.Join(tab.Columns(), ","); header != want {
		t.Errorf("header: got %q, want %q", header, want)
	}
}

func TestArrow(t *testing.T) {
	tab := export.NewTable(patchLAI())

	var buf bytes.Buffer
	if err := tab.WriteArrow(&buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rdr, err := ipc.NewReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer rdr.Release()

	schema := rdr.Schema()
	if name, ok := schema.Metadata().GetValue(export.NameKey); !ok || name != "LAI" {
		t.Errorf("schema name: got %q", name)
	}
	fields, ok := schema.FieldsByName("TeNE")
	if !ok {
		t.Fatalf("field %q not found", "TeNE")
	}
	if u, _ := fields[0].Metadata.GetValue(export.UnitsKey); u != "m2/m2" {
		t.Errorf("units: got %q, want %q", u, "m2/m2")
	}

	if !rdr.Next() {
		t.Fatalf("expecting a record: %v", rdr.Err())
	}
	rec := rdr.Record()
	if rec.NumRows() != 3 || rec.NumCols() != 7 {
		t.Fatalf("dimensions: got %dx%d, want 3x7", rec.NumRows(), rec.NumCols())
	}

	dates := rec.Column(2).(*array.Timestamp)
	if ms := int64(dates.Value(2)); ms != date(2000, time.January, 2).UnixMilli() {
		t.Errorf("date: got %d, want %d", ms, date(2000, time.January, 2).UnixMilli())
	}
	patch := rec.Column(4).(*array.Int32)
	if patch.Value(1) != 1 {
		t.Errorf("patch: got %d, want %d", patch.Value(1), 1)
	}
	tene := rec.Column(6).(*array.Float64)
	if !tene.IsNull(1) {
		t.Errorf("TeNE row 1: expecting null")
	}
	if tene.Value(2) != 1.7 {
		t.Errorf("TeNE row 2: got %.3f, want %.3f", tene.Value(2), 1.7)
	}
}

func TestRecords(t *testing.T) {
	q := &quantity.Quantity{
		Name:           "LAI",
		Level:          output.Individual,
		Resolution:     output.Daily,
		IndividualPfts: map[int]string{3: "TeBE"},
		Layers: []quantity.Layer{
			{
				Name:  "lai",
				Units: "m2/m2",
				Data: []quantity.DataPoint{
					{Time: date(2000, time.January, 1), Lon: 10, Lat: 20, Value: 0.5, Stand: 1, Patch: 2, Individual: 3, Level: output.Individual},
				},
			},
		},
	}

	want := []*export.Record{
		{
			Layer:      "lai",
			Units:      "m2/m2",
			Date:       "2000-01-01",
			Lon:        10,
			Lat:        20,
			Stand:      "1",
			Patch:      "2",
			Individual: "3",
			PFT:        "TeBE",
			Value:      0.5,
		},
	}
	if recs := export.Records(q); !cmp.Equal(recs, want) {
		t.Errorf("records mismatch (-want +got):\n%s", cmp.Diff(want, recs))
	}

	var buf bytes.Buffer
	if err := export.WriteRecords(&buf, q); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	recs, err := export.ReadRecords(&buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cmp.Equal(recs, want) {
		t.Errorf("records mismatch (-want +got):\n%s", cmp.Diff(want, recs))
	}

	gc := export.Records(&quantity.Quantity{
		Layers: []quantity.Layer{{Name: "npp", Data: []quantity.DataPoint{{Value: 1}}}},
	})
	if gc[0].Stand != "" || gc[0].Patch != "" || gc[0].Individual != "" {
		t.Errorf("gridcell record: got %+v", gc[0])
	}
}
