// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package export

import (
	"fmt"
	"io"
	"math"

	"github.com/apache/arrow/go/v18/arrow"
	"github.com/apache/arrow/go/v18/arrow/array"
	"github.com/apache/arrow/go/v18/arrow/ipc"
	"github.com/apache/arrow/go/v18/arrow/memory"
	"github.com/hie-dave/lpjg-gui-sub000/output"
)

// Metadata keys of arrow schemas.
const (
	NameKey       = "name"
	LevelKey      = "level"
	ResolutionKey = "resolution"
	UnitsKey      = "units"
)

// Schema returns the arrow schema of the table.
// Layer fields are nullable,
// and carry their units as field metadata.
func (t *Table) Schema() *arrow.Schema {
	fields := []arrow.Field{
		{Name: LonColumn, Type: arrow.PrimitiveTypes.Float64},
		{Name: LatColumn, Type: arrow.PrimitiveTypes.Float64},
	}
	if t.Resolution == output.Monthly {
		fields = append(fields, arrow.Field{Name: YearColumn, Type: arrow.PrimitiveTypes.Int32})
	} else {
		fields = append(fields, arrow.Field{Name: DateColumn, Type: arrow.FixedWidthTypes.Timestamp_ms})
	}
	if t.Level >= output.Stand {
		fields = append(fields, arrow.Field{Name: StandColumn, Type: arrow.PrimitiveTypes.Int32})
	}
	if t.Level >= output.Patch {
		fields = append(fields, arrow.Field{Name: PatchColumn, Type: arrow.PrimitiveTypes.Int32})
	}
	if t.Level == output.Individual {
		fields = append(fields,
			arrow.Field{Name: IndivColumn, Type: arrow.PrimitiveTypes.Int32},
			arrow.Field{Name: PFTColumn, Type: arrow.BinaryTypes.String},
		)
	}
	for _, l := range t.Layers {
		fields = append(fields, arrow.Field{
			Name:     l.Name,
			Type:     arrow.PrimitiveTypes.Float64,
			Nullable: true,
			Metadata: arrow.NewMetadata([]string{UnitsKey}, []string{l.Units.String()}),
		})
	}

	md := arrow.NewMetadata(
		[]string{NameKey, LevelKey, ResolutionKey},
		[]string{t.Name, t.Level.String(), t.Resolution.String()},
	)
	return arrow.NewSchema(fields, &md)
}

// Record returns the table as an arrow record.
// The caller must release the record.
func (t *Table) Record(mem memory.Allocator) arrow.Record {
	schema := t.Schema()
	b := array.NewRecordBuilder(mem, schema)
	defer b.Release()

	f := 0
	next := func() array.Builder {
		fb := b.Field(f)
		f++
		return fb
	}

	lon := next().(*array.Float64Builder)
	lat := next().(*array.Float64Builder)
	for _, r := range t.Rows {
		lon.Append(r.Lon)
		lat.Append(r.Lat)
	}

	if t.Resolution == output.Monthly {
		year := next().(*array.Int32Builder)
		for _, r := range t.Rows {
			year.Append(int32(r.Time.Year()))
		}
	} else {
		date := next().(*array.TimestampBuilder)
		for _, r := range t.Rows {
			date.Append(arrow.Timestamp(r.Time.UnixMilli()))
		}
	}

	if t.Level >= output.Stand {
		stand := next().(*array.Int32Builder)
		for _, r := range t.Rows {
			stand.Append(int32(r.Stand))
		}
	}
	if t.Level >= output.Patch {
		patch := next().(*array.Int32Builder)
		for _, r := range t.Rows {
			patch.Append(int32(r.Patch))
		}
	}
	if t.Level == output.Individual {
		indiv := next().(*array.Int32Builder)
		pft := next().(*array.StringBuilder)
		for _, r := range t.Rows {
			indiv.Append(int32(r.Individual))
			pft.Append(r.PFT)
		}
	}

	for j := range t.Layers {
		lb := next().(*array.Float64Builder)
		for _, r := range t.Rows {
			v := r.Values[j]
			if math.IsNaN(v) {
				lb.AppendNull()
				continue
			}
			lb.Append(v)
		}
	}

	return b.NewRecord()
}

// WriteArrow writes the table
// as an arrow IPC stream.
func (t *Table) WriteArrow(w io.Writer) (err error) {
	mem := memory.NewGoAllocator()
	rec := t.Record(mem)
	defer rec.Release()

	wr := ipc.NewWriter(w, ipc.WithSchema(rec.Schema()), ipc.WithAllocator(mem))
	defer func() {
		e := wr.Close()
		if e != nil && err == nil {
			err = fmt.Errorf("table %q: while closing arrow stream: %v", t.Name, e)
		}
	}()

	if err := wr.Write(rec); err != nil {
		return fmt.Errorf("table %q: %v", t.Name, err)
	}
	return nil
}
