// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package parser

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/hie-dave/lpjg-gui-sub000/output"
	"github.com/hie-dave/lpjg-gui-sub000/quantity"
)

// maxLineSize is the maximum size of a line.
// Subdaily outputs have one column per timestep,
// so lines can be long.
const maxLineSize = 16 << 20

// checkRows is the number of rows
// between checks for context cancellation.
const checkRows = 4096

// split splits a line into fields
// separated by runs of spaces or tabs.
func split(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == '\t'
	})
}

// A header is the parsed header row of an output file.
type header struct {
	names []string
	index map[string]int

	// data layers in file order
	data []quantity.LayerMetadata
	cols []int
}

func parseHeader(line string, md output.Metadata) (*header, error) {
	h := &header{
		names: split(line),
	}
	h.index = make(map[string]int, len(h.names))
	for i, n := range h.names {
		h.index[n] = i
	}

	for i, n := range h.names {
		if !md.Layers.IsDataLayer(n) {
			continue
		}
		u, err := md.Layers.Units(n)
		if err != nil {
			return nil, err
		}
		h.data = append(h.data, quantity.LayerMetadata{Name: n, Units: u})
		h.cols = append(h.cols, i)
	}
	return h, nil
}

// column returns the index of a structural column,
// or -1 if the column is not in the header.
func (h *header) column(name string) int {
	for _, a := range output.Aliases(name) {
		if i, ok := h.index[a]; ok {
			return i
		}
	}
	return -1
}

// structure is the index
// of the structural columns of a file.
type structure struct {
	lon, lat   int
	year, day  int
	stand      int
	patch      int
	indiv, pft int
}

type requiredColumn struct {
	name string
	idx  int
}

func (h *header) structure(file string, md output.Metadata) (structure, error) {
	s := structure{
		lon:   h.column(output.LonColumn),
		lat:   h.column(output.LatColumn),
		year:  h.column(output.YearColumn),
		day:   -1,
		stand: -1,
		patch: -1,
		indiv: -1,
		pft:   -1,
	}

	required := []requiredColumn{
		{output.LonColumn, s.lon},
		{output.LatColumn, s.lat},
		{output.YearColumn, s.year},
	}

	switch md.Resolution {
	case output.Annual, output.Monthly:
	case output.Daily, output.Subdaily:
		s.day = h.column(output.DayColumn)
		required = append(required, requiredColumn{output.DayColumn, s.day})
	default:
		return s, fmt.Errorf("internal error: unexpected temporal resolution %v", md.Resolution)
	}

	if md.Level >= output.Stand {
		// single stand simulations
		// do not write the stand column
		s.stand = h.column(output.StandColumn)
	}
	if md.Level >= output.Patch {
		s.patch = h.column(output.PatchColumn)
		required = append(required, requiredColumn{output.PatchColumn, s.patch})
	}
	if md.Level == output.Individual {
		s.indiv = h.column(output.IndivColumn)
		s.pft = h.column(output.PFTColumn)
		required = append(required, requiredColumn{output.IndivColumn, s.indiv})
	}

	for _, r := range required {
		if r.idx < 0 {
			return s, dataErr(file, 1, "missing required column: %s", r.name)
		}
	}
	return s, nil
}

// months returns the month of each data column
// of a monthly output.
func (h *header) months(file string, md output.Metadata) ([]time.Month, error) {
	ms := make([]time.Month, len(h.data))
	for i, d := range h.data {
		m, ok := output.Month(d.Name)
		if !ok {
			// files with all months plus extra columns,
			// e.g. active layer depth with MAXALD
			if !md.Layers.HasAllMonths() {
				return nil, dataErr(file, 1, "invalid month column: %s", d.Name)
			}
			m = time.December
		}
		ms[i] = m
	}
	return ms, nil
}

// ReadHeader reads the header of an output file
// and returns the data layers that would be produced
// when the file is parsed.
//
// Only the header line is read:
// data rows and required structural columns are not checked,
// so a file accepted by ReadHeader can still be rejected by Read.
func ReadHeader(r io.Reader, name string, md output.Metadata) ([]quantity.LayerMetadata, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, dataErr(name, 0, "file must contain at least a header row and one data row")
	}

	h, err := parseHeader(sc.Text(), md)
	if err != nil {
		return nil, err
	}
	return h.data, nil
}

type pftLine struct {
	pft  string
	line int
}

// state is the state of a single parse.
type state struct {
	file string
	md   output.Metadata
	h    *header
	s    structure

	months []time.Month
	points [][]quantity.DataPoint
	pfts   map[int]pftLine
}

// Read reads an output file
// of the given file type.
// The name is used for error messages.
func Read(ctx context.Context, r io.Reader, name string, md output.Metadata) (*quantity.Quantity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var lines [2]string
	for i := range lines {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, err
			}
			return nil, dataErr(name, 0, "file must contain at least a header row and one data row")
		}
		lines[i] = sc.Text()
	}

	h, err := parseHeader(lines[0], md)
	if err != nil {
		return nil, err
	}
	s, err := h.structure(name, md)
	if err != nil {
		return nil, err
	}

	st := &state{
		file:   name,
		md:     md,
		h:      h,
		s:      s,
		points: make([][]quantity.DataPoint, len(h.data)),
		pfts:   make(map[int]pftLine),
	}
	if md.Resolution == output.Monthly {
		st.months, err = h.months(name, md)
		if err != nil {
			return nil, err
		}
	}

	if err := st.row(lines[1], 2); err != nil {
		return nil, err
	}
	for ln := 3; sc.Scan(); ln++ {
		if ln%checkRows == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		if err := st.row(sc.Text(), ln); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return st.quantity(), nil
}

func (st *state) row(line string, ln int) error {
	vals := split(line)
	if len(vals) != len(st.h.names) {
		return dataErr(st.file, ln, "invalid number of columns: has %d columns but header has %d", len(vals), len(st.h.names))
	}

	p := quantity.DataPoint{
		Level: st.md.Level,
	}

	var err error
	p.Lon, err = strconv.ParseFloat(vals[st.s.lon], 64)
	if err != nil {
		return dataErr(st.file, ln, "invalid longitude value: %s", vals[st.s.lon])
	}
	if p.Lon < 0 || p.Lon > 360 {
		return dataErr(st.file, ln, "invalid longitude value: %s: out of range [0, 360]", vals[st.s.lon])
	}
	p.Lat, err = strconv.ParseFloat(vals[st.s.lat], 64)
	if err != nil {
		return dataErr(st.file, ln, "invalid latitude value: %s", vals[st.s.lat])
	}

	year, err := strconv.Atoi(vals[st.s.year])
	if err != nil {
		return dataErr(st.file, ln, "invalid year value: %s", vals[st.s.year])
	}
	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	switch st.md.Resolution {
	case output.Annual:
		// the 365th day of the year,
		// not always December 31
		p.Time = jan1.AddDate(0, 0, 364)
	case output.Daily, output.Subdaily:
		day, err := strconv.Atoi(vals[st.s.day])
		if err != nil {
			return dataErr(st.file, ln, "invalid day value: %s", vals[st.s.day])
		}
		// days are 0-indexed
		p.Time = jan1.AddDate(0, 0, day)
	case output.Monthly:
		p.Time = jan1
	}

	if st.md.Level >= output.Stand && st.s.stand >= 0 {
		p.Stand, err = strconv.Atoi(vals[st.s.stand])
		if err != nil {
			return dataErr(st.file, ln, "invalid stand value: %s", vals[st.s.stand])
		}
	}
	if st.md.Level >= output.Patch {
		p.Patch, err = strconv.Atoi(vals[st.s.patch])
		if err != nil {
			return dataErr(st.file, ln, "invalid patch value: %s", vals[st.s.patch])
		}
	}
	if st.md.Level == output.Individual {
		p.Individual, err = strconv.Atoi(vals[st.s.indiv])
		if err != nil {
			return dataErr(st.file, ln, "invalid individual value: %s", vals[st.s.indiv])
		}
		if st.s.pft >= 0 {
			if err := st.checkPFT(p.Individual, vals[st.s.pft], ln); err != nil {
				return err
			}
		}
	}

	for i, c := range st.h.cols {
		v, err := strconv.ParseFloat(vals[c], 64)
		if err != nil {
			return dataErr(st.file, ln, "invalid value: failed to parse double: %s", vals[c])
		}

		dp := p
		dp.Value = v
		if st.months != nil {
			// last day of the month
			dp.Time = time.Date(year, st.months[i]+1, 0, 0, 0, 0, 0, time.UTC)
		}
		st.points[i] = append(st.points[i], dp)
	}
	return nil
}

func (st *state) checkPFT(indiv int, pft string, ln int) error {
	prev, ok := st.pfts[indiv]
	if !ok {
		st.pfts[indiv] = pftLine{pft: pft, line: ln}
		return nil
	}
	if prev.pft != pft {
		return dataErr(st.file, ln, "inconsistent PFT mapping in file %s: Individual %d is mapped to '%s' on line %d but was mapped to '%s' on line %d", st.file, indiv, pft, ln, prev.pft, prev.line)
	}
	return nil
}

func (st *state) quantity() *quantity.Quantity {
	q := &quantity.Quantity{
		Name:        st.md.Name,
		Description: st.md.Description,
		Layers:      make([]quantity.Layer, 0, len(st.h.data)),
		Level:       st.md.Level,
		Resolution:  st.md.Resolution,
	}
	for i, d := range st.h.data {
		q.Layers = append(q.Layers, quantity.Layer{
			Name:  d.Name,
			Units: d.Units,
			Data:  st.points[i],
		})
	}

	if st.md.Level == output.Individual {
		q.IndividualPfts = make(map[int]string, len(st.pfts))
		for id, p := range st.pfts {
			q.IndividualPfts[id] = p.pft
		}
	}
	return q
}
