// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package parser_test

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/hie-dave/lpjg-gui-sub000/output"
	"github.com/hie-dave/lpjg-gui-sub000/parser"
	"github.com/hie-dave/lpjg-gui-sub000/quantity"
	"github.com/hie-dave/lpjg-gui-sub000/resolve"
)

type params map[string]string

func (p params) TopLevelParameter(name string) (string, bool) {
	v, ok := p[name]
	return v, ok
}

var enabled = params{
	"file_anpp":           "anpp.out",
	"file_lai":            "lai.out",
	"file_agb":            "agb.out",
	"file_dave_lai":       "dave_lai.out",
	"file_mlai":           "mlai.out",
	"file_mald":           "mald.out",
	"file_dave_indiv_lai": "indiv_lai.out",
}

func newParser(t testing.TB) *parser.Parser {
	t.Helper()

	r := resolve.New(nil)
	if err := r.BuildLookup(enabled); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return parser.New(r, nil)
}

func writeFile(t testing.TB, dir, name, data string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("unable to write %q: %v", path, err)
	}
	return path
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestParseAnnual(t *testing.T) {
	data := `Lon Lat Year npp
10.0 20.0 2000 1.5
10.0 20.0 2001 2.0
`
	path := writeFile(t, t.TempDir(), "anpp.out", data)

	q, err := newParser(t).Parse(context.Background(), path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// the date is January 1 plus 364 days,
	// so leap years end on December 30
	want := &quantity.Quantity{
		Name:        "NPP",
		Description: "Net Primary Production",
		Level:       output.Gridcell,
		Resolution:  output.Annual,
		Layers: []quantity.Layer{
			{
				Name:  "npp",
				Units: "kgC/m2/year",
				Data: []quantity.DataPoint{
					{Time: date(2000, time.December, 30), Lon: 10, Lat: 20, Value: 1.5},
					{Time: date(2001, time.December, 31), Lon: 10, Lat: 20, Value: 2.0},
				},
			},
		},
	}
	if !cmp.Equal(q, want) {
		t.Errorf("quantity mismatch (-want +got):\n%s", cmp.Diff(want, q))
	}
}

func TestParsePFT(t *testing.T) {
	data := "Lon\tLat\tYear\tTeBE\tTeNE\n" +
		"150.25   -33.75  2000  0.2154   1.3280\n" +
		"150.25\t-33.75\t2001\t0.2287\t1.4011\n"
	path := writeFile(t, t.TempDir(), "lai.out", data)

	q, err := newParser(t).Parse(context.Background(), path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if names := q.LayerNames(); !cmp.Equal(names, []string{"TeBE", "TeNE"}) {
		t.Errorf("layers: got %v, want %v", names, []string{"TeBE", "TeNE"})
	}
	l, _ := q.Layer("TeNE")
	if l.Units != "m2/m2" {
		t.Errorf("units: got %q, want %q", l.Units, "m2/m2")
	}
	if len(l.Data) != 2 || l.Data[1].Value != 1.4011 || l.Data[1].Lat != -33.75 {
		t.Errorf("layer %q: unexpected data %v", l.Name, l.Data)
	}
	if q.IndividualPfts != nil {
		t.Errorf("gridcell output: unexpected individual map")
	}
}

func TestParseDaily(t *testing.T) {
	data := `Lon Lat Year Day C3G
10.0 20.0 2000 0 1.0
10.0 20.0 2000 31 2.0
10.0 20.0 2000 59 3.0
10.0 20.0 2001 364 4.0
`
	path := writeFile(t, t.TempDir(), "agb.out", data)

	q, err := newParser(t).Parse(context.Background(), path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []time.Time{
		date(2000, time.January, 1),
		date(2000, time.February, 1),
		date(2000, time.February, 29),
		date(2001, time.December, 31),
	}
	l, ok := q.Layer("C3G")
	if !ok {
		t.Fatalf("layer %q not found", "C3G")
	}
	for i, d := range l.Data {
		if !d.Time.Equal(want[i]) {
			t.Errorf("row %d: got %v, want %v", i, d.Time, want[i])
		}
	}
	if _, ok := q.Layer("Day"); ok {
		t.Errorf("unexpected layer %q", "Day")
	}
}

func TestParseMonthly(t *testing.T) {
	data := `Lon Lat Year Jan Feb Mar Apr May Jun Jul Aug Sep Oct Nov Dec
10.0 20.0 2003 1 2 3 4 5 6 7 8 9 10 11 12
10.0 20.0 2004 1 2 3 4 5 6 7 8 9 10 11 12
`
	path := writeFile(t, t.TempDir(), "mlai.out", data)

	q, err := newParser(t).Parse(context.Background(), path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(q.Layers) != 12 {
		t.Fatalf("layers: got %d, want %d", len(q.Layers), 12)
	}

	feb, _ := q.Layer("Feb")
	if !feb.Data[0].Time.Equal(date(2003, time.February, 28)) {
		t.Errorf("Feb 2003: got %v", feb.Data[0].Time)
	}
	if !feb.Data[1].Time.Equal(date(2004, time.February, 29)) {
		t.Errorf("Feb 2004: got %v", feb.Data[1].Time)
	}
	if feb.Data[1].Value != 2 {
		t.Errorf("Feb 2004: got value %.3f, want %.3f", feb.Data[1].Value, 2.0)
	}
	jan, _ := q.Layer("Jan")
	if !jan.Data[0].Time.Equal(date(2003, time.January, 31)) {
		t.Errorf("Jan 2003: got %v", jan.Data[0].Time)
	}
	apr, _ := q.Layer("Apr")
	if !apr.Data[0].Time.Equal(date(2003, time.April, 30)) {
		t.Errorf("Apr 2003: got %v", apr.Data[0].Time)
	}
}

func TestParseActiveLayerDepth(t *testing.T) {
	data := `Lon Lat Year Jan Feb Mar Apr May Jun Jul Aug Sep Oct Nov Dec MAXALD
10.0 60.0 2004 0 0 0 0.1 0.3 0.6 0.9 1.1 0.8 0.4 0.1 0 1.1
`
	path := writeFile(t, t.TempDir(), "mald.out", data)

	q, err := newParser(t).Parse(context.Background(), path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	l, ok := q.Layer("MAXALD")
	if !ok {
		t.Fatalf("layer %q not found", "MAXALD")
	}
	if !l.Data[0].Time.Equal(date(2004, time.December, 31)) {
		t.Errorf("MAXALD: got %v, want %v", l.Data[0].Time, date(2004, time.December, 31))
	}
	if l.Units != "m" {
		t.Errorf("MAXALD units: got %q, want %q", l.Units, "m")
	}
}

func TestMonthlyUnknownColumn(t *testing.T) {
	md := output.Metadata{
		FileType:   "file_test",
		Layers:     output.NewUniform([]string{"Jan", "Feb", "Other"}, "mm"),
		Level:      output.Gridcell,
		Resolution: output.Monthly,
	}
	data := `Lon Lat Year Jan Feb Other
10.0 20.0 2000 1 2 3
`
	_, err := parser.Read(context.Background(), strings.NewReader(data), "test.out", md)
	if !errors.Is(err, parser.ErrMalformedData) {
		t.Errorf("got error %v, want %v", err, parser.ErrMalformedData)
	}
}

func TestParseStand(t *testing.T) {
	data := `Lon Lat Year Day patch TeBE
10.0 20.0 2000 0 1 0.5
10.0 20.0 2000 0 2 0.7
`
	path := writeFile(t, t.TempDir(), "dave_lai.out", data)

	q, err := newParser(t).Parse(context.Background(), path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	l, _ := q.Layer("TeBE")
	for i, d := range l.Data {
		if !d.HasStand() || d.Stand != 0 {
			t.Errorf("row %d: stand: got %d (%v), want 0", i, d.Stand, d.HasStand())
		}
		if !d.HasPatch() || d.Patch != i+1 {
			t.Errorf("row %d: patch: got %d, want %d", i, d.Patch, i+1)
		}
		if d.HasIndividual() {
			t.Errorf("row %d: unexpected individual", i)
		}
	}

	missing := `Lon Lat Year Day stand TeBE
10.0 20.0 2000 0 1 0.5
`
	path = writeFile(t, t.TempDir(), "dave_lai.out", missing)
	_, err = newParser(t).Parse(context.Background(), path)
	var de *parser.DataError
	if !errors.As(err, &de) {
		t.Fatalf("got error %v, want %T", err, de)
	}
	if !strings.Contains(de.Msg, "missing required column") {
		t.Errorf("unexpected message %q", de.Msg)
	}
}

func TestParseIndividual(t *testing.T) {
	data := `Lon Lat Year Day stand patch indiv pft lai
150.25 -33.75 2000 0 0 0 1 TeBE 0.5
150.25 -33.75 2000 0 0 0 2 TeNE 0.7
150.25 -33.75 2000 1 0 0 1 TeBE 0.6
150.25 -33.75 2000 1 0 0 2 TeNE 0.8
`
	path := writeFile(t, t.TempDir(), "indiv_lai.out", data)

	q, err := newParser(t).Parse(context.Background(), path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if names := q.LayerNames(); !cmp.Equal(names, []string{"lai"}) {
		t.Errorf("layers: got %v, want %v", names, []string{"lai"})
	}
	want := map[int]string{1: "TeBE", 2: "TeNE"}
	if !cmp.Equal(q.IndividualPfts, want) {
		t.Errorf("individual PFTs: got %v, want %v", q.IndividualPfts, want)
	}
	l, _ := q.Layer("lai")
	if d := l.Data[3]; !d.HasIndividual() || d.Individual != 2 || d.Value != 0.8 {
		t.Errorf("row 3: got %+v", d)
	}
}

func TestIndividualDynamic(t *testing.T) {
	s, err := output.NewDynamic("kgC/m2", output.Individual, output.Daily)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	md := output.Metadata{
		FileType:   "file_test",
		Layers:     s,
		Level:      output.Individual,
		Resolution: output.Daily,
	}
	data := `Lon Lat Year Day Stand Patch Individual PFT TeBE TeNE
10.0 20.0 2000 0 1 2 3 TeBE 0.5 0.0
`
	q, err := parser.Read(context.Background(), strings.NewReader(data), "test.out", md)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if names := q.LayerNames(); !cmp.Equal(names, []string{"TeBE", "TeNE"}) {
		t.Errorf("layers: got %v, want %v", names, []string{"TeBE", "TeNE"})
	}
	d := q.Layers[0].Data[0]
	if d.Stand != 1 || d.Patch != 2 || d.Individual != 3 {
		t.Errorf("identifiers: got %d %d %d, want 1 2 3", d.Stand, d.Patch, d.Individual)
	}
}

func TestInconsistentPFT(t *testing.T) {
	var b strings.Builder
	b.WriteString("Lon Lat Year Day stand patch indiv pft lai\n")
	b.WriteString("10.0 20.0 2000 0 0 0 7 TeBE 0.5\n") // line 2
	for day := 1; day <= 6; day++ {
		b.WriteString("10.0 20.0 2000 1 0 0 7 TeBE 0.5\n") // lines 3-8
	}
	b.WriteString("10.0 20.0 2000 7 0 0 7 TeNE 0.5\n") // line 9

	path := writeFile(t, t.TempDir(), "indiv_lai.out", b.String())
	_, err := newParser(t).Parse(context.Background(), path)

	var de *parser.DataError
	if !errors.As(err, &de) {
		t.Fatalf("got error %v, want %T", err, de)
	}
	if de.Line != 9 {
		t.Errorf("line: got %d, want %d", de.Line, 9)
	}
	for _, s := range []string{"Individual 7", "'TeNE' on line 9", "'TeBE' on line 2"} {
		if !strings.Contains(de.Msg, s) {
			t.Errorf("message %q: expecting %q", de.Msg, s)
		}
	}
}

func TestColumnCount(t *testing.T) {
	data := `Lon Lat Year npp
10.0 20.0 2000 1.5
10.0 20.0 2001
`
	path := writeFile(t, t.TempDir(), "anpp.out", data)
	_, err := newParser(t).Parse(context.Background(), path)

	var de *parser.DataError
	if !errors.As(err, &de) {
		t.Fatalf("got error %v, want %T", err, de)
	}
	if !errors.Is(err, parser.ErrMalformedData) {
		t.Errorf("error %v: expecting %v", err, parser.ErrMalformedData)
	}
	if de.Line != 3 {
		t.Errorf("line: got %d, want %d", de.Line, 3)
	}
	if !strings.Contains(de.Msg, "has 3 columns but header has 4") {
		t.Errorf("unexpected message %q", de.Msg)
	}
}

func TestMalformed(t *testing.T) {
	tests := map[string]struct {
		file string
		data string
		msg  string
	}{
		"empty": {
			data: "",
			msg:  "at least a header row",
		},
		"header only": {
			data: "Lon Lat Year npp\n",
			msg:  "at least a header row",
		},
		"invalid value": {
			data: "Lon Lat Year npp\n10.0 20.0 2000 x\n",
			msg:  "failed to parse double",
		},
		"longitude out of range": {
			data: "Lon Lat Year npp\n-10.0 20.0 2000 1.0\n",
			msg:  "invalid longitude",
		},
		"invalid latitude": {
			data: "Lon Lat Year npp\n10.0 north 2000 1.0\n",
			msg:  "invalid latitude",
		},
		"invalid year": {
			data: "Lon Lat Year npp\n10.0 20.0 2000.5 1.0\n",
			msg:  "invalid year",
		},
		"missing latitude": {
			data: "Lon Year npp\n10.0 2000 1.0\n",
			msg:  "missing required column: Lat",
		},
		"missing day": {
			file: "dave_lai.out",
			data: "Lon Lat Year patch TeBE\n10.0 20.0 2000 1 0.5\n",
			msg:  "missing required column: Day",
		},
		"invalid day": {
			file: "dave_lai.out",
			data: "Lon Lat Year Day patch TeBE\n10.0 20.0 2000 1.5 1 0.5\n",
			msg:  "invalid day value: 1.5",
		},
		"invalid stand": {
			file: "dave_lai.out",
			data: "Lon Lat Year Day stand patch TeBE\n10.0 20.0 2000 0 a 1 0.5\n",
			msg:  "invalid stand value: a",
		},
		"invalid patch": {
			file: "dave_lai.out",
			data: "Lon Lat Year Day patch TeBE\n10.0 20.0 2000 0 p1 0.5\n",
			msg:  "invalid patch value: p1",
		},
		"missing individual": {
			file: "indiv_lai.out",
			data: "Lon Lat Year Day stand patch pft lai\n10.0 20.0 2000 0 0 0 TeBE 0.5\n",
			msg:  "missing required column: indiv",
		},
		"invalid individual": {
			file: "indiv_lai.out",
			data: "Lon Lat Year Day stand patch indiv pft lai\n10.0 20.0 2000 0 0 0 x7 TeBE 0.5\n",
			msg:  "invalid individual value: x7",
		},
	}

	p := newParser(t)
	for name, test := range tests {
		file := test.file
		if file == "" {
			file = "anpp.out"
		}
		path := writeFile(t, t.TempDir(), file, test.data)
		_, err := p.Parse(context.Background(), path)
		if !errors.Is(err, parser.ErrMalformedData) {
			t.Errorf("%s: got error %v, want %v", name, err, parser.ErrMalformedData)
			continue
		}
		if !strings.Contains(err.Error(), test.msg) {
			t.Errorf("%s: error %q: expecting %q", name, err.Error(), test.msg)
		}
	}
}

func TestIdempotent(t *testing.T) {
	data := `Lon Lat Year Day patch TeBE TeNE
10.0 20.0 2000 0 1 0.5 0.1
10.0 20.0 2000 1 1 0.6 0.2
10.0 20.0 2000 0 2 0.7 0.3
`
	path := writeFile(t, t.TempDir(), "dave_lai.out", data)
	p := newParser(t)

	q1, err := p.Parse(context.Background(), path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	q2, err := p.Parse(context.Background(), path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cmp.Equal(q1, q2) {
		t.Errorf("parses differ:\n%s", cmp.Diff(q1, q2))
	}
}

func TestParseHeader(t *testing.T) {
	data := `Lon Lat Year Day patch TeBE TeNE
10.0 20.0 2000 0 1 0.5 0.1
`
	path := writeFile(t, t.TempDir(), "dave_lai.out", data)

	lm, err := newParser(t).ParseHeader(context.Background(), path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []quantity.LayerMetadata{
		{Name: "TeBE", Units: "m2/m2"},
		{Name: "TeNE", Units: "m2/m2"},
	}
	if !cmp.Equal(lm, want) {
		t.Errorf("header mismatch (-want +got):\n%s", cmp.Diff(want, lm))
	}

	// data rows and required columns are not checked
	only := writeFile(t, t.TempDir(), "dave_lai.out", "Lon Lat Year TeBE\n")
	lm, err = newParser(t).ParseHeader(context.Background(), only)
	if err != nil {
		t.Fatalf("header only: unexpected error: %v", err)
	}
	if len(lm) != 1 || lm[0].Name != "TeBE" {
		t.Errorf("header only: got %v", lm)
	}
	if _, err := newParser(t).Parse(context.Background(), only); !errors.Is(err, parser.ErrMalformedData) {
		t.Errorf("header only: parse: got error %v, want %v", err, parser.ErrMalformedData)
	}

	empty := writeFile(t, t.TempDir(), "dave_lai.out", "")
	if _, err := newParser(t).ParseHeader(context.Background(), empty); !errors.Is(err, parser.ErrMalformedData) {
		t.Errorf("empty file: got error %v, want %v", err, parser.ErrMalformedData)
	}
}

func TestResolutionErrors(t *testing.T) {
	p := newParser(t)
	dir := t.TempDir()

	path := writeFile(t, dir, "npp.out", "Lon Lat Year npp\n10.0 20.0 2000 1.0\n")
	if _, err := p.Parse(context.Background(), path); !errors.Is(err, resolve.ErrNotFound) {
		t.Errorf("unknown filename: got error %v, want %v", err, resolve.ErrNotFound)
	}

	missing := filepath.Join(dir, "anpp.out")
	if _, err := p.Parse(context.Background(), missing); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("missing file: got error %v, want %v", err, fs.ErrNotExist)
	}
}

func TestCanceled(t *testing.T) {
	path := writeFile(t, t.TempDir(), "anpp.out", "Lon Lat Year npp\n10.0 20.0 2000 1.0\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := newParser(t).Parse(ctx, path); !errors.Is(err, context.Canceled) {
		t.Errorf("got error %v, want %v", err, context.Canceled)
	}
}

func TestParseAll(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writeFile(t, dir, "anpp.out", "Lon Lat Year npp\n10.0 20.0 2000 1.0\n"),
		writeFile(t, dir, "lai.out", "Lon Lat Year TeBE TeNE\n10.0 20.0 2000 1.0 2.0\n"),
	}

	qs, err := newParser(t).ParseAll(context.Background(), paths, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 2 {
		t.Fatalf("quantities: got %d, want %d", len(qs), 2)
	}
	if qs[0].Name != "NPP" || qs[1].Name != "LAI" {
		t.Errorf("quantities: got %q %q, want %q %q", qs[0].Name, qs[1].Name, "NPP", "LAI")
	}

	paths = append(paths, writeFile(t, dir, "mlai.out", ""))
	if _, err := newParser(t).ParseAll(context.Background(), paths, 0); !errors.Is(err, parser.ErrMalformedData) {
		t.Errorf("got error %v, want %v", err, parser.ErrMalformedData)
	}
}
