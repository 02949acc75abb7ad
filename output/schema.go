// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package output

import (
	"errors"
	"fmt"
)

// Kind is the kind of a layer schema.
type Kind int

// Valid schema kinds.
const (
	// Static schemas have a fixed set of data columns
	// known in advance.
	Static Kind = iota

	// Dynamic schemas discover the data columns
	// when the header is read
	// (usually one column per PFT).
	Dynamic
)

func (k Kind) String() string {
	switch k {
	case Static:
		return "static"
	case Dynamic:
		return "dynamic"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// A Column is a data column
// and its unit.
type Column struct {
	Name string
	Unit Unit
}

// A Schema identifies the data layers
// of an output file.
type Schema struct {
	kind Kind

	// static layers
	cols  []Column
	units map[string]Unit

	// dynamic layers
	unit       Unit
	structural map[string]bool
}

// ErrNotDataLayer is returned when the unit of a column
// that is not a data layer is requested.
var ErrNotDataLayer = errors.New("not a data layer")

// NewStatic returns a schema
// with a fixed set of data columns.
func NewStatic(cols []Column) Schema {
	s := Schema{
		kind:  Static,
		cols:  make([]Column, 0, len(cols)),
		units: make(map[string]Unit, len(cols)),
	}
	for _, c := range cols {
		if _, dup := s.units[c.Name]; dup {
			continue
		}
		s.cols = append(s.cols, c)
		s.units[c.Name] = c.Unit
	}
	return s
}

// NewUniform returns a static schema
// in which all the data columns share the same unit.
func NewUniform(names []string, u Unit) Schema {
	cols := make([]Column, 0, len(names))
	for _, n := range names {
		cols = append(cols, Column{Name: n, Unit: u})
	}
	return NewStatic(cols)
}

// NewDynamic returns a schema
// in which any column that is not structural
// for the given level and resolution
// is a data layer with the indicated unit.
//
// Dynamic schemas are not valid for monthly outputs.
func NewDynamic(u Unit, level Level, res Resolution) (Schema, error) {
	if res == Monthly {
		return Schema{}, errors.New("monthly resolution is not supported for dynamic layers")
	}

	st := make(map[string]bool)
	for _, c := range StructuralColumns(level, res) {
		st[c] = true
	}
	return Schema{
		kind:       Dynamic,
		unit:       u,
		structural: st,
	}, nil
}

// Kind returns the kind of the schema.
func (s Schema) Kind() Kind {
	return s.kind
}

// IsDataLayer returns true if the column
// is a data layer.
func (s Schema) IsDataLayer(name string) bool {
	if s.kind == Dynamic {
		return !s.structural[name]
	}
	_, ok := s.units[name]
	return ok
}

// Units returns the unit of a data layer.
func (s Schema) Units(name string) (Unit, error) {
	if !s.IsDataLayer(name) {
		return "", fmt.Errorf("column %q: %w", name, ErrNotDataLayer)
	}
	if s.kind == Dynamic {
		return s.unit, nil
	}
	return s.units[name], nil
}

// Columns returns the declared columns
// of a static schema,
// in declaration order.
// It returns nil for dynamic schemas.
func (s Schema) Columns() []Column {
	if s.kind == Dynamic {
		return nil
	}
	cols := make([]Column, len(s.cols))
	copy(cols, s.cols)
	return cols
}

// Unit returns the shared unit of a dynamic schema.
func (s Schema) Unit() Unit {
	return s.unit
}

// HasAllMonths returns true if the schema is static
// and all the month columns are data layers.
func (s Schema) HasAllMonths() bool {
	if s.kind != Static {
		return false
	}
	for _, m := range monthNames {
		if _, ok := s.units[m]; !ok {
			return false
		}
	}
	return true
}
