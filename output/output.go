// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package output implements the catalog
// of the output files written by LPJ-GUESS.
//
// Each known output file type
// (for example "file_lai" or "file_mnpp")
// is described by a Metadata value
// that indicates which columns of the file are data layers,
// the units of each layer,
// the aggregation level of the rows,
// and the temporal resolution of the data.
//
// The catalog is fixed at compile time,
// and it is safe for concurrent use.
package output

import (
	"fmt"
	"strings"
)

// A Unit is a unit of measurement
// (for example "kgC/m2").
//
// It is used for display only.
type Unit string

// String returns the unit as a string.
func (u Unit) String() string {
	return string(u)
}

// Level is the spatial granularity
// at which the rows of an output file are recorded.
//
// Levels are ordered by specificity,
// so a level implies the identifiers
// of all the coarser levels.
type Level int

// Valid aggregation levels.
const (
	Gridcell Level = iota
	Stand
	Patch
	Individual
)

var levelNames = []string{
	Gridcell:   "Gridcell",
	Stand:      "Stand",
	Patch:      "Patch",
	Individual: "Individual",
}

func (l Level) String() string {
	if l < Gridcell || l > Individual {
		return fmt.Sprintf("Level(%d)", int(l))
	}
	return levelNames[l]
}

// ParseLevel returns the level with the given name.
// The name is case insensitive.
func ParseLevel(s string) (Level, error) {
	for i, n := range levelNames {
		if strings.EqualFold(n, s) {
			return Level(i), nil
		}
	}
	return Gridcell, fmt.Errorf("unknown aggregation level %q", s)
}

// Resolution is the timestep granularity
// of the rows of an output file.
type Resolution int

// Valid temporal resolutions.
const (
	Annual Resolution = iota
	Monthly
	Daily
	Subdaily
)

var resolutionNames = []string{
	Annual:   "Annual",
	Monthly:  "Monthly",
	Daily:    "Daily",
	Subdaily: "Subdaily",
}

func (r Resolution) String() string {
	if r < Annual || r > Subdaily {
		return fmt.Sprintf("Resolution(%d)", int(r))
	}
	return resolutionNames[r]
}

// ParseResolution returns the temporal resolution
// with the given name.
// The name is case insensitive.
func ParseResolution(s string) (Resolution, error) {
	for i, n := range resolutionNames {
		if strings.EqualFold(n, s) {
			return Resolution(i), nil
		}
	}
	return Annual, fmt.Errorf("unknown temporal resolution %q", s)
}

// Metadata describes the shape of an output file type.
type Metadata struct {
	// FileType is the identifier of the file type
	// (e.g. "file_lai").
	// It is the key of the catalog
	// and the name of the parameter
	// that enables the output in an instruction file.
	FileType string

	// Name is a short title of the output.
	Name string

	// Description of the output.
	Description string

	// Layers is the schema
	// that identify the data layers of the file.
	Layers Schema

	// Level is the aggregation level of the rows.
	Level Level

	// Resolution is the temporal resolution
	// of the data.
	Resolution Resolution
}

// LongName returns a display name
// that includes the temporal resolution
// and the aggregation level of the output,
// for example "Annual Patch-Level LAI".
func (m Metadata) LongName() string {
	return fmt.Sprintf("%s %s-Level %s", m.Resolution, m.Level, m.Name)
}

// LongDescription returns the description
// prefixed with the temporal resolution
// and the aggregation level of the output.
func (m Metadata) LongDescription() string {
	return fmt.Sprintf("%s %s-Level %s", m.Resolution, m.Level, m.Description)
}
